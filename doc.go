// Package curvefit provides nonlinear least-squares curve fitting for tabular,
// indexed numeric data, in the spirit of the pandas/scipy fitting helpers.
//
// The library fits a caller-supplied model function y = f(x, params) against
// each column of an indexed dataset and returns a table of best-fit parameters
// per column. A bounded variant optimizes in a transformed, unconstrained
// parameter space and maps results back to bounded physical parameters, and a
// power-law special case uses closed-form regression instead of iteration.
//
// # Packages
//
//   - dataset: the indexed numeric table consumed by the fit routines
//   - fit: the per-column fit drivers, residual construction, and solver adapter
//   - pkg/errors: structured error types and the warning system
//   - pkg/log: slog-compatible structured logging
//   - core/parallel: CPU-parallel helpers for the column loop
//
// # Quick Start
//
//	data, err := dataset.FromSeries(xs, ys, "decay")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model := func(x float64, p []float64) float64 {
//	    return p[0] * math.Exp(-p[1]*x)
//	}
//	result, err := fit.Fit(data, model, fit.NamedParams([]string{"A", "rate"}, []float64{1, 0.1}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	A, _ := result.At("decay", "A")
//
// Missing data is tolerated rather than rejected: rows with missing values are
// dropped before fitting and residual entries that become NaN or infinite
// during optimization are masked, so messy experimental data fits without
// preprocessing.
package curvefit
