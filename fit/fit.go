// Package fit performs nonlinear least-squares curve fitting of a caller
// supplied model function against each column of an indexed dataset.
//
// The fit routines wrap an external Levenberg-Marquardt minimizer: for each
// column a residual is built from the model and the column data, the minimizer
// is run from the caller's initial guess, and the solved parameter vectors are
// assembled into a table with one row per column and one column per parameter.
//
// BoundFit adds a reparameterization protocol on top of the same loop so the
// solver only ever sees unconstrained parameters, and PowerLaw bypasses
// iterative optimization entirely with a closed-form regression.
//
// Missing data is tolerated, not rejected: rows with missing values are
// dropped table-wide before fitting, and residual entries that become NaN or
// infinite during optimization are masked rather than raised as errors.
package fit

import (
	"time"

	"github.com/YuminosukeSato/curvefit/core/parallel"
	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// ModelFunc is a pure model function mapping an input value and a parameter
// vector to a predicted response. It is opaque to this package beyond its
// call signature.
type ModelFunc func(x float64, params []float64) float64

// Untransform maps bounded physical parameters into an unconstrained space
// on (-inf, +inf) for the solver to optimize over. It receives the data of
// the column being fit, so the reparameterization may depend on the column.
type Untransform func(columnData, params []float64) []float64

// Transform maps unconstrained solver-space parameters back to the bounded
// physical parameter space. For the same column data, Transform must be the
// exact inverse of Untransform; there is no runtime check, and a pair that is
// not a true inverse silently produces wrong bounded results.
type Transform func(columnData, params []float64) []float64

// Fit performs a least-squares fit of fn against each column of data.
//
// Rows with a missing value in any column are dropped table-wide first.
// Residual entries that are NaN or infinite are masked to exactly zero so
// they contribute nothing to the sum of squares. A column that fails to
// converge aborts the whole call with a ConvergenceError; no partial table
// is returned.
func Fit(data *dataset.Dataset, fn ModelFunc, guess Params, opts ...Option) (*Result, error) {
	return runFit(log.OperationFit, data, fn, guess, nil, nil, opts)
}

// BoundFit performs the same per-column fit as Fit, but optimizes in the
// unconstrained space defined by the transform pair: the initial guess is
// untransformed per column before solving, and the raw solution is
// transformed back before being reported.
//
// Unlike Fit, invalid residual entries are masked to twice the mean of the
// valid entries rather than zero, so the solver is penalized rather than
// rewarded for pushing samples out of the model's domain.
func BoundFit(data *dataset.Dataset, fn ModelFunc, guess Params, transform Transform, untransform Untransform, opts ...Option) (*Result, error) {
	if transform == nil || untransform == nil {
		return nil, errors.NewValueError("BoundFit", "transform and untransform must both be provided")
	}
	return runFit(log.OperationBoundFit, data, fn, guess, transform, untransform, opts)
}

func runFit(op string, data *dataset.Dataset, fn ModelFunc, guess Params, transform Transform, untransform Untransform, opts []Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if data == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if fn == nil {
		return nil, errors.NewValueError(op, "model function is nil")
	}
	if guess.Len() == 0 {
		return nil, errors.NewValueError(op, "empty guess parameter vector")
	}

	start := time.Now()
	logger := log.GetLoggerWithName("fit").With(log.OperationKey, op)

	clean := data.DropNA()
	dropped := data.Len() - clean.Len()
	if clean.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op+": no rows remain after missing-value removal")
	}
	if clean.Len() < guess.Len() {
		return nil, errors.NewDimensionError(op, guess.Len(), clean.Len(), 0)
	}
	if dropped > 0 {
		errors.Warn(errors.NewMissingDataWarning(op, dropped))
	}

	logger.Debug("Starting fit",
		log.RowsKey, clean.Len(),
		log.ColumnsKey, clean.NumColumns(),
		log.DroppedRowsKey, dropped,
		log.ParamsKey, guess.Len(),
		log.LogResidualKey, cfg.logResidual,
		log.SolverIterationsKey, cfg.maxIterations,
		log.SolverToleranceKey, cfg.tolerance,
	)

	index := clean.Index()
	names := guess.Names()
	guessValues := guess.Values()
	columns := clean.ColumnNames()
	result := newResult(columns, names)

	policy := maskZero
	if transform != nil {
		policy = maskTwiceMean
	}

	solveColumn := func(i int) (err error) {
		defer errors.Recover(&err, op)

		column := columns[i]
		values, err := clean.Column(column)
		if err != nil {
			return err
		}

		init := append([]float64(nil), guessValues...)
		if untransform != nil {
			init = untransform(values, init)
			if len(init) != len(guessValues) {
				return errors.NewDimensionError(op+": untransform", len(guessValues), len(init), 1)
			}
		}

		r := newResidual(index, values, fn, cfg.logResidual, cfg.exogColumns, policy)
		solution, err := solve(column, r, init, cfg)
		if err != nil {
			fields := []any{
				log.ErrAttrKey, err,
				log.ColumnKey, column,
				log.ErrorCodeKey, log.ErrorConvergence,
			}
			var convErr *errors.ConvergenceError
			if errors.As(err, &convErr) {
				fields = append(fields,
					log.ErrorTypeKey, "ConvergenceError",
					log.SolverStatusKey, convErr.Status,
				)
			}
			logger.Error("Fit did not converge", fields...)
			return err
		}

		if transform != nil {
			solution = transform(values, solution)
			if len(solution) != len(names) {
				return errors.NewDimensionError(op+": transform", len(names), len(solution), 1)
			}
		}

		result.setRow(i, solution)
		logger.Debug("Column solved", log.ColumnKey, column)
		return nil
	}

	var err error
	if cfg.parallel {
		err = parallel.ParallelizeWithError(len(columns), solveColumn)
	} else {
		for i := range columns {
			if err = solveColumn(i); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Fit completed",
		log.ColumnsKey, len(columns),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}
