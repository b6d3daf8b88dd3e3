package fit

import (
	"github.com/maorshutman/lm"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Damping and gradient/step thresholds handed to the Levenberg-Marquardt
// minimizer. These mirror the package author's recommended defaults.
const (
	lmTau  = 1e-6
	lmEps1 = 1e-8
	lmEps2 = 1e-8
)

// solve runs the external Levenberg-Marquardt minimizer on one column's
// residual and returns the solution vector. The Jacobian is estimated
// numerically from the residual itself.
//
// Failure is all-or-nothing: a solver error or a non-finite solution vector
// produces a ConvergenceError carrying the solver's diagnostic message, and no
// partial parameter vector escapes to the caller.
func solve(column string, r *residual, init []float64, cfg config) ([]float64, error) {
	jac := lm.NumJac{Func: r.eval}
	prob := lm.LMProblem{
		Dim:        len(init),
		Size:       r.size(),
		Func:       r.eval,
		Jac:        jac.Jac,
		InitParams: init,
		Tau:        lmTau,
		Eps1:       lmEps1,
		Eps2:       lmEps2,
	}

	res, err := lm.LM(prob, &lm.Settings{Iterations: cfg.maxIterations, ObjectiveTol: cfg.tolerance})
	if err != nil {
		return nil, errors.NewConvergenceError(column, "solver failure", err.Error())
	}
	if err := errors.CheckNumericalStability("solve", res.X); err != nil {
		return nil, errors.NewConvergenceError(column, "diverged", "solution contains non-finite values")
	}
	return res.X, nil
}
