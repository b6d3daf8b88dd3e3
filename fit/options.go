package fit

// Option is a function that configures a fit call
type Option func(*config)

type config struct {
	logResidual   bool
	exogColumns   bool
	maxIterations int
	tolerance     float64
	parallel      bool
}

func defaultConfig() config {
	return config{
		maxIterations: 100,
		tolerance:     1e-16,
	}
}

// WithLogResidual computes the residual in log space:
// log(target) - log(predicted) instead of target - predicted
func WithLogResidual() Option {
	return func(c *config) {
		c.logResidual = true
	}
}

// WithExogColumns swaps the roles of the exogenous index and the response
// column, fitting x as a function of the column's values instead of y = f(x)
func WithExogColumns() Option {
	return func(c *config) {
		c.exogColumns = true
	}
}

// WithMaxIterations sets the solver's iteration budget
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithTolerance sets the solver's objective tolerance
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithParallel solves independent columns concurrently. Per-column
// floating-point evaluation order is unchanged, so results are identical to
// the sequential path
func WithParallel() Option {
	return func(c *config) {
		c.parallel = true
	}
}
