package fit

import (
	"math"
)

// maskPolicy selects how non-finite residual entries are neutralized before
// they reach the solver. Fit zeroes masked entries so they contribute nothing
// to the sum of squares; BoundFit substitutes twice the mean of the finite
// entries so the solver is not rewarded for driving samples out of the
// model's domain. The two policies must not be unified.
type maskPolicy int

const (
	maskZero maskPolicy = iota
	maskTwiceMean
)

// residual evaluates the per-sample error for one data column. It is a plain
// value object rather than a closure: the column data and flags are fixed at
// construction and the same instance is handed to the solver for every
// iteration.
type residual struct {
	input    []float64 // fed through the model function
	target   []float64 // compared against the model's predictions
	fn       ModelFunc
	logSpace bool
	policy   maskPolicy
}

// newResidual builds the residual for one column. input is the exogenous
// index and target the column values; when exogColumns is set the roles are
// swapped, fitting x as a function of the column instead of y = f(x).
func newResidual(index, column []float64, fn ModelFunc, logSpace, exogColumns bool, policy maskPolicy) *residual {
	r := &residual{fn: fn, logSpace: logSpace, policy: policy}
	if exogColumns {
		r.input, r.target = column, index
	} else {
		r.input, r.target = index, column
	}
	return r
}

// size returns the length of the residual vector.
func (r *residual) size() int {
	return len(r.target)
}

// eval writes the masked residual vector for params into dst.
// len(dst) must equal r.size(). Matches the solver's expected signature.
func (r *residual) eval(dst, params []float64) {
	for i, x := range r.input {
		predicted := r.fn(x, params)
		if r.logSpace {
			dst[i] = math.Log(r.target[i]) - math.Log(predicted)
		} else {
			dst[i] = r.target[i] - predicted
		}
	}
	r.mask(dst)
}

// mask neutralizes NaN and ±Inf entries in place per the configured policy.
// Infinities count as invalid just like NaN: a log of a non-positive value or
// a division blow-up in the model must not hijack the sum of squares.
func (r *residual) mask(e []float64) {
	switch r.policy {
	case maskZero:
		for i, v := range e {
			if !finite(v) {
				e[i] = 0
			}
		}
	case maskTwiceMean:
		var sum float64
		var n int
		for _, v := range e {
			if finite(v) {
				sum += v
				n++
			}
		}
		fill := 0.0
		if n > 0 {
			fill = 2 * sum / float64(n)
		}
		for i, v := range e {
			if !finite(v) {
				e[i] = fill
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
