package fit

import (
	"strconv"
)

// Params is the initial-guess parameter container. It optionally carries a
// label per position; labels are resolved once at the start of a fit call and
// propagate unchanged to the result table.
type Params struct {
	names  []string
	values []float64
}

// NamedParams creates a labeled parameter vector. If the label slice does not
// match the value slice in length (or is empty), the labels are discarded and
// positional labels "0".."n-1" are used instead. That fallback is silent on
// purpose: a malformed label container is treated as absent, not as an error.
func NamedParams(names []string, values []float64) Params {
	p := Params{values: append([]float64(nil), values...)}
	if len(names) == len(values) && len(names) > 0 {
		p.names = append([]string(nil), names...)
	}
	return p
}

// UnnamedParams creates a parameter vector with positional labels.
func UnnamedParams(values ...float64) Params {
	return Params{values: append([]float64(nil), values...)}
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.values)
}

// Values returns a copy of the parameter values.
func (p Params) Values() []float64 {
	return append([]float64(nil), p.values...)
}

// Names returns the resolved parameter labels: the caller's labels when they
// were well-formed, positional integers otherwise.
func (p Params) Names() []string {
	if p.names != nil {
		return append([]string(nil), p.names...)
	}
	names := make([]string, len(p.values))
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}
