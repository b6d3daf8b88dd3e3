package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Result is the fit result table: one row per fitted data column, one column
// per model parameter. Row order follows the input dataset's column order;
// parameter order follows the guess vector.
type Result struct {
	columns    []string
	paramNames []string
	values     *mat.Dense
}

func newResult(columns, paramNames []string) *Result {
	return &Result{
		columns:    columns,
		paramNames: paramNames,
		values:     mat.NewDense(len(columns), len(paramNames), nil),
	}
}

// setRow stores the solved parameter vector for the i-th data column.
// Distinct rows may be written concurrently.
func (r *Result) setRow(i int, params []float64) {
	r.values.SetRow(i, params)
}

// Columns returns the fitted data column names, one per row of the table.
func (r *Result) Columns() []string {
	return append([]string(nil), r.columns...)
}

// ParamNames returns the parameter labels, one per column of the table.
func (r *Result) ParamNames() []string {
	return append([]string(nil), r.paramNames...)
}

// At returns the best-fit value of the named parameter for the named data column.
func (r *Result) At(column, param string) (float64, error) {
	i, err := r.rowIndex(column)
	if err != nil {
		return 0, err
	}
	for j, name := range r.paramNames {
		if name == param {
			return r.values.At(i, j), nil
		}
	}
	return 0, errors.NewValueError("Result.At", "unknown parameter: "+param)
}

// Row returns the best-fit parameter vector for the named data column,
// in parameter-label order.
func (r *Result) Row(column string) ([]float64, error) {
	i, err := r.rowIndex(column)
	if err != nil {
		return nil, err
	}
	row := make([]float64, len(r.paramNames))
	mat.Row(row, i, r.values)
	return row, nil
}

// Matrix returns a copy of the result values as a dense matrix with one row
// per fitted column and one column per parameter.
func (r *Result) Matrix() *mat.Dense {
	return mat.DenseCopyOf(r.values)
}

func (r *Result) rowIndex(column string) (int, error) {
	for i, name := range r.columns {
		if name == column {
			return i, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrColumnNotFound, "Result: %q", column)
}
