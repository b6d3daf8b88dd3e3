// Package dataset provides the indexed numeric table consumed by the fit routines.
//
// A Dataset pairs an ordered float64 exogenous index (the independent variable,
// typically "x") with one or more named response columns. It is a value type:
// constructed fresh per fit invocation, never mutated in place.
package dataset

import (
	"math"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Column is a named response variable sampled at each index position.
type Column struct {
	Name   string
	Values []float64
}

// Dataset is a table of numeric values indexed by an ordered exogenous variable.
// Column order is preserved from construction.
type Dataset struct {
	index   []float64
	columns []Column
}

// New creates a Dataset from an index and one or more columns.
// Every column must have the same length as the index.
func New(index []float64, columns ...Column) (*Dataset, error) {
	if len(index) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New")
	}
	if len(columns) == 0 {
		return nil, errors.NewValueError("dataset.New", "at least one column is required")
	}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if len(col.Values) != len(index) {
			return nil, errors.NewDimensionError("dataset.New", len(index), len(col.Values), 0)
		}
		if _, dup := seen[col.Name]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column name: "+col.Name)
		}
		seen[col.Name] = struct{}{}
	}

	d := &Dataset{
		index:   append([]float64(nil), index...),
		columns: make([]Column, len(columns)),
	}
	for i, col := range columns {
		d.columns[i] = Column{
			Name:   col.Name,
			Values: append([]float64(nil), col.Values...),
		}
	}
	return d, nil
}

// FromSeries creates a single-column Dataset. The fit routines treat a
// series-shaped input uniformly as a one-column table.
func FromSeries(index, values []float64, name string) (*Dataset, error) {
	return New(index, Column{Name: name, Values: values})
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.index)
}

// NumColumns returns the number of response columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// ColumnNames returns the column names in construction order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Index returns a copy of the exogenous index values.
func (d *Dataset) Index() []float64 {
	return append([]float64(nil), d.index...)
}

// Column returns a copy of the values of the named column.
func (d *Dataset) Column(name string) ([]float64, error) {
	for _, col := range d.columns {
		if col.Name == name {
			return append([]float64(nil), col.Values...), nil
		}
	}
	return nil, errors.Wrapf(errors.ErrColumnNotFound, "dataset.Column: %q", name)
}

// DropNA returns a copy of the Dataset with every row removed in which the
// index or ANY column holds a missing value. Missing means NaN or ±Inf;
// infinities are treated as missing rather than as numbers so that a single
// wild sample cannot dominate a fit. The drop is table-wide, not per-column:
// a row missing in one column is excluded from the fits of all columns.
func (d *Dataset) DropNA() *Dataset {
	keep := make([]int, 0, len(d.index))
rows:
	for i, x := range d.index {
		if !isFinite(x) {
			continue
		}
		for _, col := range d.columns {
			if !isFinite(col.Values[i]) {
				continue rows
			}
		}
		keep = append(keep, i)
	}

	out := &Dataset{
		index:   make([]float64, len(keep)),
		columns: make([]Column, len(d.columns)),
	}
	for j := range d.columns {
		out.columns[j] = Column{
			Name:   d.columns[j].Name,
			Values: make([]float64, len(keep)),
		}
	}
	for k, i := range keep {
		out.index[k] = d.index[i]
		for j := range d.columns {
			out.columns[j].Values[k] = d.columns[j].Values[i]
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
