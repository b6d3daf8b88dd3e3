package dataset

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		index   []float64
		columns []Column
		wantErr bool
	}{
		{
			name:    "two columns",
			index:   []float64{1, 2, 3},
			columns: []Column{{Name: "a", Values: []float64{1, 2, 3}}, {Name: "b", Values: []float64{4, 5, 6}}},
			wantErr: false,
		},
		{
			name:    "empty index",
			index:   nil,
			columns: []Column{{Name: "a", Values: nil}},
			wantErr: true,
		},
		{
			name:    "no columns",
			index:   []float64{1, 2},
			columns: nil,
			wantErr: true,
		},
		{
			name:    "length mismatch",
			index:   []float64{1, 2, 3},
			columns: []Column{{Name: "a", Values: []float64{1, 2}}},
			wantErr: true,
		},
		{
			name:    "duplicate names",
			index:   []float64{1, 2},
			columns: []Column{{Name: "a", Values: []float64{1, 2}}, {Name: "a", Values: []float64{3, 4}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.index, tt.columns...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if d.Len() != len(tt.index) {
				t.Errorf("Len() = %d, want %d", d.Len(), len(tt.index))
			}
			if d.NumColumns() != len(tt.columns) {
				t.Errorf("NumColumns() = %d, want %d", d.NumColumns(), len(tt.columns))
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	index := []float64{1, 2, 3}
	values := []float64{10, 20, 30}
	d, err := New(index, Column{Name: "a", Values: values})
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slices must not leak into the dataset.
	index[0] = -99
	values[0] = -99

	if d.Index()[0] != 1 {
		t.Error("Dataset shares index storage with caller")
	}
	col, _ := d.Column("a")
	if col[0] != 10 {
		t.Error("Dataset shares column storage with caller")
	}
}

func TestColumnNotFound(t *testing.T) {
	d, _ := FromSeries([]float64{1, 2}, []float64{3, 4}, "y")
	if _, err := d.Column("missing"); !errors.Is(err, errors.ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestDropNAGlobal(t *testing.T) {
	nan := math.NaN()
	// Row 3 is missing in column b only; the drop is table-wide so it must
	// disappear from column a as well.
	d, err := New(
		[]float64{0, 1, 2, 3, 4},
		Column{Name: "a", Values: []float64{10, 11, 12, 13, 14}},
		Column{Name: "b", Values: []float64{20, 21, 22, nan, 24}},
	)
	if err != nil {
		t.Fatal(err)
	}

	clean := d.DropNA()
	if clean.Len() != 4 {
		t.Fatalf("Len() after DropNA = %d, want 4", clean.Len())
	}

	wantIndex := []float64{0, 1, 2, 4}
	for i, x := range clean.Index() {
		if x != wantIndex[i] {
			t.Errorf("index[%d] = %v, want %v", i, x, wantIndex[i])
		}
	}

	a, _ := clean.Column("a")
	wantA := []float64{10, 11, 12, 14}
	for i, v := range a {
		if v != wantA[i] {
			t.Errorf("a[%d] = %v, want %v", i, v, wantA[i])
		}
	}
}

func TestDropNATreatsInfAsMissing(t *testing.T) {
	d, err := FromSeries(
		[]float64{0, 1, 2, 3},
		[]float64{5, math.Inf(1), math.Inf(-1), 8},
		"y",
	)
	if err != nil {
		t.Fatal(err)
	}

	clean := d.DropNA()
	if clean.Len() != 2 {
		t.Fatalf("Len() after DropNA = %d, want 2", clean.Len())
	}
}

func TestDropNAMissingIndex(t *testing.T) {
	d, err := FromSeries(
		[]float64{0, math.NaN(), 2},
		[]float64{5, 6, 7},
		"y",
	)
	if err != nil {
		t.Fatal(err)
	}

	clean := d.DropNA()
	if clean.Len() != 2 {
		t.Fatalf("Len() after DropNA = %d, want 2", clean.Len())
	}
	y, _ := clean.Column("y")
	if y[0] != 5 || y[1] != 7 {
		t.Errorf("y = %v, want [5 7]", y)
	}
}
