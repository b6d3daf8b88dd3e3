package fit

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/curvefit/dataset"
)

// logAmplitude is a transform pair keeping the amplitude positive: the solver
// works with log(A) while the reported parameter is A itself.
var (
	logAmplitudeUntransform Untransform = func(columnData, params []float64) []float64 {
		return []float64{math.Log(params[0]), params[1]}
	}
	logAmplitudeTransform Transform = func(columnData, params []float64) []float64 {
		return []float64{math.Exp(params[0]), params[1]}
	}
)

// TestBoundFitRoundTrip fits zero-noise data with a true inverse transform
// pair and verifies the recovered bounded parameters equal the true ones
// within solver tolerance.
func TestBoundFitRoundTrip(t *testing.T) {
	index := sampleIndex(30)
	truth := []float64{3, 0.5}
	d, err := dataset.FromSeries(index, evalAll(index, expDecayModel, truth), "decay")
	if err != nil {
		t.Fatal(err)
	}

	result, err := BoundFit(d, expDecayModel,
		NamedParams([]string{"A", "rate"}, []float64{2, 0.3}),
		logAmplitudeTransform, logAmplitudeUntransform,
	)
	if err != nil {
		t.Fatal(err)
	}

	row, err := result.Row("decay")
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range truth {
		if math.Abs(row[i]-want) > 1e-4 {
			t.Errorf("param[%d] = %v, want %v", i, row[i], want)
		}
	}
	if row[0] <= 0 {
		t.Errorf("bounded amplitude must stay positive, got %v", row[0])
	}
}

// TestBoundFitColumnDependentTransform verifies the untransform is evaluated
// against the data of the column being fit, not just the guess: the pair here
// rescales the parameter by the column's final value, which differs per column.
func TestBoundFitColumnDependentTransform(t *testing.T) {
	index := sampleIndex(12)
	a := evalAll(index, slopeModel, []float64{2})
	b := evalAll(index, slopeModel, []float64{5})
	d, err := dataset.New(index,
		dataset.Column{Name: "a", Values: a},
		dataset.Column{Name: "b", Values: b},
	)
	if err != nil {
		t.Fatal(err)
	}

	scale := func(columnData []float64) float64 {
		return columnData[len(columnData)-1]
	}
	untransform := func(columnData, params []float64) []float64 {
		return []float64{params[0] / scale(columnData)}
	}
	transform := func(columnData, params []float64) []float64 {
		return []float64{params[0] * scale(columnData)}
	}

	result, err := BoundFit(d, slopeModel, UnnamedParams(1), transform, untransform)
	if err != nil {
		t.Fatal(err)
	}

	for col, want := range map[string]float64{"a": 2, "b": 5} {
		row, _ := result.Row(col)
		if math.Abs(row[0]-want) > 1e-6 {
			t.Errorf("column %s slope = %v, want %v", col, row[0], want)
		}
	}
}

func TestBoundFitRequiresTransformPair(t *testing.T) {
	index := sampleIndex(5)
	d, _ := dataset.FromSeries(index, evalAll(index, slopeModel, []float64{2}), "y")

	if _, err := BoundFit(d, slopeModel, UnnamedParams(1), nil, logAmplitudeUntransform); err == nil {
		t.Error("nil transform should fail")
	}
	if _, err := BoundFit(d, slopeModel, UnnamedParams(1), logAmplitudeTransform, nil); err == nil {
		t.Error("nil untransform should fail")
	}
}

func TestBoundFitRejectsWrongArityTransform(t *testing.T) {
	index := sampleIndex(8)
	d, _ := dataset.FromSeries(index, evalAll(index, slopeModel, []float64{2}), "y")

	badUntransform := func(columnData, params []float64) []float64 {
		return append(params, 0) // grows the vector
	}
	identity := func(columnData, params []float64) []float64 { return params }

	if _, err := BoundFit(d, slopeModel, UnnamedParams(1), identity, badUntransform); err == nil {
		t.Error("untransform changing the parameter count should fail")
	}
}
