package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewConvergenceError(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		status  string
		message string
		wantMsg string
	}{
		{
			name:    "with column",
			column:  "msd",
			status:  "iteration limit",
			message: "maximum number of iterations reached",
			wantMsg: `curvefit: fit of column "msd" did not converge (iteration limit): maximum number of iterations reached`,
		},
		{
			name:    "without column",
			column:  "",
			status:  "diverged",
			message: "solution contains NaN",
			wantMsg: "curvefit: fit did not converge (diverged): solution contains NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConvergenceError(tt.column, tt.status, tt.message)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			// ConvergenceError型にキャスト可能か確認
			var convErr *ConvergenceError
			if !As(err, &convErr) {
				t.Error("Error should be castable to *ConvergenceError")
			}
			if convErr.Message != tt.message {
				t.Errorf("Message = %v, want %v", convErr.Message, tt.message)
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Fit", 10, 7, 0)

	// 基本的なエラーメッセージの確認
	want := "curvefit: Fit: dimension mismatch on axis 0 (rows). Expected 10, got 7"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("PowerLaw", "empty dataset")

	want := "curvefit: PowerLaw: empty dataset"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := New("column dropped: no finite rows")
	Warn(warning)

	if captured == nil {
		t.Fatal("Expected warning to be captured by custom handler")
	}
	if captured.Error() != "column dropped: no finite rows" {
		t.Errorf("captured = %v, want original warning", captured)
	}
}

func TestNewMissingDataWarning(t *testing.T) {
	w := NewMissingDataWarning("fit", 3)

	want := "curvefit: fit: dropped 3 rows with missing values"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}

	// Warn経由で警告ハンドラに届くか確認
	var captured error
	SetWarningHandler(func(warning error) {
		captured = warning
	})
	defer SetWarningHandler(nil)

	Warn(w)

	var missing *MissingDataWarning
	if !As(captured, &missing) {
		t.Fatalf("expected MissingDataWarning, got %T", captured)
	}
	if missing.Dropped != 3 {
		t.Errorf("Dropped = %d, want 3", missing.Dropped)
	}
}

func TestZerologWarnFuncTakesPrecedence(t *testing.T) {
	var handled, bridged bool
	SetWarningHandler(func(error) { handled = true })
	SetZerologWarnFunc(func(error) { bridged = true })
	defer func() {
		SetZerologWarnFunc(nil)
		SetWarningHandler(nil)
	}()

	Warn(New("test warning"))

	if !bridged {
		t.Error("zerolog warn func should receive the warning")
	}
	if handled {
		t.Error("fallback handler should not run when the zerolog bridge is set")
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("solve", []float64{1.0, -2.5, 0.0}); err != nil {
		t.Errorf("finite values should pass, got %v", err)
	}

	nan := func() float64 { var z float64; return z / z }()
	if err := CheckNumericalStability("solve", []float64{1.0, nan}); err == nil {
		t.Error("NaN should be detected")
	}
}
