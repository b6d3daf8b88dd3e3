package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// PowerLaw fits y = A*x^n to each column of data by closed-form regression,
// bypassing the iterative solver entirely. The result table carries the fixed
// parameter labels "A" (amplitude) and "n" (exponent).
//
// The regression is ordinary least squares of the RAW column values against
// the RAW index: n is the slope and A is exp(intercept). Historically this
// routine was documented as a log-space regression, which would instead
// regress log(y) on log(x); the literal raw-space formula is what it has
// always computed and is preserved here. Callers relying on a genuine log-log
// fit should transform their data first.
func PowerLaw(data *dataset.Dataset) (*Result, error) {
	const op = "PowerLaw"

	if data == nil || data.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}

	logger := log.GetLoggerWithName("fit").With(log.OperationKey, log.OperationPowerLaw)
	logger.Debug("Starting closed-form fit",
		log.RowsKey, data.Len(),
		log.ColumnsKey, data.NumColumns(),
	)

	index := data.Index()
	columns := data.ColumnNames()
	result := newResult(columns, []string{"A", "n"})

	for i, column := range columns {
		values, err := data.Column(column)
		if err != nil {
			return nil, err
		}
		intercept, slope := stat.LinearRegression(index, values, nil, false)
		result.setRow(i, []float64{math.Exp(intercept), slope})
	}

	logger.Info("Closed-form fit completed", log.ColumnsKey, len(columns))
	return result, nil
}
