// Package log defines standard attribute keys for curve-fitting operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in CurveFit. Using these standard keys enables better
// log analysis, monitoring, and debugging of fitting workflows.
//
// The keys follow a hierarchical naming convention (e.g., "fit.column",
// "data.rows") to enable structured log analysis and filtering.

package log

// Fit and Operation Context
// These attributes identify the operation being performed and its target.
const (
	// OperationKey specifies the fitting operation being performed.
	// Standard values: "fit", "bound_fit", "powerlaw"
	OperationKey = "fit.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "fit", "dataset", "solver"
	ComponentKey = "fit.component"

	// ColumnKey identifies the data column currently being fit.
	ColumnKey = "fit.column"

	// ParamsKey indicates the number of model parameters being optimized.
	ParamsKey = "fit.params"

	// LogResidualKey records whether residuals are computed in log space.
	LogResidualKey = "fit.log_residual"
)

// Data Shape and Characteristics
// These attributes describe the structure of data being processed.
const (
	// RowsKey indicates the number of rows remaining after missing-value removal.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of response columns in the dataset.
	ColumnsKey = "data.columns"

	// DroppedRowsKey indicates how many rows were removed by the global
	// missing-value policy before fitting.
	DroppedRowsKey = "data.dropped_rows"
)

// Solver Context
// These attributes describe the state reported by the least-squares solver.
const (
	// SolverStatusKey records the solver's terminal status string.
	SolverStatusKey = "solver.status"

	// SolverIterationsKey records the iteration budget given to the solver.
	SolverIterationsKey = "solver.iterations"

	// SolverToleranceKey records the objective tolerance given to the solver.
	SolverToleranceKey = "solver.tolerance"
)

// Performance Metrics
const (
	// DurationMsKey records elapsed wall-clock time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "CONVERGENCE_FAILURE", "DIMENSION_MISMATCH", "EMPTY_DATA"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ConvergenceError", "ValueError", "DimensionError"
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard fitting operations
	OperationFit      = "fit"
	OperationBoundFit = "bound_fit"
	OperationPowerLaw = "powerlaw"

	// Standard error codes
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
)
