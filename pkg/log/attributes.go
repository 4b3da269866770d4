// Package log defines standard attribute keys for objective and training logs.
//
// Keys follow a hierarchical naming convention ("objective.name",
// "data.samples") so log lines can be filtered by prefix.
package log

// Component and operation context.
const (
	// ComponentKey identifies which component or package emitted the record.
	// Examples: "objective", "boosting"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "init", "gradients", "boost_from_score"
	OperationKey = "ml.operation"

	// ObjectiveNameKey is the stable identifier of a loss variant
	// ("regression", "regression_l1", "huber", "fair").
	ObjectiveNameKey = "objective.name"

	// ObjectiveParamsKey is the String() form of an objective, name plus hyperparameters.
	ObjectiveParamsKey = "objective.params"
)

// Data shape.
const (
	// SamplesKey indicates the number of rows bound to an objective.
	SamplesKey = "data.samples"

	// WeightedKey reports whether per-sample weights are bound.
	WeightedKey = "data.weighted"

	// ThreadsKey records the number of worker goroutines used for a computation.
	ThreadsKey = "perf.threads"
)

// Training progress, used by drivers that consume gradients.
const (
	// IterationKey records the current boosting iteration.
	IterationKey = "training.iteration"

	// InitScoreKey records the constant prediction used before the first tree.
	InitScoreKey = "training.init_score"

	// LossKey records a loss value reported by a driver.
	LossKey = "metrics.loss"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ConfigurationError", "DimensionMismatchError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Populated automatically when an error value is logged.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationInit           = "init"
	OperationGradients      = "gradients"
	OperationBoostFromScore = "boost_from_score"
)
