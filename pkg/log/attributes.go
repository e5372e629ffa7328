package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// SolverNameKey identifies the optimization strategy held by a model.
	SolverNameKey = "model.solver"

	// OperationKey is one of the Operation* values below.
	OperationKey = "ml.operation"

	// ComponentKey is the package that emitted the record.
	ComponentKey = "ml.component"

	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"

	// OrderKey is the lag order of an autoregressive model.
	OrderKey = "data.order"

	// PeriodsKey is the forecast horizon.
	PeriodsKey = "data.periods"
)

// Training and evaluation.
const (
	IterationKey      = "training.iteration"
	WeightsKey        = "training.weights"
	DerivativeSizeKey = "training.derivative_size"
	DurationMsKey     = "perf.duration_ms"
	AccuracyKey       = "metrics.accuracy"
	R2ScoreKey        = "metrics.r2_score"
	AUCKey            = "metrics.auc"
	ThresholdKey      = "preds.threshold"
	PredsKey          = "preds.count"
)

// Hyperparameters.
const (
	LearningRateKey      = "hyperparams.learning_rate"
	MaxIterKey           = "hyperparams.max_iter"
	MinDerivativeSizeKey = "hyperparams.min_derivative_size"
	SigmaKey             = "hyperparams.sigma"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	StacktraceKey = "error.stacktrace"
	WarningKey    = "warning"
)

const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationOptimize     = "optimize"
	OperationScore        = "score"
	OperationForecast     = "forecast"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
	PhaseEvaluation    = "evaluation"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorNewtonShape       = "NEWTON_SHAPE"
	ErrorWrongOrder        = "WRONG_ORDER"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
