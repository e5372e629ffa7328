// Package errors provides the error taxonomy and warning hooks shared by every
// estimator, solver and transformer in stratfit.
//
// All constructors attach a stack trace through cockroachdb/errors, so a
// failure can be printed with "%+v" to see where it originated. Typed errors
// are matched with As:
//
//	var nf *errors.NotFittedError
//	if errors.As(err, &nf) {
//	    // call Fit first
//	}
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("stratfit-warning: %v\n", w)
	}
	// set by pkg/log to route warnings through the structured logger
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the fallback handler used when no structured
// logger has been registered.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc registers the structured warning sink. pkg/log calls it
// during initialisation; passing nil restores the fallback handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn reports a non-fatal condition. Warnings never change a return value.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ConvergenceWarning is emitted when an iterative solver spends its whole
// iteration budget without the derivative norm reaching the threshold.
type ConvergenceWarning struct {
	Algorithm      string
	Iterations     int
	DerivativeSize float64
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (derivative size %.6g). Consider increasing max_iter or the learning rate.",
		w.Algorithm, w.Iterations, w.DerivativeSize)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Float64("derivative_size", w.DerivativeSize).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning creates a ConvergenceWarning.
func NewConvergenceWarning(algorithm string, iterations int, derivativeSize float64) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, DerivativeSize: derivativeSize}
}

// ===========================================================================
//
//	Errors
//
// ===========================================================================

// NotFittedError is returned by Predict, PredictProba and Transform when they
// are called before a successful Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("stratfit: %s must be fitted first. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// NewtonShapeError is returned by the Newton derivatives when the design
// matrix has more than one feature besides the intercept column.
type NewtonShapeError struct {
	Columns int
}

func (e *NewtonShapeError) Error() string {
	return fmt.Sprintf("stratfit: newton step needs exactly one feature plus intercept, got %d columns", e.Columns)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NewtonShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("columns", e.Columns).
		Str("type", "NewtonShapeError")
}

// NewNewtonShapeError creates a NewtonShapeError with a stack trace.
func NewNewtonShapeError(columns int) error {
	return errors.WithStack(&NewtonShapeError{Columns: columns})
}

// WrongOrderError is returned by the autoregressive extractor when the lag
// order is outside [1, len(series)).
type WrongOrderError struct {
	Order  int
	Length int
}

func (e *WrongOrderError) Error() string {
	return fmt.Sprintf("stratfit: lag order %d is out of range [1, %d)", e.Order, e.Length)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *WrongOrderError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("order", e.Order).
		Int("length", e.Length).
		Str("type", "WrongOrderError")
}

// NewWrongOrderError creates a WrongOrderError with a stack trace.
func NewWrongOrderError(order, length int) error {
	return errors.WithStack(&WrongOrderError{Order: order, Length: length})
}

// DimensionError reports a shape mismatch between two inputs.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("stratfit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError reports an invalid hyperparameter.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stratfit: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError reports an argument whose value cannot be processed.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("stratfit: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError wraps a failure raised while fitting or predicting, typically
// one coming from the numeric library.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stratfit: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("stratfit: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with the current stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is returned when an input has no rows or no columns.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix marks a closed-form solve whose normal matrix could not be inverted.
	ErrSingularMatrix = New("singular matrix")
)

// Mark tags err so that Is(err, reference) holds while the original chain,
// including typed errors reachable with As, is kept.
func Mark(err error, reference error) error {
	return errors.Mark(err, reference)
}
