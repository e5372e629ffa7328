package errors

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// NumericalWarning reports NaN or Inf values produced by an operation. It is
// emitted through Warn and never replaces a return value.
type NumericalWarning struct {
	Operation string
	Iteration int
	Values    []float64
}

func (w *NumericalWarning) Error() string {
	if w.Iteration >= 0 {
		return fmt.Sprintf("%s produced non-finite values at iteration %d: %v", w.Operation, w.Iteration, w.Values)
	}
	return fmt.Sprintf("%s produced non-finite values: %v", w.Operation, w.Values)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *NumericalWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Operation).
		Int("iteration", w.Iteration).
		Floats64("values", w.Values).
		Str("type", "NumericalWarning")
}

// CheckFinite returns a *NumericalWarning when values contains NaN or Inf,
// nil otherwise. Pass iteration -1 outside of an iterative loop.
func CheckFinite(operation string, values []float64, iteration int) error {
	var bad []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, v)
			if len(bad) >= 10 {
				break
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &NumericalWarning{Operation: operation, Iteration: iteration, Values: bad}
}
