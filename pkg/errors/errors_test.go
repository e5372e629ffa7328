package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "not fitted",
			err:     NewNotFittedError("LinearRegression", "Predict"),
			wantMsg: "stratfit: LinearRegression must be fitted first. Call Fit() before using Predict()",
			check: func(t *testing.T, err error) {
				var target *NotFittedError
				require.True(t, As(err, &target))
				assert.Equal(t, "Predict", target.Method)
			},
		},
		{
			name:    "newton shape",
			err:     NewNewtonShapeError(3),
			wantMsg: "stratfit: newton step needs exactly one feature plus intercept, got 3 columns",
			check: func(t *testing.T, err error) {
				var target *NewtonShapeError
				require.True(t, As(err, &target))
				assert.Equal(t, 3, target.Columns)
			},
		},
		{
			name:    "wrong order",
			err:     NewWrongOrderError(5, 5),
			wantMsg: "stratfit: lag order 5 is out of range [1, 5)",
			check: func(t *testing.T, err error) {
				var target *WrongOrderError
				require.True(t, As(err, &target))
				assert.Equal(t, 5, target.Order)
			},
		},
		{
			name:    "dimension rows",
			err:     NewDimensionError("MSE", 10, 9, 0),
			wantMsg: "stratfit: MSE: dimension mismatch on axis 0 (rows). Expected 10, got 9",
			check: func(t *testing.T, err error) {
				var target *DimensionError
				require.True(t, As(err, &target))
			},
		},
		{
			name:    "validation",
			err:     NewValidationError("learning_rate", "must be positive", -0.5),
			wantMsg: "stratfit: validation failed for parameter 'learning_rate': must be positive (got: -0.5)",
			check: func(t *testing.T, err error) {
				var target *ValidationError
				require.True(t, As(err, &target))
			},
		},
		{
			name:    "value",
			err:     NewValueError("R2", "total sum of squares is zero"),
			wantMsg: "stratfit: R2: total sum of squares is zero",
			check: func(t *testing.T, err error) {
				var target *ValueError
				require.True(t, As(err, &target))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			tt.check(t, tt.err)
		})
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	base := fmt.Errorf("matrix singular or near-singular")
	err := NewModelError("OLS.Optimize", "singular normal matrix", Wrap(base, "inverse"))

	assert.Contains(t, err.Error(), "matrix singular")
	assert.True(t, Is(err, base))

	formatted := fmt.Sprintf("%+v", err)
	assert.Contains(t, formatted, "errors_test.go")
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s", "Fit")

	assert.True(t, Is(wrapped, ErrEmptyData))
	assert.False(t, Is(wrapped, ErrSingularMatrix))
	assert.Contains(t, wrapped.Error(), "in Fit")
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetZerologWarnFunc(func(w error) { got = append(got, w) })
	defer SetZerologWarnFunc(nil)

	w := NewConvergenceWarning("Derivative", 100, 0.25)
	Warn(w)

	require.Len(t, got, 1)
	var cw *ConvergenceWarning
	require.True(t, As(got[0], &cw))
	assert.Equal(t, 100, cw.Iterations)
	assert.True(t, strings.HasPrefix(w.Error(), "Derivative did not converge after 100 iterations"))
}

func TestWarnFallbackHandler(t *testing.T) {
	SetZerologWarnFunc(nil)
	var got error
	SetWarningHandler(func(w error) { got = w })
	defer SetWarningHandler(func(w error) {})

	Warn(New("something odd"))
	require.Error(t, got)
	assert.Equal(t, "something odd", got.Error())
}

func TestCheckFinite(t *testing.T) {
	assert.NoError(t, CheckFinite("Derivative.Optimize", []float64{1, 2, 3}, 4))

	err := CheckFinite("Derivative.Optimize", []float64{1, math.NaN(), math.Inf(1)}, 7)
	require.Error(t, err)
	var nw *NumericalWarning
	require.True(t, As(err, &nw))
	assert.Equal(t, 7, nw.Iteration)
	assert.Len(t, nw.Values, 2)
	assert.Contains(t, err.Error(), "at iteration 7")

	err = CheckFinite("StandardScaler.Fit", []float64{math.Inf(-1)}, -1)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "iteration")
}
