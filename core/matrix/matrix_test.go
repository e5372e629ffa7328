package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestAddInterceptDoesNotMutateInput(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	before := mat.DenseCopyOf(X)

	aug := AddIntercept(X)

	r, c := aug.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 1, 2, 1, 3, 4}, aug.RawMatrix().Data)
	assert.True(t, mat.Equal(before, X))
}

func TestAddInterceptLarge(t *testing.T) {
	n := 2500
	X := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
	}
	aug := AddIntercept(X)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, aug.At(i, 0))
		assert.Equal(t, float64(i), aug.At(i, 1))
	}
}

func TestColumnMeanStdDev(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
	})
	means, stds := ColumnMeanStdDev(X)
	assert.InDeltaSlice(t, []float64{2, 5}, means, 1e-12)
	assert.InDelta(t, 1.0, stds[0], 1e-12)
	assert.Equal(t, 0.0, stds[1])
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, got, 1e-12)
	assert.Equal(t, []float64{0}, Linspace(0, 1, 1))
	assert.Nil(t, Linspace(0, 1, 0))
}

func TestVectorHelpers(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	s := VecToSlice(v)
	s[0] = 99
	assert.Equal(t, 1.0, v.AtVec(0))

	c := CopyVec(v)
	c.SetVec(1, -1)
	assert.Equal(t, 2.0, v.AtVec(1))

	f := Fill(4, math.Pi)
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, math.Pi, f.AtVec(3))

	assert.Equal(t, []float64{2, 2, 2}, Column(mat.NewDense(3, 2, []float64{1, 2, 3, 2, 5, 2}), 1))
}
