// Package matrix は gonum/mat の上に置く小さな補助関数群。
// 切片列の付加、列ごとの統計量、スライス変換を扱う。
package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/stratfit/core/parallel"
)

// AddIntercept は先頭に1の列を付けた新しい n×(k+1) 行列を返す。
// 入力のXは変更しない。
func AddIntercept(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	out := mat.NewDense(r, c+1, nil)

	parallel.Range(r, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				out.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return out
}

// Column はXのj列目をコピーして返す
func Column(X mat.Matrix, j int) []float64 {
	r, _ := X.Dims()
	col := make([]float64, r)
	mat.Col(col, j, X)
	return col
}

// ColumnMeanStdDev は列ごとの平均と標本標準偏差 (N-1) を返す
func ColumnMeanStdDev(X mat.Matrix) (means, stds []float64) {
	_, c := X.Dims()
	means = make([]float64, c)
	stds = make([]float64, c)

	parallel.Range(c, parallel.DefaultThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			means[j], stds[j] = stat.MeanStdDev(Column(X, j), nil)
		}
	})
	return means, stds
}

// VecToSlice はベクトルの値を新しいスライスにコピーする
func VecToSlice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// CopyVec はベクトルの独立したコピーを返す
func CopyVec(v mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	out.CopyVec(v)
	return out
}

// Fill は長さnで全要素がvalueのベクトルを返す
func Fill(n int, value float64) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = value
	}
	return mat.NewVecDense(n, data)
}

// Linspace は [lo, hi] を num 点で等分した値を返す。最後の要素は必ず hi。
// num == 1 の場合は lo のみ。
func Linspace(lo, hi float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{lo}
	}
	out := floats.Span(make([]float64, num), lo, hi)
	out[num-1] = hi
	return out
}
