package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/stratfit/core/matrix"
	"github.com/YuminosukeSato/stratfit/core/model"
	"github.com/YuminosukeSato/stratfit/pkg/errors"
	"github.com/YuminosukeSato/stratfit/pkg/log"
	"github.com/YuminosukeSato/stratfit/solver"
)

// linearBase は重みベクトルと切片列を使うモデルの共通部分。
// ソルバーは値として保持する。
type linearBase[S solver.Solver] struct {
	model.BaseEstimator

	solver    S
	cfg       config
	weights   *mat.VecDense // 0番目が切片
	nFeatures int
	logger    log.Logger
}

func newLinearBase[S solver.Solver](name string, s S, opts []Option) linearBase[S] {
	cfg := newConfig(opts)
	logger := cfg.logger
	if logger == nil {
		logger = log.GetLoggerWithName("linear")
	}
	return linearBase[S]{
		BaseEstimator: model.NewBaseEstimator(name),
		solver:        s,
		cfg:           cfg,
		logger:        logger.With(log.ModelNameKey, name, log.SolverNameKey, s.Name()),
	}
}

// fit は [1 | X] を新しく作り、N(0,1) から初期重みを引いてソルバーに渡す。
// 失敗した場合は未学習状態のまま。
func (b *linearBase[S]) fit(X mat.Matrix, y mat.Vector) error {
	b.Reset()
	op := b.Name() + ".Fit"

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if y.Len() != r {
		return errors.NewDimensionError(op, r, y.Len(), 0)
	}

	start := time.Now()
	aug := matrix.AddIntercept(X)

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: b.cfg.src}
	initial := mat.NewVecDense(c+1, nil)
	for i := 0; i <= c; i++ {
		initial.SetVec(i, normal.Rand())
	}

	w, err := b.solver.Optimize(initial, aug, y)
	if err != nil {
		b.logger.Debug("fit failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	b.weights = w
	b.nFeatures = c
	b.SetFitted()

	b.logger.Debug("fit completed",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// augment は学習済みかつ列数が一致することを確認して [1 | X] を返す
func (b *linearBase[S]) augment(X mat.Matrix, method string) (*mat.Dense, error) {
	if !b.IsFitted() {
		return nil, errors.NewNotFittedError(b.Name(), method)
	}
	_, c := X.Dims()
	if c != b.nFeatures {
		return nil, errors.NewDimensionError(b.Name()+"."+method, b.nFeatures, c, 1)
	}
	return matrix.AddIntercept(X), nil
}

// Weights は学習済みの重みのコピーを返す。未学習の場合は nil。
func (b *linearBase[S]) Weights() *mat.VecDense {
	if b.weights == nil {
		return nil
	}
	return matrix.CopyVec(b.weights)
}

// Intercept は切片 (重みの0番目) を返す
func (b *linearBase[S]) Intercept() float64 {
	if b.weights == nil {
		return 0
	}
	return b.weights.AtVec(0)
}

// Coefficients は切片を除いた係数を返す
func (b *linearBase[S]) Coefficients() []float64 {
	if b.weights == nil {
		return nil
	}
	return matrix.VecToSlice(b.weights.SliceVec(1, b.weights.Len()))
}

// NFeatures は学習時の特徴量数を返す
func (b *linearBase[S]) NFeatures() int {
	return b.nFeatures
}

// Solver は保持しているソルバーを返す
func (b *linearBase[S]) Solver() S {
	return b.solver
}

// GetParams はモデルとソルバーのハイパーパラメータを返す
func (b *linearBase[S]) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"solver": b.solver.Name(),
	}
	if pg, ok := any(b.solver).(model.ParameterGetter); ok {
		for k, v := range pg.GetParams() {
			params["solver_"+k] = v
		}
	}
	return params
}
