package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not fitted"
}

// BaseEstimator は全てのモデルとTransformerに埋め込む基底構造体。
// 名前と学習状態だけを持つ。
type BaseEstimator struct {
	name  string
	state EstimatorState
}

// NewBaseEstimator は未学習状態のBaseEstimatorを作成する
func NewBaseEstimator(name string) BaseEstimator {
	return BaseEstimator{name: name, state: NotFitted}
}

// Name はモデル名を返す
func (e *BaseEstimator) Name() string {
	return e.name
}

// State は現在の学習状態を返す
func (e *BaseEstimator) State() EstimatorState {
	return e.state
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
