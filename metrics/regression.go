// Package metrics は目的関数に対応する回帰損失を評価する。
//
// 勾配を計算する objective パッケージとは独立しており、学習ドライバが
// 各ラウンドの損失を報告するために使う。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/Willdata/LightGBM/objective"
	"github.com/Willdata/LightGBM/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred, weights *mat.VecDense) (float64, error) {
	return meanLoss("MSE", yTrue, yPred, weights, func(d float64) float64 { return d * d })
}

// RMSE は平方根平均二乗誤差を計算する
func RMSE(yTrue, yPred, weights *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred, weights)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred, weights *mat.VecDense) (float64, error) {
	return meanLoss("MAE", yTrue, yPred, weights, math.Abs)
}

// Huber はHuber損失の平均を計算する。
// |d| <= delta では 0.5·d²、それ以外では delta·(|d| - 0.5·delta)。
func Huber(yTrue, yPred, weights *mat.VecDense, delta float64) (float64, error) {
	return meanLoss("Huber", yTrue, yPred, weights, func(d float64) float64 {
		a := math.Abs(d)
		if a <= delta {
			return 0.5 * d * d
		}
		return delta * (a - 0.5*delta)
	})
}

// Fair はFair損失 c·|d| - c²·log(1 + |d|/c) の平均を計算する
func Fair(yTrue, yPred, weights *mat.VecDense, c float64) (float64, error) {
	return meanLoss("Fair", yTrue, yPred, weights, func(d float64) float64 {
		a := math.Abs(d)
		return c*a - c*c*math.Log1p(a/c)
	})
}

// ObjectiveLoss は目的関数名（エイリアス可）に対応する損失を計算する。
// regression は MSE、regression_l1 は MAE として評価する。
func ObjectiveLoss(name string, cfg objective.Config, yTrue, yPred, weights *mat.VecDense) (float64, error) {
	canonical, err := objective.CanonicalName(name)
	if err != nil {
		return 0, err
	}
	return canonicalLoss(canonical, cfg, yTrue, yPred, weights)
}

func canonicalLoss(canonical string, cfg objective.Config, yTrue, yPred, weights *mat.VecDense) (float64, error) {
	switch canonical {
	case objective.NameRegression:
		return MSE(yTrue, yPred, weights)
	case objective.NameRegressionL1:
		return MAE(yTrue, yPred, weights)
	case objective.NameHuber:
		return Huber(yTrue, yPred, weights, cfg.HuberDelta)
	case objective.NameFair:
		return Fair(yTrue, yPred, weights, cfg.FairC)
	default:
		return 0, errors.NewConfigurationError(objective.ParamObjective, "no loss for objective", canonical)
	}
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	if err := checkInputs("R2Score", yTrue, yPred, nil); err != nil {
		return 0, err
	}

	n := yTrue.Len()
	yMean := mat.Sum(yTrue) / float64(n)

	// 全変動（TSS）と残差変動（RSS）
	var tss, rss float64
	for i := 0; i < n; i++ {
		t, p := yTrue.AtVec(i), yPred.AtVec(i)
		tss += (t - yMean) * (t - yMean)
		rss += (t - p) * (t - p)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return 1 - rss/tss, nil
}

// checkInputs rejects nil or empty labels and predictions or weights whose
// length differs from the labels. A nil weights vector means uniform weights.
func checkInputs(op string, yTrue, yPred, weights *mat.VecDense) error {
	if yTrue == nil || yTrue.IsEmpty() {
		return errors.Newf("%s: empty vector", op)
	}
	n := yTrue.Len()
	if yPred == nil || yPred.IsEmpty() || yPred.Len() != n {
		return errors.NewDimensionMismatchError(op, "yPred", n, vecLen(yPred))
	}
	if weights != nil && (weights.IsEmpty() || weights.Len() != n) {
		return errors.NewDimensionMismatchError(op, "weights", n, vecLen(weights))
	}
	return nil
}

// meanLoss は loss(yPred - yTrue) の（重み付き）平均を返す
func meanLoss(op string, yTrue, yPred, weights *mat.VecDense, loss func(float64) float64) (float64, error) {
	if err := checkInputs(op, yTrue, yPred, weights); err != nil {
		return 0, err
	}

	n := yTrue.Len()
	values := make([]float64, n)
	for i := range values {
		values[i] = loss(yPred.AtVec(i) - yTrue.AtVec(i))
	}

	var w []float64
	if weights != nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = weights.AtVec(i)
		}
	}
	return stat.Mean(values, w), nil
}

func vecLen(v *mat.VecDense) int {
	if v == nil || v.IsEmpty() {
		return 0
	}
	return v.Len()
}
