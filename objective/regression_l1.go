package objective

import (
	"github.com/Willdata/LightGBM/core/numeric"
)

// L1Objective implements absolute-error loss. Its true hessian is zero almost
// everywhere, so the Gaussian approximation stands in for it.
type L1Objective struct {
	regressionBase
	eta float64 // width of the Gaussian used to approximate the hessian
}

// NewL1Objective creates an absolute-error objective.
func NewL1Objective(cfg Config) (*L1Objective, error) {
	if err := requirePositive(ParamGaussianEta, cfg.GaussianEta); err != nil {
		return nil, err
	}
	o := &L1Objective{
		regressionBase: newRegressionBase(NameRegressionL1, cfg),
		eta:            cfg.GaussianEta,
	}
	o.logger.Debug("Objective created", ParamGaussianEta, o.eta)
	return o, nil
}

// GetGradients computes grad = ±1 (times the weight) and the smoothed hessian.
func (o *L1Objective) GetGradients(score, gradients, hessians []float64) error {
	return o.computeGradients(score, gradients, hessians, o.point, o.weightedPoint)
}

// BoostFromScore returns the weighted median of the labels.
func (o *L1Objective) BoostFromScore() (float64, error) {
	return o.weightedMedian("BoostFromScore")
}

func (o *L1Objective) String() string {
	return o.name + " " + formatParam(ParamGaussianEta, o.eta)
}

func (o *L1Objective) point(score, label float64) (float64, float64) {
	grad := -1.0
	if score-label >= 0 {
		grad = 1.0
	}
	return grad, numeric.ApproximateHessianWithGaussian(score, label, grad, o.eta)
}

func (o *L1Objective) weightedPoint(score, label, weight float64) (float64, float64) {
	grad := -1.0
	if score-label >= 0 {
		grad = 1.0
	}
	return grad * weight, numeric.ApproximateHessianWithGaussianWeighted(score, label, grad, o.eta, weight)
}
