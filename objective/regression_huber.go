package objective

import (
	"math"

	"github.com/Willdata/LightGBM/core/numeric"
)

// HuberObjective implements Huber loss: squared error while |diff| <= delta,
// absolute error scaled by delta beyond it.
type HuberObjective struct {
	regressionBase
	delta float64
	eta   float64
}

// NewHuberObjective creates a Huber objective.
func NewHuberObjective(cfg Config) (*HuberObjective, error) {
	if err := requirePositive(ParamHuberDelta, cfg.HuberDelta); err != nil {
		return nil, err
	}
	if err := requirePositive(ParamGaussianEta, cfg.GaussianEta); err != nil {
		return nil, err
	}
	o := &HuberObjective{
		regressionBase: newRegressionBase(NameHuber, cfg),
		delta:          cfg.HuberDelta,
		eta:            cfg.GaussianEta,
	}
	o.logger.Debug("Objective created", "delta", o.delta, ParamGaussianEta, o.eta)
	return o, nil
}

// GetGradients computes the Huber derivatives. |diff| == delta belongs to the
// quadratic regime.
func (o *HuberObjective) GetGradients(score, gradients, hessians []float64) error {
	return o.computeGradients(score, gradients, hessians, o.point, o.weightedPoint)
}

// BoostFromScore returns the weighted mean of the labels.
func (o *HuberObjective) BoostFromScore() (float64, error) {
	return o.weightedMean("BoostFromScore")
}

func (o *HuberObjective) String() string {
	return o.name + " " + formatParam("delta", o.delta) + " " + formatParam(ParamGaussianEta, o.eta)
}

func (o *HuberObjective) point(score, label float64) (float64, float64) {
	diff := score - label
	if math.Abs(diff) <= o.delta {
		return diff, 1.0
	}
	grad := -o.delta
	if diff >= 0 {
		grad = o.delta
	}
	return grad, numeric.ApproximateHessianWithGaussian(score, label, grad, o.eta)
}

func (o *HuberObjective) weightedPoint(score, label, weight float64) (float64, float64) {
	diff := score - label
	if math.Abs(diff) <= o.delta {
		return diff * weight, weight
	}
	grad := -o.delta
	if diff >= 0 {
		grad = o.delta
	}
	return grad * weight, numeric.ApproximateHessianWithGaussianWeighted(score, label, grad, o.eta, weight)
}
