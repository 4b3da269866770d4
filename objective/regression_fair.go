package objective

import (
	"math"
)

// FairObjective implements Fair loss, c^2*(|x|/c - log(1+|x|/c)). It is twice
// differentiable, so no smoothing is involved.
type FairObjective struct {
	regressionBase
	c float64
}

// NewFairObjective creates a Fair objective.
func NewFairObjective(cfg Config) (*FairObjective, error) {
	if err := requirePositive(ParamFairC, cfg.FairC); err != nil {
		return nil, err
	}
	o := &FairObjective{
		regressionBase: newRegressionBase(NameFair, cfg),
		c:              cfg.FairC,
	}
	o.logger.Debug("Objective created", "c", o.c)
	return o, nil
}

// GetGradients computes grad = c*x/(|x|+c) and hess = c^2/(|x|+c)^2, both
// times the weight.
func (o *FairObjective) GetGradients(score, gradients, hessians []float64) error {
	return o.computeGradients(score, gradients, hessians, o.point, o.weightedPoint)
}

// BoostFromScore returns the weighted median of the labels.
func (o *FairObjective) BoostFromScore() (float64, error) {
	return o.weightedMedian("BoostFromScore")
}

func (o *FairObjective) String() string {
	return o.name + " " + formatParam("c", o.c)
}

func (o *FairObjective) point(score, label float64) (float64, float64) {
	x := score - label
	denom := math.Abs(x) + o.c
	return o.c * x / denom, o.c * o.c / (denom * denom)
}

func (o *FairObjective) weightedPoint(score, label, weight float64) (float64, float64) {
	grad, hess := o.point(score, label)
	return grad * weight, hess * weight
}
