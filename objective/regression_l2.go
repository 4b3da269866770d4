package objective

// L2Objective implements squared-error loss.
type L2Objective struct {
	regressionBase
}

// NewL2Objective creates a squared-error objective. It uses no hyperparameters
// besides the thread count.
func NewL2Objective(cfg Config) (*L2Objective, error) {
	o := &L2Objective{regressionBase: newRegressionBase(NameRegression, cfg)}
	o.logger.Debug("Objective created")
	return o, nil
}

// GetGradients computes grad = score-label and hess = 1, both times the weight.
func (o *L2Objective) GetGradients(score, gradients, hessians []float64) error {
	return o.computeGradients(score, gradients, hessians, l2Point, l2WeightedPoint)
}

// BoostFromScore returns the weighted mean of the labels.
func (o *L2Objective) BoostFromScore() (float64, error) {
	return o.weightedMean("BoostFromScore")
}

func (o *L2Objective) String() string {
	return o.name
}

func l2Point(score, label float64) (float64, float64) {
	return score - label, 1.0
}

func l2WeightedPoint(score, label, weight float64) (float64, float64) {
	return (score - label) * weight, weight
}
