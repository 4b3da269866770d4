package objective

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Willdata/LightGBM/pkg/errors"
	"github.com/Willdata/LightGBM/pkg/log"
)

func (b *regressionBase) weightedMean(method string) (float64, error) {
	if !b.initialized {
		return 0, errors.NewNotInitializedError(b.name, method)
	}
	if b.numData == 0 {
		return 0, nil
	}
	score := stat.Mean(b.label, b.weights)
	b.logger.Debug("Initial score computed", log.OperationKey, log.OperationBoostFromScore, log.InitScoreKey, score)
	return score, nil
}

// weightedMedian returns the lowest label at which the cumulative weight
// reaches half of the total.
func (b *regressionBase) weightedMedian(method string) (float64, error) {
	if !b.initialized {
		return 0, errors.NewNotInitializedError(b.name, method)
	}
	if b.numData == 0 {
		return 0, nil
	}

	sorted := make([]float64, b.numData)
	copy(sorted, b.label)
	inds := make([]int, b.numData)
	floats.Argsort(sorted, inds)

	var weights []float64
	if b.weights != nil {
		weights = make([]float64, b.numData)
		for i, idx := range inds {
			weights[i] = b.weights[idx]
		}
	}

	score := stat.Quantile(0.5, stat.Empirical, sorted, weights)
	b.logger.Debug("Initial score computed", log.OperationKey, log.OperationBoostFromScore, log.InitScoreKey, score)
	return score, nil
}
