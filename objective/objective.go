package objective

import (
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/Willdata/LightGBM/core/parallel"
	"github.com/Willdata/LightGBM/pkg/errors"
	"github.com/Willdata/LightGBM/pkg/log"
)

// parallelThreshold is the row count up to which GetGradients runs inline.
const parallelThreshold = 4096

// ObjectiveFunction is the contract between a loss and the tree learner.
type ObjectiveFunction interface {
	// Init binds the objective to numData rows of labels and optional weights.
	// The slices are kept by reference and never modified.
	Init(metadata Metadata, numData int) error

	// GetGradients overwrites gradients[i] and hessians[i] for every row from
	// score[i] and the bound label/weight. All three slices must have the
	// length given to Init.
	GetGradients(score, gradients, hessians []float64) error

	// BoostFromScore returns the constant prediction to start boosting from.
	BoostFromScore() (float64, error)

	// Name returns the stable identifier of the loss.
	Name() string

	// String returns the name followed by the hyperparameters in use.
	String() string
}

// Metadata is the read-only view of a dataset an objective is bound to.
// Weights may be nil, meaning every row has weight 1.
type Metadata struct {
	Label   []float64
	Weights []float64
}

// NewMetadataFromMatrix builds Metadata from a single-column label matrix and
// an optional weight vector. Values are copied. A nil weights argument, typed
// or untyped, means uniform weights.
func NewMetadataFromMatrix(y mat.Matrix, weights mat.Vector) (Metadata, error) {
	if isNil(y) {
		return Metadata{}, errors.NewConfigurationError("label", "must not be nil", nil)
	}
	if isNil(weights) {
		weights = nil
	}
	rows, cols := y.Dims()
	if cols != 1 {
		return Metadata{}, errors.NewDimensionMismatchError("NewMetadataFromMatrix", "label columns", 1, cols)
	}

	md := Metadata{Label: mat.Col(nil, 0, y)}
	if weights != nil {
		if weights.Len() != rows {
			return Metadata{}, errors.NewDimensionMismatchError("NewMetadataFromMatrix", "weights", rows, weights.Len())
		}
		md.Weights = mat.Col(nil, 0, weights)
	}
	return md, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// pointFunc computes the gradient and hessian of one unweighted row.
type pointFunc func(score, label float64) (grad, hess float64)

// weightedPointFunc computes the gradient and hessian of one weighted row.
type weightedPointFunc func(score, label, weight float64) (grad, hess float64)

// regressionBase holds the dataset binding shared by every loss.
type regressionBase struct {
	name       string
	numThreads int

	initialized bool
	numData     int
	label       []float64
	weights     []float64

	logger log.Logger
}

func newRegressionBase(name string, cfg Config) regressionBase {
	return regressionBase{
		name:       name,
		numThreads: cfg.NumThreads,
		logger:     log.GetLoggerWithName("objective").With(log.ObjectiveNameKey, name),
	}
}

// Name returns the stable identifier of the loss.
func (b *regressionBase) Name() string {
	return b.name
}

// SetLogger replaces the logger used for lifecycle records.
func (b *regressionBase) SetLogger(logger log.Logger) {
	b.logger = logger.With(log.ObjectiveNameKey, b.name)
}

// Init binds the objective to numData rows. A later call replaces the binding.
func (b *regressionBase) Init(metadata Metadata, numData int) error {
	if numData < 0 {
		return errors.NewConfigurationError("num_data", "must be non-negative", numData)
	}
	if len(metadata.Label) != numData {
		return errors.NewDimensionMismatchError("Init", "label", numData, len(metadata.Label))
	}
	if metadata.Weights != nil && len(metadata.Weights) != numData {
		return errors.NewDimensionMismatchError("Init", "weights", numData, len(metadata.Weights))
	}

	b.numData = numData
	b.label = metadata.Label
	b.weights = metadata.Weights
	b.initialized = true

	b.logger.Info("Objective initialized",
		log.OperationKey, log.OperationInit,
		log.SamplesKey, numData,
		log.WeightedKey, metadata.Weights != nil,
		log.ThreadsKey, parallel.Workers(b.numThreads),
	)
	return nil
}

// checkGradientBuffers validates the call before anything is written.
func (b *regressionBase) checkGradientBuffers(score, gradients, hessians []float64) error {
	if !b.initialized {
		return errors.NewNotInitializedError(b.name, "GetGradients")
	}
	if len(score) != b.numData {
		return errors.NewDimensionMismatchError("GetGradients", "score", b.numData, len(score))
	}
	if len(gradients) != b.numData {
		return errors.NewDimensionMismatchError("GetGradients", "gradients", b.numData, len(gradients))
	}
	if len(hessians) != b.numData {
		return errors.NewDimensionMismatchError("GetGradients", "hessians", b.numData, len(hessians))
	}
	return nil
}

// computeGradients runs point (or weighted when weights are bound) over
// every row, split across workers.
func (b *regressionBase) computeGradients(score, gradients, hessians []float64, point pointFunc, weighted weightedPointFunc) error {
	if err := b.checkGradientBuffers(score, gradients, hessians); err != nil {
		return err
	}

	label := b.label
	if b.weights == nil {
		parallel.ParallelizeWithThreshold(b.numData, parallelThreshold, b.numThreads, func(start, end int) {
			for i := start; i < end; i++ {
				gradients[i], hessians[i] = point(score[i], label[i])
			}
		})
		return nil
	}

	weights := b.weights
	parallel.ParallelizeWithThreshold(b.numData, parallelThreshold, b.numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			gradients[i], hessians[i] = weighted(score[i], label[i], weights[i])
		}
	})
	return nil
}
