package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestApproximateHessianWithGaussianClosedForm(t *testing.T) {
	testCases := []struct {
		score, label, grad, eta float64
		want                    float64
		desc                    string
	}{
		// c = 1, x = 1: 2*exp(-0.5)/sqrt(2*pi)
		{score: 1, label: 0, grad: 1, eta: 1, want: 0.48394144903828673, desc: "unit residual"},
		{score: -1, label: 0, grad: -1, eta: 1, want: 0.48394144903828673, desc: "negative residual"},
		// c = 4, x = 0: 2*1.5/(4*sqrt(2*pi))
		{score: 2, label: 2, grad: 1.5, eta: 1, want: 3 / (4 * math.Sqrt(2*math.Pi)), desc: "zero residual"},
		// c = 0.5*(3+1) = 2, x = 2: 2*exp(-0.5)/(2*sqrt(2*pi))
		{score: 3, label: 1, grad: 1, eta: 0.5, want: math.Exp(-0.5) / math.Sqrt(2*math.Pi), desc: "eta scales width"},
	}

	for _, tc := range testCases {
		got := ApproximateHessianWithGaussian(tc.score, tc.label, tc.grad, tc.eta)
		assert.InDelta(t, tc.want, got, 1e-12, tc.desc)
	}
}

func TestApproximateHessianWithGaussianPositive(t *testing.T) {
	testCases := []struct {
		score, label float64
		desc         string
	}{
		{score: 0, label: 0, desc: "kernel width floor"},
		{score: 1e6, label: -1e6, desc: "far tail where exp underflows"},
		{score: 1e-300, label: 0, desc: "tiny magnitudes"},
		{score: 5, label: 5, desc: "exact fit"},
		{score: 1e200, label: 0, desc: "squares would overflow"},
		{score: -1e300, label: 1e300, desc: "near the float64 limit"},
	}

	for _, tc := range testCases {
		h := ApproximateHessianWithGaussian(tc.score, tc.label, 1, 1)
		assert.Greater(t, h, 0.0, tc.desc)
		assert.False(t, math.IsInf(h, 0) || math.IsNaN(h), tc.desc)
	}

	// exp(-x^2/2c^2) underflows here; the floor is proportional to |grad|
	h := ApproximateHessianWithGaussian(1e6, -1e6, 2, 1e-6)
	assert.Equal(t, 2*minCurvature, h)
}

func TestApproximateHessianWithGaussianLinearInGradient(t *testing.T) {
	base := ApproximateHessianWithGaussian(1.5, 0.25, 1, 0.8)
	for _, k := range []float64{0.5, 2, 7.25} {
		got := ApproximateHessianWithGaussian(1.5, 0.25, k, 0.8)
		assert.InDelta(t, k*base, got, 1e-12*k)
		assert.InDelta(t, got, ApproximateHessianWithGaussian(1.5, 0.25, -k, 0.8), 0)
		assert.InDelta(t, got, ApproximateHessianWithGaussianWeighted(1.5, 0.25, 1, 0.8, k), 1e-12*k)
	}
}

// The pseudo-hessian is the derivative jump spread by a normal density, so
// over the residual it integrates to the jump 2|grad| when the width is fixed.
func TestGaussianKernelIntegratesToJump(t *testing.T) {
	const label = 10.0
	const eta = 0.01
	// keep |score|+|label| close to 20 so c is nearly constant near the mode
	f := func(r float64) float64 {
		return ApproximateHessianWithGaussian(label+r, label, 1, eta)
	}
	integral := quad.Fixed(f, -2, 2, 2000, nil, 0)
	assert.InDelta(t, 2.0, integral, 2e-2)
}

func TestApproximateHessianWithGaussianPropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(ApproximateHessianWithGaussian(math.NaN(), 0, 1, 1)))
	assert.True(t, math.IsNaN(ApproximateHessianWithGaussian(math.Inf(1), 0, 1, 1)))
}
