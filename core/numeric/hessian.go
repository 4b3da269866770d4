// Package numeric holds numerical helpers shared by the objectives.
package numeric

import (
	"math"
)

const (
	// minKernelWidth keeps the Gaussian width away from zero when both the
	// score and the label are zero.
	minKernelWidth = 1e-10

	// minCurvature is the smallest hessian returned per unit of |grad|, so the
	// result stays positive where exp underflows.
	minCurvature = 1e-15
)

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// ApproximateHessianWithGaussian returns a positive pseudo-hessian for a loss
// whose first derivative jumps from -|grad| to +|grad| at score == label.
//
// The jump 2|grad| is spread by a Gaussian of width
// c = max((|score|+|label|)*eta, 1e-10) and evaluated at the residual:
//
//	h = 2|grad| * exp(-(score-label)^2 / (2c^2)) / (c*sqrt(2*pi))
//
// The result is linear in |grad|, so a gradient that already carries a sample
// weight yields a hessian carrying the same weight. NaN or Inf inputs
// produce NaN or Inf.
func ApproximateHessianWithGaussian(score, label, grad, eta float64) float64 {
	x := math.Abs(score - label)
	c := math.Max((math.Abs(score)+math.Abs(label))*eta, minKernelWidth)
	a := 2 * math.Abs(grad)
	// x/c first: x*x and c*c overflow for magnitudes above ~1e154
	r := x / c
	h := a * math.Exp(-0.5*r*r) / (c * sqrt2Pi)
	return math.Max(h, math.Abs(grad)*minCurvature)
}

// ApproximateHessianWithGaussianWeighted is ApproximateHessianWithGaussian for
// an unweighted grad, scaled by weight.
func ApproximateHessianWithGaussianWeighted(score, label, grad, eta, weight float64) float64 {
	return weight * ApproximateHessianWithGaussian(score, label, grad, eta)
}
