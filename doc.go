// Package lightgbm provides the regression objectives of a gradient boosting
// trainer: for every training row they turn the current prediction and the
// label into the first and second derivative of the loss, which the tree
// learner then uses to grow and score leaves.
//
// # Features
//
// - Four losses: L2, L1, Huber and Fair, each with optional per-row weights
// - Gaussian-smoothed hessians for the piecewise-linear losses
// - Deterministic CPU-parallel gradient computation
// - LightGBM parameter names and aliases, from maps or YAML files
// - Structured errors and zerolog-based logging
//
// # Installation
//
//	go get github.com/Willdata/LightGBM
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/Willdata/LightGBM/objective"
//	)
//
//	func main() {
//	    obj, err := objective.NewObjectiveFromParams(map[string]interface{}{
//	        "objective":   "huber",
//	        "huber_delta": 1.5,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label := []float64{1, 2, 3}
//	    if err := obj.Init(objective.Metadata{Label: label}, len(label)); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score := []float64{1.5, 2, 5}
//	    grad := make([]float64, len(score))
//	    hess := make([]float64, len(score))
//	    if err := obj.GetGradients(score, grad, hess); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(grad, hess)
//	}
//
// # Packages
//
//   - objective: loss functions, configuration and the name-based factory
//   - core/numeric: the Gaussian hessian approximation
//   - core/parallel: range partitioning over worker goroutines
//   - pkg/errors: structured errors and warnings
//   - pkg/log: logger interface with a zerolog provider
//
// # Examples
//
// examples/boosting drives the objectives through Newton rounds of a
// piecewise-constant model. examples/objective_curves plots the derivatives
// of every loss with gonum/plot.
//
// # Performance
//
// GetGradients splits rows into contiguous ranges when there are at least
// 4096 of them; each worker writes only its own range, so results do not
// depend on the number of threads.
package lightgbm
