// Package objective computes per-sample gradients and hessians of regression
// losses for a gradient-boosting trainer.
//
// An objective is created once per training run from a Config, bound to the
// dataset's labels and optional weights with Init, and then asked on every
// boosting iteration for the derivatives at the current scores:
//
//	obj, err := objective.CreateObjectiveFunction("huber", objective.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := obj.Init(objective.Metadata{Label: y, Weights: w}, len(y)); err != nil {
//	    return err
//	}
//	for iter := 0; iter < numIterations; iter++ {
//	    if err := obj.GetGradients(scores, gradients, hessians); err != nil {
//	        return err
//	    }
//	    // grow a tree from gradients/hessians, update scores
//	}
//
// # Losses
//
// With diff = score - label and w the sample weight (1 when no weights are bound):
//
//	regression     grad = diff*w                 hess = w
//	regression_l1  grad = sign(diff)*w           hess = Gaussian approximation
//	huber          |diff| <= delta: as regression
//	               otherwise grad = sign(diff)*delta*w, hess = Gaussian approximation
//	fair           grad = c*diff/(|diff|+c)*w    hess = c^2/(|diff|+c)^2*w
//
// sign(0) is +1. The Gaussian approximation is numeric.ApproximateHessianWithGaussian;
// it keeps the hessian of the non-smooth losses strictly positive.
//
// # Concurrency
//
// GetGradients splits the rows into contiguous ranges processed by separate
// goroutines. Each goroutine writes only its own output slots. After Init an
// objective is read-only, so concurrent GetGradients calls on different
// output buffers are safe; Init must not run concurrently with them.
//
// NaN or Inf in scores propagate into the outputs; guarding against them is
// the caller's job.
package objective
