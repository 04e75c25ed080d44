// Package optim implements optimization algorithms for training scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - GradNorm: gradient norm for progress reporting
//
// Optimizers hold the trainable leaves returned by a module's Parameters and
// read the gradient stored on each leaf by Backward.
//
// Example usage:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(mlp, data)
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	}
package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates every parameter in place from its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call it before each backward pass; Backward accumulates into leaves.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func grads(params []*autodiff.Value) []float64 {
	g := make([]float64, len(params))
	for i, p := range params {
		g[i] = p.Grad()
	}
	return g
}

// GradNorm returns the L2 norm of the gradients of params.
func GradNorm(params []*autodiff.Value) float64 {
	return floats.Norm(grads(params), 2)
}

func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
