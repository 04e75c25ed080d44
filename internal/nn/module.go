// Package nn implements neural network modules on top of scalar autodiff.
//
// This package provides:
//   - Module interface: parameters and gradient reset for every component
//   - Neuron: weighted sum plus bias, optionally followed by an activation
//   - Layer: a row of neurons sharing the same inputs
//   - MultilayerPerceptron: layers chained so each feeds the next
//   - Loss helpers composed from autodiff operators
//
// A module's state is exactly its parameters. Nodes created while calling a
// module belong to the caller's graph and are never retained.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns every trainable leaf the module owns, flattened in
	// a deterministic order: neuron-major, weights before bias, layer order
	// preserved.
	Parameters() []*autodiff.Value

	// NamedParameters returns the same leaves in the same order with their
	// dotted names.
	NamedParameters() []Parameter

	// ZeroGrad resets the gradient of every parameter to 0.
	//
	// Call it before each backward pass of a new training step; Backward
	// otherwise accumulates into parameter gradients.
	ZeroGrad()
}

func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
