// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules built from scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Modules: Neuron, Layer, MultilayerPerceptron
//   - Activations: Tanh (default), ReLU
//   - Loss functions: SumSquaredError, MSE
//   - Utilities: Module interface, Parameter, construction options
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    mlp, _ := nn.NewMultilayerPerceptron(3, []int{4, 4, 1}, nn.WithInitializer(nn.NewRandom(42)))
//	    optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.03})
//
//	    for range 600 {
//	        optimizer.ZeroGrad()
//	        out, _ := mlp.CallFloats([]float64{2, 3, -1})
//	        loss, _ := nn.SumSquaredError(out, autodiff.Values(1))
//	        _ = loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Initialization
//
// Weights and biases are drawn from an Initializer as RandomInt(-r, r)/r
// with r = InitResolution. Without WithInitializer every constructor uses a
// generator seeded with 42, so default networks are reproducible.
//
// # Activations
//
// Tanh is applied on every layer by default, including the output layer.
// ReLU outputs are never negative; combine it with WithLinearOutput when
// targets can be negative.
package nn
