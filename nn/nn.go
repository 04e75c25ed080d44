// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/random"
)

// Module is the common interface of Neuron, Layer and MultilayerPerceptron.
type Module = nn.Module

// Parameter is a trainable leaf with its dotted name.
type Parameter = nn.Parameter

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// Modules

// Neuron computes an activation of bias + Σ w[i]*x[i].
type Neuron = nn.Neuron

// NewNeuron creates a neuron with numInputs weights.
//
// Example:
//
//	n, err := nn.NewNeuron(3, nn.WithActivation(nn.ReLU))
func NewNeuron(numInputs int, opts ...Option) (*Neuron, error) {
	return nn.NewNeuron(numInputs, opts...)
}

// Layer is a row of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of numOutputs neurons.
//
// Example:
//
//	layer, err := nn.NewLayer(3, 4)
func NewLayer(numInputs, numOutputs int, opts ...Option) (*Layer, error) {
	return nn.NewLayer(numInputs, numOutputs, opts...)
}

// MultilayerPerceptron chains layers of the given widths.
type MultilayerPerceptron = nn.MultilayerPerceptron

// NewMultilayerPerceptron creates a network with numInputs inputs.
//
// Example:
//
//	mlp, err := nn.NewMultilayerPerceptron(3, []int{4, 4, 1})
func NewMultilayerPerceptron(numInputs int, widths []int, opts ...Option) (*MultilayerPerceptron, error) {
	return nn.NewMultilayerPerceptron(numInputs, widths, opts...)
}

// Activations

// Activation selects a neuron non-linearity.
type Activation = nn.Activation

// Supported activations.
const (
	Tanh = nn.Tanh
	ReLU = nn.ReLU
)

// ParseActivation maps "tanh" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Construction options

// Option configures module construction.
type Option = nn.Option

// Initializer supplies random integers for initial weights.
type Initializer = nn.Initializer

// InitResolution is the number of initializer steps per unit.
const InitResolution = nn.InitResolution

// NewRandom returns a seeded Initializer.
func NewRandom(seed uint64) Initializer {
	return random.New(seed)
}

// WithInitializer sets the source of initial weights.
func WithInitializer(init Initializer) Option {
	return nn.WithInitializer(init)
}

// WithActivation selects the activation.
func WithActivation(act Activation) Option {
	return nn.WithActivation(act)
}

// WithNonLinear sets whether the activation is applied.
func WithNonLinear(nonLinear bool) Option {
	return nn.WithNonLinear(nonLinear)
}

// WithLinearOutput makes the last MLP layer linear.
func WithLinearOutput() Option {
	return nn.WithLinearOutput()
}

// Losses

// SumSquaredError returns Σ (target - pred)².
func SumSquaredError(preds, targets []*autodiff.Value) (*autodiff.Value, error) {
	return nn.SumSquaredError(preds, targets)
}

// MSE returns the mean squared error.
func MSE(preds, targets []*autodiff.Value) (*autodiff.Value, error) {
	return nn.MSE(preds, targets)
}

// Errors

// DimensionError reports an input of the wrong length.
type DimensionError = nn.DimensionError

var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrInvalidDimension  = nn.ErrInvalidDimension
)
