package nn

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes bias + Σ weight[i]*input[i] and, if non-linear, applies
// its activation to the result.
//
// Weights and bias are trainable leaves drawn from the Initializer at
// construction: all weights first, then the bias.
//
// Example:
//
//	n, err := nn.NewNeuron(3, nn.WithActivation(nn.ReLU))
//	out, err := n.CallFloats([]float64{1, 2, 3})
type Neuron struct {
	numInputs  int
	weights    []*autodiff.Value
	bias       *autodiff.Value
	nonLinear  bool
	activation Activation
}

// NewNeuron creates a neuron with numInputs weights.
//
// Defaults: non-linear, tanh activation, seeded default initializer.
// Fails with ErrInvalidDimension if numInputs is not positive.
func NewNeuron(numInputs int, opts ...Option) (*Neuron, error) {
	return newNeuron(numInputs, resolveOptions(opts))
}

func newNeuron(numInputs int, o options) (*Neuron, error) {
	if numInputs <= 0 {
		return nil, invalidDimension("neuron", "numInputs", numInputs)
	}

	weights := make([]*autodiff.Value, numInputs)
	for i := range weights {
		weights[i] = autodiff.NewValue(Uniform(o.init))
	}
	bias := autodiff.NewValue(Uniform(o.init))

	return &Neuron{
		numInputs:  numInputs,
		weights:    weights,
		bias:       bias,
		nonLinear:  o.nonLinear,
		activation: o.activation,
	}, nil
}

// Call feeds inputs through the neuron.
//
// len(inputs) must equal NumInputs, otherwise a *DimensionError is returned.
func (n *Neuron) Call(inputs []*autodiff.Value) (*autodiff.Value, error) {
	if len(inputs) != n.numInputs {
		return nil, &DimensionError{Module: "neuron", Want: n.numInputs, Got: len(inputs)}
	}

	act := n.bias
	for i, w := range n.weights {
		if inputs[i] == nil {
			return nil, errors.Wrapf(autodiff.ErrInvalidOperand, "neuron: input %d is nil", i)
		}
		act = act.Add(w.Mul(inputs[i]))
	}

	if n.nonLinear {
		return n.activation.Apply(act), nil
	}
	return act, nil
}

// CallFloats promotes inputs to constant leaves and calls the neuron.
func (n *Neuron) CallFloats(inputs []float64) (*autodiff.Value, error) {
	return n.Call(autodiff.Values(inputs...))
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return n.numInputs
}

// NonLinear reports whether the activation is applied.
func (n *Neuron) NonLinear() bool {
	return n.nonLinear
}

// Activation returns the configured activation.
func (n *Neuron) Activation() Activation {
	return n.activation
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	out := make([]*autodiff.Value, len(n.weights))
	copy(out, n.weights)
	return out
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// NamedParameters returns weight.0 … weight.N-1 followed by bias.
func (n *Neuron) NamedParameters() []Parameter {
	params := make([]Parameter, 0, len(n.weights)+1)
	for i, w := range n.weights {
		params = append(params, NewParameter("weight."+strconv.Itoa(i), w))
	}
	return append(params, NewParameter("bias", n.bias))
}

// ZeroGrad resets every parameter gradient.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
