package nn

import (
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a row of numOutputs neurons, each reading the same numInputs
// inputs. Its output has one node per neuron, in neuron order.
//
// Example:
//
//	layer, err := nn.NewLayer(3, 4)
//	outs, err := layer.CallFloats([]float64{2, 3, -1}) // len(outs) == 4
type Layer struct {
	numInputs  int
	numOutputs int
	neurons    []*Neuron
}

// NewLayer creates a layer of numOutputs neurons with numInputs inputs each.
//
// Fails with ErrInvalidDimension if either width is not positive.
func NewLayer(numInputs, numOutputs int, opts ...Option) (*Layer, error) {
	return newLayer(numInputs, numOutputs, resolveOptions(opts))
}

func newLayer(numInputs, numOutputs int, o options) (*Layer, error) {
	if numInputs <= 0 {
		return nil, invalidDimension("layer", "numInputs", numInputs)
	}
	if numOutputs <= 0 {
		return nil, invalidDimension("layer", "numOutputs", numOutputs)
	}

	neurons := make([]*Neuron, numOutputs)
	for i := range neurons {
		n, err := newNeuron(numInputs, o)
		if err != nil {
			return nil, err
		}
		neurons[i] = n
	}

	return &Layer{
		numInputs:  numInputs,
		numOutputs: numOutputs,
		neurons:    neurons,
	}, nil
}

// Call applies every neuron to inputs.
//
// len(inputs) must equal NumInputs, otherwise a *DimensionError is returned.
func (l *Layer) Call(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(inputs) != l.numInputs {
		return nil, &DimensionError{Module: "layer", Want: l.numInputs, Got: len(inputs)}
	}

	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Call(inputs)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, nil
}

// CallFloats promotes inputs to constant leaves and calls the layer.
func (l *Layer) CallFloats(inputs []float64) ([]*autodiff.Value, error) {
	return l.Call(autodiff.Values(inputs...))
}

// NumInputs returns the input width.
func (l *Layer) NumInputs() int {
	return l.numInputs
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return l.numOutputs
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	out := make([]*Neuron, len(l.neurons))
	copy(out, l.neurons)
	return out
}

// Parameters returns the parameters of every neuron, in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// NamedParameters returns neurons.<i>.<name> for every neuron parameter.
func (l *Layer) NamedParameters() []Parameter {
	var params []Parameter
	for i, n := range l.neurons {
		params = append(params, prefixed("neurons."+strconv.Itoa(i)+".", n.NamedParameters())...)
	}
	return params
}

// ZeroGrad resets every parameter gradient.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
