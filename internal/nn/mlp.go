package nn

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MultilayerPerceptron chains layers so that each layer's outputs are the
// next layer's inputs.
//
// Given numInputs and widths [h1, …, hk], layer i reads sizes[i] inputs and
// produces sizes[i+1] outputs where sizes = [numInputs, h1, …, hk]. The
// chaining is fixed at construction and not re-checked on Call.
//
// Example:
//
//	mlp, err := nn.NewMultilayerPerceptron(3, []int{4, 4, 1})
//	outs, err := mlp.CallFloats([]float64{2, 3, -1}) // len(outs) == 1
type MultilayerPerceptron struct {
	sizes  []int
	layers []*Layer
}

// NewMultilayerPerceptron creates the layers for numInputs inputs and the
// given layer widths.
//
// All layers share one initializer, so weights are drawn layer by layer,
// neuron by neuron. With WithLinearOutput the last layer skips its
// activation.
//
// Fails with ErrInvalidDimension if numInputs or any width is not positive,
// or if widths is empty.
func NewMultilayerPerceptron(numInputs int, widths []int, opts ...Option) (*MultilayerPerceptron, error) {
	if numInputs <= 0 {
		return nil, invalidDimension("mlp", "numInputs", numInputs)
	}
	if len(widths) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "mlp: at least one layer width is required")
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, invalidDimension("mlp", "width of layer "+strconv.Itoa(i), w)
		}
	}

	o := resolveOptions(opts)
	sizes := append([]int{numInputs}, widths...)
	layers := make([]*Layer, len(widths))
	for i := range layers {
		lo := o
		if o.linearOutput && i == len(layers)-1 {
			lo.nonLinear = false
		}
		layer, err := newLayer(sizes[i], sizes[i+1], lo)
		if err != nil {
			return nil, errors.WithMessagef(err, "mlp: layer %d", i)
		}
		layers[i] = layer
	}

	return &MultilayerPerceptron{
		sizes:  sizes,
		layers: layers,
	}, nil
}

// Call feeds inputs through every layer in order and returns the outputs
// of the last layer.
//
// len(inputs) must equal NumInputs, otherwise a *DimensionError is returned.
func (m *MultilayerPerceptron) Call(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(inputs) != m.NumInputs() {
		return nil, &DimensionError{Module: "mlp", Want: m.NumInputs(), Got: len(inputs)}
	}

	out := inputs
	for i, layer := range m.layers {
		next, err := layer.Call(out)
		if err != nil {
			return nil, errors.WithMessagef(err, "mlp: layer %d", i)
		}
		out = next
	}
	return out, nil
}

// CallFloats promotes inputs to constant leaves and calls the network.
func (m *MultilayerPerceptron) CallFloats(inputs []float64) ([]*autodiff.Value, error) {
	return m.Call(autodiff.Values(inputs...))
}

// NumInputs returns the input width.
func (m *MultilayerPerceptron) NumInputs() int {
	return m.sizes[0]
}

// NumOutputs returns the width of the last layer.
func (m *MultilayerPerceptron) NumOutputs() int {
	return m.sizes[len(m.sizes)-1]
}

// Sizes returns [numInputs, h1, …, hk].
func (m *MultilayerPerceptron) Sizes() []int {
	out := make([]int, len(m.sizes))
	copy(out, m.sizes)
	return out
}

// Layers returns the network's layers in order.
func (m *MultilayerPerceptron) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Parameters returns the parameters of every layer, in layer order.
func (m *MultilayerPerceptron) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NamedParameters returns layers.<i>.<name> for every layer parameter.
func (m *MultilayerPerceptron) NamedParameters() []Parameter {
	var params []Parameter
	for i, l := range m.layers {
		params = append(params, prefixed("layers."+strconv.Itoa(i)+".", l.NamedParameters())...)
	}
	return params
}

// ZeroGrad resets every parameter gradient.
func (m *MultilayerPerceptron) ZeroGrad() {
	zeroGrad(m.Parameters())
}
