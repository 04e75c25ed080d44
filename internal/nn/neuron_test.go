package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/random"
)

// TestNeuron_Init tests that weights are drawn before the bias.
func TestNeuron_Init(t *testing.T) {
	init := &sequence{values: []int{100, 200, 300, -400}}
	n, err := nn.NewNeuron(3, nn.WithInitializer(init))
	require.NoError(t, err)

	w := n.Weights()
	require.Len(t, w, 3)
	assert.Equal(t, 0.1, w[0].Data())
	assert.Equal(t, 0.2, w[1].Data())
	assert.Equal(t, 0.3, w[2].Data())
	assert.Equal(t, -0.4, n.Bias().Data())

	assert.Equal(t, 3, n.NumInputs())
	assert.True(t, n.NonLinear())
	assert.Equal(t, nn.Tanh, n.Activation())
}

// TestNeuron_Call tests the weighted sum and activation.
func TestNeuron_Call(t *testing.T) {
	init := &sequence{values: []int{500, -250, 100}}

	linear, err := nn.NewNeuron(2, nn.WithInitializer(init), nn.WithNonLinear(false))
	require.NoError(t, err)

	// 0.1 + 0.5*2 + (-0.25)*4 = 0.1
	out, err := linear.CallFloats([]float64{2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, out.Data(), 1e-12)

	init.next = 0
	tanh, err := nn.NewNeuron(2, nn.WithInitializer(init))
	require.NoError(t, err)
	out, err = tanh.CallFloats([]float64{2, 4})
	require.NoError(t, err)
	assert.InDelta(t, math.Tanh(0.1), out.Data(), 1e-12)

	init.next = 0
	relu, err := nn.NewNeuron(2, nn.WithInitializer(init), nn.WithActivation(nn.ReLU))
	require.NoError(t, err)
	out, err = relu.CallFloats([]float64{-2, 4})
	require.NoError(t, err)
	assert.Zero(t, out.Data())
}

// TestNeuron_Backward tests gradients reaching weights, bias and inputs.
func TestNeuron_Backward(t *testing.T) {
	init := &sequence{values: []int{500, -250, 100}}
	n, err := nn.NewNeuron(2, nn.WithInitializer(init), nn.WithNonLinear(false))
	require.NoError(t, err)

	x := autodiff.Values(2, 4)
	out, err := n.Call(x)
	require.NoError(t, err)
	require.NoError(t, out.Backward())

	w := n.Weights()
	assert.InDelta(t, 2.0, w[0].Grad(), 1e-12)
	assert.InDelta(t, 4.0, w[1].Grad(), 1e-12)
	assert.InDelta(t, 1.0, n.Bias().Grad(), 1e-12)
	assert.InDelta(t, 0.5, x[0].Grad(), 1e-12)
	assert.InDelta(t, -0.25, x[1].Grad(), 1e-12)
}

// TestNeuron_Errors tests construction and call validation.
func TestNeuron_Errors(t *testing.T) {
	_, err := nn.NewNeuron(0)
	require.ErrorIs(t, err, nn.ErrInvalidDimension)

	n, err := nn.NewNeuron(3)
	require.NoError(t, err)

	_, err = n.CallFloats([]float64{1, 2})
	require.ErrorIs(t, err, nn.ErrDimensionMismatch)

	_, err = n.Call([]*autodiff.Value{autodiff.NewValue(1), nil, autodiff.NewValue(2)})
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

// TestNeuron_Parameters tests parameter order and names.
func TestNeuron_Parameters(t *testing.T) {
	n, err := nn.NewNeuron(2)
	require.NoError(t, err)

	params := n.Parameters()
	require.Len(t, params, 3)
	w := n.Weights()
	assert.Same(t, w[0], params[0])
	assert.Same(t, w[1], params[1])
	assert.Same(t, n.Bias(), params[2])

	var names []string
	for _, p := range n.NamedParameters() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"weight.0", "weight.1", "bias"}, names)
}

// TestNeuron_Deterministic tests that equal seeds build equal neurons.
func TestNeuron_Deterministic(t *testing.T) {
	a, err := nn.NewNeuron(4, nn.WithInitializer(random.New(3)))
	require.NoError(t, err)
	b, err := nn.NewNeuron(4, nn.WithInitializer(random.New(3)))
	require.NoError(t, err)

	pa, pb := a.Parameters(), b.Parameters()
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
		assert.NotSame(t, pa[i], pb[i])
	}
}
