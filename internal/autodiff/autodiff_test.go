package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

const eps = 1e-12

// TestValue_Leaf tests leaf construction and accessors.
func TestValue_Leaf(t *testing.T) {
	v := autodiff.NewValue(1.5)

	assert.Equal(t, 1.5, v.Data())
	assert.Zero(t, v.Grad())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Operands())
	assert.Equal(t, ops.Leaf, v.Op().Kind)

	v.SetData(-2)
	assert.Equal(t, -2.0, v.Data())
}

// TestValue_Identity tests that equal data does not make nodes equal.
func TestValue_Identity(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(1)
	assert.NotSame(t, a, b)

	c := a.Add(b)
	operands := c.Operands()
	require.Len(t, operands, 2)
	assert.Same(t, a, operands[0])
	assert.Same(t, b, operands[1])
}

// TestValue_String tests formatting with and without a label.
func TestValue_String(t *testing.T) {
	v := autodiff.NewValue(2)
	assert.Equal(t, "Value(data=2, grad=0, op=)", v.String())

	w := v.Pow(3).WithLabel("w")
	assert.Equal(t, "w", w.Label())
	assert.Equal(t, "Value(w, data=8, grad=0, op=**3)", w.String())
}

// TestOperators_Forward tests the forward value of every operator.
func TestOperators_Forward(t *testing.T) {
	two := func() *autodiff.Value { return autodiff.NewValue(2) }
	three := func() *autodiff.Value { return autodiff.NewValue(3) }

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"add", autodiff.NewValue(1).Add(autodiff.NewValue(2)).Data(), 3},
		{"mul", two().Mul(three()).Data(), 6},
		{"pow", two().Pow(3).Data(), 8},
		{"relu negative", autodiff.NewValue(-2).ReLU().Data(), 0},
		{"relu positive", two().ReLU().Data(), 2},
		{"tanh", two().Tanh().Data(), math.Tanh(2)},
		{"neg", two().Neg().Data(), -2},
		{"sub", two().Sub(three()).Data(), -1},
		{"add scalar", two().AddScalar(0.5).Data(), 2.5},
		{"mul scalar", two().MulScalar(-4).Data(), -8},
		{"sub scalar", two().SubScalar(5).Data(), -3},
		{"rsub", two().RSub(5).Data(), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, eps)
		})
	}
}

// TestAdd_Backward tests gradients of addition.
func TestAdd_Backward(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	c := a.Add(b)
	require.NoError(t, c.Backward())

	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad())
}

// TestMul_Backward tests gradients of multiplication.
func TestMul_Backward(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c := a.Mul(b)
	require.NoError(t, c.Backward())

	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

// TestPow_Backward tests gradients of exponentiation.
func TestPow_Backward(t *testing.T) {
	a := autodiff.NewValue(2)
	b := a.Pow(3)
	require.NoError(t, b.Backward())

	assert.Equal(t, 12.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestReLU_Backward tests that ReLU blocks gradient for negative inputs.
func TestReLU_Backward(t *testing.T) {
	a := autodiff.NewValue(-2)
	b := a.ReLU()
	require.NoError(t, b.Backward())
	assert.Zero(t, a.Grad())

	c := autodiff.NewValue(2)
	d := c.ReLU()
	require.NoError(t, d.Backward())
	assert.Equal(t, 1.0, c.Grad())
}

// TestTanh_Backward tests d(tanh(x))/dx = 1 - tanh²(x).
func TestTanh_Backward(t *testing.T) {
	a := autodiff.NewValue(0.5)
	b := a.Tanh()
	require.NoError(t, b.Backward())

	want := 1 - math.Tanh(0.5)*math.Tanh(0.5)
	assert.InDelta(t, want, a.Grad(), eps)
}

// TestNeg_Backward tests gradients of negation.
func TestNeg_Backward(t *testing.T) {
	a := autodiff.NewValue(2)
	b := a.Neg()
	require.NoError(t, b.Backward())

	assert.Equal(t, -2.0, b.Data())
	assert.Equal(t, -1.0, a.Grad())
}

// TestSub_Backward tests gradients of subtraction.
func TestSub_Backward(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c := a.Sub(b)
	require.NoError(t, c.Backward())

	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

// TestDiv tests forward and backward of true division.
func TestDiv(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c, err := a.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, c.Data(), eps)

	require.NoError(t, c.Backward())
	assert.InDelta(t, 1.0/3, a.Grad(), eps)
	assert.InDelta(t, -2.0/9, b.Grad(), eps)
}

// TestDiv_ByZero tests that a zero divisor fails at construction.
func TestDiv_ByZero(t *testing.T) {
	a := autodiff.NewValue(2)

	_, err := a.Div(autodiff.NewValue(0))
	require.ErrorIs(t, err, autodiff.ErrDivisionByZero)

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, autodiff.ErrDivisionByZero)

	_, err = autodiff.NewValue(0).RDiv(1)
	require.ErrorIs(t, err, autodiff.ErrDivisionByZero)

	_, err = a.Div(nil)
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

// TestDivScalar tests the scalar division forms.
func TestDivScalar(t *testing.T) {
	a := autodiff.NewValue(3)

	c, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c.Data(), eps)

	d, err := a.RDiv(6)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d.Data(), eps)

	require.NoError(t, d.Backward())
	// d(6/a)/da = -6/a² = -2/3
	assert.InDelta(t, -2.0/3, a.Grad(), eps)
}

// TestPowAny tests exponent validation.
func TestPowAny(t *testing.T) {
	a := autodiff.NewValue(2)

	for _, p := range []any{3, int64(3), float32(3), 3.0, uint8(3)} {
		b, err := a.PowAny(p)
		require.NoError(t, err, "exponent %T", p)
		assert.InDelta(t, 8.0, b.Data(), eps)
	}

	_, err := a.PowAny(autodiff.NewValue(3))
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)

	_, err = a.PowAny("3")
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)

	_, err = a.PowAny(nil)
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

// TestLift tests promotion of raw numbers to leaves.
func TestLift(t *testing.T) {
	v, err := autodiff.Lift(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Data())
	assert.True(t, v.IsLeaf())

	node := autodiff.NewValue(1)
	same, err := autodiff.Lift(node)
	require.NoError(t, err)
	assert.Same(t, node, same)

	_, err = autodiff.Lift("x")
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)

	var nilNode *autodiff.Value
	_, err = autodiff.Lift(nilNode)
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)

	all, err := autodiff.LiftAll(1, 2.5, node)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2.5, all[1].Data())
	assert.Same(t, node, all[2])

	_, err = autodiff.LiftAll(1, []int{2})
	require.ErrorIs(t, err, autodiff.ErrInvalidOperand)
}

// TestOperators_NilPanics tests that infallible operators reject nil nodes.
func TestOperators_NilPanics(t *testing.T) {
	a := autodiff.NewValue(1)
	assert.Panics(t, func() { a.Add(nil) })
	assert.Panics(t, func() { a.Mul(nil) })
	assert.Panics(t, func() { a.Sub(nil) })
}

// TestConstruction_NoGradient tests that building a graph computes no gradients.
func TestConstruction_NoGradient(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	c := a.Mul(b).Tanh().Pow(2)

	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
	assert.Zero(t, c.Grad())
}

// TestReferenceExpression checks a mixed add/mul/relu expression against
// reference values computed in double precision.
func TestReferenceExpression(t *testing.T) {
	x := autodiff.NewValue(-4)
	z := x.MulScalar(2).AddScalar(2).Add(x)
	q := z.ReLU().Add(z.Mul(x))
	h := z.Mul(z).ReLU()
	y := h.Add(q).Add(q.Mul(x))

	require.NoError(t, y.Backward())

	assert.InDelta(t, -20.0, y.Data(), 1e-9)
	assert.InDelta(t, 46.0, x.Grad(), 1e-9)
}

// TestReferenceExpression_Extended checks a longer expression mixing every
// operator against reference values.
func TestReferenceExpression_Extended(t *testing.T) {
	a := autodiff.NewValue(-4)
	b := autodiff.NewValue(2)

	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))
	c = c.Add(c.AddScalar(1))
	c = c.Add(c.AddScalar(1).Add(a.Neg()))
	d = d.Add(d.MulScalar(2).Add(b.Add(a).ReLU()))
	d = d.Add(d.MulScalar(3).Add(b.Sub(a).ReLU()))
	e := c.Sub(d)
	f := e.Pow(2)
	g, err := f.DivScalar(2)
	require.NoError(t, err)
	ten, err := f.RDiv(10)
	require.NoError(t, err)
	g = g.Add(ten)

	require.NoError(t, g.Backward())

	assert.InDelta(t, 24.70408163265306, g.Data(), 1e-9)
	assert.InDelta(t, 138.83381924198252, a.Grad(), 1e-9)
	assert.InDelta(t, 645.5772594752186, b.Grad(), 1e-9)
}
