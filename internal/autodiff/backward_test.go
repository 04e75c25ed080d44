package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// TestBackward_Diamond tests that a node consumed twice collects both paths.
func TestBackward_Diamond(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)
	c := a.Mul(b)
	d := c.Add(a)

	require.NoError(t, d.Backward())

	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad())
}

// TestBackward_SameOperandTwice tests x + x and x * x.
func TestBackward_SameOperandTwice(t *testing.T) {
	x := NewValue(3)
	z := x.Add(x)
	require.NoError(t, z.Backward())
	assert.Equal(t, 2.0, x.Grad())

	y := NewValue(3)
	w := y.Mul(y)
	require.NoError(t, w.Backward())
	assert.Equal(t, 6.0, y.Grad())
}

// TestBackward_Leaf tests that Backward on a leaf only seeds its gradient.
func TestBackward_Leaf(t *testing.T) {
	x := NewValue(5)
	require.NoError(t, x.Backward())
	assert.Equal(t, 1.0, x.Grad())
}

// TestBackward_Accumulates tests that a second pass adds onto leaf gradients.
func TestBackward_Accumulates(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)
	d := a.Mul(b).Add(a)

	require.NoError(t, d.Backward())
	require.NoError(t, d.Backward())

	assert.Equal(t, 8.0, a.Grad())
	assert.Equal(t, 4.0, b.Grad())
	// Derived gradients describe the latest pass only.
	assert.Equal(t, 1.0, d.Grad())
}

// TestBackward_SharedSubgraph tests accumulation across two roots sharing a node.
func TestBackward_SharedSubgraph(t *testing.T) {
	x := NewValue(2)
	h := x.Mul(x) // dh/dx = 4
	l1 := h.MulScalar(3)
	l2 := h.AddScalar(1)

	require.NoError(t, l1.Backward())
	require.NoError(t, l2.Backward())

	// 3*4 from l1 plus 1*4 from l2.
	assert.Equal(t, 16.0, x.Grad())
}

// TestBackward_ZeroGradBetweenSteps tests the caller contract.
func TestBackward_ZeroGradBetweenSteps(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)
	d := a.Mul(b)

	require.NoError(t, d.Backward())
	require.NoError(t, ZeroGradGraph(d))
	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
	assert.Zero(t, d.Grad())

	require.NoError(t, d.Backward())
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

// TestTopologicalOrder tests that every node follows its operands.
func TestTopologicalOrder(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)
	c := a.Mul(b)
	d := c.Add(a)
	e := d.Mul(c).Tanh()

	topo, err := TopologicalOrder(e)
	require.NoError(t, err)
	require.Len(t, topo, 6)
	assert.Same(t, e, topo[len(topo)-1])

	pos := make(map[*Value]int, len(topo))
	for i, v := range topo {
		_, dup := pos[v]
		require.False(t, dup, "node %v listed twice", v)
		pos[v] = i
	}
	for _, v := range topo {
		for _, operand := range v.operands {
			assert.Less(t, pos[operand], pos[v], "%v must come after %v", v, operand)
		}
	}
}

// TestTopologicalOrder_Nil tests the nil root guard.
func TestTopologicalOrder_Nil(t *testing.T) {
	_, err := TopologicalOrder(nil)
	require.ErrorIs(t, err, ErrInvalidOperand)
}

// TestBackward_Cycle tests that a corrupted graph is rejected instead of looping.
func TestBackward_Cycle(t *testing.T) {
	a := NewValue(1)
	b := a.AddScalar(1)
	c := b.MulScalar(2)
	// Rewire a to depend on c: a -> c -> b -> a.
	a.operands = []*Value{c}
	a.op = ops.NewReLUOp()

	err := c.Backward()
	require.ErrorIs(t, err, ErrGraphCycle)

	err = ZeroGradGraph(c)
	require.ErrorIs(t, err, ErrGraphCycle)
}

// TestBackward_SelfLoop tests a node listed as its own operand.
func TestBackward_SelfLoop(t *testing.T) {
	a := NewValue(1)
	b := a.Tanh()
	b.operands = []*Value{b}

	require.ErrorIs(t, b.Backward(), ErrGraphCycle)
}

// TestBackward_DeepChain tests a long chain does not overflow and gives the
// right gradient: y = x + 1 + 1 + ... has dy/dx = 1.
func TestBackward_DeepChain(t *testing.T) {
	x := NewValue(0)
	y := x
	for i := 0; i < 100000; i++ {
		y = y.AddScalar(1)
	}

	require.NoError(t, y.Backward())
	assert.Equal(t, 100000.0, y.Data())
	assert.Equal(t, 1.0, x.Grad())
}

func BenchmarkBackward_Chain(b *testing.B) {
	x := NewValue(0.5)
	y := x
	for i := 0; i < 1000; i++ {
		y = y.Mul(NewValue(0.999)).Tanh()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.ZeroGrad()
		if err := y.Backward(); err != nil {
			b.Fatal(err)
		}
	}
}
