package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
//
// A Value holds its data, the gradient accumulated by the backward pass,
// the operands it was derived from and the rule used to push its gradient
// back onto them. Edges only point from a node to its operands; a node
// never knows which nodes consume it.
//
// Nodes are compared by identity: two Values with equal data are distinct
// graph entries.
type Value struct {
	data     float64
	grad     float64
	operands []*Value // 0, 1 or 2 entries, in operand order
	op       ops.Op
	label    string
}

// NewValue creates a leaf node (an input, a constant or a trainable parameter).
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// Values creates one leaf node per element of xs.
func Values(xs ...float64) []*Value {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		out[i] = NewValue(x)
	}
	return out
}

// derive allocates a node produced by op from its operands.
// No gradient is computed here.
func derive(op ops.Op, operands ...*Value) *Value {
	var a, b float64
	a = operands[0].data
	if len(operands) > 1 {
		b = operands[1].data
	}
	return &Value{
		data:     op.Forward(a, b),
		operands: operands,
		op:       op,
	}
}

// Data returns the node's scalar value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the node's value.
//
// Only meant for trainable leaves between training steps; derived nodes
// already computed from the old value are not updated.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the accumulated gradient.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the rule this node was produced by (Kind Leaf for leaves).
func (v *Value) Op() ops.Op {
	return v.op
}

// Operands returns a copy of the node's operands.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// IsLeaf reports whether the node has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// Label returns the debug label, if any.
func (v *Value) Label() string {
	return v.label
}

// WithLabel sets a debug label and returns v for chaining.
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g, op=%s)", v.label, v.data, v.grad, v.op)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.data, v.grad, v.op)
}
