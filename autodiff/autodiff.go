// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every number in a computation is a *Value. Operators compute their result
// immediately and remember how to push gradients back to their operands;
// Backward on the final node fills in the gradient of every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(-4)
//	    y := x.MulScalar(2).AddScalar(2).Add(x).ReLU()
//
//	    if err := y.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Grad())
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Op identifies the operator that produced a Value.
type Op = ops.Op

// OpKind enumerates the primitive operators.
type OpKind = ops.Kind

// Primitive operators. Neg, Sub and Div are built from these.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpPow  = ops.Pow
	OpReLU = ops.ReLU
	OpTanh = ops.Tanh
)

// Errors returned by graph operations. Test with errors.Is.
var (
	ErrInvalidOperand = autodiff.ErrInvalidOperand
	ErrDivisionByZero = autodiff.ErrDivisionByZero
	ErrGraphCycle     = autodiff.ErrGraphCycle
)

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Values creates one leaf node per number.
func Values(xs ...float64) []*Value {
	return autodiff.Values(xs...)
}

// Lift converts a *Value or any Go number into a node.
func Lift(x any) (*Value, error) {
	return autodiff.Lift(x)
}

// LiftAll lifts every operand, stopping at the first failure.
func LiftAll(xs ...any) ([]*Value, error) {
	return autodiff.LiftAll(xs...)
}

// TopologicalOrder returns every node reachable from root, operands before
// the nodes computed from them.
func TopologicalOrder(root *Value) ([]*Value, error) {
	return autodiff.TopologicalOrder(root)
}

// ZeroGradGraph resets the gradient of every node reachable from root.
func ZeroGradGraph(root *Value) error {
	return autodiff.ZeroGradGraph(root)
}
