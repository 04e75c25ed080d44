// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every number taking part in a computation is wrapped in a Value. Operators
// on Values compute the forward result immediately and record the operands
// and the rule needed to differentiate through them, building a DAG as a
// side effect. Backward on the final node then walks that DAG in reverse
// topological order and accumulates gradients on every node it reaches.
//
// Architecture:
//   - Value: scalar node (data, grad, operands, rule)
//   - ops.Op: tagged backward rule, one of Add, Mul, Pow, ReLU, Tanh
//   - Neg, Sub and Div are compositions of the above and add no rules
//   - TopologicalOrder + Backward: the reverse-mode pass
//
// Usage:
//
//	a := autodiff.NewValue(2)
//	b := autodiff.NewValue(3)
//	c := a.Mul(b).Add(a) // c = a*b + a
//
//	if err := c.Backward(); err != nil {
//	    return err
//	}
//	fmt.Println(a.Grad(), b.Grad()) // 4 2
package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// mustOperands panics on nil operands. Infallible operators have no error
// return, so a nil node is a programming error.
func mustOperands(name string, operands ...*Value) {
	for i, v := range operands {
		if v == nil {
			panic(fmt.Sprintf("autodiff.%s: operand %d is nil", name, i))
		}
	}
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	mustOperands("Add", v, other)
	return derive(ops.NewAddOp(), v, other)
}

// AddScalar returns v + x, with x promoted to a constant leaf.
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(NewValue(x))
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	mustOperands("Mul", v, other)
	return derive(ops.NewMulOp(), v, other)
}

// MulScalar returns v * x, with x promoted to a constant leaf.
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(NewValue(x))
}

// Pow returns v ** exponent.
//
// The exponent is a plain number and never receives a gradient.
func (v *Value) Pow(exponent float64) *Value {
	mustOperands("Pow", v)
	return derive(ops.NewPowOp(exponent), v)
}

// PowAny is Pow for an exponent of unknown type.
//
// Any Go integer or float kind is accepted. Anything else, including a
// *Value, fails with ErrInvalidOperand: exponents are constants, not nodes.
func (v *Value) PowAny(exponent any) (*Value, error) {
	if _, isNode := exponent.(*Value); isNode {
		return nil, errors.Wrap(ErrInvalidOperand, "pow: exponent must be a number, not a node")
	}
	p, ok := toFloat(exponent)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOperand, "pow: unsupported exponent type %T", exponent)
	}
	return v.Pow(p), nil
}

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value {
	mustOperands("ReLU", v)
	return derive(ops.NewReLUOp(), v)
}

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value {
	mustOperands("Tanh", v)
	return derive(ops.NewTanhOp(), v)
}

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, computed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	mustOperands("Sub", v, other)
	return v.Add(other.Neg())
}

// SubScalar returns v - x.
func (v *Value) SubScalar(x float64) *Value {
	return v.Sub(NewValue(x))
}

// RSub returns x - v.
func (v *Value) RSub(x float64) *Value {
	return NewValue(x).Sub(v)
}

// Div returns v / other, computed as v * other**-1.
//
// Fails with ErrDivisionByZero when other's data is 0, since the reciprocal
// is undefined there.
func (v *Value) Div(other *Value) (*Value, error) {
	if v == nil || other == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "div: nil operand")
	}
	if other.data == 0 {
		return nil, errors.Wrapf(ErrDivisionByZero, "div: %g / 0", v.data)
	}
	return v.Mul(other.Pow(-1)), nil
}

// DivScalar returns v / x.
func (v *Value) DivScalar(x float64) (*Value, error) {
	return v.Div(NewValue(x))
}

// RDiv returns x / v.
func (v *Value) RDiv(x float64) (*Value, error) {
	return NewValue(x).Div(v)
}
