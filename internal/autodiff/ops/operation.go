// Package ops defines the differentiable scalar operations used by the autodiff engine.
//
// Every derived node carries an Op: a tagged variant over a small, closed set
// of rules. The backward pass dispatches on Op.Kind with a switch instead of
// calling a stored closure, so the whole rule set lives in this package:
//   - Add:  d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul:  d(a*b)/da = b, d(a*b)/db = a
//   - Pow:  d(a^p)/da = p * a^(p-1) (p is a plain number, not a node)
//   - ReLU: d(max(0,a))/da = 1 if output > 0, else 0
//   - Tanh: d(tanh(a))/da = 1 - output²
//
// Negation, subtraction and division are compositions of these rules and
// have no Kind of their own.
package ops

import "fmt"

// Kind identifies the rule a node was produced by.
type Kind uint8

// Supported kinds. Leaf marks nodes with no operands.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	ReLU
	Tanh
)

// String returns the symbol used when printing a node.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return ""
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "**"
	case ReLU:
		return "ReLU"
	case Tanh:
		return "tanh"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of operands the kind consumes.
func (k Kind) Arity() int {
	switch k {
	case Add, Mul:
		return 2
	case Pow, ReLU, Tanh:
		return 1
	default:
		return 0
	}
}

// Op is the backward rule recorded on a node at construction time.
//
// Exponent is only meaningful for Pow.
type Op struct {
	Kind     Kind
	Exponent float64
}

// String formats the op, including the exponent for Pow.
func (op Op) String() string {
	if op.Kind == Pow {
		return fmt.Sprintf("**%g", op.Exponent)
	}
	return op.Kind.String()
}

// Forward computes the output value from operand data.
// Unary kinds ignore b.
func (op Op) Forward(a, b float64) float64 {
	switch op.Kind {
	case Add:
		return addForward(a, b)
	case Mul:
		return mulForward(a, b)
	case Pow:
		return powForward(a, op.Exponent)
	case ReLU:
		return reluForward(a)
	case Tanh:
		return tanhForward(a)
	default:
		panic(fmt.Sprintf("ops: no forward rule for %v", op.Kind))
	}
}

// Backward returns the gradient contributions for each operand.
//
// a and b are the operand data, output is the node's own data and
// outputGrad its accumulated gradient. For unary kinds gradB is always 0.
// A Leaf has nothing to propagate and returns zeros.
func (op Op) Backward(a, b, output, outputGrad float64) (gradA, gradB float64) {
	switch op.Kind {
	case Leaf:
		return 0, 0
	case Add:
		return addBackward(outputGrad)
	case Mul:
		return mulBackward(a, b, outputGrad)
	case Pow:
		return powBackward(a, op.Exponent, outputGrad), 0
	case ReLU:
		return reluBackward(output, outputGrad), 0
	case Tanh:
		return tanhBackward(output, outputGrad), 0
	default:
		panic(fmt.Sprintf("ops: no backward rule for %v", op.Kind))
	}
}
