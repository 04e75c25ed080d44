package ops

import "math"

// NewPowOp returns the rule for output = a ** exponent.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1), so grad_a = outputGrad * p * a^(p-1)
//
// The exponent is a constant captured in the op; it is never a node and
// receives no gradient.
func NewPowOp(exponent float64) Op {
	return Op{Kind: Pow, Exponent: exponent}
}

func powForward(a, exponent float64) float64 {
	return math.Pow(a, exponent)
}

func powBackward(a, exponent, outputGrad float64) float64 {
	return exponent * math.Pow(a, exponent-1) * outputGrad
}
