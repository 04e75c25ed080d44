package ops

// NewMulOp returns the rule for output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func NewMulOp() Op {
	return Op{Kind: Mul}
}

func mulForward(a, b float64) float64 {
	return a * b
}

func mulBackward(a, b, outputGrad float64) (gradA, gradB float64) {
	return b * outputGrad, a * outputGrad
}
