package ops

// NewReLUOp returns the rule for output = max(0, a).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if output > 0, else 0
//
// The mask is taken from the output, so a == 0 passes no gradient.
func NewReLUOp() Op {
	return Op{Kind: ReLU}
}

func reluForward(a float64) float64 {
	if a < 0 {
		return 0
	}
	return a
}

func reluBackward(output, outputGrad float64) float64 {
	if output > 0 {
		return outputGrad
	}
	return 0
}
