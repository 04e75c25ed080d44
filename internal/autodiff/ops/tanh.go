package ops

import "math"

// NewTanhOp returns the rule for output = tanh(a).
func NewTanhOp() Op {
	return Op{Kind: Tanh}
}

func tanhForward(a float64) float64 {
	return math.Tanh(a)
}

// tanhBackward uses the already computed output:
// d(tanh(a))/da = 1 - tanh²(a) = 1 - output².
func tanhBackward(output, outputGrad float64) float64 {
	return (1 - output*output) * outputGrad
}
