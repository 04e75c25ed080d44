package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Parameter is a trainable leaf together with its dotted path inside the
// module that owns it.
//
// Example names:
//
//	weight.0
//	neurons.2.bias
//	layers.1.neurons.3.weight.0
type Parameter struct {
	name  string
	value *autodiff.Value
}

// NewParameter creates a named parameter.
func NewParameter(name string, value *autodiff.Value) Parameter {
	return Parameter{name: name, value: value}
}

// Name returns the parameter path.
func (p Parameter) Name() string {
	return p.name
}

// Value returns the underlying leaf node.
func (p Parameter) Value() *autodiff.Value {
	return p.value
}

// prefixed returns params with prefix prepended to every name.
func prefixed(prefix string, params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	for i, p := range params {
		out[i] = NewParameter(prefix+p.name, p.value)
	}
	return out
}
