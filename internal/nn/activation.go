package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation selects the non-linearity a neuron applies to its
// pre-activation.
type Activation uint8

// Supported activations. Tanh is the zero value and the default.
const (
	// Tanh applies f(x) = tanh(x). Outputs lie in (-1, 1).
	Tanh Activation = iota

	// ReLU applies f(x) = max(0, x). Outputs are never negative, so a
	// network regressing negative targets needs WithLinearOutput.
	ReLU
)

// Apply applies the activation to v.
func (a Activation) Apply(v *autodiff.Value) *autodiff.Value {
	switch a {
	case ReLU:
		return v.ReLU()
	case Tanh:
		return v.Tanh()
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", uint8(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// ParseActivation maps "tanh" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return 0, errors.Errorf("nn: unknown activation %q (want tanh or relu)", name)
	}
}
