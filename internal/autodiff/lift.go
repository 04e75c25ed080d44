package autodiff

import "github.com/pkg/errors"

// Lift converts a node or a raw number into a node.
//
// A *Value is returned unchanged. Any Go integer or float kind becomes a
// fresh constant leaf. A nil *Value or any other type fails with
// ErrInvalidOperand.
func Lift(x any) (*Value, error) {
	if v, ok := x.(*Value); ok {
		if v == nil {
			return nil, errors.Wrap(ErrInvalidOperand, "lift: nil node")
		}
		return v, nil
	}
	f, ok := toFloat(x)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOperand, "lift: unsupported operand type %T", x)
	}
	return NewValue(f), nil
}

// LiftAll lifts every element of xs, stopping at the first failure.
func LiftAll(xs ...any) ([]*Value, error) {
	out := make([]*Value, len(xs))
	for i, x := range xs {
		v, err := Lift(x)
		if err != nil {
			return nil, errors.WithMessagef(err, "operand %d", i)
		}
		out[i] = v
	}
	return out, nil
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
