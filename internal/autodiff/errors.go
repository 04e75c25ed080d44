package autodiff

import "github.com/pkg/errors"

// Common errors.
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivisionByZero = errors.New("division by zero")
	ErrGraphCycle     = errors.New("computation graph contains a cycle")
)
