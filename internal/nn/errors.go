package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidDimension  = errors.New("invalid dimension")
)

// DimensionError describes an input sequence whose length disagrees with
// the width a module expects. It matches ErrDimensionMismatch with errors.Is.
type DimensionError struct {
	Module string // Module kind (e.g., "neuron", "layer")
	Want   int    // Expected number of inputs
	Got    int    // Number of inputs received
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: expected %d inputs, got %d: %v", e.Module, e.Want, e.Got, ErrDimensionMismatch)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func invalidDimension(module string, name string, value int) error {
	return errors.Wrapf(ErrInvalidDimension, "%s: %s must be positive, got %d", module, name, value)
}
