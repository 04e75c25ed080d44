package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SumSquaredError returns Σ (target - prediction)² over all pairs.
//
// The sum starts from a constant 0 leaf and adds one squared residual per
// pair in order, so the result is a single node whose Backward reaches
// every prediction. preds and targets must be non-empty and of equal
// length.
//
// Example:
//
//	loss, err := nn.SumSquaredError(preds, autodiff.Values(1, -1, -1, 1))
//	if err != nil {
//	    return err
//	}
//	if err := loss.Backward(); err != nil {
//	    return err
//	}
func SumSquaredError(preds, targets []*autodiff.Value) (*autodiff.Value, error) {
	if len(preds) != len(targets) {
		return nil, &DimensionError{Module: "loss", Want: len(targets), Got: len(preds)}
	}
	if len(preds) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "loss: no predictions")
	}

	loss := autodiff.NewValue(0)
	for i, pred := range preds {
		if pred == nil || targets[i] == nil {
			return nil, errors.Wrapf(autodiff.ErrInvalidOperand, "loss: pair %d is nil", i)
		}
		loss = loss.Add(targets[i].Sub(pred).Pow(2))
	}
	return loss, nil
}

// MSE returns SumSquaredError divided by the number of pairs.
func MSE(preds, targets []*autodiff.Value) (*autodiff.Value, error) {
	sse, err := SumSquaredError(preds, targets)
	if err != nil {
		return nil, err
	}
	return sse.DivScalar(float64(len(preds)))
}
