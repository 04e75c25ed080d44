package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities map[*autodiff.Value]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Value]float64),
	}
}

// Step performs a single optimization step.
//
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Step() {
	for _, p := range s.params {
		if s.momentum == 0 {
			p.SetData(p.Data() - s.lr*p.Grad())
			continue
		}

		velocity := s.momentum*s.velocities[p] + p.Grad()
		s.velocities[p] = velocity
		p.SetData(p.Data() - s.lr*velocity)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the velocity buffers keyed "velocity.{param_index}".
//
// Without momentum, returns an empty map.
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	if s.momentum == 0 {
		return state
	}

	for i, p := range s.params {
		velocity, exists := s.velocities[p]
		if !exists {
			continue
		}
		state[fmt.Sprintf("velocity.%d", i)] = velocity
	}
	return state
}

// LoadStateDict restores velocity buffers saved by StateDict.
//
// Keys that name no parameter are rejected.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make(map[*autodiff.Value]float64, len(state))
	for key, velocity := range state {
		var i int
		if _, err := fmt.Sscanf(key, "velocity.%d", &i); err != nil {
			return errors.Wrapf(err, "sgd: bad state key %q", key)
		}
		if i < 0 || i >= len(s.params) {
			return errors.Errorf("sgd: state key %q out of range for %d parameters", key, len(s.params))
		}
		velocities[s.params[i]] = velocity
	}
	s.velocities = velocities
	return nil
}
