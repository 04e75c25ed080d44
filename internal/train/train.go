// Package train drives full-batch training of a MultilayerPerceptron.
//
// Run builds a network from a TrainConfig, repeatedly computes the summed
// squared error over a Dataset, backpropagates it and steps an optimizer.
// Sweep repeats Run over consecutive seeds.
package train

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/random"
)

// Dataset is a set of samples with one scalar target each.
type Dataset struct {
	Inputs  [][]float64
	Targets []float64
}

// Demo returns four samples of three features with ±1 targets.
func Demo() Dataset {
	return Dataset{
		Inputs: [][]float64{
			{2, 3, -1},
			{3, -1, 0.5},
			{0.5, 1, 1},
			{1, 1, -1},
		},
		Targets: []float64{1, -1, -1, 1},
	}
}

// Validate checks that the dataset is non-empty and rectangular.
func (d Dataset) Validate() error {
	if len(d.Inputs) == 0 {
		return errors.Wrap(nn.ErrInvalidDimension, "dataset: no samples")
	}
	if len(d.Inputs) != len(d.Targets) {
		return &nn.DimensionError{Module: "dataset", Want: len(d.Inputs), Got: len(d.Targets)}
	}
	width := len(d.Inputs[0])
	for i, x := range d.Inputs {
		if len(x) != width {
			return errors.WithMessagef(&nn.DimensionError{Module: "dataset", Want: width, Got: len(x)}, "sample %d", i)
		}
	}
	return nil
}

// Step is reported to the progress callback after every update.
type Step struct {
	Step     int     // 1-based step number
	Loss     float64 // Loss before the update
	GradNorm float64 // L2 norm of the parameter gradients
}

// Result summarizes a training run.
type Result struct {
	Seed        uint64
	Model       *nn.MultilayerPerceptron
	Losses      []float64 // Loss before each update
	FinalLoss   float64   // Loss after the last update
	Predictions []float64 // Model output per sample after training
}

// BestLoss returns the lowest loss seen, including the final one.
func (r *Result) BestLoss() float64 {
	return floats.Min(append([]float64{r.FinalLoss}, r.Losses...))
}

// Converged reports whether the final loss is below threshold.
func (r *Result) Converged(threshold float64) bool {
	return r.FinalLoss < threshold
}

// NewModel builds the network described by cfg for inputs of numInputs
// features and a single output.
func NewModel(cfg *config.TrainConfig, numInputs int) (*nn.MultilayerPerceptron, error) {
	act, err := nn.ParseActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	opts := []nn.Option{
		nn.WithInitializer(random.New(cfg.Seed)),
		nn.WithActivation(act),
	}
	if act == nn.ReLU {
		opts = append(opts, nn.WithLinearOutput())
	}

	widths := append(append([]int{}, cfg.Hidden...), 1)
	return nn.NewMultilayerPerceptron(numInputs, widths, opts...)
}

// NewOptimizer returns the optimizer named by cfg over params.
func NewOptimizer(cfg *config.TrainConfig, params []*autodiff.Value) optim.Optimizer {
	if cfg.Optimizer == "adam" {
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
}

// Loss is the summed squared error of mlp over the whole dataset.
func Loss(mlp *nn.MultilayerPerceptron, data Dataset) (*autodiff.Value, error) {
	preds := make([]*autodiff.Value, len(data.Inputs))
	for i, x := range data.Inputs {
		outs, err := mlp.CallFloats(x)
		if err != nil {
			return nil, errors.WithMessagef(err, "sample %d", i)
		}
		preds[i] = outs[0]
	}
	return nn.SumSquaredError(preds, autodiff.Values(data.Targets...))
}

// Run trains a fresh network for cfg.Steps updates, or until the loss drops
// below cfg.TargetLoss. progress, if non-nil, is called after every update.
func Run(cfg *config.TrainConfig, data Dataset, progress func(Step)) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	mlp, err := NewModel(cfg, len(data.Inputs[0]))
	if err != nil {
		return nil, err
	}
	optimizer := NewOptimizer(cfg, mlp.Parameters())

	res := &Result{
		Seed:   cfg.Seed,
		Model:  mlp,
		Losses: make([]float64, 0, cfg.Steps),
	}
	for step := 1; step <= cfg.Steps; step++ {
		optimizer.ZeroGrad()

		loss, err := Loss(mlp, data)
		if err != nil {
			return nil, errors.WithMessagef(err, "step %d", step)
		}
		if err := loss.Backward(); err != nil {
			return nil, errors.WithMessagef(err, "step %d", step)
		}
		gradNorm := optim.GradNorm(mlp.Parameters())
		optimizer.Step()

		res.Losses = append(res.Losses, loss.Data())
		if progress != nil {
			progress(Step{Step: step, Loss: loss.Data(), GradNorm: gradNorm})
		}
		if cfg.TargetLoss > 0 && loss.Data() < cfg.TargetLoss {
			break
		}
	}

	final, err := Loss(mlp, data)
	if err != nil {
		return nil, err
	}
	res.FinalLoss = final.Data()

	res.Predictions = make([]float64, len(data.Inputs))
	for i, x := range data.Inputs {
		out, err := mlp.CallFloats(x)
		if err != nil {
			return nil, err
		}
		res.Predictions[i] = out[0].Data()
	}
	return res, nil
}

// Sweep trains cfg.Runs networks seeded cfg.Seed, cfg.Seed+1, … and returns
// their results in seed order.
func Sweep(cfg *config.TrainConfig, data Dataset) ([]*Result, error) {
	results := make([]*Result, 0, cfg.Runs)
	for i := range cfg.Runs {
		runCfg := *cfg
		runCfg.Seed = cfg.Seed + uint64(i)
		res, err := Run(&runCfg, data, nil)
		if err != nil {
			return nil, errors.WithMessagef(err, "seed %d", runCfg.Seed)
		}
		results = append(results, res)
	}
	return results, nil
}
