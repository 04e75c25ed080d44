package main

import (
	"fmt"
	"io"

	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/train"
)

// convergedLoss is the loss below which a sweep run counts as converged.
const convergedLoss = 0.01

func trainCommand(args []string, out io.Writer) error {
	cfg, err := config.Load("train", args, out)
	if err != nil {
		return err
	}
	data := train.Demo()

	sizes := append([]int{len(data.Inputs[0])}, cfg.Hidden...)
	sizes = append(sizes, 1)
	fmt.Fprintf(out, "Training MLP %v (%s) with %s, lr=%g, seed=%d\n",
		sizes, cfg.Activation, cfg.Optimizer, cfg.LR, cfg.Seed)

	res, err := train.Run(cfg, data, func(s train.Step) {
		if s.Step == 1 || s.Step%cfg.LogEvery == 0 || s.Step == cfg.Steps {
			fmt.Fprintf(out, "step %4d  loss %.6f  grad norm %.6f\n", s.Step, s.Loss, s.GradNorm)
		}
	})
	if err != nil {
		return err
	}

	if len(res.Losses) < cfg.Steps {
		fmt.Fprintf(out, "Reached target loss %g at step %d\n", cfg.TargetLoss, len(res.Losses))
	}
	fmt.Fprintf(out, "Final loss %.6f (best %.6f, %d parameters)\n",
		res.FinalLoss, res.BestLoss(), nn.NumParameters(res.Model))

	for i, x := range data.Inputs {
		fmt.Fprintf(out, "  %v -> %+.4f (target %+g)\n", x, res.Predictions[i], data.Targets[i])
	}
	return nil
}

func sweepCommand(args []string, out io.Writer) error {
	cfg, err := config.Load("sweep", args, out)
	if err != nil {
		return err
	}

	results, err := train.Sweep(cfg, train.Demo())
	if err != nil {
		return err
	}

	converged := 0
	for _, res := range results {
		status := ""
		if res.Converged(convergedLoss) {
			converged++
			status = "converged"
		}
		fmt.Fprintf(out, "seed %-6d final loss %.6f  %s\n", res.Seed, res.FinalLoss, status)
	}
	fmt.Fprintf(out, "%d/%d runs below %g after %d steps\n", converged, len(results), convergedLoss, cfg.Steps)
	return nil
}
