package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/gradcheck"
)

type checkCase struct {
	name string
	f    gradcheck.Func
	x    []float64
}

var checkCases = []checkCase{
	{
		name: "a*b + b**3",
		f: func(in []*autodiff.Value) (*autodiff.Value, error) {
			return in[0].Mul(in[1]).Add(in[1].Pow(3)), nil
		},
		x: []float64{-4, 2},
	},
	{
		name: "tanh(a*b + c)",
		f: func(in []*autodiff.Value) (*autodiff.Value, error) {
			return in[0].Mul(in[1]).Add(in[2]).Tanh(), nil
		},
		x: []float64{0.5, -1.5, 0.25},
	},
	{
		name: "relu(a - b) / c",
		f: func(in []*autodiff.Value) (*autodiff.Value, error) {
			return in[0].Sub(in[1]).ReLU().Div(in[2])
		},
		x: []float64{3, 1, 4},
	},
}

func gradCheck(out io.Writer) error {
	failed := 0
	for _, c := range checkCases {
		res, err := gradcheck.Check(c.f, c.x, gradcheck.Config{})
		if err != nil {
			return errors.WithMessage(err, c.name)
		}

		status := "ok"
		if !res.OK() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-16s value %-10.6g analytic %v numeric %v max rel err %.2e  %s\n",
			c.name, res.Output, res.Analytic, res.Numeric, res.MaxRelError, status)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d gradient checks failed", failed, len(checkCases))
	}
	return nil
}
