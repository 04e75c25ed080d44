// Package main provides the micrograd CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("micrograd: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "micrograd %s\n", version)
		return nil
	case "train":
		return trainCommand(args[1:], out)
	case "sweep":
		return sweepCommand(args[1:], out)
	case "gradcheck":
		return gradCheck(out)
	case "help", "-h", "-help", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "micrograd - scalar autodiff and tiny neural networks")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version      Show version")
	fmt.Fprintln(out, "  train        Train a multilayer perceptron on the demo dataset")
	fmt.Fprintln(out, "  sweep        Train one network per seed and report convergence")
	fmt.Fprintln(out, "  gradcheck    Compare backward gradients with finite differences")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Run 'micrograd train -h' for training flags; sweep accepts the same flags.")
}
