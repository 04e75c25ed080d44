// Package config resolves the settings of a training run.
//
// Values are layered: built-in defaults, then MICROGRAD_* environment
// variables (a .env file in the working directory or one of its parents is
// loaded first and never overrides variables already set), then
// command-line flags.
package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MICROGRAD_"

// envSearchDepth is how many directories are searched for a .env file.
const envSearchDepth = 5

// TrainConfig holds the knobs of a training run.
type TrainConfig struct {
	Seed       uint64  // Initializer seed
	LR         float64 // Learning rate
	Momentum   float64 // SGD momentum, 0 disables it
	Optimizer  string  // "sgd" or "adam"
	Steps      int     // Number of full-batch updates
	Activation string  // "tanh" or "relu"
	Hidden     []int   // Hidden layer widths, output width excluded
	LogEvery   int     // Print progress every N steps
	TargetLoss float64 // Stop early once the loss drops below this
	Runs       int     // Seeds trained by a sweep, starting at Seed
}

// Default returns the configuration used when nothing is overridden.
func Default() *TrainConfig {
	return &TrainConfig{
		Seed:       42,
		LR:         0.03,
		Optimizer:  "sgd",
		Steps:      600,
		Activation: "tanh",
		Hidden:     []int{4, 4},
		LogEvery:   50,
		Runs:       8,
	}
}

// Load builds a TrainConfig from defaults, the environment and args.
//
// args excludes the program and command names. The result is validated.
func Load(name string, args []string, output io.Writer) (*TrainConfig, error) {
	_ = loadEnvFile()

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	hidden := formatWidths(cfg.Hidden)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for weight initialization")
	fs.Float64Var(&cfg.LR, "lr", cfg.LR, "learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum (0 disables)")
	fs.StringVar(&cfg.Optimizer, "optimizer", cfg.Optimizer, "optimizer: sgd or adam")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of training steps")
	fs.StringVar(&cfg.Activation, "activation", cfg.Activation, "activation: tanh or relu")
	fs.StringVar(&hidden, "hidden", hidden, "comma-separated hidden layer widths")
	fs.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "print progress every N steps")
	fs.Float64Var(&cfg.TargetLoss, "target-loss", cfg.TargetLoss, "stop once loss is below this (0 disables)")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "number of seeds trained by sweep")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	widths, err := ParseWidths(hidden)
	if err != nil {
		return nil, errors.WithMessage(err, "flag -hidden")
	}
	cfg.Hidden = widths

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifies the config is runnable.
func (c *TrainConfig) Validate() error {
	switch {
	case c.LR <= 0:
		return errors.Errorf("config: learning rate must be positive, got %g", c.LR)
	case c.Momentum < 0 || c.Momentum >= 1:
		return errors.Errorf("config: momentum must be in [0, 1), got %g", c.Momentum)
	case c.Steps <= 0:
		return errors.Errorf("config: steps must be positive, got %d", c.Steps)
	case c.LogEvery <= 0:
		return errors.Errorf("config: log interval must be positive, got %d", c.LogEvery)
	case c.TargetLoss < 0:
		return errors.Errorf("config: target loss must not be negative, got %g", c.TargetLoss)
	case c.Runs <= 0:
		return errors.Errorf("config: runs must be positive, got %d", c.Runs)
	}

	if c.Optimizer != "sgd" && c.Optimizer != "adam" {
		return errors.Errorf("config: unknown optimizer %q (want sgd or adam)", c.Optimizer)
	}
	if c.Activation != "tanh" && c.Activation != "relu" {
		return errors.Errorf("config: unknown activation %q (want tanh or relu)", c.Activation)
	}
	for i, w := range c.Hidden {
		if w <= 0 {
			return errors.Errorf("config: hidden width %d must be positive, got %d", i, w)
		}
	}
	return nil
}

func (c *TrainConfig) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return v, ok && v != ""
	}

	var err error
	if v, ok := get("SEED"); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return envError("SEED", err)
		}
	}
	if v, ok := get("LR"); ok {
		if c.LR, err = strconv.ParseFloat(v, 64); err != nil {
			return envError("LR", err)
		}
	}
	if v, ok := get("MOMENTUM"); ok {
		if c.Momentum, err = strconv.ParseFloat(v, 64); err != nil {
			return envError("MOMENTUM", err)
		}
	}
	if v, ok := get("OPTIMIZER"); ok {
		c.Optimizer = v
	}
	if v, ok := get("STEPS"); ok {
		if c.Steps, err = strconv.Atoi(v); err != nil {
			return envError("STEPS", err)
		}
	}
	if v, ok := get("ACTIVATION"); ok {
		c.Activation = v
	}
	if v, ok := get("HIDDEN"); ok {
		if c.Hidden, err = ParseWidths(v); err != nil {
			return envError("HIDDEN", err)
		}
	}
	if v, ok := get("LOG_EVERY"); ok {
		if c.LogEvery, err = strconv.Atoi(v); err != nil {
			return envError("LOG_EVERY", err)
		}
	}
	if v, ok := get("TARGET_LOSS"); ok {
		if c.TargetLoss, err = strconv.ParseFloat(v, 64); err != nil {
			return envError("TARGET_LOSS", err)
		}
	}
	if v, ok := get("RUNS"); ok {
		if c.Runs, err = strconv.Atoi(v); err != nil {
			return envError("RUNS", err)
		}
	}
	return nil
}

func envError(key string, err error) error {
	return errors.Wrapf(err, "config: %s%s", EnvPrefix, key)
}

// ParseWidths parses a comma-separated list of layer widths such as "4,4".
// An empty string yields no widths.
func ParseWidths(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "width %d", i)
		}
		widths[i] = w
	}
	return widths, nil
}

func formatWidths(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}

// loadEnvFile loads the nearest .env file, looking up to envSearchDepth
// directories above the working directory.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for range envSearchDepth {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
