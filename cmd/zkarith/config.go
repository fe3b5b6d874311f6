package main

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/eth2030/zkarith/field"
)

// Operations understood by --op.
const (
	OpParams    = "params"
	OpSelftest  = "selftest"
	OpScalarMul = "scalarmul"
	OpBench     = "bench"
)

var ops = []string{OpParams, OpSelftest, OpScalarMul, OpBench}

// MaxIterations bounds --iterations; selftest holds one sample per
// iteration in memory.
const MaxIterations = 1 << 24

// Config holds the resolved command-line configuration of a zkarith run.
type Config struct {
	// Op is the operation to run.
	Op string

	// Field names the prime field used by params, selftest and bench.
	Field string

	// Curve names the group used by params, selftest, scalarmul and bench.
	Curve string

	// Scalar is the multiplier for scalarmul.
	Scalar *big.Int

	// Iterations is the loop count for each bench measurement and the number
	// of random samples drawn by selftest.
	Iterations uint64

	// Verbosity is the log level, 0 (silent) to 5 (trace).
	Verbosity int

	// LogJSON selects JSON log output instead of text.
	LogJSON bool

	// Metrics prints the collected metrics in text exposition format after
	// the operation finishes.
	Metrics bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Op:         OpParams,
		Field:      field.BN254Fp.Name(),
		Curve:      "bn254-g1",
		Scalar:     big.NewInt(1),
		Iterations: 1000,
		Verbosity:  3,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !slices.Contains(ops, c.Op) {
		return fmt.Errorf("config: unknown op %q (want one of %s)", c.Op, strings.Join(ops, ", "))
	}
	if _, err := field.Lookup(c.Field); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := lookupCurve(c.Curve); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scalar == nil || c.Scalar.Sign() < 0 {
		return errors.New("config: scalar must be non-negative")
	}
	if c.Iterations == 0 || c.Iterations > MaxIterations {
		return fmt.Errorf("config: iterations must be in 1-%d, got %d", MaxIterations, c.Iterations)
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("config: verbosity must be 0-5, got %d", c.Verbosity)
	}
	return nil
}
