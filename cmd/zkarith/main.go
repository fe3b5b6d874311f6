// Command zkarith inspects, checks and benchmarks the Montgomery field
// engine and the elliptic-curve group law.
//
// Usage:
//
//	zkarith [flags]
//
// Flags:
//
//	--op          Operation: params, selftest, scalarmul, bench (default: params)
//	--field       Prime field: bls12-381-fr, bn254-fp, bn254-fr (default: bn254-fp)
//	--curve       Curve group: bn254-g1, bn254-g2 (default: bn254-g1)
//	--scalar      Scalar for scalarmul, decimal or 0x-hex (default: 1)
//	--iterations  Bench loop count and selftest sample count (default: 1000)
//	--verbosity   Log level 0-5 (default: 3)
//	--log.json    Write logs as JSON (default: false)
//	--metrics     Print collected metrics after the run (default: false)
//	--version     Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eth2030/zkarith/field"
	"github.com/eth2030/zkarith/log"
	"github.com/eth2030/zkarith/metrics"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code.
func run(args []string) int {
	return runWith(args, os.Stdout, os.Stderr)
}

// runWith runs zkarith with explicit output streams so it can be tested in
// isolation. Results go to stdout, logs and usage errors to stderr.
func runWith(args []string, stdout, stderr io.Writer) int {
	cfg, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}

	log.SetDefault(log.NewWriter(stderr, log.LevelFromVerbosity(cfg.Verbosity), cfg.LogJSON))
	logger := log.Module("zkarith")

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "err", err)
		return 1
	}
	logger.Info("zkarith starting",
		"version", version,
		"op", cfg.Op,
		"field", cfg.Field,
		"curve", cfg.Curve,
		"iterations", cfg.Iterations,
	)

	// Validate has already resolved both names.
	f, _ := field.Lookup(cfg.Field)
	c, _ := lookupCurve(cfg.Curve)

	code = 0
	switch cfg.Op {
	case OpParams:
		writeFieldParams(stdout, f)
		c.params(stdout)
	case OpSelftest:
		code = runSelftest(stdout, f, c, int(cfg.Iterations))
	case OpScalarMul:
		c.scalarMul(stdout, cfg.Scalar)
	case OpBench:
		runBench(stdout, f, c, int(cfg.Iterations))
	}

	if cfg.Metrics {
		if err := metrics.WriteText(stdout, metrics.DefaultRegistry.Snapshot(), "zkarith"); err != nil {
			logger.Error("Failed to write metrics", "err", err)
			return 1
		}
	}
	return code
}

// parseFlags parses CLI arguments into a Config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string, stdout, stderr io.Writer) (Config, bool, int) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		// -h and -help have already printed the usage text.
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cfg, true, 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "zkarith %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}

	return cfg, false, 0
}

// newFlagSet binds all CLI flags to cfg. The flag set uses ContinueOnError
// so callers control the error handling behavior.
func newFlagSet(cfg *Config) *flagSet {
	fs := newCustomFlagSet("zkarith")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: "+strings.Join(ops, ", "))
	fs.StringVar(&cfg.Field, "field", cfg.Field, "prime field: "+strings.Join(field.Names(), ", "))
	fs.StringVar(&cfg.Curve, "curve", cfg.Curve, "curve group: "+strings.Join(curveNames(), ", "))
	fs.ScalarVar(&cfg.Scalar, "scalar", cfg.Scalar, "scalar for scalarmul, decimal or 0x-hex")
	fs.Uint64Var(&cfg.Iterations, "iterations", cfg.Iterations, "bench loop count and selftest sample count")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5")
	fs.BoolVar(&cfg.LogJSON, "log.json", cfg.LogJSON, "write logs as JSON")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print collected metrics after the run")
	return fs
}
