// exprun runs a single experiment from a spec file and prints the report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qubosched/experiment-core/internal/runner"
	"github.com/qubosched/experiment-core/pkg/config"
	"github.com/qubosched/experiment-core/pkg/logger"
)

func main() {
	var specPath string
	var seed int64
	var parallelism int
	var logLevel string
	var logFormat string

	flag.StringVar(&specPath, "spec", "", "experiment spec file (YAML); empty runs the defaults")
	flag.Int64Var(&seed, "seed", 0, "base RNG seed override (0 keeps the spec's seed)")
	flag.IntVar(&parallelism, "parallelism", 0, "concurrent runs override (0 keeps the spec's value)")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.StringVar(&logFormat, "log-format", "text", "log format (json, text)")
	flag.Parse()

	logger.SetDefault(logger.New(logLevel, logFormat, os.Stderr))

	spec := config.DefaultSpec()
	if specPath != "" {
		loaded, err := config.LoadSpec(specPath)
		if err != nil {
			logger.Error("failed to load spec", "path", specPath, "error", err)
			os.Exit(1)
		}
		spec = loaded
	}
	if seed != 0 {
		spec.Seed = seed
	}
	if parallelism > 0 {
		spec.Parallelism = parallelism
	}

	r, err := runner.New(spec)
	if err != nil {
		logger.Error("invalid experiment spec", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := r.Run(ctx)
	if err != nil {
		logger.Error("experiment failed", "error", err)
		os.Exit(1)
	}

	fmt.Print(runner.FormatReport(result))
}
