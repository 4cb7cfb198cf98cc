package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/bench"
	"github.com/dbsmedya/goloop/internal/config"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/fixture"
	"github.com/dbsmedya/goloop/internal/logger"
	"github.com/dbsmedya/goloop/internal/report"
)

var (
	strategyNames []string
	fixtureNames  []string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every strategy against every fixture",
	Long: `Check runs each selected strategy on a freshly built copy of each
selected fixture and compares the answer with the fixture's known shape.

Strategies that leave the chain untouched are also run twice on the same
chain, and the links are compared before and after.

The command exits non-zero when any check fails.

Example:
  goloop check
  goloop check -s two-pointer -s checkpoint -f tail-loop`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVarP(&strategyNames, "strategy", "s", nil,
		"Strategy to run (repeatable, default all)")
	checkCmd.Flags().StringSliceVarP(&fixtureNames, "fixture", "f", nil,
		"Fixture to run on (repeatable, default all)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	runner, err := newRunner(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(cfg, log)
	defer cancel()

	result, err := runner.Verify(ctx)
	if result != nil {
		report.Matrix(cmd.OutOrStdout(), result, cfg.Output.Color)
	}
	return err
}

// newRunner resolves the configured strategy and fixture selections.
func newRunner(cfg *config.Config, log *logger.Logger) (*bench.Runner, error) {
	strategies, err := detect.Select(cfg.Bench.Strategies)
	if err != nil {
		return nil, err
	}

	registry, err := fixture.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build fixtures: %w", err)
	}
	fixtures, err := registry.Select(cfg.Bench.Fixtures)
	if err != nil {
		return nil, err
	}

	return bench.NewRunner(strategies, fixtures,
		bench.WithLogger(log),
		bench.WithIterations(cfg.Bench.Iterations),
	)
}

// runContext is cancelled on SIGINT/SIGTERM and, when configured, after
// bench.timeout_seconds.
func runContext(cfg *config.Config, log *logger.Logger) (context.Context, context.CancelFunc) {
	ctx := bench.SetupSignalHandlerWithCallback(func(sig os.Signal) {
		log.Warnw("Received signal, stopping after the current round", "signal", sig.String())
	})
	if cfg.Bench.TimeoutSeconds > 0 {
		timeout := time.Duration(cfg.Bench.TimeoutSeconds * float64(time.Second))
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
