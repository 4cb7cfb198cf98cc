package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dbsmedya/goloop/internal/logger"
	"github.com/dbsmedya/goloop/internal/report"
)

var (
	benchIterations int
	benchSize       int

	// benchSizeFlag is looked up in init so GetCLIOverrides need not refer to
	// benchCmd, which would form an initialization cycle through runBench.
	benchSizeFlag *pflag.Flag
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time every strategy over the fixture set",
	Long: `Bench runs each selected strategy over every selected fixture for a
number of rounds and reports the time per call and rounds per second.

Mutating strategies are run on chains that are restored between rounds;
the restore is not timed.

Example:
  goloop bench -n 500 --size 2000
  goloop bench -s two-pointer -s seen-set`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 0,
		"Override rounds per strategy")
	benchCmd.Flags().IntVar(&benchSize, "size", 0,
		"Override length of generated fixtures (0 disables them)")
	benchSizeFlag = benchCmd.Flags().Lookup("size")
	benchCmd.Flags().StringSliceVarP(&strategyNames, "strategy", "s", nil,
		"Strategy to time (repeatable, default all)")
	benchCmd.Flags().StringSliceVarP(&fixtureNames, "fixture", "f", nil,
		"Fixture to time on (repeatable, default all)")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
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

	log.Infow("Starting benchmark",
		"iterations", cfg.Bench.Iterations,
		"size", cfg.Bench.Size,
	)

	result, err := runner.Benchmark(ctx)
	if err != nil {
		return err
	}
	report.Timings(cmd.OutOrStdout(), result, cfg.Output.Color)
	return nil
}
