package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/fixture"
	"github.com/dbsmedya/goloop/internal/report"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the available fixtures",
	Long: `Fixtures lists the built-in chains, the generated chains of bench.size
nodes, and any fixtures defined in the configuration file, with the tail
and loop length of each.

Example:
  goloop fixtures --config goloop.yaml`,
	RunE: runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := fixture.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build fixtures: %w", err)
	}

	if err := report.Fixtures(cmd.OutOrStdout(), registry.All(), cfg.Output.Color); err != nil {
		return err
	}
	cmd.Printf("\nTotal: %d fixture(s)\n", registry.Len())
	return nil
}
