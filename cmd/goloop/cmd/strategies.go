package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/report"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the cycle detection strategies",
	Long: `Strategies lists every registered detector with its time and space cost
and whether it writes to the chain it inspects.

Mutating strategies leave marks, back-references or reversed links behind;
the harness rebuilds or restores chains before running them again.

Example:
  goloop strategies`,
	RunE: runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	all := detect.All()
	report.Strategies(cmd.OutOrStdout(), all, cfg.Output.Color)
	cmd.Printf("\nTotal: %d strategies\n", len(all))
	return nil
}
