package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/config"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/fixture"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate checks the configuration file and confirms that every fixture
it defines can be built and every name it selects is registered.

Checks performed:
  - Configuration syntax and value ranges
  - Fixture shape, length and loop entry
  - Selected strategies and fixtures exist

Example:
  goloop validate --config goloop.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()
	required := configFile != defaultConfigFile || rootCmd.PersistentFlags().Changed("config")

	cfg, err := config.LoadOptional(configFile, required)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", configFile)
	cmd.Printf("Fixtures defined: %d\n\n", len(cfg.Fixtures))

	if err := cfg.Validate(); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				cmd.Printf("❌ %s: %s\n", v.Field, v.Message)
			}
		} else {
			cmd.Printf("❌ %v\n", err)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	registry, err := fixture.FromConfig(cfg)
	if err != nil {
		cmd.Printf("❌ Fixture build failed: %v\n", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, err := registry.Select(cfg.Bench.Fixtures); err != nil {
		cmd.Printf("❌ bench.fixtures: %v\n", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, err := detect.Select(cfg.Bench.Strategies); err != nil {
		cmd.Printf("❌ bench.strategies: %v\n", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	cmd.Println("=== Validation Complete ===")
	cmd.Printf("✅ %d fixtures and %d strategies available\n", registry.Len(), len(detect.Names()))
	return nil
}
