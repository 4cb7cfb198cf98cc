package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "goloop.yaml"

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "goloop",
	Short: "Cycle detection strategies for linked chains",
	Long: `A harness for comparing strategies that decide whether a singly-linked
chain ends or loops back on itself.

Features:
  - Eight detectors, from marking nodes to the tortoise and hare
  - Built-in fixtures modelled on expressway routes, plus generated ones
  - Verification matrix of every strategy against every fixture
  - Timing benchmark with mutating strategies restored between rounds`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file (optional when the default is missing)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	NoColor    bool
	ASCII      bool
	Iterations int
	Size       *int // Set only when --size was given, so 0 can disable generated fixtures
	Strategies []string
	Fixtures   []string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	var size *int
	if benchSizeFlag != nil && benchSizeFlag.Changed {
		v := benchSize
		size = &v
	}

	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		NoColor:    noColor,
		ASCII:      showAscii,
		Iterations: benchIterations,
		Size:       size,
		Strategies: strategyNames,
		Fixtures:   fixtureNames,
	}
}

// loadConfig reads the config file, applies flag overrides and validates the
// result. A missing file is only an error when a path other than the default
// was asked for.
func loadConfig() (*config.Config, error) {
	configFile := GetConfigFile()
	required := configFile != defaultConfigFile || rootCmd.PersistentFlags().Changed("config")

	cfg, err := config.LoadOptional(configFile, required)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	o := GetCLIOverrides()
	cfg.ApplyOverrides(config.Overrides{
		LogLevel:   o.LogLevel,
		LogFormat:  o.LogFormat,
		Iterations: o.Iterations,
		Size:       o.Size,
		Strategies: o.Strategies,
		Fixtures:   o.Fixtures,
		NoColor:    o.NoColor,
		ASCII:      o.ASCII,
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
