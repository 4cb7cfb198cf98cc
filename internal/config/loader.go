package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadOptional behaves like Load, except that a missing file yields the
// defaults when required is false. Used for the implicit default path.
func LoadOptional(configPath string, required bool) (*Config, error) {
	if !required {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
	}
	return Load(configPath)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)

	for name, f := range cfg.Fixtures {
		f.Description = expandEnvVar(f.Description)
		cfg.Fixtures[name] = f
	}
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ListFixtures returns the names of user-defined fixtures, sorted.
func (c *Config) ListFixtures() []string {
	names := make([]string, 0, len(c.Fixtures))
	for name := range c.Fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Iterations > 0 {
		c.Bench.Iterations = o.Iterations
	}
	if o.Size != nil {
		c.Bench.Size = *o.Size
	}
	if len(o.Strategies) > 0 {
		c.Bench.Strategies = o.Strategies
	}
	if len(o.Fixtures) > 0 {
		c.Bench.Fixtures = o.Fixtures
	}
	if o.NoColor {
		c.Output.Color = false
	}
	if o.ASCII {
		c.Output.ASCII = true
	}
}

// Overrides holds command line values that take precedence over the file.
type Overrides struct {
	LogLevel   string
	LogFormat  string
	Iterations int
	Size       *int // nil leaves the file value; 0 disables generated fixtures
	Strategies []string
	Fixtures   []string
	NoColor    bool
	ASCII      bool
}
