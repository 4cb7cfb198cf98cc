// Package config provides configuration structures and loading for goloop.
package config

// Config represents the complete application configuration.
type Config struct {
	Bench    BenchConfig              `yaml:"bench" mapstructure:"bench"`
	Fixtures map[string]FixtureConfig `yaml:"fixtures" mapstructure:"fixtures"`
	Output   OutputConfig             `yaml:"output" mapstructure:"output"`
	Logging  LoggingConfig            `yaml:"logging" mapstructure:"logging"`
}

// BenchConfig controls what the harness runs and for how long.
type BenchConfig struct {
	Iterations     int      `yaml:"iterations" mapstructure:"iterations"`           // Rounds per strategy
	Size           int      `yaml:"size" mapstructure:"size"`                       // Length of generated fixtures, 0 disables them
	Strategies     []string `yaml:"strategies" mapstructure:"strategies"`           // Empty runs every strategy
	Fixtures       []string `yaml:"fixtures" mapstructure:"fixtures"`               // Empty runs every fixture
	TimeoutSeconds float64  `yaml:"timeout_seconds" mapstructure:"timeout_seconds"` // 0 means no deadline
}

// FixtureConfig describes a user-defined chain.
type FixtureConfig struct {
	Shape       string `yaml:"shape" mapstructure:"shape"`   // acyclic, tail-loop or full-loop
	Length      int    `yaml:"length" mapstructure:"length"` // Number of nodes
	Entry       int    `yaml:"entry" mapstructure:"entry"`   // Loop target index for tail-loop
	Description string `yaml:"description" mapstructure:"description"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color bool `yaml:"color" mapstructure:"color"`
	ASCII bool `yaml:"ascii" mapstructure:"ascii"` // Plain ASCII diagrams instead of box drawing
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Iterations: 1000,
			Size:       1000,
		},
		Fixtures: map[string]FixtureConfig{},
		Output: OutputConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// GetFixture returns the user-defined fixture with the given name.
func (c *Config) GetFixture(name string) (FixtureConfig, bool) {
	f, ok := c.Fixtures[name]
	return f, ok
}
