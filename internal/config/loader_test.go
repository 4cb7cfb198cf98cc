package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "goloop.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
bench:
  iterations: 250
  size: 64
  strategies: [two-pointer, checkpoint]
  fixtures: [tail-loop]
  timeout_seconds: 1.5

fixtures:
  long_tail:
    shape: tail-loop
    length: 5000
    entry: 100
    description: long tail into a short loop

output:
  color: false
  ascii: true

logging:
  level: debug
  format: json
  output: stdout
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Bench.Iterations != 250 {
		t.Errorf("expected iterations 250, got %d", cfg.Bench.Iterations)
	}
	if cfg.Bench.Size != 64 {
		t.Errorf("expected size 64, got %d", cfg.Bench.Size)
	}
	if len(cfg.Bench.Strategies) != 2 || cfg.Bench.Strategies[0] != "two-pointer" {
		t.Errorf("unexpected strategies: %v", cfg.Bench.Strategies)
	}
	if len(cfg.Bench.Fixtures) != 1 || cfg.Bench.Fixtures[0] != "tail-loop" {
		t.Errorf("unexpected fixtures: %v", cfg.Bench.Fixtures)
	}
	if cfg.Bench.TimeoutSeconds != 1.5 {
		t.Errorf("expected timeout 1.5, got %v", cfg.Bench.TimeoutSeconds)
	}

	f, ok := cfg.GetFixture("long_tail")
	if !ok {
		t.Fatal("expected fixture 'long_tail' to exist")
	}
	if f.Shape != "tail-loop" || f.Length != 5000 || f.Entry != 100 {
		t.Errorf("unexpected fixture: %+v", f)
	}

	if cfg.Output.Color {
		t.Error("expected color disabled")
	}
	if !cfg.Output.ASCII {
		t.Error("expected ascii enabled")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || cfg.Logging.Output != "stdout" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	configPath := writeConfig(t, `
bench:
  iterations: 5
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Bench.Iterations != 5 {
		t.Errorf("expected iterations 5, got %d", cfg.Bench.Iterations)
	}
	if cfg.Bench.Size != 1000 {
		t.Errorf("expected default size 1000, got %d", cfg.Bench.Size)
	}
	if !cfg.Output.Color {
		t.Error("expected default color enabled")
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected default output stderr, got %s", cfg.Logging.Output)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("GOLOOP_TEST_LOG_DIR", "/var/log/goloop")
	t.Setenv("GOLOOP_TEST_NOTE", "from env")

	configPath := writeConfig(t, `
fixtures:
  ring:
    shape: full-loop
    length: 10
    description: ring ${GOLOOP_TEST_NOTE}
logging:
  output: ${GOLOOP_TEST_LOG_DIR}/bench.log
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Output != "/var/log/goloop/bench.log" {
		t.Errorf("expected expanded output path, got %s", cfg.Logging.Output)
	}
	if cfg.Fixtures["ring"].Description != "ring from env" {
		t.Errorf("expected expanded description, got %q", cfg.Fixtures["ring"].Description)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/goloop.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "bench: [unclosed")

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadOptional(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := LoadOptional(missing, false)
	if err != nil {
		t.Fatalf("expected defaults for missing optional file, got %v", err)
	}
	if cfg.Bench.Iterations != DefaultConfig().Bench.Iterations {
		t.Errorf("expected default iterations, got %d", cfg.Bench.Iterations)
	}

	if _, err := LoadOptional(missing, true); err == nil {
		t.Error("expected error for missing required file")
	}
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("bench.iterations", 42)
	v.Set("logging.level", "warn")

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("LoadFromViper failed: %v", err)
	}
	if cfg.Bench.Iterations != 42 {
		t.Errorf("expected iterations 42, got %d", cfg.Bench.Iterations)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("GOLOOP_TEST_VAR", "value")

	tests := []struct {
		input    string
		expected string
	}{
		{"${GOLOOP_TEST_VAR}", "value"},
		{"$GOLOOP_TEST_VAR", "value"},
		{"prefix-${GOLOOP_TEST_VAR}-suffix", "prefix-value-suffix"},
		{"${GOLOOP_UNSET_VAR_XYZ}", "${GOLOOP_UNSET_VAR_XYZ}"},
		{"no vars", "no vars"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandEnvVar(tt.input); got != tt.expected {
				t.Errorf("expandEnvVar(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
