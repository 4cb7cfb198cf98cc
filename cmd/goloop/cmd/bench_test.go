package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchCommandStructure(t *testing.T) {
	assert.Equal(t, "bench", benchCmd.Use)
	assert.NotEmpty(t, benchCmd.Short)
	assert.NotEmpty(t, benchCmd.Long)
	assert.NotNil(t, benchCmd.RunE)
	for _, name := range []string{"iterations", "size", "strategy", "fixture"} {
		assert.NotNil(t, benchCmd.Flags().Lookup(name), "flag %q", name)
	}
}

func TestRunBench(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, quietConfig)
	benchIterations = 5
	require.NoError(t, benchCmd.Flags().Set("size", "16"))
	strategyNames = []string{"two-pointer", "seen-set", "reversal"}

	var buf bytes.Buffer
	benchCmd.SetOut(&buf)
	benchCmd.SetErr(&buf)
	defer benchCmd.SetOut(nil)
	defer benchCmd.SetErr(nil)

	require.NoError(t, runBench(benchCmd, []string{}))

	output := buf.String()
	assert.Contains(t, output, "ROUNDS/S")
	assert.Contains(t, output, "two-pointer")
	assert.Contains(t, output, "reversal")
	assert.NotContains(t, output, "prefix-rescan")
}

func TestRunBench_TimeoutStopsRun(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, `bench:
  iterations: 100000000
  size: 5000
  timeout_seconds: 0.05
output:
  color: false
logging:
  level: error
`)
	strategyNames = []string{"prefix-rescan"}

	var buf bytes.Buffer
	benchCmd.SetOut(&buf)
	benchCmd.SetErr(&buf)
	defer benchCmd.SetOut(nil)
	defer benchCmd.SetErr(nil)

	err := runBench(benchCmd, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
}
