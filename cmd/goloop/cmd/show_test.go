package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goloop/internal/fixture"
)

func TestShowCommandStructure(t *testing.T) {
	assert.Equal(t, "show <fixture>", showCmd.Use)
	assert.NotEmpty(t, showCmd.Short)
	assert.NotEmpty(t, showCmd.Long)
	assert.NotNil(t, showCmd.RunE)
	assert.NotNil(t, showCmd.Flags().Lookup("ascii"))
	assert.NotNil(t, showCmd.Flags().Lookup("max-nodes"))
}

func runShowCapture(t *testing.T, name string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	showCmd.SetOut(&buf)
	showCmd.SetErr(&buf)
	defer showCmd.SetOut(nil)
	defer showCmd.SetErr(nil)

	err := runShow(showCmd, []string{name})
	return buf.String(), err
}

func TestRunShow_TailLoop(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, quietConfig)

	output, err := runShowCapture(t, "tail-loop")
	require.NoError(t, err)

	assert.Contains(t, output, "Chain: tail-loop")
	assert.Contains(t, output, "◄─┐")
	assert.Contains(t, output, "──┘")
	assert.Contains(t, output, "Loops into:  Guangzhou")
	assert.Contains(t, output, "Macau -> Guangzhou")
	assert.Contains(t, output, "tail loop: 16 tail + 4 loop nodes")
	assert.Contains(t, output, "two-pointer")
	assert.NotContains(t, output, "drawing skipped")
}

func TestRunShow_AsciiAcyclic(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, quietConfig)
	showAscii = true

	output, err := runShowCapture(t, "acyclic")
	require.NoError(t, err)

	assert.Contains(t, output, "v")
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "Loops into:  none")
	assert.NotContains(t, output, "▼")
}

func TestRunShow_SkipsLargeDrawings(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, quietConfig)
	showMaxNodes = 2

	output, err := runShowCapture(t, "full-loop")
	require.NoError(t, err)
	assert.Contains(t, output, "drawing skipped")
	assert.Contains(t, output, "[ Detectors ]")
}

func TestRunShow_UnknownFixture(t *testing.T) {
	saveFlags(t)
	cfgFile = writeConfig(t, quietConfig)

	_, err := runShowCapture(t, "ring-road")
	assert.ErrorIs(t, err, fixture.ErrUnknownFixture)
}
