package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRunsSession(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scales")
	t.Setenv("SEMDIFF_OUTPUT_DIR", dir)
	t.Setenv("SEMDIFF_CHART_DPI", "30")
	t.Setenv("LOG_LEVEL", "ERROR")

	answers := strings.Join([]string{
		"1", "10", "n", "n",
		"Wood", "n",
		"Warmth", "n",
		"7", "1",
	}, "\n") + "\n"

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(answers))
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "Warmth.png"))
	assert.FileExists(t, filepath.Join(dir, "Warmth-csv-file.csv"))
	assert.FileExists(t, filepath.Join(dir, "session.yaml"))
	assert.Contains(t, out.String(), "Your graph and CSV file have been saved in")

	renderDir := filepath.Join(t.TempDir(), "again")
	t.Setenv("SEMDIFF_OUTPUT_DIR", renderDir)
	render := newRootCmd()
	render.SetOut(&bytes.Buffer{})
	render.SetArgs([]string{"render", filepath.Join(dir, "session.yaml")})
	require.NoError(t, render.Execute())

	assert.FileExists(t, filepath.Join(renderDir, "Warmth.png"))
	_, err := os.Stat(filepath.Join(renderDir, "session.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommandReportsClosedInput(t *testing.T) {
	t.Setenv("SEMDIFF_OUTPUT_DIR", filepath.Join(t.TempDir(), "scales"))
	t.Setenv("LOG_LEVEL", "ERROR")

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("1\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ended before all values were entered")
}

func TestDescribeInterrupt(t *testing.T) {
	err := describe(fmt.Errorf("reading answer: %w", context.Canceled))
	require.Error(t, err)
	assert.Equal(t, "interrupted", err.Error())
	assert.NoError(t, describe(nil))
}
