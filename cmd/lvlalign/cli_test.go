package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvlalign/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the command tree with an empty config file and returns
// stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "lvlalign.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("{}\n"), 0o600))

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", cfg}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

// TestSimulate_Deterministic prints the same pairs for the same seed.
func TestSimulate_Deterministic(t *testing.T) {
	out1, _, err := execute(t, "", "simulate", "-n", "3", "-l", "20", "-s", "5")
	require.NoError(t, err)
	out2, _, err := execute(t, "", "simulate", "-n", "3", "-l", "20", "-s", "5")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)

	pairs, err := harness.ReadPairs(strings.NewReader(out1))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "2", pairs[2].ID)
	assert.Len(t, pairs[0].X, 20)
}

// TestSimulate_RejectsRate surfaces generator validation.
func TestSimulate_RejectsRate(t *testing.T) {
	_, _, err := execute(t, "", "simulate", "-e", "0.4")
	assert.Error(t, err)
}

// TestAlign_TSV runs two engines over a piped simulation.
func TestAlign_TSV(t *testing.T) {
	reads, _, err := execute(t, "", "simulate", "-n", "4", "-l", "60", "--hmm")
	require.NoError(t, err)

	out, _, err := execute(t, reads, "align", "-", "--engines", "quadratic,diagonal", "--verify")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+4*2)
	assert.Equal(t, "ID\tType\tDist\tNumOfGap\tTime", lines[0])
	for k := 1; k < len(lines); k += 2 {
		q := strings.Split(lines[k], "\t")
		d := strings.Split(lines[k+1], "\t")
		assert.Equal(t, "quadratic", q[1])
		assert.Equal(t, "diagonal", d[1])
		assert.Equal(t, q[2], d[2], "distances agree")
	}
}

// TestAlign_YAMLFromFile reads a two-column file and writes YAML.
func TestAlign_YAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv")
	require.NoError(t, os.WriteFile(path, []byte("ACGT\tACCTG\n"), 0o600))

	out, _, err := execute(t, "", "align", path, "--format", "yaml", "--engines", "affine")
	require.NoError(t, err)
	var doc struct {
		Records []struct {
			ID     string `yaml:"id"`
			Engine string `yaml:"engine"`
			Score  int64  `yaml:"score"`
			Dist   uint32 `yaml:"dist"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "0", doc.Records[0].ID)
	assert.Equal(t, "affine", doc.Records[0].Engine)
	assert.Equal(t, uint32(2), doc.Records[0].Dist)
}

// TestAlign_Errors covers missing input and unknown engines.
func TestAlign_Errors(t *testing.T) {
	_, _, err := execute(t, "", "align", filepath.Join(t.TempDir(), "absent.tsv"))
	assert.Error(t, err)

	_, _, err = execute(t, "A\tA\n", "align", "-", "--engines", "banded")
	assert.Error(t, err)

	_, _, err = execute(t, "A\n", "align", "-")
	assert.ErrorIs(t, err, harness.ErrMalformedLine)
}

// TestShow renders the alignment without color when not on a terminal.
func TestShow(t *testing.T) {
	out, _, err := execute(t, "", "show", "ACGT", "ACCTG", "--engine", "diagonal-packed")
	require.NoError(t, err)
	want := "engine=diagonal-packed score=2\n" +
		"dist=2 gaps=1 len=5\n" +
		"ACGT \n" +
		"||X| \n" +
		"ACCTG\n"
	assert.Equal(t, want, out)
}

// TestShow_ColorAlways styles the output without touching the
// process-wide lipgloss profile.
func TestShow_ColorAlways(t *testing.T) {
	before := lipgloss.ColorProfile()

	out, _, err := execute(t, "", "show", "ACGT", "ACCTG", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, before, lipgloss.ColorProfile())

	out, _, err = execute(t, "", "show", "ACGT", "ACCTG", "--color", "never")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

// TestShow_LogLevel writes debug entries to stderr.
func TestShow_LogLevel(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "show", "A", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")

	_, _, err = execute(t, "", "--log-level", "loud", "show", "A", "A")
	assert.Error(t, err)
}
