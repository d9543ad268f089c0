package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
)

var samplePath = filepath.Join("..", "testdata", "sample.txt")

// testConfig returns the default configuration with overrides applied.
func testConfig(t *testing.T, overrides map[string]interface{}) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return cfg
}

func solveSample(t *testing.T, cfg *config.Config) *Report {
	t.Helper()
	f, err := os.Open(samplePath)
	require.NoError(t, err)
	defer f.Close()

	r, err := solve(context.Background(), f, "sample.txt", cfg, logging.NewNop())
	require.NoError(t, err)
	return r
}

func TestSolve_Parts(t *testing.T) {
	both := solveSample(t, testConfig(t, nil))
	require.NotNil(t, both.Distinct)
	require.NotNil(t, both.Loops)
	assert.Equal(t, 41, *both.Distinct)
	assert.Equal(t, 6, *both.Loops)
	assert.Equal(t, 10, both.Width)

	one := solveSample(t, testConfig(t, map[string]interface{}{"solve.part": 1}))
	assert.NotNil(t, one.Distinct)
	assert.Nil(t, one.Loops)

	two := solveSample(t, testConfig(t, map[string]interface{}{"solve.part": 2, "solve.workers": 3}))
	assert.Nil(t, two.Distinct)
	require.NotNil(t, two.Loops)
	assert.Equal(t, 6, *two.Loops)
}

func TestSolve_ParseError(t *testing.T) {
	_, err := solve(context.Background(), strings.NewReader("...\n"), "bad.txt", testConfig(t, nil), logging.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrNoAgent))
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestWriteReport_Formats(t *testing.T) {
	distinct, loops := 4758, 1670
	r := &Report{Input: "in.txt", Width: 130, Height: 130, Distinct: &distinct, Loops: &loops}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, config.FormatPlain, r))
	assert.Equal(t, "4758\n1670\n", buf.String())

	buf.Reset()
	require.NoError(t, writeReport(&buf, config.FormatSummary, r))
	assert.Contains(t, buf.String(), "Distinct positions: 4,758")
	assert.Contains(t, buf.String(), "Loop-inducing obstacles: 1,670")

	buf.Reset()
	require.NoError(t, writeReport(&buf, config.FormatJSON, r))
	var js map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &js))
	assert.Equal(t, float64(4758), js["distinct_positions"])
	assert.Equal(t, float64(1670), js["loop_obstacles"])

	buf.Reset()
	require.NoError(t, writeReport(&buf, config.FormatYAML, r))
	var ym map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ym))
	assert.Equal(t, 4758, ym["distinct_positions"])
	assert.Equal(t, "in.txt", ym["input"])

	assert.Error(t, writeReport(&buf, "xml", r))
}

func TestWriteReport_PartialPlain(t *testing.T) {
	loops := 6
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, config.FormatPlain, &Report{Loops: &loops}))
	assert.Equal(t, "6\n", buf.String())
}

func TestRootCommand_SolveFile(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"solve", samplePath})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "41\n6\n", out.String())
}

func TestRootCommand_SolveStdin(t *testing.T) {
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(bytes.NewReader(data))
	rootCmd.SetArgs([]string{"solve", "-"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "41\n6\n", out.String())
}

func TestSolveFile_Missing(t *testing.T) {
	var out bytes.Buffer
	err := solveFile(context.Background(), &out, filepath.Join(t.TempDir(), "absent.txt"), testConfig(t, nil), logging.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}
