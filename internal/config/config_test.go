package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Silent)
}

func TestLoadParsesYamlFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".satprove.yaml")
	content := "silent: true\ngiven_clause_heuristic: FIFO\nrelevance_distance: 3\ncpu_limit: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Silent)
	assert.True(t, *cfg.Silent)
	require.NotNil(t, cfg.GivenClauseHeuristic)
	assert.Equal(t, "FIFO", *cfg.GivenClauseHeuristic)
	require.NotNil(t, cfg.RelevanceDistance)
	assert.Equal(t, 3, *cfg.RelevanceDistance)
}

func TestResolveFillsAlgorithmicDefaults(t *testing.T) {
	settings, err := Resolve(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "PickGiven5", settings.GivenClauseHeuristic)
	assert.Equal(t, "first", settings.NegLitSelection)
	assert.False(t, settings.Index)
	assert.Equal(t, time.Duration(0), settings.CPULimit)
}

func TestResolveHonoursConfigFileValues(t *testing.T) {
	heuristic := "FIFO"
	distance := 2
	cfg := &Config{GivenClauseHeuristic: &heuristic, RelevanceDistance: &distance}
	settings, err := Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FIFO", settings.GivenClauseHeuristic)
	assert.Equal(t, 2, settings.RelevanceDistance)
}

func TestResolveRejectsUnparseableCpuLimit(t *testing.T) {
	bogus := "not-a-duration"
	cfg := &Config{CPULimit: &bogus}
	_, err := Resolve(cfg)
	assert.Error(t, err)
}

func TestApplyFlagOverrideWins(t *testing.T) {
	settings, err := Resolve(DefaultConfig())
	require.NoError(t, err)
	settings.ApplyFlagOverride("given-clause-heuristic", "SymbolCount")
	settings.ApplyFlagOverride("index", true)
	assert.Equal(t, "SymbolCount", settings.GivenClauseHeuristic)
	assert.True(t, settings.Index)
}

func TestFindConfigPrefersExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("proof: true\n"), 0o644))

	cfg, err := FindConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Proof)
	assert.True(t, *cfg.Proof)
}
