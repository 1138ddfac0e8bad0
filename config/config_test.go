package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/config"
)

// inTempDir runs the test from an empty directory so no stray .env is loaded.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dot", cfg.DotBinary)
	assert.Equal(t, "graph.png", cfg.ImagePath)
	assert.Empty(t, cfg.WalkOutput)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "wordgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus: easy.txt\nseed: 7\nlog_level: debug\n"), 0o600))
	t.Setenv("WORDGRAPH_SEED", "42")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "easy.txt", cfg.Corpus)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORDGRAPH_WALK_OUTPUT=walk.txt\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("WORDGRAPH_WALK_OUTPUT") })

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "walk.txt", cfg.WalkOutput)
}

func TestLoad_Errors(t *testing.T) {
	dir := inTempDir(t)

	_, err := config.Load(config.New(), filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigFile)

	t.Setenv("WORDGRAPH_LOG_LEVEL", "loud")
	_, err = config.Load(config.New(), "")
	assert.ErrorIs(t, err, config.ErrLogLevel)
}
