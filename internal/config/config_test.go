package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadArgs_Defaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, catalog.KindMemory, cfg.Source)
	assert.Equal(t, catalog.Movies, cfg.Section)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.Route)
	assert.Empty(t, cfg.File)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoadArgs_Flags(t *testing.T) {
	args := []string{
		"-source", "sqlite",
		"-section", "Shows",
		"-route", "details/shows/The%20Office",
		"-log-file", "/tmp/cp.log",
		"-debug",
		"-catalog", "movies.yaml",
		"extra",
	}
	cfg, err := LoadArgs(args, []string{"XDG_CONFIG_HOME=" + t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, catalog.KindSQLite, cfg.Source)
	assert.Equal(t, catalog.Shows, cfg.Section)
	assert.Equal(t, "details/shows/The%20Office", cfg.Route)
	assert.Equal(t, "/tmp/cp.log", cfg.Logging.FilePath)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "movies.yaml", cfg.CatalogPath)
	assert.Equal(t, []string{"extra"}, cfg.Args)
}

func TestLoadArgs_Environment(t *testing.T) {
	env := []string{
		"XDG_CONFIG_HOME=" + t.TempDir(),
		"COUCHPOTATO_SOURCE=sqlite",
		"COUCHPOTATO_SECTION=shows",
		"COUCHPOTATO_DEBUG=true",
		"COUCHPOTATO_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs(nil, env)
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSQLite, cfg.Source)
	assert.Equal(t, catalog.Shows, cfg.Section)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "/tmp/env.log", cfg.Logging.FilePath)

	cfg, err = LoadArgs([]string{"-section", "movies", "-debug=false"}, env)
	require.NoError(t, err)
	assert.Equal(t, catalog.Movies, cfg.Section, "flag beats env")
	assert.False(t, cfg.Logging.Debug)
}

func TestLoadArgs_ConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
catalog = "seed.yaml"
source = "sqlite"
section = "shows"
route = "home"
log_file = "file.log"
debug = true
`)

	cfg, err := LoadArgs([]string{"--config", path}, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "seed.yaml", cfg.CatalogPath)
	assert.Equal(t, catalog.KindSQLite, cfg.Source)
	assert.Equal(t, catalog.Shows, cfg.Section)
	assert.Equal(t, "home", cfg.Route)
	assert.Equal(t, "file.log", cfg.Logging.FilePath)
	assert.True(t, cfg.Logging.Debug)

	cfg, err = LoadArgs([]string{"--config=" + path, "-source", "memory"}, []string{"COUCHPOTATO_SECTION=movies"})
	require.NoError(t, err)
	assert.Equal(t, catalog.KindMemory, cfg.Source, "flag beats file")
	assert.Equal(t, catalog.Movies, cfg.Section, "env beats file")
}

func TestLoadArgs_ConfigFromEnvAndXDG(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `section = "shows"`)

	cfg, err := LoadArgs(nil, []string{"COUCHPOTATO_CONFIG=" + path})
	require.NoError(t, err)
	assert.Equal(t, catalog.Shows, cfg.Section)

	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "couchpotato"), 0o755))
	writeConfig(t, filepath.Join(xdg, "couchpotato"), `source = "sqlite"`)
	cfg, err = LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + xdg})
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSQLite, cfg.Source)
	assert.Equal(t, filepath.Join(xdg, "couchpotato", "config.toml"), cfg.File)
}

func TestLoadArgs_Errors(t *testing.T) {
	env := []string{"XDG_CONFIG_HOME=" + t.TempDir()}

	_, err := LoadArgs([]string{"-section", "cartoons"}, env)
	assert.Error(t, err)

	_, err = LoadArgs([]string{"-source", "postgres"}, env)
	assert.ErrorContains(t, err, "source must be")

	_, err = LoadArgs([]string{"-route", "profile"}, env)
	assert.ErrorIs(t, err, nav.ErrBadRoute)

	_, err = LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, env)
	assert.ErrorContains(t, err, "config file")

	bad := writeConfig(t, t.TempDir(), `section = [`)
	_, err = LoadArgs([]string{"-config", bad}, env)
	assert.ErrorContains(t, err, "config file")

	_, err = LoadArgs([]string{"-nope"}, env)
	assert.Error(t, err)

	_, err = LoadArgs([]string{"-h"}, env)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestUsage(t *testing.T) {
	u := Usage()
	assert.Contains(t, u, "Usage: couchpotato")
	assert.Contains(t, u, "-source")
	assert.Contains(t, u, "-route")
}
