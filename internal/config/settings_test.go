package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "console", s.Log.Format)
	assert.Equal(t, "sqlite", s.Store.Driver)
	assert.Equal(t, "dintilhac.db", s.Store.DSN)
	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, "console", s.Output.Format)
}

func TestLoadSettings_File(t *testing.T) {
	path, err := filepath.Abs("../../testdata/settings.yaml")
	require.NoError(t, err)
	chdir(t, t.TempDir())

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "postgres", s.Store.Driver)
	assert.Equal(t, ":9090", s.Server.Addr)
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DINTILHAC_STORE_DSN", "/var/lib/dintilhac/cases.db")
	t.Setenv("DINTILHAC_SERVER_ADDR", "127.0.0.1:7000")

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/dintilhac/cases.db", s.Store.DSN)
	assert.Equal(t, "127.0.0.1:7000", s.Server.Addr)
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DINTILHAC_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DINTILHAC_LOG_LEVEL") })

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestLoadSettings_InvalidDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DINTILHAC_STORE_DRIVER", "mysql")

	_, err := LoadSettings("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.driver")
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadSettings("nope.yaml")
	assert.Error(t, err)
}
