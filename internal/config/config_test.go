//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/data/elements.toml", filepath.Join(home, "data", "elements.toml")},
		{"absolute path unchanged", "/srv/elements.toml", "/srv/elements.toml"},
		{"relative path unchanged", "data/elements.toml", "data/elements.toml"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)

	// Last path should be local config.toml
	assert.Equal(t, "config.toml", paths[len(paths)-1])

	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(home, ".config", "periodic", "config.toml"), paths[0])
	}
}

func TestGetNarrowThreshold(t *testing.T) {
	assert.Equal(t, DefaultNarrowThreshold, (&Config{}).GetNarrowThreshold())
	assert.Equal(t, DefaultNarrowThreshold, (&Config{NarrowThreshold: -4}).GetNarrowThreshold())
	assert.Equal(t, 90, (&Config{NarrowThreshold: 90}).GetNarrowThreshold())
}

func TestGetLogConfig_Defaults(t *testing.T) {
	log := (&Config{}).GetLogConfig()

	assert.Equal(t, "info", log.Level)
	assert.Equal(t, 5, log.MaxSize)
	assert.Equal(t, 3, log.MaxBackups)
	assert.Equal(t, 28, log.MaxAge)
	assert.Empty(t, log.File)
	assert.False(t, log.Compress)
}

func TestGetLogConfig_CustomValues(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "debug", File: "/tmp/p.log", MaxSize: 10, MaxBackups: 1, MaxAge: 2, Compress: true}}
	assert.Equal(t, cfg.Log, cfg.GetLogConfig())
}

// chdirTemp switches to a fresh temp directory for the duration of the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	return tmpDir
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(""), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	// Values may be inherited from ~/.config/periodic/config.toml if it exists.
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)
	configContent := `
icons = "nerd"
theme = "light"
dataset = "~/elements.toml"
strict_dataset = true
narrow_threshold = 100

[log]
level = "debug"
file = "~/periodic.log"
max_size = 1
`
	require.NoError(t, os.WriteFile("config.toml", []byte(configContent), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, filepath.Join(home, "elements.toml"), cfg.Dataset)
	assert.True(t, cfg.StrictDataset)
	assert.Equal(t, 100, cfg.GetNarrowThreshold())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "periodic.log"), cfg.Log.File)
	assert.Equal(t, 1, cfg.GetLogConfig().MaxSize)
}

func TestLoad_ExtraFileWins(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte(`theme = "light"`), 0o600))
	extra := filepath.Join(dir, "extra.toml")
	require.NoError(t, os.WriteFile(extra, []byte(`theme = "dark"`), 0o600))

	cfg, err := Load(extra)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_MissingExtraFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("invalid = [[["), 0o600))

	_, err := Load("")
	assert.Error(t, err)
}
