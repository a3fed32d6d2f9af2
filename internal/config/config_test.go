package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"viewd/internal/config"
	"viewd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
viewport:
  rows: 900
  cols: 1600
display:
  backend: "terminal"
scan:
  patterns: ["*.jpg", "*.png"]
log:
  debug: true
`
	partialYAML = `
viewport:
  cols: 800
`
	invalidBackendYAML = `
display:
  backend: "holodeck"
`
	invalidSyntaxYAML = `
viewport:
  rows: [not a number
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		configFile := createTestYAML(t, validYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 900, cfg.Viewport.Rows)
		assert.Equal(t, 1600, cfg.Viewport.Cols)
		assert.Equal(t, config.BackendTerminal, cfg.Display.Backend)
		assert.Equal(t, []string{"*.jpg", "*.png"}, cfg.Scan.Patterns)
		assert.True(t, cfg.Log.Debug)
	})

	t.Run("partial config keeps defaults for unset fields", func(t *testing.T) {
		configFile := createTestYAML(t, partialYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		defaults := config.New()
		assert.Equal(t, 800, cfg.Viewport.Cols)
		assert.Equal(t, defaults.Viewport.Rows, cfg.Viewport.Rows)
		assert.Equal(t, defaults.Display.Backend, cfg.Display.Backend)
	})

	t.Run("load non-existent file returns defaults", func(t *testing.T) {
		nonExistentPath := filepath.Join(t.TempDir(), "does_not_exist.yaml")
		cfg, err := config.LoadConfigFile(nonExistentPath)

		require.NoError(t, err, "Loading non-existent file should return default config, not an error")
		require.NotNil(t, cfg)

		defaults := config.New()
		assert.Equal(t, defaults.Viewport, cfg.Viewport)
		assert.Equal(t, defaults.Display.Backend, cfg.Display.Backend)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		configFile := createTestYAML(t, invalidBackendYAML)
		_, err := config.LoadConfigFile(configFile)

		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("invalid YAML syntax is an error", func(t *testing.T) {
		configFile := createTestYAML(t, invalidSyntaxYAML)
		_, err := config.LoadConfigFile(configFile)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults validate", func(t *testing.T) {
		assert.NoError(t, config.New().Validate())
	})

	t.Run("non-positive viewport is rejected", func(t *testing.T) {
		cfg := config.New()
		cfg.Viewport.Rows = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}
