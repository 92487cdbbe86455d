package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/vitetags/internal/testutil"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	testutil.ClearViteEnv(t)

	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "vite.yaml")

		content := `
hotFile: tmp/hot.json
buildDirectory: dist
assetsUrl: https://cdn.example.com
entrypoints:
  - resources/js/app.js
  - resources/css/app.css
reload:
  - resources/views/**/*.edge
scriptAttributes:
  defer: true
styleAttributes:
  media: screen
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "tmp/hot.json", cfg.HotFile)
		assert.Equal(t, "dist", cfg.BuildDirectory)
		assert.Equal(t, "https://cdn.example.com", cfg.AssetsURL)
		assert.Equal(t, []string{"resources/js/app.js", "resources/css/app.css"}, cfg.Entrypoints)
		assert.Equal(t, []string{"resources/views/**/*.edge"}, cfg.Reload)
		assert.Equal(t, true, cfg.ScriptAttributes["defer"])
		assert.Equal(t, "screen", cfg.StyleAttributes["media"])
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, configFile, loader.ConfigFileUsed())
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.HotFile)
		assert.Empty(t, cfg.Entrypoints)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "vite.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("hotFile: [unterminated"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("VITE_HOT_FILE", "env/hot.json")
		t.Setenv("VITE_ASSETS_URL", "https://env.example.com")
		t.Setenv("VITE_ENTRYPOINTS", "a.js,b.css")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env/hot.json", cfg.HotFile)
		assert.Equal(t, "https://env.example.com", cfg.AssetsURL)
		assert.Equal(t, []string{"a.js", "b.css"}, cfg.Entrypoints)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("VITE_BUILD_DIRECTORY", "env-dist")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "vite.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`buildDirectory: file-dist`), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-dist", cfg.BuildDirectory)
	})
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "vite.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		exists, err := ConfigFileExists(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
