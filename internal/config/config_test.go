package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/vitetags/pkg/vite"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "public/hot.json", cfg.HotFile)
	assert.Equal(t, "public/assets", cfg.BuildDirectory)
	assert.Empty(t, cfg.AssetsURL)
	assert.NotEmpty(t, cfg.Entrypoints)
	assert.NotEmpty(t, cfg.Reload)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{AssetsURL: "https://cdn.example.com"}).WithDefaults()

	assert.Equal(t, vite.DefaultHotFile, cfg.HotFile)
	assert.Equal(t, vite.DefaultBuildDirectory, cfg.BuildDirectory)
	assert.Equal(t, "https://cdn.example.com", cfg.AssetsURL)

	custom := (&Config{HotFile: "tmp/hot.json"}).WithDefaults()
	assert.Equal(t, "tmp/hot.json", custom.HotFile)
}

func TestConfigOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "build/manifest.json",
		[]byte(`{"app.js": {"file": "app-1.js", "css": ["app-2.css"]}}`), 0o644))

	cfg := &Config{
		HotFile:          "hot.json",
		BuildDirectory:   "build",
		AssetsURL:        "/static/",
		Entrypoints:      []string{"app.js"},
		ScriptAttributes: map[string]any{"defer": true, "crossorigin": "anonymous"},
		StyleAttributes:  map[string]any{"media": "all"},
	}

	r := vite.New(cfg.Options(fs, nil))
	tags, err := r.GenerateEntryPointsTags(r.Entrypoints(), nil)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	// Attributes from maps are ordered by name.
	assert.Equal(t, `<link rel="stylesheet" media="all" href="/static/app-2.css"/>`, tags[0].String())
	assert.Equal(t, `<script type="module" crossorigin="anonymous" defer src="/static/app-1.js"></script>`, tags[1].String())
}

func TestConfigOptions_NoAttributes(t *testing.T) {
	opts := (&Config{}).Options(nil, nil)
	assert.True(t, opts.ScriptAttributes.IsZero())
	assert.True(t, opts.StyleAttributes.IsZero())
}
