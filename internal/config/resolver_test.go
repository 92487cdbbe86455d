package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/vitetags/internal/testutil"
)

func TestResolveAll_Defaults(t *testing.T) {
	testutil.ClearViteEnv(t)

	resolved := ResolveAll(ResolveAllOptions{})

	assert.Equal(t, "vite.yaml", resolved.ConfigPath.Value)
	assert.Equal(t, SourceDefault, resolved.ConfigPath.Source)
	assert.Equal(t, "public/hot.json", resolved.HotFile.Value)
	assert.Equal(t, SourceDefault, resolved.HotFile.Source)
	assert.Equal(t, "public/assets", resolved.BuildDirectory.Value)
	assert.Equal(t, "", resolved.AssetsURL.Value)
	assert.Equal(t, ConfigSource(""), resolved.AssetsURL.Source)
}

func TestResolveAll_Precedence(t *testing.T) {
	t.Run("flag wins over env and config", func(t *testing.T) {
		testutil.ClearViteEnv(t)
		t.Setenv("VITE_HOT_FILE", "env/hot.json")

		resolved := ResolveAll(ResolveAllOptions{
			HotFileFlag: "flag/hot.json",
			Config:      &Config{HotFile: "config/hot.json"},
		})

		assert.Equal(t, "flag/hot.json", resolved.HotFile.Value)
		assert.Equal(t, SourceFlag, resolved.HotFile.Source)
		assert.Equal(t, "env/hot.json", resolved.HotFile.Shadowed[SourceEnv])
		assert.Equal(t, "config/hot.json", resolved.HotFile.Shadowed[SourceConfig])
		assert.Equal(t, "public/hot.json", resolved.HotFile.Shadowed[SourceDefault])
	})

	t.Run("env wins over config", func(t *testing.T) {
		testutil.ClearViteEnv(t)
		t.Setenv("VITE_BUILD_DIRECTORY", "env-dist")

		resolved := ResolveAll(ResolveAllOptions{
			Config: &Config{BuildDirectory: "config-dist"},
		})

		assert.Equal(t, "env-dist", resolved.BuildDirectory.Value)
		assert.Equal(t, SourceEnv, resolved.BuildDirectory.Source)
		assert.Equal(t, "config-dist", resolved.BuildDirectory.Shadowed[SourceConfig])
	})

	t.Run("config wins over default", func(t *testing.T) {
		testutil.ClearViteEnv(t)

		resolved := ResolveAll(ResolveAllOptions{
			Config: &Config{AssetsURL: "https://cdn.example.com"},
		})

		assert.Equal(t, "https://cdn.example.com", resolved.AssetsURL.Value)
		assert.Equal(t, SourceConfig, resolved.AssetsURL.Source)
		assert.Empty(t, resolved.AssetsURL.Shadowed)
	})

	t.Run("equal values are not shadowed", func(t *testing.T) {
		testutil.ClearViteEnv(t)
		t.Setenv("VITE_ASSETS_URL", "/static")

		resolved := ResolveAll(ResolveAllOptions{
			Config: &Config{AssetsURL: "/static"},
		})

		assert.Equal(t, SourceEnv, resolved.AssetsURL.Source)
		assert.Empty(t, resolved.AssetsURL.Shadowed)
	})
}

func TestResolvedConfig_Apply(t *testing.T) {
	testutil.ClearViteEnv(t)

	cfg := &Config{HotFile: "config/hot.json", Entrypoints: []string{"app.js"}}
	resolved := ResolveAll(ResolveAllOptions{
		BuildDirectoryFlag: "dist",
		Config:             cfg,
	})

	out := resolved.Apply(cfg)

	assert.Equal(t, "config/hot.json", out.HotFile)
	assert.Equal(t, "dist", out.BuildDirectory)
	assert.Equal(t, []string{"app.js"}, out.Entrypoints)
	assert.Empty(t, cfg.BuildDirectory, "Apply must not modify its argument")
}

func TestResolvedConfig_Values(t *testing.T) {
	testutil.ClearViteEnv(t)

	values := ResolveAll(ResolveAllOptions{}).Values()

	keys := make([]string, 0, len(values))
	for _, v := range values {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []string{"config", "hotFile", "buildDirectory", "assetsUrl"}, keys)
}
