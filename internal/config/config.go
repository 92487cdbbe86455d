// Package config provides configuration loading and management.
package config

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/opmodel/vitetags/pkg/vite"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the vitetags configuration, usually read from vite.yaml.
type Config struct {
	// HotFile is the path of the dev server hot file.
	// Env: VITE_HOT_FILE, Default: public/hot.json
	HotFile string `mapstructure:"hotFile" yaml:"hotFile,omitempty" json:"hotFile,omitempty"`

	// BuildDirectory is where `vite build` writes manifest.json.
	// Env: VITE_BUILD_DIRECTORY, Default: public/assets
	BuildDirectory string `mapstructure:"buildDirectory" yaml:"buildDirectory,omitempty" json:"buildDirectory,omitempty"`

	// AssetsURL is the base URL built assets are served from, e.g. a CDN.
	// Env: VITE_ASSETS_URL, Default: ""
	AssetsURL string `mapstructure:"assetsUrl" yaml:"assetsUrl,omitempty" json:"assetsUrl,omitempty"`

	// Entrypoints are the source paths rendered when no entrypoint is given.
	// Env: VITE_ENTRYPOINTS (comma separated)
	Entrypoints []string `mapstructure:"entrypoints" yaml:"entrypoints,omitempty" json:"entrypoints,omitempty"`

	// Reload lists globs of files that trigger a full page reload.
	Reload []string `mapstructure:"reload" yaml:"reload,omitempty" json:"reload,omitempty"`

	// ScriptAttributes are added to every script tag.
	ScriptAttributes map[string]any `mapstructure:"scriptAttributes" yaml:"scriptAttributes,omitempty" json:"scriptAttributes,omitempty"`

	// StyleAttributes are added to every stylesheet tag.
	StyleAttributes map[string]any `mapstructure:"styleAttributes" yaml:"styleAttributes,omitempty" json:"styleAttributes,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `vitetags config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		HotFile:        vite.DefaultHotFile,
		BuildDirectory: vite.DefaultBuildDirectory,
		Entrypoints:    []string{"resources/js/app.js"},
		Reload:         []string{"resources/views/**/*.edge"},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.HotFile == "" {
		out.HotFile = vite.DefaultHotFile
	}
	if out.BuildDirectory == "" {
		out.BuildDirectory = vite.DefaultBuildDirectory
	}
	return &out
}

// Options converts the configuration into resolver options. Attribute maps
// are ordered by name.
func (c *Config) Options(fs afero.Fs, logger *log.Logger) vite.Options {
	return vite.Options{
		HotFile:          c.HotFile,
		Entrypoints:      c.Entrypoints,
		AssetsURL:        c.AssetsURL,
		BuildDirectory:   c.BuildDirectory,
		Reload:           c.Reload,
		ScriptAttributes: staticAttributes(c.ScriptAttributes),
		StyleAttributes:  staticAttributes(c.StyleAttributes),
		FS:               fs,
		Logger:           logger,
	}
}

func staticAttributes(m map[string]any) vite.AttributeProvider {
	if len(m) == 0 {
		return vite.AttributeProvider{}
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make(vite.Attributes, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, vite.Attribute{Name: name, Value: m[name]})
	}
	return vite.StaticAttributes(attrs)
}
