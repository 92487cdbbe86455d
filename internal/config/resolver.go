package config

import (
	"os"

	"github.com/opmodel/vitetags/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with the source it came from.
type ResolvedValue struct {
	// Key is the configuration key, e.g. "hotFile".
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveValue picks the first non-empty of flag, env, config and default.
func resolveValue(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envName)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		// The loader already merged env into the config value.
		if c.value != result.Value {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

// ResolveAllOptions contains the raw inputs for ResolveAll.
type ResolveAllOptions struct {
	ConfigFlag         string
	HotFileFlag        string
	BuildDirectoryFlag string
	AssetsURLFlag      string
	OutputFlag         string

	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig holds every resolved value.
type ResolvedConfig struct {
	ConfigPath     ResolvedValue
	HotFile        ResolvedValue
	BuildDirectory ResolvedValue
	AssetsURL      ResolvedValue
	Output         string
}

// Values returns the resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.HotFile, r.BuildDirectory, r.AssetsURL}
}

// ResolveAll resolves every configuration value using precedence:
// (1) flag, (2) VITE_* env, (3) config file, (4) default.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &ResolvedConfig{
		ConfigPath:     resolveValue("config", opts.ConfigFlag, "VITE_CONFIG", "", DefaultConfigFile),
		HotFile:        resolveValue("hotFile", opts.HotFileFlag, "VITE_HOT_FILE", cfg.HotFile, DefaultConfig().HotFile),
		BuildDirectory: resolveValue("buildDirectory", opts.BuildDirectoryFlag, "VITE_BUILD_DIRECTORY", cfg.BuildDirectory, DefaultConfig().BuildDirectory),
		AssetsURL:      resolveValue("assetsUrl", opts.AssetsURLFlag, "VITE_ASSETS_URL", cfg.AssetsURL, ""),
		Output:         opts.OutputFlag,
	}
}

// Apply copies the resolved values into cfg.
func (r *ResolvedConfig) Apply(cfg *Config) *Config {
	out := *cfg
	out.HotFile = r.HotFile.Value
	out.BuildDirectory = r.BuildDirectory.Value
	out.AssetsURL = r.AssetsURL.Value
	return &out
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
