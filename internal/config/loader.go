package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Environment variable prefix for vitetags configuration.
const envPrefix = "VITE"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)

	// Bind specific environment variables
	_ = v.BindEnv("hotFile", "VITE_HOT_FILE")
	_ = v.BindEnv("buildDirectory", "VITE_BUILD_DIRECTORY")
	_ = v.BindEnv("assetsUrl", "VITE_ASSETS_URL")
	_ = v.BindEnv("entrypoints", "VITE_ENTRYPOINTS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is fine; defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileUsed returns the path viper read, or "" before Load.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
