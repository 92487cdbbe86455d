package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/config"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
)

const configHeader = `# vitetags configuration.
#
# hotFile, buildDirectory, assetsUrl and entrypoints can be overridden with
# VITE_HOT_FILE, VITE_BUILD_DIRECTORY, VITE_ASSETS_URL and VITE_ENTRYPOINTS.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a config file with the default settings.

The file is written to the resolved config path:
  --config flag > VITE_CONFIG env > ./vite.yaml

Examples:
  # Initialize configuration
  vitetags config init

  # Overwrite existing configuration
  vitetags config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, cfg, afero.NewOsFs(), force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, fs afero.Fs, force bool) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return cmdutil.Fail("could not resolve config path", err)
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cmdutil.Fail("could not check config file", err)
	}
	if exists && !force {
		return cmdutil.Fail("config init failed", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return cmdutil.Fail("could not encode configuration", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return cmdutil.Fail("could not write configuration", err)
	}

	output.Debug("config written", "path", path, "force", force)
	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+output.StyleNoun.Render(path)))
	return err
}

func defaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
