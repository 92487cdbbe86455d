package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/config"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the vitetags config file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Values satisfy the config schema
  4. Reload globs compile

Examples:
  vitetags config vet
  vitetags config vet --config deploy/vite.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path := cfg.ConfigPath
	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Fail("could not check config file", err)
	}
	if !exists {
		return cmdutil.Fail("config vet failed", oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'vitetags config init' to create default configuration"))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.Fail("could not compile config schema", err)
	}
	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			return cmdutil.Fail("config vet failed", oerrors.NewValidationError(
				"configuration does not match the schema", path,
				"Fix the fields listed above and run 'vitetags config vet' again", err))
		}
		return cmdutil.Fail("config vet failed", oerrors.NewValidationError(
			"configuration file could not be parsed", path, "", err))
	}

	out := c.OutOrStdout()
	lines := []string{
		output.FormatVetCheck("Config file found", path),
		output.FormatVetCheck("Schema valid", ""),
		output.FormatVetCheck("Reload globs compile", fmt.Sprintf("%d pattern(s)", len(cfg.Config.Reload))),
		output.FormatVetCheck("Entrypoints", fmt.Sprintf("%d configured", len(cfg.Config.Entrypoints))),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
