package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/output"
)

// NewManifestCmd creates the manifest command.
func NewManifestCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the build manifest",
		Long: `Print the entries of manifest.json in file order.

Fails while the dev server is running, since there is no manifest to read.

Examples:
  vitetags manifest
  vitetags manifest -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}

			format, err := cmdutil.ResolveFormat(cfg.Output, output.FormatTable,
				output.FormatTable, output.FormatJSON, output.FormatYAML)
			if err != nil {
				return cmdutil.Fail("invalid flags", err)
			}

			m, err := cfg.Resolver.Manifest()
			if err != nil {
				return cmdutil.Fail("could not read manifest", err)
			}

			return output.WriteManifest(c.OutOrStdout(), m, format)
		},
	}
}
