package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/output"
	"github.com/opmodel/vitetags/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show vitetags version information.

Displays:
  - vitetags version, commit, and build date
  - Go version and CUE SDK version`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			format, err := cmdutil.ResolveFormat(cfg.Output, output.FormatTable,
				output.FormatTable, output.FormatJSON, output.FormatYAML)
			if err != nil {
				return cmdutil.Fail("invalid flags", err)
			}

			info := version.GetInfo()
			if format != output.FormatTable {
				return output.WriteValue(c.OutOrStdout(), info, format)
			}

			_, err = fmt.Fprintln(c.OutOrStdout(), info.String())
			return err
		},
	}
}
