package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
)

// NewAssetCmd creates the asset command.
func NewAssetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "asset <entrypoint>",
		Short: "Print the URL of an asset",
		Long: `Print the URL an asset is served from.

In hot mode this is the dev server URL. In manifest mode the asset must be a
manifest entry and the URL of its emitted file is printed.

Examples:
  vitetags asset resources/images/logo.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}

			url, err := cfg.Resolver.AssetPath(args[0])
			if err != nil {
				return cmdutil.Fail("could not resolve asset", err)
			}

			_, err = fmt.Fprintln(c.OutOrStdout(), url)
			return err
		},
	}
}
