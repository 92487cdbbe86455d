package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/output"
	"github.com/opmodel/vitetags/pkg/vite"
)

// NewReactRefreshCmd creates the react-refresh command.
func NewReactRefreshCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var attrFlags cmdutil.AttrFlags

	c := &cobra.Command{
		Use:   "react-refresh",
		Short: "Render the React fast refresh preamble",
		Long: `Render the inline script that installs React fast refresh.

It must appear before the entrypoint tags. Outside hot mode nothing is
printed.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}

			format, err := cmdutil.ResolveFormat(cfg.Output, output.FormatHTML,
				output.FormatHTML, output.FormatJSON, output.FormatYAML)
			if err != nil {
				return cmdutil.Fail("invalid flags", err)
			}

			attrs, err := attrFlags.Attributes()
			if err != nil {
				return cmdutil.Fail("invalid flags", err)
			}

			script, err := cfg.Resolver.ReactHMRScript(attrs)
			if err != nil {
				return cmdutil.Fail("could not render preamble", err)
			}

			tags := []vite.Element{}
			if script != nil {
				tags = append(tags, *script)
			}
			return output.WriteTags(c.OutOrStdout(), tags, format)
		},
	}

	attrFlags.AddTo(c)

	return c
}
