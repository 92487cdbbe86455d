package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
)

// NewTagsCmd creates the tags command.
func NewTagsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var attrFlags cmdutil.AttrFlags

	c := &cobra.Command{
		Use:   "tags [entrypoint...]",
		Short: "Render the tags for entrypoints",
		Long: `Render the <script> and <link> tags needed to load entrypoints.

Without arguments the entrypoints from the config file are used. In manifest
mode stylesheets imported by an entrypoint are included, duplicates are
dropped and stylesheets come before scripts.

Examples:
  # Tags for the configured entrypoints
  vitetags tags

  # Tags for one entrypoint with extra attributes
  vitetags tags resources/js/app.js --attr defer --attr nonce=abc123

  # Tag descriptors as JSON
  vitetags tags resources/js/app.js -o json`,
		RunE: func(c *cobra.Command, args []string) error {
			return runTags(c, args, cfg, &attrFlags)
		},
	}

	attrFlags.AddTo(c)

	return c
}

func runTags(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, attrFlags *cmdutil.AttrFlags) error {
	if err := requireConfig(cfg); err != nil {
		return err
	}

	format, err := cmdutil.ResolveFormat(cfg.Output, output.FormatHTML,
		output.FormatHTML, output.FormatJSON, output.FormatYAML, output.FormatTable)
	if err != nil {
		return cmdutil.Fail("invalid flags", err)
	}

	attrs, err := attrFlags.Attributes()
	if err != nil {
		return cmdutil.Fail("invalid flags", err)
	}

	entrypoints := args
	if len(entrypoints) == 0 {
		entrypoints = cfg.Resolver.Entrypoints()
	}
	if len(entrypoints) == 0 {
		return cmdutil.Fail("nothing to render", oerrors.NewValidationError(
			"no entrypoints given", cfg.ConfigPath,
			"Pass entrypoints as arguments or list them under entrypoints in the config file", nil))
	}

	hot := cfg.Resolver.IsHot()
	for _, entrypoint := range entrypoints {
		output.ScopedLogger(entrypoint).Debug("rendering tags", "hot", hot)
	}

	tags, err := cfg.Resolver.GenerateEntryPointsTags(entrypoints, attrs)
	if err != nil {
		return cmdutil.Fail("could not render tags", err)
	}

	return output.WriteTags(c.OutOrStdout(), tags, format)
}
