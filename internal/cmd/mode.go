package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/output"
)

// modeInfo is the structured form of the mode command output.
type modeInfo struct {
	Mode      string `json:"mode"`
	DevURL    string `json:"devUrl,omitempty"`
	AssetsURL string `json:"assetsUrl"`
	HotFile   string `json:"hotFile"`
	Manifest  string `json:"manifest"`
}

// NewModeCmd creates the mode command.
func NewModeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Show whether assets come from the dev server or the build",
		Long: `Show the current resolver mode.

"hot" means the dev server hot file exists and assets are served by the
dev server. "manifest" means built assets are resolved through manifest.json.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runMode(c, cfg)
		},
	}
}

func runMode(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	if err := requireConfig(cfg); err != nil {
		return err
	}

	format, err := cmdutil.ResolveFormat(cfg.Output, output.FormatTable,
		output.FormatTable, output.FormatJSON, output.FormatYAML)
	if err != nil {
		return cmdutil.Fail("invalid flags", err)
	}

	r := cfg.Resolver
	hot, assetsURL, err := r.Mode()
	if err != nil {
		return cmdutil.Fail("could not read hot file", err)
	}

	info := modeInfo{
		Mode:      output.ModeManifest,
		AssetsURL: assetsURL,
		HotFile:   cfg.Config.HotFile,
		Manifest:  r.ManifestPath(),
	}
	if hot {
		info.Mode = output.ModeHot
		info.DevURL = assetsURL
	}

	if format != output.FormatTable {
		return output.WriteValue(c.OutOrStdout(), info, format)
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatMode(info.Mode, info.AssetsURL))
	return err
}
