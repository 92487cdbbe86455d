package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/vitetags/internal/cmdtypes"
	"github.com/opmodel/vitetags/internal/cmdutil"
	"github.com/opmodel/vitetags/internal/config"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
)

// NewReloadCheckCmd creates the reload-check command.
func NewReloadCheckCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "reload-check <path...>",
		Short: "Check which paths trigger a full page reload",
		Long: `Match changed paths against the reload globs from the config file.

Every matching path is printed with the glob it matched. The command exits
with status 1 when no path matches, so it can gate a reload in scripts.

Examples:
  vitetags reload-check resources/views/home.edge`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}

			matcher, err := config.NewReloadMatcher(cfg.Resolver.Reload())
			if err != nil {
				return cmdutil.Fail("invalid reload globs", oerrors.NewValidationError(
					"reload globs do not compile", cfg.ConfigPath, "", err))
			}

			matched := 0
			for _, path := range args {
				pattern, ok := matcher.Match(path)
				if !ok {
					output.Debug("no reload glob matches", "path", path)
					continue
				}
				matched++
				if _, err := fmt.Fprintln(c.OutOrStdout(), output.FormatReloadMatch(path, pattern)); err != nil {
					return err
				}
			}

			if matched == 0 {
				return &oerrors.ExitError{
					Code:    oerrors.ExitGeneralError,
					Err:     fmt.Errorf("none of %d path(s) match a reload glob", len(args)),
					Printed: true,
				}
			}
			return nil
		},
	}
}
