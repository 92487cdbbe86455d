// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmdutil.
package cmdtypes

import (
	"github.com/opmodel/vitetags/internal/config"
	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
	"github.com/opmodel/vitetags/pkg/vite"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is populated once per invocation and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file merged with resolved flags and env.
	Config *config.Config

	// ConfigErr is set when the config file exists but could not be read.
	// Commands that render tags refuse to run with it set.
	ConfigErr error

	// Resolved records where every value came from.
	Resolved *config.ResolvedConfig

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Output is the requested output format, empty when -o was not given.
	Output output.OutputFormat

	// Resolver renders tags for the resolved configuration.
	Resolver *vite.Resolver

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitParseError      = oerrors.ExitParseError
	ExitInvalidState    = oerrors.ExitInvalidState
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
