// Package cmdutil provides helpers shared by the vitetags commands:
// attribute flags, output format selection and error reporting.
package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/vitetags/internal/errors"
	"github.com/opmodel/vitetags/internal/output"
	"github.com/opmodel/vitetags/pkg/vite"
)

// AttrFlags holds the repeatable --attr flag.
type AttrFlags struct {
	Raw []string
}

// AddTo registers the attribute flag on the given cobra command.
func (f *AttrFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Raw, "attr", nil,
		"Extra tag attribute as name=value, or name for a boolean attribute (can be repeated)")
}

// Attributes parses the flag values in the order they were given.
func (f *AttrFlags) Attributes() (vite.Attributes, error) {
	return ParseAttributes(f.Raw)
}

// ParseAttributes parses name=value pairs. A bare name, "name=true" and
// "name=false" produce boolean attributes.
func ParseAttributes(raw []string) (vite.Attributes, error) {
	attrs := make(vite.Attributes, 0, len(raw))
	for _, item := range raw {
		name, value, hasValue := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid attribute %q", item),
				"--attr",
				"Use --attr name=value or --attr name",
				nil,
			)
		}

		var v any = true
		if hasValue {
			switch value {
			case "true":
			case "false":
				v = false
			default:
				v = value
			}
		}
		attrs = vite.Merge(attrs, vite.Attributes{{Name: name, Value: v}})
	}
	return attrs, nil
}

// ResolveFormat returns the requested format, or fallback when none was
// requested. Formats outside allowed are rejected.
func ResolveFormat(requested, fallback output.OutputFormat, allowed ...output.OutputFormat) (output.OutputFormat, error) {
	format := requested
	if format == "" {
		format = fallback
	}
	for _, a := range allowed {
		if a == format {
			return format, nil
		}
	}

	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, string(a))
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("output format %q is not supported here", format),
		"--output",
		"Supported: "+strings.Join(names, ", "),
		nil,
	)
}

// PrintError reports err on stderr. DetailError values print their
// multi-line details below the summary line.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message))
		output.Details(detail.Details())
		return
	}
	output.Error(msg, "error", err)
}

// Fail prints err and returns it as an *ExitError marked as printed, with
// the exit code mapped from its sentinel.
func Fail(msg string, err error) error {
	PrintError(msg, err)

	exitErr := oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	exitErr.Printed = true
	output.Debug("command failed", "exit", exitErr.Code, "reason", oerrors.ExitCodeName(exitErr.Code))
	return exitErr
}
