package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatHTML writes one HTML tag per line.
	FormatHTML OutputFormat = "html"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatTable outputs in table format.
	FormatTable OutputFormat = "table"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat. The empty string
// selects fallback.
func ParseOutputFormat(s string, fallback OutputFormat) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "":
		return fallback, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the names of all formats.
func ValidFormats() []string {
	return []string{
		FormatHTML.String(),
		FormatJSON.String(),
		FormatYAML.String(),
		FormatTable.String(),
	}
}
