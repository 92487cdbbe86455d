package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: entrypoints, files, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks hot mode and passing checks.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks stylesheets.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue marks manifest mode and scripts.
	ColorBlue = lipgloss.Color("12")

	// ColorBoldRed marks failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Mode names.
const (
	ModeHot      = "hot"
	ModeManifest = "manifest"
)

// ModeStyle returns the style for a mode name.
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case ModeHot:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case ModeManifest:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	default:
		return lipgloss.NewStyle()
	}
}

// KindStyle returns the style for a tag kind ("script" or "style").
func KindStyle(kind string) lipgloss.Style {
	switch kind {
	case "style":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "script":
		return lipgloss.NewStyle().Foreground(ColorBlue)
	default:
		return lipgloss.NewStyle()
	}
}

// minLabelWidth aligns the detail column of check and mode lines.
const minLabelWidth = 24

// FormatMode renders the resolver mode with the URL assets are served from.
//
// Format: mode: <hot|manifest>  <url>
func FormatMode(mode, url string) string {
	line := StyleDim.Render("mode: ") + ModeStyle(mode).Render(mode)
	if url == "" {
		return line
	}
	padding := minLabelWidth - len(mode)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleNoun.Render(url)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatVetCheck renders a checkmark line with an optional detail aligned
// to a fixed column.
func FormatVetCheck(label, detail string) string {
	if detail == "" {
		return FormatCheckmark(label)
	}
	padding := minLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return FormatCheckmark(label) + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatReloadMatch renders a path that matched a reload glob.
func FormatReloadMatch(path, pattern string) string {
	return fmt.Sprintf("%s %s %s", StyleNoun.Render(path), StyleDim.Render("<-"), pattern)
}
