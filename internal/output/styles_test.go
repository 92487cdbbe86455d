package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestModeStyle(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		wantFG lipgloss.TerminalColor
		bold   bool
	}{
		{name: "hot is bold green", mode: ModeHot, wantFG: ColorGreen, bold: true},
		{name: "manifest is bold blue", mode: ModeManifest, wantFG: ColorBlue, bold: true},
		{name: "unknown is unstyled", mode: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := ModeStyle(tt.mode)
			assert.Equal(t, tt.bold, style.GetBold())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestKindStyle(t *testing.T) {
	assert.Equal(t, ColorYellow, KindStyle("style").GetForeground())
	assert.Equal(t, ColorBlue, KindStyle("script").GetForeground())
}

func TestFormatMode(t *testing.T) {
	t.Run("with url", func(t *testing.T) {
		line := stripAnsi(FormatMode(ModeHot, "http://localhost:5173"))
		assert.True(t, strings.HasPrefix(line, "mode: hot"))
		assert.True(t, strings.HasSuffix(line, "http://localhost:5173"))
	})

	t.Run("without url", func(t *testing.T) {
		assert.Equal(t, "mode: manifest", stripAnsi(FormatMode(ModeManifest, "")))
	})
}

func TestFormatVetCheck(t *testing.T) {
	t.Run("without detail has no trailing whitespace", func(t *testing.T) {
		stripped := stripAnsi(FormatVetCheck("Config file found", ""))
		assert.Contains(t, stripped, "✔")
		assert.False(t, strings.HasSuffix(stripped, " "))
	})

	t.Run("alignment consistency", func(t *testing.T) {
		line1 := stripAnsi(FormatVetCheck("Config file found", "vite.yaml"))
		line2 := stripAnsi(FormatVetCheck("Schema valid", "vite.yaml"))

		assert.Equal(t, strings.Index(line1, "vite.yaml"), strings.Index(line2, "vite.yaml"),
			"detail text should align to same column")
	})
}

func TestFormatReloadMatch(t *testing.T) {
	line := stripAnsi(FormatReloadMatch("resources/views/home.edge", "resources/views/**/*.edge"))
	assert.Equal(t, "resources/views/home.edge <- resources/views/**/*.edge", line)
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
