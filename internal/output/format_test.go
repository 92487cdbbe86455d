package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatHTML, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTable, true},
		{OutputFormat("xml"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{input: "", want: FormatHTML},
		{input: "html", want: FormatHTML},
		{input: "JSON", want: FormatJSON},
		{input: "yml", want: FormatYAML},
		{input: "yaml", want: FormatYAML},
		{input: "table", want: FormatTable},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input, FormatHTML)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: html, json, yaml, table")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()

	assert.Equal(t, []string{"html", "json", "yaml", "table"}, formats)
}
