package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFile(t *testing.T) {
	t.Run("defaults to vite.yaml", func(t *testing.T) {
		t.Setenv("VITE_CONFIG", "")
		assert.Equal(t, "vite.yaml", GetConfigFile())
	})

	t.Run("respects VITE_CONFIG", func(t *testing.T) {
		t.Setenv("VITE_CONFIG", "/etc/vitetags/vite.yaml")
		assert.Equal(t, "/etc/vitetags/vite.yaml", GetConfigFile())
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"vite.yaml", "vite.yaml"},
		{"/absolute/vite.yaml", "/absolute/vite.yaml"},
		{"~", homeDir},
		{"~/project/vite.yaml", filepath.Join(homeDir, "project/vite.yaml")},
		{"~other/vite.yaml", "~other/vite.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
