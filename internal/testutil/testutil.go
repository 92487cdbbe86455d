// Package testutil provides test helpers for vitetags tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ViteEnv lists the environment variables read by vitetags.
var ViteEnv = []string{
	"VITE_CONFIG",
	"VITE_HOT_FILE",
	"VITE_BUILD_DIRECTORY",
	"VITE_ASSETS_URL",
	"VITE_ENTRYPOINTS",
}

// ClearViteEnv blanks every VITE_* variable for the duration of the test.
func ClearViteEnv(t *testing.T) {
	t.Helper()
	for _, name := range ViteEnv {
		t.Setenv(name, "")
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
