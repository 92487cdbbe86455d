package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := WriteFile(t, dir, "build/nested/manifest.json", "{}")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestClearViteEnv(t *testing.T) {
	t.Setenv("VITE_HOT_FILE", "somewhere/hot.json")

	ClearViteEnv(t)

	assert.Empty(t, os.Getenv("VITE_HOT_FILE"))
}
