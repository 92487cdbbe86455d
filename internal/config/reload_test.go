package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadMatcher(t *testing.T) {
	m, err := NewReloadMatcher([]string{"resources/views/**/*.edge", "./config/*.yaml"})
	require.NoError(t, err)

	tests := []struct {
		path    string
		pattern string
		ok      bool
	}{
		{"resources/views/home.edge", "resources/views/**/*.edge", true},
		{"resources/views/pages/users/show.edge", "resources/views/**/*.edge", true},
		{"./resources/views/home.edge", "resources/views/**/*.edge", true},
		{`resources\views\home.edge`, "resources/views/**/*.edge", true},
		{"config/app.yaml", "./config/*.yaml", true},
		{"config/nested/app.yaml", "", false},
		{"resources/js/app.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			pattern, ok := m.Match(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestReloadMatcher_Empty(t *testing.T) {
	m, err := NewReloadMatcher(nil)
	require.NoError(t, err)

	_, ok := m.Match("anything.edge")
	assert.False(t, ok)
}

func TestReloadMatcher_InvalidPattern(t *testing.T) {
	_, err := NewReloadMatcher([]string{"views/[abc"})
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "reload", verr.Field)
}

func TestReloadMatcher_DefaultGlob(t *testing.T) {
	m, err := NewReloadMatcher(DefaultConfig().Reload)
	require.NoError(t, err)

	for _, path := range []string{
		"resources/views/home.edge",
		"resources/views/pages/home.edge",
		"resources/views/pages/users/show.edge",
	} {
		t.Run(path, func(t *testing.T) {
			var (
				pattern string
				ok      bool
			)
			require.NotPanics(t, func() { pattern, ok = m.Match(path) })
			assert.True(t, ok)
			assert.Equal(t, "resources/views/**/*.edge", pattern)
		})
	}

	_, ok := m.Match("resources/views/home.html")
	assert.False(t, ok)
}

func TestReloadMatcher_MultipleRecursiveSegments(t *testing.T) {
	m, err := NewReloadMatcher([]string{"app/**/views/**/*.edge"})
	require.NoError(t, err)

	_, ok := m.Match("app/views/home.edge")
	assert.True(t, ok)
	_, ok = m.Match("app/admin/views/users/list.edge")
	assert.True(t, ok)
}
