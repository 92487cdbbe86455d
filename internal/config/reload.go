package config

import (
	"strings"

	"github.com/gobwas/glob"
)

// ReloadMatcher decides which changed files should trigger a full page
// reload. Patterns use '/' as separator; ** crosses directories and
// "/**/" also matches a single separator.
type ReloadMatcher struct {
	patterns []string
	globs    [][]glob.Glob
}

// NewReloadMatcher compiles the reload globs.
func NewReloadMatcher(patterns []string) (*ReloadMatcher, error) {
	m := &ReloadMatcher{}
	for _, pattern := range patterns {
		globs, err := compileReloadGlob(pattern)
		if err != nil {
			return nil, &ValidationError{Field: "reload", Message: err.Error()}
		}
		m.patterns = append(m.patterns, pattern)
		m.globs = append(m.globs, globs)
	}
	return m, nil
}

// Match returns the first pattern matching path.
func (m *ReloadMatcher) Match(path string) (string, bool) {
	path = normalizeReloadPath(path)
	for i, globs := range m.globs {
		for _, g := range globs {
			if g.Match(path) {
				return m.patterns[i], true
			}
		}
	}
	return "", false
}

// compileReloadGlob compiles pattern. A pattern containing "/**/" gets a
// second glob with it collapsed to "/", for zero intermediate directories.
func compileReloadGlob(pattern string) ([]glob.Glob, error) {
	pattern = normalizeReloadPath(pattern)

	variants := []string{pattern}
	if strings.Contains(pattern, "/**/") {
		variants = append(variants, strings.ReplaceAll(pattern, "/**/", "/"))
	}

	globs := make([]glob.Glob, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func normalizeReloadPath(p string) string {
	return strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "./")
}
