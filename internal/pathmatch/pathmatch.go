// Package pathmatch provides glob matching over slash-separated relative
// paths. The scanner and the file validator share one matching semantics
// through this package.
package pathmatch

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a relative path matches any of a fixed set of
// doublestar glob patterns. Patterns without a path separator are also
// matched against the final path element, so "*.tmp" excludes temp files
// at any depth.
type Matcher struct {
	patterns []string
}

// New compiles the given patterns into a Matcher. Invalid patterns are
// rejected up front rather than silently never matching.
func New(patterns ...string) (*Matcher, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
	}

	return &Matcher{patterns: patterns}, nil
}

// Matches reports whether rel matches any pattern. rel may use the host
// path separator; it is normalized to slashes before matching.
func (m *Matcher) Matches(rel string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	normalized := filepath.ToSlash(rel)
	base := path.Base(normalized)

	for _, pattern := range m.patterns {
		if matched, _ := doublestar.Match(pattern, normalized); matched {
			return true
		}

		if !strings.Contains(pattern, "/") {
			if matched, _ := doublestar.Match(pattern, base); matched {
				return true
			}
		}
	}

	return false
}

// Patterns returns the patterns the Matcher was built with.
func (m *Matcher) Patterns() []string {
	return m.patterns
}
