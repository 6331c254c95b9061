// Package manifest reads the build manifests consulted during ADK project
// detection: Cargo.toml for Rust, requirements.txt and pyproject.toml for
// Python. Only the dependency-related keys are extracted; nothing here
// interprets what a dependency means.
package manifest

import (
	"fmt"
)

// ParseError indicates a manifest was present but malformed enough that
// its dependency keys could not be extracted. Callers are expected to
// treat the manifest as unusable rather than failing the whole scan.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
