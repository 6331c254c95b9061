// Package fileval validates candidate files against review-time
// constraints: size bounds, allowed extensions and exclusion patterns.
// It shares its pattern-matching semantics with the project scanner.
package fileval

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arkaft/adk-agents/internal/pathmatch"
)

// FileType groups files by their role in an ADK project.
type FileType string

const (
	Rust          FileType = "rust"
	Python        FileType = "python"
	Configuration FileType = "config"
	Documentation FileType = "docs"
	Environment   FileType = "env"
	Build         FileType = "build"
	Unknown       FileType = "unknown"
)

// Config holds the validation constraints. It is supplied at construction
// and never mutated during validation.
type Config struct {
	MaxFileSize       int64
	MinFileSize       int64
	AllowedExtensions []string
	ExcludedPatterns  []string
}

// DefaultConfig allows the file types that matter to ADK analysis and
// excludes build artifacts, dependency caches and temp files.
func DefaultConfig() Config {
	return Config{
		MaxFileSize: 50 * 1024 * 1024,
		MinFileSize: 1,
		AllowedExtensions: []string{
			"rs",
			"py", "pyi",
			"toml", "json", "yaml", "yml",
			"md", "rst", "txt",
		},
		ExcludedPatterns: []string{
			"**/target/**",
			"**/[Bb]uild/**",
			"**/[Dd]ist/**",
			"**/node_modules/**",
			"**/.venv/**",
			"**/__pycache__/**",
			"**/.git/**",
			"**/.svn/**",
			"**/.vscode/**",
			"**/.idea/**",
			"*.tmp",
			"*.temp",
			"*.log",
			"*.bak",
		},
	}
}

// CodeReviewConfig is a preset with a smaller size ceiling, restricted to
// source files.
func CodeReviewConfig() Config {
	c := DefaultConfig()
	c.MaxFileSize = 1024 * 1024
	c.MinFileSize = 10
	c.AllowedExtensions = []string{"rs", "py"}
	return c
}

// ConfigFilesConfig is a preset restricted to small configuration files.
func ConfigFilesConfig() Config {
	c := DefaultConfig()
	c.MaxFileSize = 10 * 1024
	c.AllowedExtensions = []string{"toml", "json", "yaml", "yml"}
	return c
}

// Result is the outcome of validating one path. Reason is empty for valid
// files and states the first failed constraint otherwise.
type Result struct {
	Path    string
	IsValid bool
	Size    int64
	Type    FileType
	Reason  string
}

// Validator applies a Config to candidate files.
type Validator struct {
	cfg      Config
	excludes *pathmatch.Matcher
}

// New builds a Validator for the given Config. Invalid exclusion patterns
// are rejected up front.
func New(cfg Config) (*Validator, error) {
	matcher, err := pathmatch.New(cfg.ExcludedPatterns...)
	if err != nil {
		return nil, err
	}

	return &Validator{cfg: cfg, excludes: matcher}, nil
}

// Default returns a Validator with DefaultConfig. It never fails because
// the built-in patterns are known to be valid.
func Default() *Validator {
	v, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return v
}

// ForCodeReview returns a Validator with the code review preset.
func ForCodeReview() *Validator {
	v, err := New(CodeReviewConfig())
	if err != nil {
		panic(err)
	}
	return v
}

// ForConfigFiles returns a Validator with the configuration files preset.
func ForConfigFiles() *Validator {
	v, err := New(ConfigFilesConfig())
	if err != nil {
		panic(err)
	}
	return v
}

// Validate applies every constraint to the file at path. Constraint
// failures are reported through the Result, not an error; an error is
// returned only when file metadata cannot be read at all.
func (v *Validator) Validate(path string) (Result, error) {
	result := Result{Path: path, Type: TypeOf(path)}

	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Reason = "file does not exist"
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("reading metadata for %s: %w", path, err)
	}

	if stat.IsDir() {
		result.Reason = "path is not a file"
		return result, nil
	}

	result.Size = stat.Size()

	switch {
	case v.excludes.Matches(path):
		result.Reason = "file matches excluded pattern"
	case result.Size < v.cfg.MinFileSize:
		result.Reason = fmt.Sprintf("file too small: %d bytes", result.Size)
	case result.Size > v.cfg.MaxFileSize:
		result.Reason = fmt.Sprintf(
			"file too large: %s (max %s)", FormatSize(result.Size), FormatSize(v.cfg.MaxFileSize))
	case !v.allowed(path):
		result.Reason = "file type not allowed"
	default:
		result.IsValid = true
	}

	return result, nil
}

// ValidateAll validates every path, folding per-file errors into invalid
// results so one unreadable file does not abort the batch.
func (v *Validator) ValidateAll(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		result, err := v.Validate(path)
		if err != nil {
			result = Result{
				Path:   path,
				Type:   TypeOf(path),
				Reason: fmt.Sprintf("validation error: %v", err),
			}
		}

		results = append(results, result)
	}

	return results
}

// SuitableForReview reports whether the file passes validation and is a
// source file small enough to review.
func (v *Validator) SuitableForReview(path string) (bool, error) {
	result, err := v.Validate(path)
	if err != nil {
		return false, err
	}

	if !result.IsValid {
		return false, nil
	}

	switch result.Type {
	case Rust, Python:
		return result.Size <= 100*1024, nil
	default:
		return false, nil
	}
}

// Filenames without a useful extension that are still meaningful input.
var wellKnownFiles = map[string]bool{
	"Cargo.toml":       true,
	"requirements.txt": true,
	"setup.py":         true,
	".env":             true,
	".env.template":    true,
}

func (v *Validator) allowed(path string) bool {
	if wellKnownFiles[filepath.Base(path)] {
		return true
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, allowed := range v.cfg.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}

	return false
}

// TypeOf determines the role of a file from its name and extension.
func TypeOf(path string) FileType {
	switch filepath.Base(path) {
	case "Cargo.toml", "Cargo.lock", "requirements.txt", "setup.py", "pyproject.toml":
		return Build
	case ".env", ".env.template", ".env.local", ".env.production", ".env.development":
		return Environment
	case "README.md", "CHANGELOG.md", "LICENSE", "CONTRIBUTING.md":
		return Documentation
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return Rust
	case ".py", ".pyi":
		return Python
	case ".toml", ".json", ".yaml", ".yml":
		return Configuration
	case ".md", ".rst", ".txt":
		return Documentation
	default:
		return Unknown
	}
}

// FormatSize renders a byte count in a human-readable binary form.
func FormatSize(size int64) string {
	return humanize.IBytes(uint64(size))
}
