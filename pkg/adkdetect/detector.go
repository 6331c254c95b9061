package adkdetect

import (
	"github.com/arkaft/adk-agents/internal/pathmatch"
)

const (
	// DefaultMaxFileSize bounds how much of a tree contributes to the
	// size estimate and which files are considered during scans.
	DefaultMaxFileSize int64 = 50 * 1024 * 1024
	// DefaultMaxDepth bounds how deep workspace scans descend.
	DefaultMaxDepth = 3
)

// DefaultExcludePatterns are pruned during every scan. Build and package
// cache directories are excluded so that vendored trees never dominate
// the walk.
var DefaultExcludePatterns = []string{
	"**/target",
	"**/node_modules",
	"**/__pycache__",
	"**/.venv",
	"**/.git",
	"**/[Bb]uild",
	"**/[Dd]ist",
	"*.tmp",
	"*.log",
}

// Crate names that mark a Cargo.toml as depending on the ADK Rust stack.
var rustAdkCrates = []string{
	"google-adk",
	"google-cloud-adk",
	"adk-core",
	"adk-runtime",
	"google-genai",
	"vertexai",
	"rmcp",
}

// Package names that mark a Python manifest as depending on the ADK
// Python stack.
var pythonAdkPackages = []string{
	"google-adk",
	"google-cloud-adk",
	"google-genai",
	"vertexai",
	"google-cloud-aiplatform",
	"adk-agents",
}

// Crates whose presence marks a project as an MCP server.
var mcpServerCrates = []string{
	"rmcp",
	"mcp-sdk",
	"mcp-server",
}

// Directory names whose presence marks an ADK-shaped tree even without a
// readable manifest.
var adkLayoutDirs = []string{
	"multi_tool_agent",
	"adk_agents",
	"src/expert",
	"src/review",
}

// Detector classifies candidate roots and enumerates projects across a
// workspace. It is stateless between calls; concurrent use from multiple
// goroutines is safe because each scan only touches its own traversal
// state.
type Detector struct {
	maxDepth    int
	maxFileSize int64
	excludes    *pathmatch.Matcher
}

type config struct {
	maxDepth        int
	maxFileSize     int64
	excludePatterns []string
	defaultExcludes []string
}

// Option configures a Detector.
type Option func(*config)

// WithMaxDepth overrides how deep scans descend below a candidate root.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithMaxFileSize overrides the file size ceiling used while estimating
// project size.
func WithMaxFileSize(size int64) Option {
	return func(c *config) {
		c.maxFileSize = size
	}
}

// WithExcludePatterns adds exclusion patterns for directories scanned.
// When overrideDefaults is set, the built-in exclusions are dropped
// instead of extended.
func WithExcludePatterns(patterns []string, overrideDefaults bool) Option {
	return func(c *config) {
		if overrideDefaults {
			c.defaultExcludes = nil
		}
		c.excludePatterns = append(c.excludePatterns, patterns...)
	}
}

// New builds a Detector. Invalid exclusion patterns are rejected here so
// that scans never fail on matching.
func New(options ...Option) (*Detector, error) {
	c := config{
		maxDepth:        DefaultMaxDepth,
		maxFileSize:     DefaultMaxFileSize,
		defaultExcludes: DefaultExcludePatterns,
	}

	for _, opt := range options {
		opt(&c)
	}

	matcher, err := pathmatch.New(append(c.defaultExcludes, c.excludePatterns...)...)
	if err != nil {
		return nil, err
	}

	return &Detector{
		maxDepth:    c.maxDepth,
		maxFileSize: c.maxFileSize,
		excludes:    matcher,
	}, nil
}
