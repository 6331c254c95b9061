// Package adkdetect classifies directories as ADK projects.
//
// Projects are detected based on criteria such as:
// 1. Dependencies declared in build manifests (Cargo.toml, requirements.txt).
// 2. Recognized configuration files and directory layout.
// 3. Source file extensions, as a fallback when no manifest is readable.
//
// - `DetectProject` classifies a single candidate root.
// - `FindProjects` enumerates project roots beneath a workspace.
package adkdetect

// ProjectType is the classification verdict for one candidate root.
type ProjectType string

const (
	// A Rust project depending on the ADK Rust libraries.
	RustAdk ProjectType = "rust-adk"
	// A Python project depending on the ADK Python libraries.
	PythonAdk ProjectType = "python-adk"
	// An MCP server project providing ADK capabilities.
	McpAdkServer ProjectType = "mcp-adk-server"
	// A root with independently qualifying Rust and Python ADK evidence.
	Mixed ProjectType = "mixed"
	// Not an ADK project.
	None ProjectType = "none"
)

func (t ProjectType) Display() string {
	switch t {
	case RustAdk:
		return "Rust ADK"
	case PythonAdk:
		return "Python ADK"
	case McpAdkServer:
		return "MCP ADK server"
	case Mixed:
		return "Mixed ADK"
	case None:
		return "None"
	}

	return ""
}

// ProjectInfo describes one detected project root. It is returned by
// value and never mutated after construction.
type ProjectInfo struct {
	Path            string
	Type            ProjectType
	HasCargoToml    bool
	HasRequirements bool
	AdkVersion      string
	EstimatedSize   int64
	DetectionRule   string
}

// Evidence is the structured summary of all signals gathered for one
// candidate root. It is built fresh per scan and discarded after
// classification; no state carries over between roots.
//
// The manifest fields are true only when the corresponding manifest was
// present and its dependency keys could be extracted. A manifest that is
// present but malformed leaves them false, which routes classification
// through the layout fallback.
type Evidence struct {
	HasRustManifest       bool
	RustAdkDependency     bool
	HasPythonRequirements bool
	PythonAdkDependency   bool
	HasMcpServerMarker    bool
	HasAdkLayout          bool
	Extensions            map[string]struct{}
}

func (e Evidence) hasExtension(ext string) bool {
	_, ok := e.Extensions[ext]
	return ok
}
