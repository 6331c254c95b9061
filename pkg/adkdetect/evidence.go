package adkdetect

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/arkaft/adk-agents/internal/manifest"
)

// Filenames probed for an MCP server configuration, relative to the
// candidate root.
var mcpConfigFiles = []string{
	"mcp.json",
	filepath.Join(".kiro", "settings", "mcp.json"),
}

// Config files probed for ADK markers when deciding whether a tree is
// ADK-shaped.
var adkConfigFiles = []string{
	".env",
	".env.template",
	"adk.toml",
	"adk-config.json",
	"vertex-config.json",
	"google-cloud-config.json",
}

// Content markers that tie a config file to the ADK ecosystem.
var adkContentMarkers = [][]byte{
	[]byte("GOOGLE_API_KEY"),
	[]byte("VERTEXAI"),
	[]byte("ADK"),
	[]byte("google-genai"),
}

// rootEvidence carries the classification evidence plus the raw facts
// that end up on ProjectInfo.
type rootEvidence struct {
	Evidence

	hasCargoFile bool
	hasReqFile   bool
	adkVersion   string
	size         int64
	sources      []string
}

// aggregate gathers all detection signals for one candidate root.
// entries are the root's own directory entries; manifests are only read
// at the root itself. Absence of a manifest is evidence, not an error,
// and a malformed manifest degrades to "dependency absent".
func (d *Detector) aggregate(root string, entries []fs.DirEntry) rootEvidence {
	ev := rootEvidence{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(entry.Name()) {
		case "cargo.toml":
			ev.hasCargoFile = true
			d.readCargoEvidence(filepath.Join(root, entry.Name()), &ev)
		case "requirements.txt":
			ev.hasReqFile = true
			d.readRequirementsEvidence(filepath.Join(root, entry.Name()), &ev)
		case "pyproject.toml":
			d.readPyProjectEvidence(filepath.Join(root, entry.Name()), &ev)
		}
	}

	if !ev.HasMcpServerMarker {
		ev.HasMcpServerMarker = hasMcpConfig(root)
	}

	ev.HasAdkLayout = hasAdkLayout(root)

	if scan, err := d.scanTree(root); err == nil {
		ev.Extensions = scan.extensions
		ev.size = scan.size
	} else {
		ev.Extensions = map[string]struct{}{}
	}

	return ev
}

func (d *Detector) readCargoEvidence(path string, ev *rootEvidence) {
	cargo, err := manifest.ReadCargo(path)
	if err != nil {
		slog.Debug("skipping unusable cargo manifest", "path", path, "error", err)
		return
	}

	ev.HasRustManifest = true
	ev.sources = append(ev.sources, filepath.Base(path))

	if cargo.HasAnyDependency(rustAdkCrates) {
		ev.RustAdkDependency = true
	}

	if cargo.HasAnyDependency(mcpServerCrates) {
		ev.HasMcpServerMarker = true
	}

	if ev.adkVersion == "" {
		for _, crate := range []string{"google-adk", "adk-core"} {
			if version, ok := cargo.Dependency(crate); ok {
				if normalized := normalizeVersion(version); normalized != "" {
					ev.adkVersion = normalized
					break
				}
			}
		}
	}
}

func (d *Detector) readRequirementsEvidence(path string, ev *rootEvidence) {
	packages, err := manifest.ReadRequirements(path)
	if err != nil {
		slog.Debug("skipping unusable requirements file", "path", path, "error", err)
		return
	}

	ev.HasPythonRequirements = true
	ev.sources = append(ev.sources, filepath.Base(path))

	for _, pkg := range packages {
		for _, known := range pythonAdkPackages {
			if pkg == known {
				ev.PythonAdkDependency = true
				return
			}
		}
	}
}

func (d *Detector) readPyProjectEvidence(path string, ev *rootEvidence) {
	project, err := manifest.ReadPyProject(path)
	if err != nil {
		slog.Debug("skipping unusable pyproject manifest", "path", path, "error", err)
		return
	}

	ev.HasPythonRequirements = true
	ev.sources = append(ev.sources, filepath.Base(path))

	for _, requirement := range project.Project.Dependencies {
		name := manifest.RequirementName(requirement)
		for _, known := range pythonAdkPackages {
			if name == known {
				ev.PythonAdkDependency = true
				return
			}
		}
	}
}

// hasMcpConfig reports whether a recognized MCP server configuration file
// sits at the root. The file qualifies only when it actually declares
// servers, so an empty placeholder does not flip the verdict.
func hasMcpConfig(root string) bool {
	for _, name := range mcpConfigFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}

		if gjson.GetBytes(data, "mcpServers").Exists() {
			return true
		}
	}

	return false
}

// hasAdkLayout reports whether the tree is ADK-shaped in the absence of a
// manifest signal: either a recognized agent directory exists, or a known
// config file carries ADK markers.
func hasAdkLayout(root string) bool {
	for _, dir := range adkLayoutDirs {
		if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir))); err == nil && info.IsDir() {
			return true
		}
	}

	for _, name := range adkConfigFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}

		for _, marker := range adkContentMarkers {
			if bytes.Contains(data, marker) {
				return true
			}
		}
	}

	return false
}

// normalizeVersion validates a declared dependency version, tolerating
// cargo requirement prefixes like "^1.0". Unparseable declarations are
// dropped rather than surfaced.
func normalizeVersion(declared string) string {
	trimmed := strings.TrimSpace(declared)
	trimmed = strings.TrimLeft(trimmed, "^~=v ")

	if _, err := semver.NewVersion(trimmed); err != nil {
		return ""
	}

	return trimmed
}
