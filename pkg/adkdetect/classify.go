package adkdetect

// Classify resolves one Evidence record into a single verdict. It is a
// pure function of its input: deterministic, total and side-effect free.
//
// Rules are evaluated in a fixed order and the first match wins:
//
//  1. Rust and Python ADK dependencies both present: Mixed.
//  2. MCP server marker plus either ADK dependency: McpAdkServer. A
//     project that serves MCP is classified by its serving role even when
//     it also sits inside one ADK ecosystem.
//  3. Rust ADK dependency: RustAdk.
//  4. Python ADK dependency: PythonAdk.
//  5. Otherwise: None.
//
// When neither manifest was readable but the tree has a recognized ADK
// layout, the same ladder runs with extension-derived stand-ins for the
// dependency signals.
func Classify(evidence Evidence) ProjectType {
	rust := evidence.RustAdkDependency
	python := evidence.PythonAdkDependency

	if !evidence.HasRustManifest && !evidence.HasPythonRequirements && evidence.HasAdkLayout {
		rust = evidence.hasExtension(".rs")
		python = evidence.hasExtension(".py")

		// An ADK-shaped tree with no manifest and no source files at all
		// is still most likely an agent scaffold, which ships as Python.
		if !rust && !python {
			python = true
		}
	}

	switch {
	case rust && python:
		return Mixed
	case evidence.HasMcpServerMarker && (rust || python):
		return McpAdkServer
	case rust:
		return RustAdk
	case python:
		return PythonAdk
	default:
		return None
	}
}
