package adkdetect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyRuleLadder(t *testing.T) {
	tests := []struct {
		name     string
		evidence Evidence
		want     ProjectType
	}{
		{
			"no evidence at all",
			Evidence{},
			None,
		},
		{
			"rust dependency only",
			Evidence{HasRustManifest: true, RustAdkDependency: true},
			RustAdk,
		},
		{
			"python dependency only",
			Evidence{HasPythonRequirements: true, PythonAdkDependency: true},
			PythonAdk,
		},
		{
			"both dependencies",
			Evidence{
				HasRustManifest: true, RustAdkDependency: true,
				HasPythonRequirements: true, PythonAdkDependency: true,
			},
			Mixed,
		},
		{
			"mcp marker with python dependency",
			Evidence{
				HasPythonRequirements: true, PythonAdkDependency: true,
				HasMcpServerMarker: true,
			},
			McpAdkServer,
		},
		{
			"mcp marker with rust dependency",
			Evidence{
				HasRustManifest: true, RustAdkDependency: true,
				HasMcpServerMarker: true,
			},
			McpAdkServer,
		},
		{
			"mcp marker alone is not a project",
			Evidence{HasMcpServerMarker: true},
			None,
		},
		{
			"mixed wins over mcp marker",
			Evidence{
				HasRustManifest: true, RustAdkDependency: true,
				HasPythonRequirements: true, PythonAdkDependency: true,
				HasMcpServerMarker: true,
			},
			Mixed,
		},
		{
			"manifests parsed without adk dependencies",
			Evidence{HasRustManifest: true, HasPythonRequirements: true},
			None,
		},
		{
			"layout fallback with rust sources",
			Evidence{
				HasAdkLayout: true,
				Extensions:   map[string]struct{}{".rs": {}},
			},
			RustAdk,
		},
		{
			"layout fallback with both source kinds",
			Evidence{
				HasAdkLayout: true,
				Extensions:   map[string]struct{}{".rs": {}, ".py": {}},
			},
			Mixed,
		},
		{
			"layout fallback without sources defaults to python",
			Evidence{HasAdkLayout: true},
			PythonAdk,
		},
		{
			"layout fallback not used when a manifest was readable",
			Evidence{
				HasRustManifest: true,
				HasAdkLayout:    true,
				Extensions:      map[string]struct{}{".rs": {}},
			},
			None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.evidence))
		})
	}
}

func TestClassifyMixedRegardlessOfOtherFields(t *testing.T) {
	evidence := Evidence{
		HasRustManifest: true, RustAdkDependency: true,
		HasPythonRequirements: true, PythonAdkDependency: true,
		HasMcpServerMarker: true,
		HasAdkLayout:       true,
		Extensions:         map[string]struct{}{".rs": {}, ".py": {}, ".md": {}},
	}

	require.Equal(t, Mixed, Classify(evidence))
}

func TestClassifyIsDeterministic(t *testing.T) {
	evidence := Evidence{
		HasPythonRequirements: true,
		PythonAdkDependency:   true,
		HasMcpServerMarker:    true,
	}

	first := Classify(evidence)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Classify(evidence))
	}
}
