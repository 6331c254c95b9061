package adkdetect

import (
	"os"
	"path/filepath"
	"testing"

	cp "github.com/otiai10/copy"
	"github.com/stretchr/testify/require"
)

// copyWorkspace copies the testdata workspace into a fresh temp dir so
// tests can mutate it.
func copyWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, cp.Copy(filepath.Join("testdata", "workspace"), dir))
	return dir
}

func TestFindProjects(t *testing.T) {
	dir := copyWorkspace(t)

	projects := newDetector(t).ListProjects(dir)
	require.Len(t, projects, 2)

	byPath := map[string]ProjectInfo{}
	for _, project := range projects {
		rel, err := filepath.Rel(dir, project.Path)
		require.NoError(t, err)
		byPath[filepath.ToSlash(rel)] = project
	}

	rust, ok := byPath["services/rust-agent"]
	require.True(t, ok)
	require.Equal(t, RustAdk, rust.Type)
	require.Equal(t, "1.4.0", rust.AdkVersion)

	python, ok := byPath["tools/py-agent"]
	require.True(t, ok)
	require.Equal(t, PythonAdk, python.Type)
}

func TestFindProjectsDoesNotDescendPastConfirmedRoot(t *testing.T) {
	dir := copyWorkspace(t)

	// The rust-agent fixture contains a nested example project; it must
	// be reported through its enclosing root only.
	projects := newDetector(t, WithMaxDepth(6)).ListProjects(dir)
	for _, project := range projects {
		rel, err := filepath.Rel(dir, project.Path)
		require.NoError(t, err)
		require.NotContains(t, filepath.ToSlash(rel), "examples/quickstart")
	}
}

func TestFindProjectsSkipsUnreadableSibling(t *testing.T) {
	dir := copyWorkspace(t)

	locked := filepath.Join(dir, "tools", "locked")
	require.NoError(t, os.MkdirAll(locked, 0700))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o700) })

	projects := newDetector(t).ListProjects(dir)

	// The unreadable sibling is skipped silently; every readable project
	// is still reported.
	require.Len(t, projects, 2)
}

func TestFindProjectsIsLazy(t *testing.T) {
	dir := copyWorkspace(t)

	var seen []ProjectInfo
	for project := range newDetector(t).FindProjects(dir) {
		seen = append(seen, project)
		break
	}

	require.Len(t, seen, 1)
}

func TestFindProjectsRestartable(t *testing.T) {
	dir := copyWorkspace(t)
	d := newDetector(t)

	first := d.ListProjects(dir)
	second := d.ListProjects(dir)
	require.Equal(t, first, second)
}

func TestFindProjectsEmptyWorkspace(t *testing.T) {
	require.Empty(t, newDetector(t).ListProjects(t.TempDir()))
}

func TestFindProjectsUnreadableRoot(t *testing.T) {
	require.Empty(t, newDetector(t).ListProjects(filepath.Join(t.TempDir(), "absent")))
}

func TestFindProjectsRespectsExcludePatterns(t *testing.T) {
	dir := copyWorkspace(t)

	projects := newDetector(t,
		WithExcludePatterns([]string{"**/tools"}, false),
	).ListProjects(dir)

	require.Len(t, projects, 1)
	require.Equal(t, RustAdk, projects[0].Type)
}
