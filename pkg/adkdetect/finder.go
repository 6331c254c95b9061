package adkdetect

import (
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
)

// FindProjects lazily enumerates ADK project roots beneath workspaceRoot,
// one ProjectInfo at a time. Stopping the iteration early abandons the
// rest of the walk, so hosts can break out of very large workspaces
// cheaply. Each call rescans from scratch.
//
// Once a directory classifies as a project, its subtree is not searched
// further: nested vendored or sub-projects are reported through their
// enclosing root unless an exclusion boundary separates them. Directories
// that cannot be read are skipped silently and the scan continues; a
// workspace root that cannot be read yields an empty sequence.
func (d *Detector) FindProjects(workspaceRoot string) iter.Seq[ProjectInfo] {
	return func(yield func(ProjectInfo) bool) {
		err := d.walkDirectories(workspaceRoot, func(path string, depth int, entries []fs.DirEntry) error {
			info := d.evaluate(path, entries)
			if info.Type == None {
				return nil
			}

			if !yield(info) {
				return errStopWalk
			}

			// Skip possible inner projects of a confirmed root.
			return filepath.SkipDir
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			slog.Debug("workspace scan ended early", "root", workspaceRoot, "error", err)
		}
	}
}

// ListProjects collects every project FindProjects would report.
func (d *Detector) ListProjects(workspaceRoot string) []ProjectInfo {
	var projects []ProjectInfo
	for info := range d.FindProjects(workspaceRoot) {
		projects = append(projects, info)
	}

	return projects
}
