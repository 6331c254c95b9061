package adkdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// walkDirFunc is called for every directory visited by walkDirectories.
//
// path is the directory being visited, depth its distance from the walk
// root, and entries the file entries (including directories) in it.
type walkDirFunc func(path string, depth int, entries []fs.DirEntry) error

// errStopWalk aborts a walk early without reporting an error.
var errStopWalk = errors.New("stop walking")

// walkDirectories is like filepath.WalkDir, except it only visits
// directories, prunes excluded paths before descending, stops at the
// configured depth, and tracks visited canonical directories so symlink
// cycles terminate.
//
// Traversal follows os.ReadDir ordering, so repeated walks over identical
// filesystem state visit directories in the same order. Unreadable
// subdirectories are skipped; only a failure to read the root itself is
// returned to the caller.
func (d *Detector) walkDirectories(root string, fn walkDirFunc) error {
	visited := map[string]struct{}{}

	var walk func(path string, depth int) error
	walk = func(path string, depth int) error {
		if canonical, err := filepath.EvalSymlinks(path); err == nil {
			if _, seen := visited[canonical]; seen {
				return nil
			}
			visited[canonical] = struct{}{}
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			if depth == 0 {
				return fmt.Errorf("reading directory: %w", err)
			}

			slog.Debug("skipping unreadable directory", "path", path, "error", err)
			return nil
		}

		if err := fn(path, depth, entries); err != nil {
			// SkipDir means do not expand this directory any further.
			if errors.Is(err, filepath.SkipDir) {
				return nil
			}

			return err
		}

		if depth >= d.maxDepth {
			return nil
		}

		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			if !isDirectory(child, entry) {
				continue
			}
			rel, err := filepath.Rel(root, child)
			if err != nil {
				rel = entry.Name()
			}

			if d.excludes.Matches(rel) {
				continue
			}

			if err := walk(child, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(root, 0)
}

// isDirectory reports whether entry names a directory, following
// directory symlinks so linked trees are walked too. The visited set in
// walkDirectories keeps link cycles from recursing forever.
func isDirectory(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// treeScan summarizes one bounded walk below a candidate root.
type treeScan struct {
	// Relative slash-separated paths of the files seen.
	paths []string
	// Extensions of the files seen, with their leading dot.
	extensions map[string]struct{}
	// Total size of the files seen, accumulated until the detector's
	// size ceiling is exceeded.
	size int64
}

func (d *Detector) scanTree(root string) (*treeScan, error) {
	scan := &treeScan{extensions: map[string]struct{}{}}

	err := d.walkDirectories(root, func(path string, depth int, entries []fs.DirEntry) error {
		for _, entry := range entries {
			if isDirectory(filepath.Join(path, entry.Name()), entry) {
				continue
			}

			rel, err := filepath.Rel(root, filepath.Join(path, entry.Name()))
			if err != nil {
				continue
			}

			rel = filepath.ToSlash(rel)
			if d.excludes.Matches(rel) {
				continue
			}

			scan.paths = append(scan.paths, rel)
			if ext := filepath.Ext(entry.Name()); ext != "" {
				scan.extensions[ext] = struct{}{}
			}

			if scan.size <= d.maxFileSize {
				if info, err := entry.Info(); err == nil {
					scan.size += info.Size()
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return scan, nil
}

// Scan walks the tree below root and returns the relative paths of the
// files seen, honoring the detector's depth limit and exclusion
// patterns. Callers must not depend on a particular ordering beyond it
// being deterministic for identical filesystem state.
func (d *Detector) Scan(root string) ([]string, error) {
	scan, err := d.scanTree(root)
	if err != nil {
		return nil, err
	}

	return scan.paths, nil
}
