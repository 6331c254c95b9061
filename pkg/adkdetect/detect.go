package adkdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNotDirectory is returned when a candidate root exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// DetectProject classifies the single candidate root at path. Unlike
// workspace-wide scans, errors on the caller-specified root are surfaced:
// a missing path wraps fs.ErrNotExist, an unreadable one the underlying
// filesystem error.
func (d *Detector) DetectProject(path string) (ProjectInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return ProjectInfo{}, fmt.Errorf("detecting %s: %w", path, err)
	}

	if !stat.IsDir() {
		return ProjectInfo{}, fmt.Errorf("detecting %s: %w", path, ErrNotDirectory)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return ProjectInfo{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return d.evaluate(path, entries), nil
}

func (d *Detector) evaluate(root string, entries []fs.DirEntry) ProjectInfo {
	ev := d.aggregate(root, entries)

	info := ProjectInfo{
		Path:            root,
		Type:            Classify(ev.Evidence),
		HasCargoToml:    ev.hasCargoFile,
		HasRequirements: ev.hasReqFile,
		AdkVersion:      ev.adkVersion,
		EstimatedSize:   ev.size,
	}

	if len(ev.sources) > 0 {
		info.DetectionRule = "Inferred by presence of: " + strings.Join(ev.sources, ", ")
	} else if info.Type != None {
		info.DetectionRule = "Inferred by directory layout"
	}

	return info
}
