package manifest

import (
	"bufio"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// PyProject holds the [project] table of a pyproject.toml manifest.
type PyProject struct {
	Project struct {
		Name         string   `toml:"name"`
		Version      string   `toml:"version"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// ReadPyProject reads and parses the pyproject.toml at path.
func ReadPyProject(path string) (*PyProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project PyProject
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &project, nil
}

// ReadRequirements reads a pip requirements file and returns the declared
// package names, lowercased and with version specifiers stripped.
func ReadRequirements(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var packages []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if name := RequirementName(line); name != "" {
			packages = append(packages, name)
		}
	}

	return packages, scanner.Err()
}

// RequirementName extracts the bare package name from a requirement line,
// dropping extras, version specifiers and environment markers.
// Names are lowercased, as pip treats them case insensitively (PEP 426).
func RequirementName(line string) string {
	end := len(line)
	for _, sep := range []string{"==", ">=", "<=", "~=", "!=", "===", ">", "<", "[", ";", "#", " ", "\t"} {
		if i := strings.Index(line, sep); i >= 0 && i < end {
			end = i
		}
	}

	return strings.ToLower(strings.TrimSpace(line[:end]))
}
