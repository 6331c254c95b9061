package manifest

import (
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Cargo holds the subset of a Cargo.toml manifest that detection cares
// about. Dependency values are left untyped because cargo allows both
// `name = "1.0"` and `name = { version = "1.0", ... }` forms.
type Cargo struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
	Workspace       struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
}

// ReadCargo reads and parses the Cargo.toml at path. A malformed file is
// reported as a *ParseError; an unreadable file is returned as-is.
func ReadCargo(path string) (*Cargo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cargo Cargo
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &cargo, nil
}

func (c *Cargo) tables() []map[string]any {
	return []map[string]any{
		c.Dependencies,
		c.DevDependencies,
		c.Workspace.Dependencies,
	}
}

// Dependency reports whether the manifest declares a dependency with the
// given crate name, in any dependency table, along with its declared
// version when one can be determined.
func (c *Cargo) Dependency(name string) (version string, ok bool) {
	for _, table := range c.tables() {
		value, present := table[name]
		if !present {
			continue
		}

		switch v := value.(type) {
		case string:
			return v, true
		case map[string]any:
			if ver, isString := v["version"].(string); isString {
				return ver, true
			}
			return "", true
		default:
			return "", true
		}
	}

	return "", false
}

// HasAnyDependency reports whether any of the given crate names is
// declared as a dependency.
func (c *Cargo) HasAnyDependency(names []string) bool {
	for _, name := range names {
		if _, ok := c.Dependency(name); ok {
			return true
		}
	}

	return false
}

// DependencyNames returns the sorted set of declared dependency names
// across all dependency tables.
func (c *Cargo) DependencyNames() []string {
	seen := map[string]struct{}{}
	for _, table := range c.tables() {
		for name := range table {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
