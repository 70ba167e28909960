// Package manifest handles lean2go.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file looked for in project directories.
const FileName = "lean2go.toml"

// Manifest represents a lean2go.toml project configuration.
type Manifest struct {
	Project  Project  `toml:"project"`
	Bindings Bindings `toml:"bindings"`

	// Dir is the directory containing the lean2go.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains build configuration.
type Project struct {
	LibName string `toml:"lib-name"`
	Mathlib bool   `toml:"mathlib"`
}

// Bindings configures generated output.
type Bindings struct {
	Name    string `toml:"name"`
	Package string `toml:"package"`
	OutDir  string `toml:"out-dir"`
}

// Load parses a lean2go.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Project.LibName == "" {
		m.Project.LibName = "LeanExport"
	}
	if m.Bindings.Name == "" {
		m.Bindings.Name = "lean_export"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a lean2go.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
