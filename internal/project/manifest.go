// Package project locates and parses the ferro.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "ferro.toml"

// Config mirrors the manifest's TOML structure.
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
	Check   CheckConfig   `toml:"check"`
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// RunConfig is the [run] section.
type RunConfig struct {
	// Main is the entry source file, relative to the manifest.
	Main string `toml:"main"`
}

// CheckConfig is the [check] section.
type CheckConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Manifest is a loaded ferro.toml plus its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks from startDir upward looking for ferro.toml.
func Find(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if cfg.Package.Name == "" {
		return nil, fmt.Errorf("%s: [package] name must not be empty", path)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// MainPath resolves the configured entry file, defaulting to main.fe.
func (m *Manifest) MainPath() string {
	main := m.Config.Run.Main
	if main == "" {
		main = "main.fe"
	}
	if filepath.IsAbs(main) {
		return main
	}
	return filepath.Join(m.Root, main)
}
