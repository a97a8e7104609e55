package core

import (
	"path/filepath"

	"github.com/EmundoT/dep-comply/internal/types"
)

// ConfigStore loads and saves the compliance configuration.
type ConfigStore interface {
	Load() (types.ComplianceConfig, error)
	Save(cfg types.ComplianceConfig) error
	Path() string
}

// FileConfigStore persists the configuration as YAML under the comply dir.
type FileConfigStore struct {
	*YAMLStore[types.ComplianceConfig]
}

// NewFileConfigStore creates a config store rooted at rootDir.
func NewFileConfigStore(rootDir string) *FileConfigStore {
	return &FileConfigStore{NewYAMLStore[types.ComplianceConfig](rootDir, ConfigFile, false)}
}

// ManifestStore loads the host build tool's resolved-graph dump.
type ManifestStore interface {
	Load() (types.BuildManifest, error)
	Path() string
}

// FileManifestStore reads the graph dump from a YAML file.
type FileManifestStore struct {
	*YAMLStore[types.BuildManifest]
}

// NewFileManifestStore creates a manifest store for the given file path.
func NewFileManifestStore(path string) *FileManifestStore {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return &FileManifestStore{NewYAMLStore[types.BuildManifest](dir, file, false)}
}
