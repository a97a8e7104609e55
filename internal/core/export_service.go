package core

import (
	"encoding/json"
	"fmt"

	"github.com/EmundoT/dep-comply/internal/types"
)

// ExportService assembles compliance snapshots and moves them through the
// canonical JSON interchange format.
type ExportService struct {
	fs FileSystem
}

// NewExportService creates a new ExportService with the given filesystem.
func NewExportService(fs FileSystem) *ExportService {
	return &ExportService{fs: fs}
}

// Assemble combines the four walker outputs into one snapshot. All inputs
// are already deduplicated, ordered and filtered; assembly only normalizes
// nil slices so the encoded document always carries arrays, never null.
func (s *ExportService) Assemble(deps, buildDeps []types.DependencyIdentifier, repos, buildRepos []types.RepositoryIdentifier) types.DependencyExport {
	return types.DependencyExport{
		Dependencies:      nonNilDeps(deps),
		BuildDependencies: nonNilDeps(buildDeps),
		Repositories:      nonNilRepos(repos),
		BuildRepositories: nonNilRepos(buildRepos),
	}
}

// Encode renders a snapshot as canonical two-space-indented JSON with a
// trailing newline. Output is byte-identical for equal snapshots.
func (s *ExportService) Encode(export types.DependencyExport) ([]byte, error) {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// rawDependency mirrors a dependency object with optional fields so Decode
// can tell a missing field from an empty one.
type rawDependency struct {
	Group   *string `json:"group"`
	Name    *string `json:"name"`
	Version *string `json:"version"`
}

type rawRepository struct {
	Name *string `json:"name"`
	URL  string  `json:"url"`
}

// Decode parses a report document back into a snapshot. Unknown extra fields
// are ignored for forward compatibility; a missing required field fails with
// a DecodeError. Decode is the read half of the round-trip used by the check
// command and by verification tooling.
func (s *ExportService) Decode(data []byte) (types.DependencyExport, error) {
	var raw struct {
		Dependencies      []rawDependency `json:"dependencies"`
		BuildDependencies []rawDependency `json:"buildDependencies"`
		Repositories      []rawRepository `json:"repositories"`
		BuildRepositories []rawRepository `json:"buildRepositories"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.DependencyExport{}, fmt.Errorf("decode report: %w", err)
	}

	deps, err := decodeDependencies(raw.Dependencies)
	if err != nil {
		return types.DependencyExport{}, err
	}
	buildDeps, err := decodeDependencies(raw.BuildDependencies)
	if err != nil {
		return types.DependencyExport{}, err
	}
	repos, err := decodeRepositories(raw.Repositories)
	if err != nil {
		return types.DependencyExport{}, err
	}
	buildRepos, err := decodeRepositories(raw.BuildRepositories)
	if err != nil {
		return types.DependencyExport{}, err
	}

	return types.DependencyExport{
		Dependencies:      deps,
		BuildDependencies: buildDeps,
		Repositories:      repos,
		BuildRepositories: buildRepos,
	}, nil
}

// WriteReport encodes the snapshot and writes it atomically to path. A
// failed invocation never leaves a partial report file behind.
func (s *ExportService) WriteReport(export types.DependencyExport, path string) error {
	data, err := s.Encode(export)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads and decodes a committed report file.
func (s *ExportService) ReadReport(path string) (types.DependencyExport, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return types.DependencyExport{}, fmt.Errorf("read report %s: %w", path, err)
	}
	return s.Decode(data)
}

func decodeDependencies(raw []rawDependency) ([]types.DependencyIdentifier, error) {
	deps := make([]types.DependencyIdentifier, 0, len(raw))
	for _, r := range raw {
		switch {
		case r.Group == nil:
			return nil, &DecodeError{Field: "group"}
		case r.Name == nil:
			return nil, &DecodeError{Field: "name"}
		case r.Version == nil:
			return nil, &DecodeError{Field: "version"}
		}
		deps = append(deps, types.DependencyIdentifier{Group: *r.Group, Name: *r.Name, Version: *r.Version})
	}
	return deps, nil
}

func decodeRepositories(raw []rawRepository) ([]types.RepositoryIdentifier, error) {
	repos := make([]types.RepositoryIdentifier, 0, len(raw))
	for _, r := range raw {
		if r.Name == nil {
			return nil, &DecodeError{Field: "name"}
		}
		repos = append(repos, types.RepositoryIdentifier{Name: *r.Name, URL: r.URL})
	}
	return repos, nil
}

func nonNilDeps(ids []types.DependencyIdentifier) []types.DependencyIdentifier {
	if ids == nil {
		return []types.DependencyIdentifier{}
	}
	return ids
}

func nonNilRepos(repos []types.RepositoryIdentifier) []types.RepositoryIdentifier {
	if repos == nil {
		return []types.RepositoryIdentifier{}
	}
	return repos
}
