package core

import (
	"fmt"

	"github.com/EmundoT/dep-comply/internal/types"
)

// BuildProjectModel decodes a graph-dump manifest into a ProjectModel,
// validating every dependency entry at the boundary. Raw manifest text never
// travels deeper into the core: each entry becomes exactly one
// ResolutionOutcome variant here or the load fails.
func BuildProjectModel(manifest types.BuildManifest) (ProjectModel, error) {
	model := ProjectModel{Name: manifest.Project}
	for _, mod := range manifest.Modules {
		module := BuildModule{
			Name:              mod.Name,
			Repositories:      mod.Repositories,
			BuildRepositories: mod.BuildRepositories,
		}

		for _, cfg := range mod.Configurations {
			set, err := buildDependencySet(mod.Name, cfg)
			if err != nil {
				return ProjectModel{}, err
			}
			module.DependencySets = append(module.DependencySets, set)
		}
		for _, cfg := range mod.BuildConfigurations {
			set, err := buildDependencySet(mod.Name, cfg)
			if err != nil {
				return ProjectModel{}, err
			}
			module.BuildDependencySets = append(module.BuildDependencySets, set)
		}

		model.Modules = append(model.Modules, module)
	}
	return model, nil
}

func buildDependencySet(moduleName string, cfg types.ManifestConfiguration) (DependencySet, error) {
	set := DependencySet{Name: cfg.Name}
	for i, entry := range cfg.Dependencies {
		outcome, err := decodeEntry(entry)
		if err != nil {
			return DependencySet{}, fmt.Errorf("module %q, configuration %q, entry %d: %w", moduleName, cfg.Name, i, err)
		}
		set.Outcomes = append(set.Outcomes, outcome)
	}
	return set, nil
}

// decodeEntry maps one manifest entry onto its outcome variant. Exactly one
// of id, project or attempted must be set; an id must be a full
// group:name:version triple.
func decodeEntry(entry types.ManifestEntry) (ResolutionOutcome, error) {
	fields := 0
	if entry.ID != "" {
		fields++
	}
	if entry.Project != "" {
		fields++
	}
	if entry.Attempted != "" {
		fields++
	}
	if fields != 1 {
		return nil, fmt.Errorf("exactly one of id, project or attempted must be set")
	}

	switch {
	case entry.ID != "":
		id, err := ParseCoordinate(entry.ID)
		if err != nil {
			return nil, err
		}
		return ResolvedModule{ID: id}, nil
	case entry.Project != "":
		return ResolvedProject{Path: entry.Project}, nil
	default:
		return UnresolvedAttempt{Attempted: entry.Attempted}, nil
	}
}
