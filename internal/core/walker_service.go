package core

import (
	"github.com/EmundoT/dep-comply/internal/types"
)

// ProgressTracker receives walk progress for display. Implementations live
// in the tui package; the no-op tracker is used for quiet and JSON modes.
type ProgressTracker interface {
	SetTotal(total int)
	Increment(message string)
	Complete()
	Fail(err error)
}

// WalkerOptions configure one walk over a project model.
type WalkerOptions struct {
	// Ignore is the parsed ignore-policy applied to dependency output.
	Ignore IgnoreSet
	// IgnoreMavenLocal drops repositories named MavenLocalName.
	IgnoreMavenLocal bool
	// Progress receives one increment per visited module. May be nil.
	Progress ProgressTracker
}

// WalkerService produces the deduplicated, ordered, filtered dependency and
// repository identifiers for one project model. The model and all options
// are explicit inputs; the walker holds no ambient state and owns only the
// transient working sets of a single walk.
type WalkerService struct {
	model ProjectModel
}

// NewWalkerService creates a walker for the given project model.
func NewWalkerService(model ProjectModel) *WalkerService {
	return &WalkerService{model: model}
}

// ResolveDependencies walks the runtime axis of every module in the tree.
// Identifiers are deduplicated by value, sorted into the canonical order,
// and only then filtered against the ignore set.
func (s *WalkerService) ResolveDependencies(opts WalkerOptions) ([]types.DependencyIdentifier, error) {
	return s.resolveAxis(opts, func(m BuildModule) []DependencySet { return m.DependencySets })
}

// ResolveBuildDependencies walks the build-tooling axis of every module.
func (s *WalkerService) ResolveBuildDependencies(opts WalkerOptions) ([]types.DependencyIdentifier, error) {
	return s.resolveAxis(opts, func(m BuildModule) []DependencySet { return m.BuildDependencySets })
}

// ResolveRepositories flat-maps every module's declared runtime repositories
// into a deduplicated, name-ordered list. Repository resolution has no
// failure mode.
func (s *WalkerService) ResolveRepositories(opts WalkerOptions) []types.RepositoryIdentifier {
	return s.repositoryAxis(opts, func(m BuildModule) []types.RepositoryIdentifier { return m.Repositories })
}

// ResolveBuildRepositories does the same for the build-tooling axis.
func (s *WalkerService) ResolveBuildRepositories(opts WalkerOptions) []types.RepositoryIdentifier {
	return s.repositoryAxis(opts, func(m BuildModule) []types.RepositoryIdentifier { return m.BuildRepositories })
}

func (s *WalkerService) resolveAxis(opts WalkerOptions, sets func(BuildModule) []DependencySet) ([]types.DependencyIdentifier, error) {
	seen := make(map[types.DependencyIdentifier]struct{})
	for _, module := range s.model.Modules {
		if opts.Progress != nil {
			opts.Progress.Increment(module.Name)
		}
		for _, set := range sets(module) {
			resolved, err := resolveSet(set)
			if err != nil {
				return nil, err
			}
			for _, id := range resolved {
				seen[id] = struct{}{}
			}
		}
	}

	all := make([]types.DependencyIdentifier, 0, len(seen))
	for id := range seen {
		all = append(all, id)
	}
	types.SortDependencies(all)

	// The ignore filter runs after dedup and ordering, matching the order of
	// operations the report is audited against. With structural equality the
	// result is the same either way.
	filtered := make([]types.DependencyIdentifier, 0, len(all))
	for _, id := range all {
		if _, ok := opts.Ignore[id]; ok {
			continue
		}
		filtered = append(filtered, id)
	}
	return filtered, nil
}

// resolveSet validates one dependency set's outcomes. If any edge is
// unresolved the whole set fails: the error lists every unresolved attempt
// in encounter order and the set's resolved outcomes are discarded.
func resolveSet(set DependencySet) ([]types.DependencyIdentifier, error) {
	var attempted []string
	for _, outcome := range set.Outcomes {
		if u, ok := outcome.(UnresolvedAttempt); ok {
			attempted = append(attempted, u.Attempted)
		}
	}
	if len(attempted) > 0 {
		return nil, &ResolutionError{Attempted: attempted}
	}

	var resolved []types.DependencyIdentifier
	for _, outcome := range set.Outcomes {
		switch o := outcome.(type) {
		case ResolvedModule:
			resolved = append(resolved, o.ID)
		case ResolvedProject:
			// project-internal components are not external dependencies
		case UnresolvedAttempt:
			// unreachable: handled above
		}
	}
	return resolved, nil
}

func (s *WalkerService) repositoryAxis(opts WalkerOptions, repos func(BuildModule) []types.RepositoryIdentifier) []types.RepositoryIdentifier {
	seen := make(map[string]types.RepositoryIdentifier)
	for _, module := range s.model.Modules {
		for _, repo := range repos(module) {
			if opts.IgnoreMavenLocal && repo.Name == MavenLocalName {
				continue
			}
			if _, ok := seen[repo.Name]; !ok {
				seen[repo.Name] = repo
			}
		}
	}

	out := make([]types.RepositoryIdentifier, 0, len(seen))
	for _, repo := range seen {
		out = append(out, repo)
	}
	types.SortRepositories(out)
	return out
}
