package core

import "github.com/EmundoT/dep-comply/internal/types"

// ResolutionOutcome is one per-edge result in a resolved dependency set. The
// variant set is closed (ResolvedModule, ResolvedProject, UnresolvedAttempt)
// and guarded by an unexported marker method, so consumers can switch
// exhaustively on the concrete type and a new outcome kind becomes a
// compile-time-visible change everywhere it matters.
type ResolutionOutcome interface {
	outcome()
}

// ResolvedModule is a dependency edge that resolved to an external module.
type ResolvedModule struct {
	ID types.DependencyIdentifier
}

// ResolvedProject is a dependency edge that resolved to a project-internal
// component. Internal components are not externally sourced and never appear
// in the compliance report.
type ResolvedProject struct {
	Path string
}

// UnresolvedAttempt is a dependency edge the host build tool could not
// resolve. Attempted is the opaque display string of what was tried.
type UnresolvedAttempt struct {
	Attempted string
}

func (ResolvedModule) outcome()    {}
func (ResolvedProject) outcome()   {}
func (UnresolvedAttempt) outcome() {}

// DependencySet is one resolvable unit of dependency declarations together
// with its already-materialized resolution result. If any outcome is an
// UnresolvedAttempt the whole set is in the failed state and its resolved
// outcomes must not be used.
type DependencySet struct {
	Name     string
	Outcomes []ResolutionOutcome
}

// BuildModule is one module of the project tree: zero or more dependency
// sets per axis plus the repositories it declares per axis.
type BuildModule struct {
	Name                string
	DependencySets      []DependencySet // runtime axis
	BuildDependencySets []DependencySet // build-tooling axis
	Repositories        []types.RepositoryIdentifier
	BuildRepositories   []types.RepositoryIdentifier
}

// ProjectModel is the whole module tree handed over by the host build tool.
// The walker takes it as an explicit input; there is no ambient project
// state, which keeps walks deterministic and testable against synthetic
// models.
type ProjectModel struct {
	Name    string
	Modules []BuildModule
}
