// Package types defines the value types shared across dep-comply: dependency
// and repository identifiers, the exportable compliance report, and the
// on-disk configuration and graph-dump shapes.
//
//nolint:revive // Package name "types" is standard and appropriate
package types

import (
	"sort"
	"strings"
)

// DependencyIdentifier identifies one resolved external dependency by its
// module coordinates. It is a pure value: equality is structural on all three
// fields and instances are never mutated after construction.
type DependencyIdentifier struct {
	Group   string `json:"group" yaml:"group"`
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// String renders the identifier in group:name:version form.
func (d DependencyIdentifier) String() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}

// Compare orders identifiers by group, then name, then version. All three are
// plain text comparisons; version strings carry no numeric meaning here.
// The result follows strings.Compare conventions.
func (d DependencyIdentifier) Compare(other DependencyIdentifier) int {
	if c := strings.Compare(d.Group, other.Group); c != 0 {
		return c
	}
	if c := strings.Compare(d.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(d.Version, other.Version)
}

// SortDependencies sorts identifiers in place into the canonical report
// order. The order is total and deterministic so report output is
// byte-identical across runs for the same resolved graph.
func SortDependencies(deps []DependencyIdentifier) {
	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Compare(deps[j]) < 0
	})
}

// RepositoryIdentifier identifies one declared artifact repository. Identity
// for filtering and deduplication is the declared name; the URL is carried
// for reporting only.
type RepositoryIdentifier struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// SortRepositories sorts repositories in place by name. Repositories have set
// semantics, but the report is sorted so output stays byte-identical.
func SortRepositories(repos []RepositoryIdentifier) {
	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})
}
