package types

// BuildManifest is the resolved-graph dump produced by the host build tool.
// It is the materialized form of the project model: every dependency edge has
// already been resolved (or has already failed) by the time dep-comply reads
// it. dep-comply performs no resolution of its own.
type BuildManifest struct {
	Project string           `yaml:"project"`
	Modules []ManifestModule `yaml:"modules"`
}

// ManifestModule is one module of the project tree with its dependency sets
// and declared repositories, split into the runtime axis and the
// build-tooling axis.
type ManifestModule struct {
	Name                string                  `yaml:"name"`
	Repositories        []RepositoryIdentifier  `yaml:"repositories,omitempty"`
	BuildRepositories   []RepositoryIdentifier  `yaml:"buildRepositories,omitempty"`
	Configurations      []ManifestConfiguration `yaml:"configurations,omitempty"`
	BuildConfigurations []ManifestConfiguration `yaml:"buildConfigurations,omitempty"`
}

// ManifestConfiguration is one resolvable dependency set and its per-edge
// resolution results.
type ManifestConfiguration struct {
	Name         string          `yaml:"name"`
	Dependencies []ManifestEntry `yaml:"dependencies,omitempty"`
}

// ManifestEntry is one per-edge outcome in the dump. Exactly one of ID,
// Project or Attempted must be set:
//
//   - ID: the edge resolved to an external module, group:name:version
//   - Project: the edge resolved to a project-internal component
//   - Attempted: the host tool could not resolve the edge; the value is the
//     attempted coordinate's display string
type ManifestEntry struct {
	ID        string `yaml:"id,omitempty"`
	Project   string `yaml:"project,omitempty"`
	Attempted string `yaml:"attempted,omitempty"`
}
