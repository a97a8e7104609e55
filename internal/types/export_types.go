package types

// DependencyExport is the compliance snapshot written to and read from the
// report file. The top-level keys and the field names of nested objects are
// fixed; readers tolerate unknown extra fields for forward compatibility.
// Dependency lists are ordered per DependencyIdentifier.Compare, repository
// lists by name. A snapshot is assembled once per invocation and never
// mutated afterwards.
type DependencyExport struct {
	Dependencies      []DependencyIdentifier `json:"dependencies"`
	BuildDependencies []DependencyIdentifier `json:"buildDependencies"`
	Repositories      []RepositoryIdentifier `json:"repositories"`
	BuildRepositories []RepositoryIdentifier `json:"buildRepositories"`
}
