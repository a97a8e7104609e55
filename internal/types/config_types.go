package types

// ComplianceConfig is the on-disk configuration (.dep-comply/comply.yml).
// Ignore entries are group:name:version patterns; they are parsed eagerly at
// the configuration boundary, never passed as raw text into the core.
type ComplianceConfig struct {
	// Manifest is the path to the resolved-graph dump produced by the host
	// build tool. Defaults to build-graph.yml.
	Manifest string `yaml:"manifest,omitempty"`
	// Output is the report file path. Defaults to dependency-compliance.json.
	Output string `yaml:"output,omitempty"`
	// Ignore lists dependencies excluded from the report.
	Ignore []string `yaml:"ignore,omitempty"`
	// IgnoreMavenLocal suppresses the local Maven cache repository.
	IgnoreMavenLocal bool `yaml:"ignoreMavenLocal,omitempty"`
}
