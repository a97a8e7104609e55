package core

// File and directory names
const (
	// ComplyDir is the root directory for all dep-comply files.
	// Uses dotfile convention so it stays out of the build's source tree.
	ComplyDir = ".dep-comply"
	// ConfigFile is the compliance configuration filename
	ConfigFile = "comply.yml"
)

// ConfigPath is the full path to comply.yml relative to the project root.
const ConfigPath = ComplyDir + "/" + ConfigFile

// Defaults applied when comply.yml leaves a field empty.
const (
	// DefaultManifestFile is the conventional name of the resolved-graph dump
	DefaultManifestFile = "build-graph.yml"
	// DefaultReportFile is the conventional report filename
	DefaultReportFile = "dependency-compliance.json"
)

// MavenLocalName is the declared name of the host build tool's local cache
// repository. Entries with this exact name are dropped from the report when
// ignoreMavenLocal is set; any other name is retained regardless of the flag.
const MavenLocalName = "MavenLocal"
