package core

import (
	"fmt"
	"os"

	"github.com/EmundoT/dep-comply/internal/types"
)

// Manager provides the main API for dep-comply operations. It wires the
// stores and services together for the command layer; all compliance logic
// lives in the individual services.
type Manager struct {
	RootDir     string
	configStore ConfigStore
	fs          FileSystem
	filter      *FilterService
	export      *ExportService
	check       *CheckService
	ui          UICallback
}

// NewManager creates a new Manager with default dependencies
func NewManager() *Manager {
	fs := NewOSFileSystem()
	return &Manager{
		RootDir:     ComplyDir,
		configStore: NewFileConfigStore(ComplyDir),
		fs:          fs,
		filter:      NewFilterService(),
		export:      NewExportService(fs),
		check:       NewCheckService(),
		ui:          &SilentUICallback{},
	}
}

// NewManagerWithStores creates a Manager with custom dependencies (useful
// for testing against temp directories).
func NewManagerWithStores(configStore ConfigStore, fs FileSystem) *Manager {
	return &Manager{
		RootDir:     ComplyDir,
		configStore: configStore,
		fs:          fs,
		filter:      NewFilterService(),
		export:      NewExportService(fs),
		check:       NewCheckService(),
		ui:          &SilentUICallback{},
	}
}

// SetUICallback sets the UI callback for user-facing output
func (m *Manager) SetUICallback(ui UICallback) {
	m.ui = ui
}

// ConfigPath returns the path to comply.yml
func (m *Manager) ConfigPath() string {
	return m.configStore.Path()
}

// IsInitialized checks if the compliance config exists.
func IsInitialized() bool {
	_, err := os.Stat(ConfigPath)
	return err == nil
}

// Init creates the comply directory and writes the initial configuration.
func (m *Manager) Init(cfg types.ComplianceConfig) error {
	if err := os.MkdirAll(m.RootDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", m.RootDir, err)
	}
	return m.configStore.Save(cfg)
}

// GetConfig loads the configuration with defaults applied.
func (m *Manager) GetConfig() (types.ComplianceConfig, error) {
	cfg, err := m.configStore.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrNotInitialized
		}
		return cfg, err
	}
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifestFile
	}
	if cfg.Output == "" {
		cfg.Output = DefaultReportFile
	}
	return cfg, nil
}

// Snapshot runs the full audit pipeline: load the graph dump, decode it into
// a project model, parse the ignore list, walk both axes and assemble the
// compliance snapshot. Returns the snapshot and the project name. Resolution
// and configuration errors propagate unmodified.
func (m *Manager) Snapshot(progress ProgressTracker) (types.DependencyExport, string, error) {
	cfg, err := m.GetConfig()
	if err != nil {
		return types.DependencyExport{}, "", err
	}

	manifest, err := NewFileManifestStore(cfg.Manifest).Load()
	if err != nil {
		return types.DependencyExport{}, "", fmt.Errorf("load manifest %s: %w", cfg.Manifest, err)
	}

	model, err := BuildProjectModel(manifest)
	if err != nil {
		return types.DependencyExport{}, "", err
	}

	ignore, err := m.filter.ParseIgnoreList(cfg.Ignore)
	if err != nil {
		return types.DependencyExport{}, "", err
	}

	walker := NewWalkerService(model)
	opts := WalkerOptions{
		Ignore:           ignore,
		IgnoreMavenLocal: cfg.IgnoreMavenLocal,
		Progress:         progress,
	}
	if progress != nil {
		// one increment per module per dependency axis
		progress.SetTotal(len(model.Modules) * 2)
	}

	deps, err := walker.ResolveDependencies(opts)
	if err != nil {
		return types.DependencyExport{}, "", err
	}
	buildDeps, err := walker.ResolveBuildDependencies(opts)
	if err != nil {
		return types.DependencyExport{}, "", err
	}
	repos := walker.ResolveRepositories(opts)
	buildRepos := walker.ResolveBuildRepositories(opts)

	export := m.export.Assemble(deps, buildDeps, repos, buildRepos)
	return export, model.Name, nil
}

// Export assembles the snapshot and writes the report to the configured
// output path. Returns the path written. Nothing is written when any
// dependency set fails to resolve.
func (m *Manager) Export(progress ProgressTracker) (string, error) {
	cfg, err := m.GetConfig()
	if err != nil {
		return "", err
	}

	export, _, err := m.Snapshot(progress)
	if err != nil {
		return "", err
	}

	if err := m.export.WriteReport(export, cfg.Output); err != nil {
		return "", err
	}
	return cfg.Output, nil
}

// EncodeSnapshot renders the current snapshot as report JSON without
// writing it, for console listing.
func (m *Manager) EncodeSnapshot(progress ProgressTracker) ([]byte, error) {
	export, _, err := m.Snapshot(progress)
	if err != nil {
		return nil, err
	}
	return m.export.Encode(export)
}

// ListIgnored returns the parsed ignore set in report order.
func (m *Manager) ListIgnored() ([]types.DependencyIdentifier, error) {
	cfg, err := m.GetConfig()
	if err != nil {
		return nil, err
	}
	ignore, err := m.filter.ParseIgnoreList(cfg.Ignore)
	if err != nil {
		return nil, err
	}
	return m.filter.Sorted(ignore), nil
}

// Check compares the committed report with the current snapshot.
func (m *Manager) Check(progress ProgressTracker) (CheckResult, error) {
	cfg, err := m.GetConfig()
	if err != nil {
		return CheckResult{}, err
	}

	current, _, err := m.Snapshot(progress)
	if err != nil {
		return CheckResult{}, err
	}

	committed, err := m.export.ReadReport(cfg.Output)
	if err != nil {
		return CheckResult{}, err
	}

	return m.check.Compare(current, committed), nil
}

// SBOM renders the current snapshot in the given SBOM format.
func (m *Manager) SBOM(format SBOMFormat, progress ProgressTracker) ([]byte, error) {
	export, projectName, err := m.Snapshot(progress)
	if err != nil {
		return nil, err
	}
	if projectName == "" {
		projectName = "project"
	}
	return NewSBOMService(projectName).Generate(export, format)
}

// Watch re-exports the report whenever the manifest changes.
func (m *Manager) Watch() error {
	cfg, err := m.GetConfig()
	if err != nil {
		return err
	}
	watcher := NewWatchService(cfg.Manifest, m.ui)
	return watcher.Watch(func() error {
		_, err := m.Export(nil)
		return err
	})
}
