package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/EmundoT/dep-comply/internal/types"
)

// ============================================================================
// BuildProjectModel Tests
// ============================================================================

func TestBuildProjectModel(t *testing.T) {
	manifest := types.BuildManifest{
		Project: "demo",
		Modules: []types.ManifestModule{
			{
				Name: "demo",
				Repositories: []types.RepositoryIdentifier{
					{Name: "MavenRepo", URL: "https://repo.maven.apache.org/maven2/"},
				},
				Configurations: []types.ManifestConfiguration{
					{
						Name: "runtimeClasspath",
						Dependencies: []types.ManifestEntry{
							{ID: "commons-io:commons-io:2.11.0"},
							{Project: ":lib"},
						},
					},
				},
				BuildConfigurations: []types.ManifestConfiguration{
					{
						Name: "classpath",
						Dependencies: []types.ManifestEntry{
							{Attempted: "com.example:missing-plugin:1.0"},
						},
					},
				},
			},
		},
	}

	model, err := BuildProjectModel(manifest)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if model.Name != "demo" {
		t.Errorf("Expected project name 'demo', got '%s'", model.Name)
	}
	if len(model.Modules) != 1 {
		t.Fatalf("Expected 1 module, got %d", len(model.Modules))
	}

	mod := model.Modules[0]
	if len(mod.DependencySets) != 1 || len(mod.BuildDependencySets) != 1 {
		t.Fatalf("Unexpected set counts: %d runtime, %d build", len(mod.DependencySets), len(mod.BuildDependencySets))
	}

	outcomes := mod.DependencySets[0].Outcomes
	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}
	resolved, ok := outcomes[0].(ResolvedModule)
	if !ok || resolved.ID.String() != "commons-io:commons-io:2.11.0" {
		t.Errorf("Unexpected first outcome: %#v", outcomes[0])
	}
	project, ok := outcomes[1].(ResolvedProject)
	if !ok || project.Path != ":lib" {
		t.Errorf("Unexpected second outcome: %#v", outcomes[1])
	}

	buildOutcomes := mod.BuildDependencySets[0].Outcomes
	attempt, ok := buildOutcomes[0].(UnresolvedAttempt)
	if !ok || attempt.Attempted != "com.example:missing-plugin:1.0" {
		t.Errorf("Unexpected build outcome: %#v", buildOutcomes[0])
	}
}

func TestBuildProjectModel_EmptyManifest(t *testing.T) {
	model, err := BuildProjectModel(types.BuildManifest{Project: "empty"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(model.Modules) != 0 {
		t.Errorf("Expected no modules, got %d", len(model.Modules))
	}
}

// ============================================================================
// Entry Validation Tests
// ============================================================================

func TestBuildProjectModel_EntryValidation(t *testing.T) {
	tests := []struct {
		name    string
		entry   types.ManifestEntry
		wantErr string
	}{
		{
			name:    "no fields set",
			entry:   types.ManifestEntry{},
			wantErr: "exactly one of id, project or attempted",
		},
		{
			name:    "two fields set",
			entry:   types.ManifestEntry{ID: "g:n:1.0", Project: ":lib"},
			wantErr: "exactly one of id, project or attempted",
		},
		{
			name:    "all fields set",
			entry:   types.ManifestEntry{ID: "g:n:1.0", Project: ":lib", Attempted: "x:y:z"},
			wantErr: "exactly one of id, project or attempted",
		},
		{
			name:    "malformed id",
			entry:   types.ManifestEntry{ID: "not-a-coordinate"},
			wantErr: "invalid ignore pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := types.BuildManifest{
				Modules: []types.ManifestModule{
					{
						Name: "app",
						Configurations: []types.ManifestConfiguration{
							{Name: "runtimeClasspath", Dependencies: []types.ManifestEntry{tt.entry}},
						},
					},
				},
			}

			_, err := BuildProjectModel(manifest)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
			// location context: module, configuration, entry index
			if !strings.Contains(err.Error(), `module "app"`) || !strings.Contains(err.Error(), `configuration "runtimeClasspath"`) {
				t.Errorf("Expected error to name module and configuration, got: %v", err)
			}
		})
	}
}

func TestBuildProjectModel_MalformedIDIsPatternError(t *testing.T) {
	manifest := types.BuildManifest{
		Modules: []types.ManifestModule{
			{
				Name: "app",
				Configurations: []types.ManifestConfiguration{
					{Name: "runtimeClasspath", Dependencies: []types.ManifestEntry{{ID: "g:n"}}},
				},
			},
		},
	}

	_, err := BuildProjectModel(manifest)
	var patternErr *PatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("Expected wrapped PatternError, got %T: %v", err, err)
	}
}
