package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/EmundoT/dep-comply/internal/core"
	"github.com/EmundoT/dep-comply/internal/types"
)

func check(err error) {
	if err != nil {
		fmt.Println("Aborted.")
		os.Exit(1)
	}
}

// RunInitWizard launches the interactive wizard for creating a compliance
// configuration. Returns nil if the user cancels.
func RunInitWizard() *types.ComplianceConfig {
	manifest := core.DefaultManifestFile
	output := core.DefaultReportFile
	ignoreMavenLocal := true
	var rawIgnore string

	err := huh.NewInput().
		Title("Graph Dump File").
		Description("Path to the build graph dump produced by your build").
		Value(&manifest).
		Validate(validateRequiredPath).
		Run()
	check(err)

	err = huh.NewInput().
		Title("Report File").
		Description("Where the compliance report will be written (commit this file)").
		Value(&output).
		Validate(validateRequiredPath).
		Run()
	check(err)

	err = huh.NewConfirm().
		Title("Suppress MavenLocal?").
		Description("Exclude the local Maven repository from the repository listing").
		Value(&ignoreMavenLocal).
		Affirmative("Yes").
		Negative("No").
		Run()
	check(err)

	err = huh.NewText().
		Title("Ignore Patterns").
		Description("One group:name:version coordinate per line (leave empty for none)").
		Value(&rawIgnore).
		Validate(validateIgnorePatterns).
		Run()
	check(err)

	cfg := types.ComplianceConfig{
		Manifest:         manifest,
		Output:           output,
		Ignore:           splitIgnoreLines(rawIgnore),
		IgnoreMavenLocal: ignoreMavenLocal,
	}

	confirm := true
	err = huh.NewConfirm().
		Title("Write configuration?").
		Description(summarizeConfig(&cfg)).
		Value(&confirm).
		Run()
	check(err)
	if !confirm {
		return nil
	}

	return &cfg
}
