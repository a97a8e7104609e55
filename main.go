// Package main implements the dep-comply CLI tool for auditing build dependencies against a committed compliance report.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/EmundoT/dep-comply/cmd"
	"github.com/EmundoT/dep-comply/internal/core"
	"github.com/EmundoT/dep-comply/internal/tui"
	"github.com/EmundoT/dep-comply/internal/types"
	"github.com/EmundoT/dep-comply/internal/version"
)

// Version information is managed in internal/version package
// GoReleaser injects version info directly via ldflags

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		case "--json":
			flags.Mode = core.OutputJSON
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// selectCallback picks the interactive or non-interactive callback for the
// parsed flags and registers it on the manager.
func selectCallback(manager *core.Manager, flags core.NonInteractiveFlags) core.UICallback {
	var callback core.UICallback
	if flags.Yes || flags.Mode != core.OutputNormal {
		callback = tui.NewNonInteractiveTUICallback(flags)
	} else {
		callback = tui.NewTUICallback()
	}
	manager.SetUICallback(callback)
	return callback
}

// identifierStrings renders coordinates for JSON output
func identifierStrings(ids []types.DependencyIdentifier) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" {
		fmt.Printf("dep-comply %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)
	}

	manager := core.NewManager()
	manager.SetUICallback(tui.NewTUICallback()) // Set TUI for user interaction

	switch command {
	case "init":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if core.IsInitialized() {
			callback.ShowError("Already Initialized", fmt.Sprintf("%s already exists", core.ConfigPath))
			os.Exit(1)
		}

		var cfg *types.ComplianceConfig
		if flags.Yes || flags.Mode != core.OutputNormal {
			// Non-interactive init uses defaults
			cfg = &types.ComplianceConfig{
				Manifest:         core.DefaultManifestFile,
				Output:           core.DefaultReportFile,
				IgnoreMavenLocal: true,
			}
		} else {
			cfg = tui.RunInitWizard()
			if cfg == nil {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := manager.Init(*cfg); err != nil {
			callback.ShowError("Initialization Failed", err.Error())
			os.Exit(1)
		}
		callback.ShowSuccess("Initialized " + core.ConfigPath)

	case "export":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		progress := tui.NewProgressTracker(flags.Mode, 0, "Resolving dependency graph")
		path, err := manager.Export(progress)
		if err != nil {
			progress.Fail(err)
			callback.ShowError("Export Failed", err.Error())
			os.Exit(1)
		}
		progress.Complete()

		if flags.Mode == core.OutputJSON {
			_ = callback.FormatJSON(core.JSONOutput{
				Status:  "success",
				Message: "Report written",
				Data: map[string]interface{}{
					"report": path,
				},
			})
		} else {
			callback.ShowSuccess("Report written to " + path)
		}

	case "list":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		data, err := manager.EncodeSnapshot(tui.NewNoOpProgressTracker())
		if err != nil {
			callback.ShowError("List Failed", err.Error())
			os.Exit(1)
		}

		if flags.Mode != core.OutputQuiet && flags.Mode != core.OutputJSON {
			fmt.Println(tui.StyleTitle("Current Compliance Snapshot:"))
		}
		fmt.Print(string(data))

	case "list-ignored":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		ignored, err := manager.ListIgnored()
		if err != nil {
			callback.ShowError("List Failed", err.Error())
			os.Exit(1)
		}

		switch {
		case flags.Mode == core.OutputJSON:
			_ = callback.FormatJSON(core.JSONOutput{
				Status: "success",
				Data: map[string]interface{}{
					"ignored":       identifierStrings(ignored),
					"ignored_count": len(ignored),
				},
			})
		case len(ignored) == 0:
			if flags.Mode != core.OutputQuiet {
				fmt.Println("No dependencies are ignored.")
			}
		default:
			fmt.Println(tui.StyleTitle("Ignored Dependencies:"))
			for _, id := range ignored {
				fmt.Printf("  %s\n", id)
			}
		}

	case "check":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		result, err := manager.Check(tui.NewProgressTracker(flags.Mode, 0, "Checking compliance report"))
		if err != nil {
			callback.ShowError("Check Failed", err.Error())
			os.Exit(1)
		}

		if flags.Mode == core.OutputJSON {
			status := "success"
			message := "Report is current"
			if !result.InSync() {
				status = "error"
				message = core.ErrReportStale.Error()
			}
			_ = callback.FormatJSON(core.JSONOutput{
				Status:  status,
				Message: message,
				Data: map[string]interface{}{
					"in_sync":                    result.InSync(),
					"added_dependencies":         identifierStrings(result.AddedDependencies),
					"removed_dependencies":       identifierStrings(result.RemovedDependencies),
					"added_build_dependencies":   identifierStrings(result.AddedBuildDependencies),
					"removed_build_dependencies": identifierStrings(result.RemovedBuildDependencies),
				},
			})
			if !result.InSync() {
				os.Exit(1)
			}
		} else {
			if result.InSync() {
				callback.ShowSuccess("Committed report matches the current dependency graph")
			} else {
				callback.ShowError("Report Out Of Date", core.ErrReportStale.Error())
				if flags.Mode != core.OutputQuiet {
					fmt.Print(result.Format())
					fmt.Println()
					fmt.Println("Run 'dep-comply export' to update the report.")
				}
				os.Exit(1)
			}
		}

	case "sbom":
		// Parse command-specific flags
		format := "cyclonedx" // default format
		outputFile := ""
		showHelp := false

		flags, args := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		for i := 0; i < len(args); i++ {
			arg := args[i]
			switch {
			case arg == "--help" || arg == "-h":
				showHelp = true
			case arg == "--format" && i+1 < len(args):
				format = args[i+1]
				i++
			case strings.HasPrefix(arg, "--format="):
				format = strings.TrimPrefix(arg, "--format=")
			case arg == "--output" && i+1 < len(args):
				outputFile = args[i+1]
				i++
			case strings.HasPrefix(arg, "--output="):
				outputFile = strings.TrimPrefix(arg, "--output=")
			case arg == "-o" && i+1 < len(args):
				outputFile = args[i+1]
				i++
			}
		}

		if showHelp {
			fmt.Println("Generate Software Bill of Materials (SBOM) from the compliance snapshot")
			fmt.Println()
			fmt.Println("Usage: dep-comply sbom [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --format <fmt>   Output format: cyclonedx (default) or spdx")
			fmt.Println("  --output <file>  Write to file instead of stdout")
			fmt.Println("  -o <file>        Shorthand for --output")
			fmt.Println("  --help, -h       Show this help message")
			fmt.Println()
			fmt.Println("Formats:")
			fmt.Println("  cyclonedx   CycloneDX 1.5 JSON - security-focused, widely supported by scanners")
			fmt.Println("  spdx        SPDX 2.3 JSON - compliance-focused for license analysis")
			fmt.Println()
			fmt.Println("Examples:")
			fmt.Println("  dep-comply sbom                          # Output CycloneDX to stdout")
			fmt.Println("  dep-comply sbom --format spdx            # Output SPDX to stdout")
			fmt.Println("  dep-comply sbom -o sbom.json             # Write CycloneDX to file")
			os.Exit(0)
		}

		// Validate format
		var sbomFormat core.SBOMFormat
		switch format {
		case "cyclonedx":
			sbomFormat = core.SBOMFormatCycloneDX
		case "spdx":
			sbomFormat = core.SBOMFormatSPDX
		default:
			callback.ShowError("Invalid Format", fmt.Sprintf("'%s' is not a valid SBOM format. Use 'cyclonedx' or 'spdx'", format))
			os.Exit(1)
		}

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		output, err := manager.SBOM(sbomFormat, tui.NewNoOpProgressTracker())
		if err != nil {
			callback.ShowError("SBOM Generation Failed", err.Error())
			os.Exit(1)
		}

		// Write output
		if outputFile != "" {
			if err := os.WriteFile(outputFile, output, 0644); err != nil {
				callback.ShowError("Write Failed", err.Error())
				os.Exit(1)
			}
			callback.ShowSuccess(fmt.Sprintf("SBOM written to %s", outputFile))
		} else {
			// Write to stdout
			fmt.Print(string(output))
		}

	case "watch":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(manager, flags)

		if !core.IsInitialized() {
			callback.ShowError("Not Initialized", core.ErrNotInitialized.Error())
			os.Exit(1)
		}

		if err := manager.Watch(); err != nil {
			callback.ShowError("Watch Failed", err.Error())
			os.Exit(1)
		}

	case "completion":
		// Generate shell completion script
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "dep-comply completion <shell>\nSupported shells: bash, zsh, fish, powershell")
			os.Exit(1)
		}

		shell := os.Args[2]
		var script string

		switch shell {
		case "bash":
			script = cmd.GenerateBashCompletion()
		case "zsh":
			script = cmd.GenerateZshCompletion()
		case "fish":
			script = cmd.GenerateFishCompletion()
		case "powershell":
			script = cmd.GeneratePowerShellCompletion()
		default:
			tui.PrintError("Invalid Shell", fmt.Sprintf("'%s' is not supported. Use: bash, zsh, fish, or powershell", shell))
			os.Exit(1)
		}

		fmt.Println(script)

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a valid dep-comply command", command))
		fmt.Println()
		tui.PrintHelp()
		os.Exit(1)
	}
}
