// Package tui provides terminal user interface components and callbacks for dep-comply.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) {
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(msg))
}

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintHelp displays usage information for dep-comply commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("dep-comply"))
	fmt.Println("Audit a build's external dependencies against a compliance policy")
	fmt.Println("\nCommands:")
	fmt.Println("  init                Create .dep-comply/comply.yml (interactive on a TTY)")
	fmt.Println("  export              Resolve the dependency graph and write the compliance report")
	fmt.Println("  list                Print the current compliance snapshot to the console")
	fmt.Println("  list-ignored        Print the parsed ignore list for inspection")
	fmt.Println("  check               Verify the committed report matches the current graph")
	fmt.Println("  sbom [options]      Render the snapshot as an SBOM")
	fmt.Println("    --format <fmt>    SBOM format: cyclonedx (default) or spdx")
	fmt.Println("    --output <file>   Write to file instead of stdout")
	fmt.Println("  watch               Re-export whenever the graph dump changes")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish/powershell)")
	fmt.Println("\nCommon flags:")
	fmt.Println("  --json              Structured JSON output")
	fmt.Println("  --quiet, -q         Minimal output")
	fmt.Println("  --yes, -y           Auto-approve prompts")
	fmt.Println("\nExamples:")
	fmt.Println("  dep-comply init")
	fmt.Println("  dep-comply export")
	fmt.Println("  dep-comply check --quiet")
	fmt.Println("  dep-comply list-ignored")
	fmt.Println("  dep-comply sbom --format spdx --output sbom.spdx.json")
	fmt.Println("  dep-comply completion bash > /etc/bash_completion.d/dep-comply")
}
