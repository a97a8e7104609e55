package tui

import (
	"fmt"
	"strings"

	"github.com/EmundoT/dep-comply/internal/core"
	"github.com/EmundoT/dep-comply/internal/types"
)

// validateRequiredPath rejects empty or whitespace-only path inputs.
func validateRequiredPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	return nil
}

// validateIgnorePatterns checks every non-blank line against the
// group:name:version coordinate format.
func validateIgnorePatterns(raw string) error {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := core.ParseCoordinate(line); err != nil {
			return err
		}
	}
	return nil
}

// splitIgnoreLines turns multiline wizard input into an ignore list,
// dropping blank lines and trimming whitespace.
func splitIgnoreLines(raw string) []string {
	var patterns []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// summarizeConfig builds the confirmation summary shown before writing.
func summarizeConfig(cfg *types.ComplianceConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph dump: %s\n", cfg.Manifest)
	fmt.Fprintf(&b, "Report:     %s\n", cfg.Output)
	fmt.Fprintf(&b, "MavenLocal: %s\n", describeMavenLocal(cfg.IgnoreMavenLocal))
	fmt.Fprintf(&b, "Ignored:    %s", describeIgnoreCount(len(cfg.Ignore)))
	return b.String()
}

// describeMavenLocal returns the display text for the MavenLocal setting.
func describeMavenLocal(suppressed bool) string {
	if suppressed {
		return "suppressed"
	}
	return "listed"
}

// describeIgnoreCount returns a human-readable count of ignore patterns.
func describeIgnoreCount(count int) string {
	if count == 0 {
		return "none"
	}
	if count == 1 {
		return "1 coordinate"
	}
	return fmt.Sprintf("%d coordinates", count)
}
