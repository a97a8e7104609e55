package core

import (
	"strings"

	"github.com/EmundoT/dep-comply/internal/types"
)

// IgnoreSet is the parsed ignore-policy: the set of dependency identifiers
// suppressed from the report. Membership is exact structural equality on all
// three coordinate fields; there is no glob or prefix matching.
type IgnoreSet map[types.DependencyIdentifier]struct{}

// FilterService parses the textual ignore list into dependency identifiers
// and answers membership queries during report assembly.
type FilterService struct{}

// NewFilterService creates a new FilterService
func NewFilterService() *FilterService {
	return &FilterService{}
}

// ParseIgnoreList turns the configured ignore patterns into an IgnoreSet.
// Blank and whitespace-only entries are skipped; a malformed entry aborts
// with a PatternError rather than being silently dropped.
func (s *FilterService) ParseIgnoreList(patterns []string) (IgnoreSet, error) {
	ignored := make(IgnoreSet, len(patterns))
	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		id, err := ParseCoordinate(trimmed)
		if err != nil {
			return nil, err
		}
		ignored[id] = struct{}{}
	}
	return ignored, nil
}

// IsIgnored reports whether id matches an entry of the ignore set.
func (s *FilterService) IsIgnored(id types.DependencyIdentifier, ignored IgnoreSet) bool {
	_, ok := ignored[id]
	return ok
}

// Sorted returns the ignore set's identifiers in report order, for display.
func (s *FilterService) Sorted(ignored IgnoreSet) []types.DependencyIdentifier {
	ids := make([]types.DependencyIdentifier, 0, len(ignored))
	for id := range ignored {
		ids = append(ids, id)
	}
	types.SortDependencies(ids)
	return ids
}

// ParseCoordinate parses a group:name:version string into an identifier.
// Exactly three parts are required and every part must be non-empty;
// anything else is a PatternError.
func ParseCoordinate(pattern string) (types.DependencyIdentifier, error) {
	parts := strings.Split(pattern, ":")
	if len(parts) != 3 {
		return types.DependencyIdentifier{}, &PatternError{Pattern: pattern}
	}
	for _, part := range parts {
		if part == "" {
			return types.DependencyIdentifier{}, &PatternError{Pattern: pattern}
		}
	}
	return types.DependencyIdentifier{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}
