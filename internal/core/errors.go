package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNotInitialized indicates the compliance config doesn't exist
	ErrNotInitialized = errors.New("compliance config not found. Run 'dep-comply init' first")

	// ErrReportStale indicates the committed report no longer matches the graph
	ErrReportStale = errors.New("committed report does not match the current dependency graph")
)

// ResolutionError reports that one or more dependencies of a single
// resolvable set could not be resolved by the host build tool. Attempted
// holds the display string of every unresolved edge in encounter order; the
// message enumerates all of them, not just the first. The error aborts the
// invocation before any report is written.
type ResolutionError struct {
	Attempted []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("The following dependencies cannot be resolved: [%s]", strings.Join(e.Attempted, ", "))
}

// PatternError reports a malformed ignore pattern. Patterns must have the
// form group:name:version with all three parts non-empty. A malformed entry
// is a configuration error and aborts processing; it is never silently
// skipped.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ignore pattern %q: expected group:name:version", e.Pattern)
}

// DecodeError reports a structurally invalid report document on read.
// Unknown extra fields are tolerated; a missing required field is not.
type DecodeError struct {
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid report: missing required field %q", e.Field)
}
