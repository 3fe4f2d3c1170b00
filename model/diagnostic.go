// Package model defines the document types parsed from a domain model tree
// and the diagnostic types produced by validating them.
package model

import (
	"fmt"
	"sort"
	"time"
)

// Severity classifies how serious a diagnostic is.
type Severity string

const (
	// SeverityError indicates a violation that must be fixed.
	SeverityError Severity = "error"
	// SeverityWarning indicates a convention violation that should be fixed.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates an advisory finding.
	SeverityInfo Severity = "info"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid returns true if the severity is a known severity level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// rank orders severities for sorting: errors first, info last.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Diagnostic is a single validation finding scoped to a file path.
// It has no identity beyond its fields.
type Diagnostic struct {
	// Path is the file or directory the finding applies to.
	Path string `json:"path"`

	// Message describes the finding.
	Message string `json:"message"`

	// Severity classifies the finding.
	Severity Severity `json:"severity"`
}

// Errorf builds an error-severity diagnostic with a formatted message.
func Errorf(path, format string, args ...any) Diagnostic {
	return Diagnostic{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityError}
}

// Warnf builds a warning-severity diagnostic with a formatted message.
func Warnf(path, format string, args ...any) Diagnostic {
	return Diagnostic{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning}
}

// Infof builds an info-severity diagnostic with a formatted message.
func Infof(path, format string, args ...any) Diagnostic {
	return Diagnostic{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityInfo}
}

// SortDiagnostics stable-sorts diagnostics by path, then severity
// (errors first), then message. Runs that validate directory groups in
// parallel rely on this to keep output deterministic regardless of
// completion order.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Path != diags[j].Path {
			return diags[i].Path < diags[j].Path
		}
		if diags[i].Severity != diags[j].Severity {
			return diags[i].Severity.rank() < diags[j].Severity.rank()
		}
		return diags[i].Message < diags[j].Message
	})
}

// Result is the output of one validation run.
type Result struct {
	// RunID uniquely identifies this run for log correlation.
	RunID string `json:"run_id"`

	// Root is the path that was validated.
	Root string `json:"root"`

	// Diagnostics is the ordered list of findings.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Model is the parsed entity document when a single entity/behavior
	// file was validated. Nil for directory runs.
	Model *ModelDefinition `json:"model,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when the run finished.
	CompletedAt time.Time `json:"completed_at"`
}

// HasErrors returns true if any diagnostic is error severity.
func (r *Result) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Count returns the number of diagnostics with the given severity.
func (r *Result) Count(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// ValidationError describes a structurally invalid document field.
type ValidationError struct {
	// Field is the field that failed validation.
	Field string

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
