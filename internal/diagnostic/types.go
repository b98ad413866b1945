package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"feature-compiler/internal/common"
)

// Diagnostics holds all diagnostic information from one build.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Feature identifies the feature instance this relates to (if any), e.g. "toggle#3".
	Feature string
	// NodePath identifies the scene node this relates to (if any).
	NodePath string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// add files a diagnostic under its severity.
func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, feature, nodePath string) {
	diag := Diagnostic{Severity: sev, Code: code, Message: message, Feature: feature, NodePath: nodePath}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records a problem that fails the build.
func (d *Diagnostics) AddError(code, message, feature, nodePath string) {
	d.add(DiagnosticError, code, message, feature, nodePath)
}

// AddWarning records a problem that only skips the affected feature.
func (d *Diagnostics) AddWarning(code, message, feature, nodePath string) {
	d.add(DiagnosticWarning, code, message, feature, nodePath)
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, feature, nodePath string) {
	d.add(DiagnosticInfo, code, message, feature, nodePath)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarning reports whether a warning with the given code was recorded.
func (d *Diagnostics) HasWarning(code string) bool {
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every collected diagnostic to the logger at the matching level.
func (d *Diagnostics) Log(logger *slog.Logger) {
	if logger == nil {
		return
	}

	for _, group := range [][]Diagnostic{d.Infos, d.Warnings, d.Errors} {
		for _, diag := range group {
			logger.Log(context.Background(), diag.Severity.Level(), diag.Message,
				"code", diag.Code, "feature", diag.Feature, "node", diag.NodePath)
		}
	}
}

// Level maps the severity onto a slog level.
func (s DiagnosticSeverity) Level() slog.Level {
	switch s {
	case DiagnosticError:
		return slog.LevelError
	case DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Feature != "" {
		prefix = append(prefix, "["+d.Feature+"]")
	}

	if d.NodePath != "" {
		prefix = append(prefix, d.NodePath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
