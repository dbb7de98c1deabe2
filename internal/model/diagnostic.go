package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the diagnostic kinds, usable with errors.Is.
var (
	ErrAmbiguousMatch     = errors.New("ambiguous keyword match")
	ErrLonelyCloser       = errors.New("lonely end marker")
	ErrMismatchedPair     = errors.New("mismatched marker pair")
	ErrUnterminatedOpener = errors.New("unterminated marker")
)

// DiagnosticKind classifies a balance violation.
type DiagnosticKind string

// Known diagnostic kinds.
const (
	KindAmbiguousMatch     DiagnosticKind = "ambiguous-match"
	KindLonelyCloser       DiagnosticKind = "lonely-closer"
	KindMismatchedPair     DiagnosticKind = "mismatched-pair"
	KindUnterminatedOpener DiagnosticKind = "unterminated-opener"
)

// Err returns the sentinel error for the kind, or nil for unknown kinds.
func (k DiagnosticKind) Err() error {
	switch k {
	case KindAmbiguousMatch:
		return ErrAmbiguousMatch
	case KindLonelyCloser:
		return ErrLonelyCloser
	case KindMismatchedPair:
		return ErrMismatchedPair
	case KindUnterminatedOpener:
		return ErrUnterminatedOpener
	default:
		return nil
	}
}

// Diagnostic is the first violation found in a file.
type Diagnostic struct {
	Line    int            `yaml:"line"`
	Kind    DiagnosticKind `yaml:"kind"`
	Message string         `yaml:"message"`
	// Text holds the offending line content for ambiguous matches.
	Text string `yaml:"text,omitempty"`
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Unwrap exposes the sentinel error of the diagnostic kind.
func (d *Diagnostic) Unwrap() error {
	return d.Kind.Err()
}
