package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status is the verdict for a single file.
type Status int

const (
	// Passed means every opener was closed in order.
	Passed Status = iota
	// Failed means a diagnostic was produced.
	Failed
	// Errored means the file could not be read.
	Errored
	// Skipped means the file was never checked because the run stopped early.
	Skipped
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ParseStatus converts the String form back into a Status.
func ParseStatus(value string) (Status, error) {
	for _, status := range []Status{Passed, Failed, Errored, Skipped} {
		if status.String() == value {
			return status, nil
		}
	}

	return Passed, fmt.Errorf("unknown status %q", value)
}

// MarshalYAML writes the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a status written by MarshalYAML.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	status, err := ParseStatus(value.Value)
	if err != nil {
		return err
	}

	*s = status

	return nil
}

// FileResult holds the outcome of checking one file.
type FileResult struct {
	Path       Path        `yaml:"path"`
	Status     Status      `yaml:"status"`
	Diagnostic *Diagnostic `yaml:"diagnostic,omitempty"`
	// Error is the read error message for Errored results.
	Error string `yaml:"error,omitempty"`
}

// OK reports whether the file passed.
func (r FileResult) OK() bool {
	return r.Status == Passed
}

// Summary aggregates the verdicts of a run.
type Summary struct {
	Checked int `yaml:"checked"`
	Passed  int `yaml:"passed"`
	Failed  int `yaml:"failed"`
	Errored int `yaml:"errored"`
	Skipped int `yaml:"skipped"`
}

// Add counts one result.
func (s *Summary) Add(result FileResult) {
	switch result.Status {
	case Passed:
		s.Checked++
		s.Passed++
	case Failed:
		s.Checked++
		s.Failed++
	case Errored:
		s.Checked++
		s.Errored++
	case Skipped:
		s.Skipped++
	}
}

// OK reports whether every checked file passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0 && s.Skipped == 0
}

// Report is the persisted form of a run.
type Report struct {
	Version int          `yaml:"version"`
	Syntax  Path         `yaml:"syntax"`
	Pairs   []Pair       `yaml:"pairs"`
	Results []FileResult `yaml:"results"`
	Summary Summary      `yaml:"summary"`
}
