package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.Report) error
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
}

// LocalReportStore writes reports as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
