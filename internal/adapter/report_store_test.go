package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "run.yaml"))

	report := m.Report{
		Version: 1,
		Syntax:  "syntax.json",
		Pairs:   []m.Pair{{Opener: "BEGIN", Closer: "END"}},
		Results: []m.FileResult{
			{Path: "a.cpp", Status: m.Passed},
			{
				Path:   "b.cpp",
				Status: m.Failed,
				Diagnostic: &m.Diagnostic{
					Line:    3,
					Kind:    m.KindLonelyCloser,
					Message: "lonely end marker END",
				},
			},
			{Path: "c.cpp", Status: m.Errored, Error: "permission denied"},
		},
		Summary: m.Summary{Checked: 3, Passed: 1, Failed: 1, Errored: 1},
	}

	require.NoError(t, store.SaveReport(context.Background(), path, report))

	loaded, err := store.LoadReport(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(context.Background(), m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	require.Error(t, err)
}

func TestReportStore_LoadUnknownStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, path, "results:\n  - path: a.cpp\n    status: exploded\n")

	_, err := NewReportStore().LoadReport(context.Background(), m.Path(path))
	require.Error(t, err)
}
