package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func newTestSimpleUI(t *testing.T, options ...StartOption) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start(context.Background(), options...))

	return ui, out
}

func TestSimpleUI_DisplayPairs(t *testing.T) {
	ui, out := newTestSimpleUI(t, WithKeywordsMode())

	err := ui.DisplayPairs(context.Background(), []m.Pair{
		{Opener: "BEGIN", Closer: "END"},
		{Opener: "OPEN_REGION", Closer: "CLOSE_REGION"},
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "BEGIN")
	assert.Contains(t, output, "END")
	assert.Contains(t, output, "OPEN_REGION")
	assert.Contains(t, output, "CLOSE_REGION")
	assert.Contains(t, strings.ToUpper(output), "TOTAL PAIRS 2")
}

func TestSimpleUI_DisplayPairs_CanceledContext(t *testing.T) {
	ui, out := newTestSimpleUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayPairs(ctx, []m.Pair{{Opener: "BEGIN", Closer: "END"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		result m.FileResult
		want   string
	}{
		{
			name:   "passed",
			result: m.FileResult{Path: "a.cpp", Status: m.Passed},
			want:   "a.cpp OK\n",
		},
		{
			name:   "passed in quiet mode",
			quiet:  true,
			result: m.FileResult{Path: "a.cpp", Status: m.Passed},
			want:   "",
		},
		{
			name:  "failed",
			quiet: true,
			result: m.FileResult{Path: "b.cpp", Status: m.Failed, Diagnostic: &m.Diagnostic{
				Line: 7, Kind: m.KindUnterminatedOpener, Message: "BEGIN lacks end marker",
			}},
			want: "b.cpp, line 7: BEGIN lacks end marker\n",
		},
		{
			name:   "errored",
			result: m.FileResult{Path: "c.cpp", Status: m.Errored, Error: "permission denied"},
			want:   "c.cpp: permission denied\n",
		},
		{
			name:   "skipped",
			result: m.FileResult{Path: "d.cpp", Status: m.Skipped},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestSimpleUI(t, WithCheckMode(), WithQuiet(tt.quiet))

			ui.DisplayFileResult(context.Background(), tt.result)

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSimpleUI_DisplayCheckStart(t *testing.T) {
	ui, out := newTestSimpleUI(t)
	ui.DisplayCheckStart(context.Background(), 3, 2)
	assert.Equal(t, "Checking 3 file(s) with 2 worker(s)\n", out.String())

	quietUI, quietOut := newTestSimpleUI(t, WithQuiet(true))
	quietUI.DisplayCheckStart(context.Background(), 3, 2)
	assert.Empty(t, quietOut.String())
}

func TestSimpleUI_DisplayTrace(t *testing.T) {
	ui, out := newTestSimpleUI(t)

	ui.DisplayTrace(context.Background(), m.TraceEvent{
		Path:   "a.cpp",
		Line:   4,
		Status: m.TraceLeadingCode,
		Text:   "BEGIN",
	})

	assert.Equal(t, "a.cpp, line 4, leading code: BEGIN\n", out.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		ui, out := newTestSimpleUI(t)

		ui.DisplaySummary(context.Background(), m.Summary{Checked: 2, Passed: 2})

		output := out.String()
		assert.Contains(t, strings.ToUpper(output), "CHECKED")
		assert.NotContains(t, output, failureFooter)
	})

	t.Run("all passed in quiet mode prints nothing", func(t *testing.T) {
		ui, out := newTestSimpleUI(t, WithQuiet(true))

		ui.DisplaySummary(context.Background(), m.Summary{Checked: 2, Passed: 2})

		assert.Empty(t, out.String())
	})

	t.Run("failures print footer even when quiet", func(t *testing.T) {
		ui, out := newTestSimpleUI(t, WithQuiet(true))

		ui.DisplaySummary(context.Background(), m.Summary{Checked: 2, Passed: 1, Failed: 1})

		output := out.String()
		assert.Contains(t, strings.ToUpper(output), "FAILED")
		assert.Contains(t, output, failureFooter)
	})
}
