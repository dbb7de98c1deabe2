package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func updateModel(t *testing.T, model checkModel, msg tea.Msg) (checkModel, tea.Cmd) {
	t.Helper()

	updated, cmd := model.Update(msg)

	next, ok := updated.(checkModel)
	require.True(t, ok)

	return next, cmd
}

func TestCheckModel_TracksProgress(t *testing.T) {
	model := newCheckModel(newStartConfig([]StartOption{WithCheckMode()}))

	model, _ = updateModel(t, model, checkStartMsg{files: 3, threads: 2})
	assert.Equal(t, 3, model.total)

	model, _ = updateModel(t, model, fileResultMsg{result: m.FileResult{Path: "a.cpp", Status: m.Passed}})
	model, _ = updateModel(t, model, fileResultMsg{result: m.FileResult{
		Path:       "b.cpp",
		Status:     m.Failed,
		Diagnostic: &m.Diagnostic{Line: 2, Kind: m.KindMismatchedPair, Message: "A completed by D"},
	}})
	model, _ = updateModel(t, model, fileResultMsg{result: m.FileResult{Path: "c.cpp", Status: m.Skipped}})

	assert.Equal(t, 2, model.done)
	assert.Equal(t, 1, model.passed)
	require.Len(t, model.failures, 1)

	view := model.View()
	assert.Contains(t, view, "Checking 2/3 file(s) with 2 workers")
	assert.Contains(t, view, "b.cpp, line 2: A completed by D")
}

func TestCheckModel_SummaryQuits(t *testing.T) {
	model := newCheckModel(newStartConfig(nil))

	model, cmd := updateModel(t, model, summaryMsg{summary: m.Summary{Checked: 1, Failed: 1}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.finished)

	view := model.View()
	assert.Contains(t, view, "Failed: 1")
	assert.Contains(t, view, failureFooter)
}

func TestCheckModel_PairsView(t *testing.T) {
	model := newCheckModel(newStartConfig([]StartOption{WithKeywordsMode()}))

	model, cmd := updateModel(t, model, pairsMsg{pairs: []m.Pair{
		{Opener: "BEGIN", Closer: "END"},
		{Opener: "IF", Closer: "ENDIF"},
	}})
	require.NotNil(t, cmd)

	view := model.View()
	assert.Contains(t, view, "BEGIN  ->  END")
	assert.Contains(t, view, "IF     ->  ENDIF")
	assert.Contains(t, view, "2 pair(s)")
}

func TestCheckModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		model := newCheckModel(newStartConfig(nil))

		model, cmd := updateModel(t, model, key)
		require.NotNil(t, cmd, key.String())
		assert.True(t, model.quitting)
	}
}

func TestCheckModel_QuitCancelsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := newCheckModel(newStartConfig([]StartOption{WithCheckMode(), WithCancel(cancel)}))

	_, cmd := updateModel(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestCheckModel_SummaryDoesNotCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := newCheckModel(newStartConfig([]StartOption{WithCancel(cancel)}))

	_, _ = updateModel(t, model, summaryMsg{summary: m.Summary{Checked: 1, Passed: 1}})
	assert.NoError(t, ctx.Err())
}

func TestCheckModel_TruncatesLongPaths(t *testing.T) {
	model := newCheckModel(newStartConfig(nil)).withWidth(20)

	long := strings.Repeat("dir/", 20) + "file.cpp"
	model, _ = updateModel(t, model, checkStartMsg{files: 1, threads: 1})
	model, _ = updateModel(t, model, fileResultMsg{result: m.FileResult{Path: m.Path(long), Status: m.Errored, Error: "boom"}})

	view := model.View()
	assert.NotContains(t, view, long)
	assert.Contains(t, view, "…")
}

func TestTUI_DisplayWithoutStartIsNoop(t *testing.T) {
	tui := NewTUI(&strings.Builder{})
	ctx := context.Background()

	require.NoError(t, tui.DisplayPairs(ctx, nil))
	tui.DisplayCheckStart(ctx, 1, 1)
	tui.DisplayFileResult(ctx, m.FileResult{Path: "a.cpp"})
	tui.DisplaySummary(ctx, m.Summary{})
	tui.Wait(ctx)
	tui.Close(ctx)
}
