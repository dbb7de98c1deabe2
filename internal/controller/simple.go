package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

const failureFooter = "There were errors. Please check the output above."

// SimpleUI implements UI by writing lines to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command

	mu     sync.Mutex
	config StartConfig
	out    io.Writer
	styles styles
}

type styles struct {
	ok    lipgloss.Style
	error lipgloss.Style
	faint lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig(nil)}
}

// Start records the start options.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayPairs prints the keyword table.
func (s *SimpleUI) DisplayPairs(ctx context.Context, pairs []m.Pair) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Opener", "Closer"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, pair := range pairs {
		table.Append([]string{pair.Opener, pair.Closer})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Pairs %d", len(pairs)), ""})
	table.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s", buf.String())

	return nil
}

// DisplayCheckStart announces how many files will be checked.
func (s *SimpleUI) DisplayCheckStart(ctx context.Context, files int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.quiet {
		return
	}

	s.printf("Checking %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayTrace prints one classification step.
func (s *SimpleUI) DisplayTrace(_ context.Context, event m.TraceEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.currentStyles()
	s.printf("%s, line %d, %s: %s\n", event.Path, event.Line, st.faint.Render(string(event.Status)), event.Text)
}

// DisplayFileResult prints the verdict for one file.
func (s *SimpleUI) DisplayFileResult(_ context.Context, result m.FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.currentStyles()

	switch result.Status {
	case m.Passed:
		if !s.config.quiet {
			s.printf("%s %s\n", result.Path, st.ok.Render("OK"))
		}
	case m.Failed:
		line, message := 0, ""
		if result.Diagnostic != nil {
			line, message = result.Diagnostic.Line, result.Diagnostic.Message
		}

		s.printf("%s, line %d: %s\n", result.Path, line, st.error.Render(message))
	case m.Errored:
		s.printf("%s: %s\n", result.Path, st.error.Render(result.Error))
	case m.Skipped:
	}
}

// DisplaySummary prints the totals of the run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.currentStyles()

	if !s.config.quiet || !summary.OK() {
		s.printf("\n%s", renderSummaryTable(summary))
	}

	if !summary.OK() {
		s.printf("%s\n", st.error.Render(failureFooter))
	}
}

func renderSummaryTable(summary m.Summary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Checked", "Passed", "Failed", "Errored", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		strconv.Itoa(summary.Checked),
		strconv.Itoa(summary.Passed),
		strconv.Itoa(summary.Failed),
		strconv.Itoa(summary.Errored),
		strconv.Itoa(summary.Skipped),
	})
	table.Render()

	return buf.String()
}

// currentStyles returns styles bound to the command's current writer, so
// colors are only emitted when that writer is a color-capable terminal.
// Callers must hold s.mu.
func (s *SimpleUI) currentStyles() styles {
	out := s.cmd.OutOrStdout()
	if out != s.out {
		renderer := lipgloss.NewRenderer(out)
		s.out = out
		s.styles = styles{
			ok:    renderer.NewStyle().Foreground(lipgloss.Color("2")),
			error: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			faint: renderer.NewStyle().Faint(true),
		}
	}

	return s.styles
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
