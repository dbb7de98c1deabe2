package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

const (
	defaultTUIWidth  = 80
	maxProgressWidth = 60
	maxListedFiles   = 20
)

// TUI implements UI using Bubble Tea for a live progress display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	model := newCheckModel(newStartConfig(options))

	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.withWidth(width)
		}
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI program stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close(_ context.Context) {
	program, done := t.running()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Wait blocks until the program exits, which happens once the summary or
// the pair table has been shown, or the user quits.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.running()
	if done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

// DisplayPairs shows the keyword table and ends the program.
func (t *TUI) DisplayPairs(ctx context.Context, pairs []m.Pair) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(pairsMsg{pairs: pairs})

	return nil
}

// DisplayCheckStart sets the number of files the progress bar counts to.
func (t *TUI) DisplayCheckStart(_ context.Context, files int, threads int) {
	t.send(checkStartMsg{files: files, threads: threads})
}

// DisplayTrace is not rendered by the TUI; the events go to the log.
func (t *TUI) DisplayTrace(_ context.Context, event m.TraceEvent) {
	slog.Debug("Classified line", "path", event.Path, "line", event.Line, "status", event.Status, "text", event.Text)
}

// DisplayFileResult advances the progress display.
func (t *TUI) DisplayFileResult(_ context.Context, result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplaySummary shows the totals and ends the program.
func (t *TUI) DisplaySummary(_ context.Context, summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

func (t *TUI) running() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	program, _ := t.running()
	if program == nil {
		return
	}

	program.Send(msg)
}

type checkStartMsg struct {
	files   int
	threads int
}

type fileResultMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	summary m.Summary
}

type pairsMsg struct {
	pairs []m.Pair
}

// checkModel is the Bubble Tea model for a running check.
type checkModel struct {
	config   StartConfig
	spinner  spinner.Model
	progress progress.Model
	styles   tuiStyles

	total    int
	threads  int
	done     int
	passed   int
	last     m.Path
	failures []m.FileResult
	pairs    []m.Pair
	summary  *m.Summary
	width    int
	finished bool
	quitting bool
}

type tuiStyles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	error lipgloss.Style
	faint lipgloss.Style
}

func newCheckModel(config StartConfig) checkModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	model := checkModel{
		config:   config,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		styles: tuiStyles{
			title: lipgloss.NewStyle().Bold(true),
			ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			faint: lipgloss.NewStyle().Faint(true),
		},
	}

	return model.withWidth(defaultTUIWidth)
}

func (cm checkModel) withWidth(width int) checkModel {
	cm.width = width

	cm.progress.Width = width - 4
	if cm.progress.Width > maxProgressWidth {
		cm.progress.Width = maxProgressWidth
	}

	if cm.progress.Width < 10 {
		cm.progress.Width = 10
	}

	return cm
}

func (cm checkModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return cm.withWidth(msg.Width), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			cm.quitting = true
			cm.config.Abort()

			return cm, tea.Quit
		}

		return cm, nil

	case spinner.TickMsg:
		if cm.finished {
			return cm, nil
		}

		var cmd tea.Cmd
		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd

	case progress.FrameMsg:
		updated, cmd := cm.progress.Update(msg)
		if p, ok := updated.(progress.Model); ok {
			cm.progress = p
		}

		return cm, cmd

	case checkStartMsg:
		cm.total = msg.files
		cm.threads = msg.threads

		return cm, nil

	case fileResultMsg:
		return cm.recordResult(msg.result)

	case pairsMsg:
		cm.pairs = msg.pairs
		cm.finished = true

		return cm, tea.Quit

	case summaryMsg:
		summary := msg.summary
		cm.summary = &summary
		cm.finished = true

		return cm, tea.Quit
	}

	return cm, nil
}

func (cm checkModel) recordResult(result m.FileResult) (tea.Model, tea.Cmd) {
	if result.Status == m.Skipped {
		return cm, nil
	}

	cm.done++
	cm.last = result.Path

	if result.OK() {
		cm.passed++
	} else {
		cm.failures = append(cm.failures, result)
	}

	if cm.total == 0 {
		return cm, nil
	}

	return cm, cm.progress.SetPercent(float64(cm.done) / float64(cm.total))
}

func (cm checkModel) View() string {
	var b strings.Builder

	b.WriteString(cm.styles.title.Render("pragmacheck"))
	b.WriteString("\n\n")

	if cm.config.mode == ModeKeywords {
		cm.renderPairs(&b)
		return b.String()
	}

	cm.renderProgress(&b)
	cm.renderFailures(&b)
	cm.renderSummary(&b)

	return b.String()
}

func (cm checkModel) renderPairs(b *strings.Builder) {
	if len(cm.pairs) == 0 {
		b.WriteString("  No keyword pairs loaded\n")
		return
	}

	openerWidth := 0
	for _, pair := range cm.pairs {
		if w := runewidth.StringWidth(pair.Opener); w > openerWidth {
			openerWidth = w
		}
	}

	for _, pair := range cm.pairs {
		fmt.Fprintf(b, "  %s  ->  %s\n", runewidth.FillRight(pair.Opener, openerWidth), pair.Closer)
	}

	fmt.Fprintf(b, "\n  %d pair(s)\n", len(cm.pairs))
}

func (cm checkModel) renderProgress(b *strings.Builder) {
	if cm.finished {
		fmt.Fprintf(b, "  Checked %d of %d file(s)\n", cm.done, cm.total)
		return
	}

	fmt.Fprintf(b, "  %s Checking %d/%d file(s)", cm.spinner.View(), cm.done, cm.total)

	if cm.threads > 1 {
		fmt.Fprintf(b, " with %d workers", cm.threads)
	}

	b.WriteString("\n  ")
	b.WriteString(cm.progress.View())
	b.WriteString("\n")

	if cm.last != "" {
		fmt.Fprintf(b, "  %s\n", cm.styles.faint.Render(cm.truncate(string(cm.last), 2)))
	}
}

func (cm checkModel) renderFailures(b *strings.Builder) {
	if len(cm.failures) == 0 {
		return
	}

	b.WriteString("\n")

	shown := cm.failures
	if len(shown) > maxListedFiles {
		shown = shown[len(shown)-maxListedFiles:]
	}

	for _, result := range shown {
		fmt.Fprintf(b, "  %s %s\n", cm.styles.error.Render("✗"), cm.truncate(describeFailure(result), 4))
	}

	if hidden := len(cm.failures) - len(shown); hidden > 0 {
		fmt.Fprintf(b, "  … and %d more\n", hidden)
	}
}

func (cm checkModel) renderSummary(b *strings.Builder) {
	if cm.summary == nil {
		return
	}

	s := *cm.summary

	b.WriteString("\n")
	fmt.Fprintf(b, "  Checked: %d | Passed: %d | Failed: %d | Errored: %d | Skipped: %d\n",
		s.Checked, s.Passed, s.Failed, s.Errored, s.Skipped)

	if s.OK() {
		fmt.Fprintf(b, "  %s\n", cm.styles.ok.Render("All markers balanced"))
	} else {
		fmt.Fprintf(b, "  %s\n", cm.styles.error.Render(failureFooter))
	}
}

// truncate shortens text to the terminal width minus indent columns.
func (cm checkModel) truncate(text string, indent int) string {
	limit := cm.width - indent
	if limit <= 0 {
		return text
	}

	return runewidth.Truncate(text, limit, "…")
}

func describeFailure(result m.FileResult) string {
	if result.Status == m.Errored {
		return fmt.Sprintf("%s: %s", result.Path, result.Error)
	}

	if result.Diagnostic == nil {
		return string(result.Path)
	}

	return fmt.Sprintf("%s, line %d: %s", result.Path, result.Diagnostic.Line, result.Diagnostic.Message)
}
