// Package controller provides the output adapters that present check results.
package controller

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeView
	ModeKeywords
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	quiet  bool
	cancel context.CancelFunc
}

// WithCheckMode sets the UI to live check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithViewMode sets the UI to replay a saved report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithKeywordsMode sets the UI to list the keyword table.
func WithKeywordsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeKeywords
	}
}

// WithQuiet suppresses output for files that pass.
func WithQuiet(quiet bool) StartOption {
	return func(c *StartConfig) {
		c.quiet = quiet
	}
}

// WithCancel registers the function an interactive UI calls when the user
// aborts the run.
func WithCancel(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

// Abort cancels the run if a cancel function was registered.
func (c StartConfig) Abort() {
	if c.cancel != nil {
		c.cancel()
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeCheck}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting a run.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods may be called from several goroutines at once.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayPairs(ctx context.Context, pairs []m.Pair) error
	DisplayCheckStart(ctx context.Context, files int, threads int)
	DisplayTrace(ctx context.Context, event m.TraceEvent)
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns a UI that decides on Start whether to run the interactive
// TUI or the plain line-oriented output. useTUI is consulted once per Start,
// after command-line flags have been parsed.
func NewUI(cmd *cobra.Command, useTUI func() bool) UI {
	return &selectingUI{cmd: cmd, useTUI: useTUI}
}

type selectingUI struct {
	cmd    *cobra.Command
	useTUI func() bool

	mu     sync.Mutex
	active UI
}

func (s *selectingUI) Start(ctx context.Context, options ...StartOption) error {
	s.mu.Lock()
	if s.useTUI != nil && s.useTUI() {
		s.active = NewTUI(s.cmd.OutOrStdout())
	} else {
		s.active = NewSimpleUI(s.cmd)
	}

	active := s.active
	s.mu.Unlock()

	return active.Start(ctx, options...)
}

func (s *selectingUI) current() UI {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		s.active = NewSimpleUI(s.cmd)
	}

	return s.active
}

func (s *selectingUI) Close(ctx context.Context) { s.current().Close(ctx) }

func (s *selectingUI) Wait(ctx context.Context) { s.current().Wait(ctx) }

func (s *selectingUI) DisplayPairs(ctx context.Context, pairs []m.Pair) error {
	return s.current().DisplayPairs(ctx, pairs)
}

func (s *selectingUI) DisplayCheckStart(ctx context.Context, files int, threads int) {
	s.current().DisplayCheckStart(ctx, files, threads)
}

func (s *selectingUI) DisplayTrace(ctx context.Context, event m.TraceEvent) {
	s.current().DisplayTrace(ctx, event)
}

func (s *selectingUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	s.current().DisplayFileResult(ctx, result)
}

func (s *selectingUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	s.current().DisplaySummary(ctx, summary)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
