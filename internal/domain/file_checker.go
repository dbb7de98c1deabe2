package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"pragmacheck.dev/pkg/pragmacheck/internal/adapter"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// Tracer receives line classification events. It may be called from
// several goroutines when files are checked in parallel.
type Tracer func(event m.TraceEvent)

// LineTrace receives classification events for one file.
type LineTrace func(line int, status m.TraceStatus, text string)

// FileChecker checks single files against a keyword table.
type FileChecker interface {
	CheckFile(ctx context.Context, path m.Path) m.FileResult
}

type fileChecker struct {
	fsAdapter adapter.SourceFSAdapter
	table     *KeywordTable
	tracer    Tracer
}

// NewFileChecker returns a FileChecker reading files through fsAdapter.
// tracer may be nil.
func NewFileChecker(fsAdapter adapter.SourceFSAdapter, table *KeywordTable, tracer Tracer) FileChecker {
	return &fileChecker{
		fsAdapter: fsAdapter,
		table:     table,
		tracer:    tracer,
	}
}

func (fc *fileChecker) CheckFile(ctx context.Context, path m.Path) m.FileResult {
	reader, err := fc.fsAdapter.Open(ctx, path)
	if err != nil {
		slog.Error("Failed to open source file", "path", path, "error", err)
		return m.FileResult{Path: path, Status: m.Errored, Error: err.Error()}
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error("Failed to close source file", "path", path, "error", err)
		}
	}()

	diagnostic, err := CheckLines(ctx, reader, fc.table, fc.traceFor(path))
	if err != nil {
		slog.Error("Failed to read source file", "path", path, "error", err)
		return m.FileResult{Path: path, Status: m.Errored, Error: err.Error()}
	}

	if diagnostic != nil {
		slog.Debug("Unbalanced markers", "path", path, "line", diagnostic.Line, "kind", diagnostic.Kind)
		return m.FileResult{Path: path, Status: m.Failed, Diagnostic: diagnostic}
	}

	slog.Debug("Markers balanced", "path", path)

	return m.FileResult{Path: path, Status: m.Passed}
}

func (fc *fileChecker) traceFor(path m.Path) LineTrace {
	if fc.tracer == nil {
		return nil
	}

	return func(line int, status m.TraceStatus, text string) {
		fc.tracer(m.TraceEvent{Path: path, Line: line, Status: status, Text: text})
	}
}

// CheckLines runs the classifier, resolver and balance checker over the
// lines of r. It returns the first diagnostic found, or an error if r could
// not be read. Reading stops at the first diagnostic.
func CheckLines(ctx context.Context, r io.Reader, table *KeywordTable, trace LineTrace) (*m.Diagnostic, error) {
	scan := newFileScan(table, trace)
	reader := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", scan.line+1, err)
		}

		if raw != "" {
			if diagnostic := scan.next(raw); diagnostic != nil {
				return diagnostic, nil
			}
		}

		if errors.Is(err, io.EOF) {
			return scan.balance.Finish(), nil
		}
	}
}

// fileScan is the per-file pipeline state. A new one is made for every file.
type fileScan struct {
	table      *KeywordTable
	classifier *LineClassifier
	balance    *BalanceChecker
	trace      LineTrace
	line       int
}

func newFileScan(table *KeywordTable, trace LineTrace) *fileScan {
	scan := &fileScan{
		table:   table,
		balance: NewBalanceChecker(table),
		trace:   trace,
	}

	var classifierTrace TraceFunc
	if trace != nil {
		classifierTrace = func(status m.TraceStatus, text string) {
			trace(scan.line, status, text)
		}
	}

	scan.classifier = NewLineClassifier(classifierTrace)

	return scan
}

func (s *fileScan) next(raw string) *m.Diagnostic {
	s.line++

	code := s.classifier.Classify(raw)
	if code == "" {
		return nil
	}

	matches, err := ResolveMatches(code, s.table)

	var diagnostic *m.Diagnostic
	if errors.As(err, &diagnostic) {
		diagnostic.Line = s.line
		return diagnostic
	}

	if s.trace != nil {
		for _, match := range matches {
			if s.table.IsOpener(match.Text) {
				s.trace(s.line, m.TraceOpeningMarker, code)
			} else {
				s.trace(s.line, m.TraceClosingMarker, code)
			}
		}
	}

	return s.balance.Feed(s.line, matches)
}
