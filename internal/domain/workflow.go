package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"pragmacheck.dev/pkg/pragmacheck/internal/adapter"
	"pragmacheck.dev/pkg/pragmacheck/internal/controller"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
	"pragmacheck.dev/pkg/pragmacheck/pkg"
)

// ReportVersion is the format version written into saved reports.
const ReportVersion = 1

// ErrCheckFailed is returned by Check when at least one file did not pass.
var ErrCheckFailed = errors.New("marker check failed")

var errStopRequested = errors.New("stop on first failure")

// CheckArgs contains the arguments for checking source files.
type CheckArgs struct {
	Syntax      m.Path
	Paths       []m.Path
	Patterns    []string
	Exclude     []string
	Recursive   bool
	StopOnError bool
	Threads     int
	Verbose     bool
	Quiet       bool
	Report      m.Path
}

// KeywordsArgs contains the arguments for listing the keyword table.
type KeywordsArgs struct {
	Syntax m.Path
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the commands of the checker.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	Keywords(ctx context.Context, args KeywordsArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.SyntaxStore
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	syntaxStore adapter.SyntaxStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		SyntaxStore:     syntaxStore,
		ReportStore:     reportStore,
		UI:              ui,
	}
}

// Check verifies every discovered file and returns ErrCheckFailed if any
// of them failed, errored or was skipped.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	startOptions := []controller.StartOption{
		controller.WithCheckMode(),
		controller.WithQuiet(args.Quiet),
		controller.WithCancel(cancelRun),
	}

	if err := w.Start(ctx, startOptions...); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	table, err := w.loadTable(ctx, args.Syntax)
	if err != nil {
		return err
	}

	files, err := w.discover(ctx, args)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return fmt.Errorf("discover files: %w", err)
	}

	spill, err := pkg.NewFileSpill[m.FileResult]("")
	if err != nil {
		return fmt.Errorf("create result spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("Failed to close result spill", "path", spill.Path(), "error", err)
		}
	}()

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	slog.Info("Checking files", "files", len(files), "threads", threads, "syntax", args.Syntax)
	w.DisplayCheckStart(ctx, len(files), threads)

	if err := w.checkFiles(ctx, runCtx, args, table, files, threads, spill); err != nil {
		return err
	}

	summary, results, err := collectResults(spill)
	if err != nil {
		return fmt.Errorf("collect results: %w", err)
	}

	w.DisplaySummary(ctx, summary)
	slog.Info("Check finished", "checked", summary.Checked, "passed", summary.Passed,
		"failed", summary.Failed, "errored", summary.Errored, "skipped", summary.Skipped)

	if args.Report != "" {
		report := m.Report{
			Version: ReportVersion,
			Syntax:  args.Syntax,
			Pairs:   table.Pairs(),
			Results: results,
			Summary: summary,
		}

		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	w.Wait(ctx)

	if !summary.OK() {
		return ErrCheckFailed
	}

	return nil
}

// checkFiles schedules the files on a pool bound to runCtx. Cancelling runCtx
// alone, as an aborting UI does, marks the remaining files Skipped; cancelling
// ctx aborts the check.
func (w *workflow) checkFiles(
	ctx context.Context,
	runCtx context.Context,
	args CheckArgs,
	table *KeywordTable,
	files []m.Path,
	threads int,
	spill pkg.FileSpill[m.FileResult],
) error {
	var tracer Tracer
	if args.Verbose {
		tracer = func(event m.TraceEvent) {
			w.DisplayTrace(ctx, event)
		}
	}

	checker := NewFileChecker(w.SourceFSAdapter, table, tracer)

	record := func(result m.FileResult) error {
		w.DisplayFileResult(ctx, result)

		if err := spill.Append(result); err != nil {
			return fmt.Errorf("spill result for %s: %w", result.Path, err)
		}

		return nil
	}

	group, groupCtx := errgroup.WithContext(runCtx)
	group.SetLimit(threads)

	scheduled := 0

	for _, file := range files {
		if groupCtx.Err() != nil {
			break
		}

		scheduled++

		group.Go(func() error {
			if groupCtx.Err() != nil {
				return record(m.FileResult{Path: file, Status: m.Skipped})
			}

			result := checker.CheckFile(groupCtx, file)
			if result.Status == m.Errored && groupCtx.Err() != nil {
				result = m.FileResult{Path: file, Status: m.Skipped}
			}

			if err := record(result); err != nil {
				return err
			}

			if args.StopOnError && (result.Status == m.Failed || result.Status == m.Errored) {
				return errStopRequested
			}

			return nil
		})
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, errStopRequested) {
		slog.Error("Check aborted", "error", err)
		return err
	}

	for _, file := range files[scheduled:] {
		if err := record(m.FileResult{Path: file, Status: m.Skipped}); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

func collectResults(spill pkg.FileSpill[m.FileResult]) (m.Summary, []m.FileResult, error) {
	var summary m.Summary

	results := make([]m.FileResult, 0, spill.Len())

	err := spill.Range(func(_ uint64, result m.FileResult) error {
		summary.Add(result)
		results = append(results, result)

		return nil
	})
	if err != nil {
		return m.Summary{}, nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return summary, results, nil
}

// Keywords displays the pairs of the syntax file.
func (w *workflow) Keywords(ctx context.Context, args KeywordsArgs) error {
	table, err := w.loadTable(ctx, args.Syntax)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithKeywordsMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayPairs(ctx, table.Pairs()); err != nil {
		slog.Error("Failed to display pairs", "error", err)
		return fmt.Errorf("display pairs: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// View replays a saved report. The outcome of the stored run does not
// affect the returned error.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	w.DisplayCheckStart(ctx, len(report.Results), 1)

	for _, result := range report.Results {
		w.DisplayFileResult(ctx, result)
	}

	w.DisplaySummary(ctx, report.Summary)
	w.Wait(ctx)

	return nil
}

func (w *workflow) loadTable(ctx context.Context, syntax m.Path) (*KeywordTable, error) {
	config, err := w.Load(ctx, syntax)
	if err != nil {
		slog.Error("Failed to load syntax file", "path", syntax, "error", err)
		return nil, fmt.Errorf("%w: load %s: %w", ErrConfig, syntax, err)
	}

	table, err := NewKeywordTable(config.Pairs)
	if err != nil {
		slog.Error("Invalid keyword table", "path", syntax, "error", err)
		return nil, fmt.Errorf("build keyword table from %s: %w", syntax, err)
	}

	slog.Debug("Loaded keyword table", "path", syntax, "pairs", len(config.Pairs))

	return table, nil
}
