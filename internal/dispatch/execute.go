package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	gserrors "github.com/possible-bj/gitscript/internal/errors"
	"github.com/possible-bj/gitscript/internal/git"
	"github.com/possible-bj/gitscript/internal/tui"
)

// Result is the outcome of one command
type Result struct {
	Flag    Flag
	Command string
	Output  string
	Err     error
	// Skipped is set for dry runs
	Skipped bool
}

// Summary collects the results of one Execute call in table order
type Summary struct {
	Results []Result
}

// Failed returns the number of commands that returned an error
func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Executor runs a command table through a git.Runner
type Executor struct {
	runner git.Runner
	splog  *tui.Splog
	jobs   int
	dryRun bool
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithJobs sets how many commands may run at once. Values below 2 run sequentially.
func WithJobs(jobs int) ExecutorOption {
	return func(e *Executor) {
		e.jobs = jobs
	}
}

// WithDryRun echoes commands without running them
func WithDryRun(dryRun bool) ExecutorOption {
	return func(e *Executor) {
		e.dryRun = dryRun
	}
}

// NewExecutor creates an Executor
func NewExecutor(runner git.Runner, splog *tui.Splog, opts ...ExecutorOption) *Executor {
	e := &Executor{
		runner: runner,
		splog:  splog,
		jobs:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs every command in the table. A failing command is reported and
// the remaining commands still run; the returned error is an ExecutionError
// when any of them failed.
func (e *Executor) Execute(ctx context.Context, table *Table) (*Summary, error) {
	if table == nil || table.IsEmpty() {
		return nil, gserrors.ErrEmptyCommandSet
	}

	entries := table.Entries()
	summary := &Summary{Results: make([]Result, len(entries))}
	for i, entry := range entries {
		summary.Results[i] = Result{Flag: entry.Flag, Command: entry.Command}
	}

	switch {
	case e.dryRun:
		for i := range summary.Results {
			r := &summary.Results[i]
			e.splog.Command(r.Command)
			r.Skipped = true
		}
		e.splog.Info("Dry run: %d command(s) not executed", len(entries))
	case e.jobs > 1:
		e.runConcurrent(ctx, summary.Results)
	default:
		for i := range summary.Results {
			r := &summary.Results[i]
			e.splog.Command(r.Command)
			r.Output, r.Err = e.runner.Run(ctx, r.Command)
			e.report(r)
		}
	}

	if failed := summary.Failed(); failed > 0 {
		return summary, gserrors.NewExecutionError(failed, len(entries))
	}
	return summary, nil
}

// runConcurrent echoes every command, runs them with at most e.jobs in flight,
// then reports results in table order once all have finished.
func (e *Executor) runConcurrent(ctx context.Context, results []Result) {
	for i := range results {
		e.splog.Command(results[i].Command)
	}

	var g errgroup.Group
	g.SetLimit(e.jobs)
	for i := range results {
		r := &results[i]
		g.Go(func() error {
			r.Output, r.Err = e.runner.Run(ctx, r.Command)
			return nil
		})
	}
	_ = g.Wait()

	for i := range results {
		e.report(&results[i])
	}
}

func (e *Executor) report(r *Result) {
	if r.Err != nil {
		e.splog.Error("Error executing Git command: %v", r.Err)
		return
	}
	e.splog.Output(r.Command, r.Output)
}
