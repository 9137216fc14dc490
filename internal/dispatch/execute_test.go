package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/possible-bj/gitscript/internal/dispatch"
	gserrors "github.com/possible-bj/gitscript/internal/errors"
	"github.com/possible-bj/gitscript/internal/tui"
)

// recordingRunner records every command and fails the ones listed in fail
type recordingRunner struct {
	mu       sync.Mutex
	commands []string
	fail     map[string]bool
}

func (r *recordingRunner) Run(_ context.Context, command string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, command)
	if r.fail[command] {
		return "", gserrors.NewCommandError("git", nil, "", "boom", errors.New("exit status 1"))
	}
	return fmt.Sprintf("ok %d", len(r.commands)), nil
}

func (r *recordingRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.commands...)
}

func newTestSplog(t *testing.T) (*tui.Splog, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	tui.ConfigureColors(&stdout, true)
	splog, err := tui.NewSplogWithOptions(tui.Options{Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	return splog, &stdout, &stderr
}

func mustTable(t *testing.T, tokens ...string) *dispatch.Table {
	t.Helper()
	table, err := dispatch.ParseAndDispatch(tokens)
	require.NoError(t, err)
	return table
}

func TestExecute(t *testing.T) {
	t.Run("runs every command in table order", func(t *testing.T) {
		runner := &recordingRunner{}
		splog, stdout, stderr := newTestSplog(t)
		table := mustTable(t, "--add=.", "--commit=msg", "--add=README.md", "--push")

		summary, err := dispatch.NewExecutor(runner, splog).Execute(context.Background(), table)
		require.NoError(t, err)
		require.Equal(t, []string{"git add .", "git add README.md", "git commit -m msg", "git push"}, runner.Commands())
		require.Len(t, summary.Results, 4)
		require.Equal(t, 0, summary.Failed())
		require.Equal(t, "ok 2", summary.Results[1].Output)

		require.Contains(t, stdout.String(), "git add README.md")
		require.Contains(t, stdout.String(), "command output: ok 4")
		require.Empty(t, stderr.String())
	})

	t.Run("a failure does not stop later commands", func(t *testing.T) {
		runner := &recordingRunner{fail: map[string]bool{"git checkout missing": true}}
		splog, _, stderr := newTestSplog(t)
		table := mustTable(t, "--checkout=missing", "--branch=next")

		summary, err := dispatch.NewExecutor(runner, splog).Execute(context.Background(), table)
		require.ErrorIs(t, err, gserrors.ErrCommandFailed)

		var execErr *gserrors.ExecutionError
		require.True(t, errors.As(err, &execErr))
		require.Equal(t, 1, execErr.Failed)
		require.Equal(t, 2, execErr.Total)

		require.Equal(t, []string{"git checkout missing", "git branch next"}, runner.Commands())
		require.Error(t, summary.Results[0].Err)
		require.NoError(t, summary.Results[1].Err)
		require.Contains(t, stderr.String(), "Error executing Git command")
	})

	t.Run("dry run never calls the runner", func(t *testing.T) {
		runner := &recordingRunner{}
		splog, stdout, _ := newTestSplog(t)
		table := mustTable(t, "--init", "--branch=foo")

		summary, err := dispatch.NewExecutor(runner, splog, dispatch.WithDryRun(true)).Execute(context.Background(), table)
		require.NoError(t, err)
		require.Empty(t, runner.Commands())
		for _, r := range summary.Results {
			require.True(t, r.Skipped)
		}
		require.Contains(t, stdout.String(), "git branch foo")
		require.Contains(t, stdout.String(), "Dry run: 2 command(s) not executed")
	})

	t.Run("concurrent jobs report in table order", func(t *testing.T) {
		runner := &recordingRunner{fail: map[string]bool{"git add b": true}}
		splog, stdout, stderr := newTestSplog(t)
		table := mustTable(t, "--add=a", "--add=b", "--add=c", "--add=d")

		summary, err := dispatch.NewExecutor(runner, splog, dispatch.WithJobs(3)).Execute(context.Background(), table)
		require.ErrorIs(t, err, gserrors.ErrCommandFailed)
		require.ElementsMatch(t, []string{"git add a", "git add b", "git add c", "git add d"}, runner.Commands())

		got := make([]string, len(summary.Results))
		for i, r := range summary.Results {
			got[i] = r.Command
		}
		require.Equal(t, []string{"git add a", "git add b", "git add c", "git add d"}, got)
		require.Equal(t, 1, summary.Failed())
		require.Error(t, summary.Results[1].Err)
		require.Contains(t, stdout.String(), "git add d")
		require.Contains(t, stderr.String(), "Error executing Git command")
	})

	t.Run("empty table", func(t *testing.T) {
		splog, _, _ := newTestSplog(t)
		_, err := dispatch.NewExecutor(&recordingRunner{}, splog).Execute(context.Background(), dispatch.NewTable())
		require.ErrorIs(t, err, gserrors.ErrEmptyCommandSet)

		_, err = dispatch.NewExecutor(&recordingRunner{}, splog).Execute(context.Background(), nil)
		require.ErrorIs(t, err, gserrors.ErrEmptyCommandSet)
	})
}
