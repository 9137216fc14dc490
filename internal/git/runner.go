package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/possible-bj/gitscript/internal/config"
	gserrors "github.com/possible-bj/gitscript/internal/errors"
)

// ErrEmptyCommand indicates a command string with no words in it
var ErrEmptyCommand = errors.New("empty command")

// Runner executes a single command string and returns its captured output.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// CommandRunner handles execution of command strings
type CommandRunner struct {
	binary     string
	workingDir string
	timeout    time.Duration
}

// NewCommandRunner creates a new CommandRunner from the configuration
func NewCommandRunner(cfg config.Config) *CommandRunner {
	binary := cfg.GitBinary
	if binary == "" {
		binary = "git"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultCommandTimeout
	}
	return &CommandRunner{
		binary:     binary,
		workingDir: cfg.WorkingDir,
		timeout:    timeout,
	}
}

// Split turns a command string into argv. Quoted words such as a commit
// message stay together.
func Split(command string) ([]string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	return words, nil
}

// Run executes the command string with the given context and returns the trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, command string) (string, error) {
	words, err := Split(command)
	if err != nil {
		return "", gserrors.NewCommandError(command, nil, "", "", err)
	}

	name, args := words[0], words[1:]
	if name == "git" {
		name = r.binary
	}

	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", gserrors.NewCommandError(name, args, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
