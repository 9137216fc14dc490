// Package errors provides sentinel errors and custom error types for gitscript.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrUnrecognizedFlag indicates a token that is not one of the supported flags
	ErrUnrecognizedFlag = errors.New("unrecognized flag")

	// ErrMissingArgument indicates a flag that requires a value was given none
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentCount indicates the wrong number of space-separated sub-arguments
	ErrArgumentCount = errors.New("invalid number of arguments")

	// ErrIncompletePair indicates only one half of an optional remote/branch pair
	ErrIncompletePair = errors.New("incomplete paired argument")

	// ErrEmptyCommandSet indicates that nothing was left to execute
	ErrEmptyCommandSet = errors.New("No command to execute")

	// ErrCommandFailed indicates that at least one subprocess failed
	ErrCommandFailed = errors.New("command failed")
)

// UnrecognizedFlagError lists every flag that is not part of the flag table
type UnrecognizedFlagError struct {
	Flags []string
}

func (e *UnrecognizedFlagError) Error() string {
	parts := make([]string, len(e.Flags))
	for i, flag := range e.Flags {
		parts[i] = fmt.Sprintf("%s is not recognised as internal command", flag)
	}
	return strings.Join(parts, ", ")
}

// Is returns true if the target error is ErrUnrecognizedFlag
func (e *UnrecognizedFlagError) Is(target error) bool {
	return target == ErrUnrecognizedFlag
}

// NewUnrecognizedFlagError creates a new UnrecognizedFlagError
func NewUnrecognizedFlagError(flags ...string) *UnrecognizedFlagError {
	return &UnrecognizedFlagError{Flags: flags}
}

// MissingArgumentError represents a flag used without its required value
type MissingArgumentError struct {
	Flag  string
	Usage string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Argument is required: %s", e.Usage)
}

// Is returns true if the target error is ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NewMissingArgumentError creates a new MissingArgumentError
func NewMissingArgumentError(flag, usage string) *MissingArgumentError {
	return &MissingArgumentError{Flag: flag, Usage: usage}
}

// ArgumentCountError represents a value that split into the wrong number of pieces
type ArgumentCountError struct {
	Flag     string
	Usage    string
	Expected int
	Got      int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("Invalid number of arguments: %s", e.Usage)
}

// Is returns true if the target error is ErrArgumentCount
func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}

// NewArgumentCountError creates a new ArgumentCountError
func NewArgumentCountError(flag, usage string, expected, got int) *ArgumentCountError {
	return &ArgumentCountError{
		Flag:     flag,
		Usage:    usage,
		Expected: expected,
		Got:      got,
	}
}

// IncompletePairError represents an optional pair where only one half was given
type IncompletePairError struct {
	Flag    string
	Usage   string
	Missing string
}

func (e *IncompletePairError) Error() string {
	return fmt.Sprintf("%s : %s is missing", e.Usage, e.Missing)
}

// Is returns true if the target error is ErrIncompletePair
func (e *IncompletePairError) Is(target error) bool {
	return target == ErrIncompletePair
}

// NewIncompletePairError creates a new IncompletePairError
func NewIncompletePairError(flag, usage, missing string) *IncompletePairError {
	return &IncompletePairError{
		Flag:    flag,
		Usage:   usage,
		Missing: missing,
	}
}

// CommandError represents a failed subprocess
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExecutionError summarizes a run in which some commands failed
type ExecutionError struct {
	Failed int
	Total  int
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%d of %d commands failed", e.Failed, e.Total)
}

// Is returns true if the target error is ErrCommandFailed
func (e *ExecutionError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewExecutionError creates a new ExecutionError
func NewExecutionError(failed, total int) *ExecutionError {
	return &ExecutionError{Failed: failed, Total: total}
}
