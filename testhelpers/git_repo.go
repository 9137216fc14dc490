package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// RequireGit skips the test when no git binary is on PATH.
func RequireGit(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git binary not available")
	}
	return path
}

// GitEnv returns the environment used for every git invocation in tests.
// Global config is ignored so results don't depend on the developer machine.
func GitEnv() []string {
	return append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
}

// NewGitRepo initializes a new Git repository in a temporary directory.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	RequireGit(t)

	repo := &GitRepo{Dir: t.TempDir()}
	if err := repo.RunGitCommand("-c", "init.defaultBranch=main", "init"); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		t.Fatalf("failed to configure repo: %v", err)
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("failed to configure repo: %v", err)
	}
	return repo
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	_, err := r.RunGitCommandAndGetOutput(args...)
	return err
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = GitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), string(output), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes content to a file relative to the repository root.
func (r *GitRepo) WriteFile(name, content string) error {
	filePath := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CurrentBranch returns the checked out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// Remotes returns the configured remote names.
func (r *GitRepo) Remotes() ([]string, error) {
	out, err := r.RunGitCommandAndGetOutput("remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}
