package main_test

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/possible-bj/gitscript/internal/config"
	"github.com/possible-bj/gitscript/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m)
}

func runBinary(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(testhelpers.RequireBinary(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(out), 0
}

func TestExitCodes(t *testing.T) {
	t.Run("invalid flags exit non-zero", func(t *testing.T) {
		out, code := runBinary(t, nil, "--wat")
		require.Equal(t, 1, code)
		require.Contains(t, out, "--wat is not recognised as internal command")
	})

	t.Run("no arguments exit non-zero", func(t *testing.T) {
		out, code := runBinary(t, nil)
		require.Equal(t, 1, code)
		require.Contains(t, out, "No command to execute")
	})

	t.Run("dry run succeeds", func(t *testing.T) {
		out, code := runBinary(t, []string{config.EnvDryRun + "=1", config.EnvJobs + "=1"}, "--init", "--pull")
		require.Equal(t, 0, code, out)
		require.Contains(t, out, "git init")
		require.Contains(t, out, "git pull")
	})

	t.Run("failing git command exits non-zero", func(t *testing.T) {
		testhelpers.RequireGit(t)
		out, code := runBinary(t, []string{config.EnvDryRun + "=", "GIT_CEILING_DIRECTORIES=/"}, "--checkout=nowhere")
		require.Equal(t, 1, code, out)
		require.Contains(t, out, "Error executing Git command")
	})
}
