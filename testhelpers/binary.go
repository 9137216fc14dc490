// Package testhelpers provides shared test utilities for gitscript packages.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
	binaryCleanup    func()
)

// GetSharedBinaryPath returns the gitscript binary path, building it on first use.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		sharedBinaryPath, binaryCleanup, binaryErr = buildBinary()
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// RequireBinary returns the built binary path or fails the test.
func RequireBinary(t *testing.T) string {
	t.Helper()
	path := GetSharedBinaryPath()
	if path == "" {
		t.Fatalf("failed to build gitscript binary: %v", GetBinaryError())
	}
	return path
}

// buildBinary builds the gitscript binary into a temp directory.
func buildBinary() (string, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", nil, fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gitscript-test-binary-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(tmpDir) // Ignore cleanup errors
	}

	binaryPath := filepath.Join(tmpDir, "gitscript")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitscript")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, cleanup, nil
}

// findModuleRoot walks up the directory tree from startDir to find the module root
// (directory containing go.mod file).
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// TestMain runs the package's tests and removes the shared binary afterwards.
func TestMain(m *testing.M) {
	code := m.Run()
	if binaryCleanup != nil {
		binaryCleanup()
	}
	os.Exit(code)
}
