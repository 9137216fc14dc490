package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveLogFilePath expands a leading "~/" in the configured log path.
// An empty path disables file logging.
func ResolveLogFilePath(path string) string {
	if path == "" || !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return filepath.Base(path)
	}
	return filepath.Join(homeDir, path[2:])
}
