package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
)

// FindRepoRoot returns the root of the repository containing dir.
// An empty dir means the current working directory.
func FindRepoRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// IsInsideRepo reports whether dir is inside a repository with a worktree
func IsInsideRepo(dir string) bool {
	_, err := FindRepoRoot(dir)
	return err == nil
}
