package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargoupdate/internal/domain/repositories"
)

// GitWorktreeRepository implements repositories.WorktreeRepository with go-git.
type GitWorktreeRepository struct{}

// NewGitWorktreeRepository creates a new go-git backed worktree inspector.
func NewGitWorktreeRepository() repositories.WorktreeRepository {
	return &GitWorktreeRepository{}
}

// IsDirty reports whether path is modified, staged or untracked in the git
// worktree containing it.
func (r *GitWorktreeRepository) IsDirty(path string) (bool, error) {
	absPath, err := resolvePath(path)
	if err != nil {
		return false, err
	}

	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		logger.Debugf("%s is not inside a git repository", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	root, err := resolvePath(worktree.Filesystem.Root())
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return false, fmt.Errorf("failed to locate %s in worktree: %w", path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	// Status only lists changed files; Status.File would report a missing
	// entry as untracked.
	fileStatus, ok := status[filepath.ToSlash(rel)]
	if !ok {
		return false, nil
	}
	return fileStatus.Worktree != gogit.Unmodified || fileStatus.Staging != gogit.Unmodified, nil
}

func resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(absPath); evalErr == nil {
		return resolved, nil
	}
	return absPath, nil
}
