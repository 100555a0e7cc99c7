//go:build unit

package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargoupdate/internal/infrastructure/repositories/git"
)

const manifestContent = "[dependencies]\nfoo = \"1.0.0\"\n"

// initRepo creates a repository holding a committed Cargo.toml.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(manifestContent), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("Cargo.toml")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return path
}

func TestGitWorktreeRepository(t *testing.T) {
	t.Parallel()

	t.Run("should report a committed manifest as clean", func(t *testing.T) {
		t.Parallel()

		// given
		path := initRepo(t)
		repo := git.NewGitWorktreeRepository()

		// when
		dirty, err := repo.IsDirty(path)

		// then
		require.NoError(t, err)
		assert.False(t, dirty)
	})

	t.Run("should report a modified manifest as dirty", func(t *testing.T) {
		t.Parallel()

		// given
		path := initRepo(t)
		require.NoError(t, os.WriteFile(path, []byte(manifestContent+"bar = \"2\"\n"), 0o600))
		repo := git.NewGitWorktreeRepository()

		// when
		dirty, err := repo.IsDirty(path)

		// then
		require.NoError(t, err)
		assert.True(t, dirty)
	})

	t.Run("should report an untracked manifest as dirty", func(t *testing.T) {
		t.Parallel()

		// given
		path := initRepo(t)
		untracked := filepath.Join(filepath.Dir(path), "member", "Cargo.toml")
		require.NoError(t, os.MkdirAll(filepath.Dir(untracked), 0o750))
		require.NoError(t, os.WriteFile(untracked, []byte(manifestContent), 0o600))
		repo := git.NewGitWorktreeRepository()

		// when
		dirty, err := repo.IsDirty(untracked)

		// then
		require.NoError(t, err)
		assert.True(t, dirty)
	})

	t.Run("should not block a manifest outside any repository", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "Cargo.toml")
		require.NoError(t, os.WriteFile(path, []byte(manifestContent), 0o600))
		repo := git.NewGitWorktreeRepository()

		// when
		dirty, err := repo.IsDirty(path)

		// then
		require.NoError(t, err)
		assert.False(t, dirty)
	})
}
