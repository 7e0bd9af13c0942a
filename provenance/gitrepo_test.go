package provenance

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with one committed file in a temp
// directory and returns the directory and the commit hash.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("payload\n"), 0600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("data.txt")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, hash.String()
}

func TestGitRepository_Clean(t *testing.T) {
	dir, hash := initTestRepo(t)

	info, err := NewGitRepository().Query(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, info.Found)
	assert.False(t, info.Dirty)
	assert.Equal(t, hash, info.ID)
}

func TestGitRepository_Dirty(t *testing.T) {
	dir, hash := initTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.txt"), []byte("changed\n"), 0600))

	info, err := NewGitRepository().Query(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, info.Found)
	assert.True(t, info.Dirty)
	assert.Equal(t, hash+"_dirty", info.String())
}

func TestGitRepository_DetectsEnclosingRepo(t *testing.T) {
	dir, hash := initTestRepo(t)
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0700))

	info, err := NewGitRepository().Query(context.Background(), sub)
	require.NoError(t, err)
	assert.True(t, info.Found)
	assert.Equal(t, hash, info.ID)
}

func TestGitRepository_NotARepository(t *testing.T) {
	info, err := NewGitRepository().Query(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, info.Found)
	assert.Equal(t, "", info.String())
}
