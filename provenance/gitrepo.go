package provenance

import (
	"context"
	"errors"

	git "github.com/go-git/go-git/v5"
)

// GitRepository implements Repository on top of go-git. It opens the
// repository containing path (walking up to find the .git directory, the
// way the git CLI does) and reads HEAD plus the worktree status. Queries
// are read-only, so concurrent use over independent mappings is safe.
type GitRepository struct{}

// NewGitRepository returns a GitRepository.
func NewGitRepository() *GitRepository {
	return &GitRepository{}
}

// Query implements Repository. A path outside any repository yields the
// zero RevisionInfo and no error; other failures (unborn HEAD, unreadable
// worktree) are returned and left to the tagger's degrade-to-no-op policy.
func (g *GitRepository) Query(ctx context.Context, path string) (RevisionInfo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return RevisionInfo{}, nil
		}
		return RevisionInfo{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return RevisionInfo{}, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return RevisionInfo{}, err
	}
	status, err := wt.Status()
	if err != nil {
		return RevisionInfo{}, err
	}

	return RevisionInfo{
		ID:    head.Hash().String(),
		Dirty: !status.IsClean(),
		Found: true,
	}, nil
}
