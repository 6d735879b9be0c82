// Package gitinfo reports git metadata for checked notebooks using go-git.
package gitinfo

import (
	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.RepoInspector.
type GitInfoAdapter struct{}

// New creates a GitInfoAdapter.
func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// HeadCommit returns the HEAD commit hash of the repository containing dir.
// Notebooks usually live somewhere below the repo root, so .git discovery
// walks upward. A notebook outside any repository is not an error.
func (g *GitInfoAdapter) HeadCommit(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		return "", false
	}

	return head.Hash().String(), true
}
