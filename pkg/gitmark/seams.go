package gitmark

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	filepathRel = filepath.Rel

	gitPlainOpen = func(dir string) (*git.Repository, error) {
		return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	}

	repoHead = func(repo *git.Repository) (*plumbing.Reference, error) {
		return repo.Head()
	}
	repoWorktree = func(repo *git.Repository) (*git.Worktree, error) {
		return repo.Worktree()
	}
	worktreeStatus = func(wt *git.Worktree) (git.Status, error) {
		return wt.Status()
	}

	isCtxDone = func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}
)
