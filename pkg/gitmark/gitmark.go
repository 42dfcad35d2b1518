// Package gitmark provides read-only git worktree status marks for
// decorating directory listings. A directory outside any repository, or
// a repository that cannot be read, yields no marks rather than an
// error: the browser works the same with or without git.
package gitmark

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Mark is a one-character status shown next to an entry name.
type Mark string

const (
	MarkModified  Mark = "M"
	MarkAdded     Mark = "A"
	MarkUntracked Mark = "?"
	MarkDeleted   Mark = "D"
)

// DirStatus carries the repository branch and per-name marks for the
// direct children of one directory.
type DirStatus struct {
	Branch string
	Marks  map[string]Mark
}

// Mark returns the mark for a child name, or "" when the file is
// unmodified or untracked by any repository.
func (s *DirStatus) Mark(name string) Mark {
	if s == nil {
		return ""
	}
	return s.Marks[name]
}

// Status inspects the repository containing dir (if any) and reports
// marks for dir's direct children. A nil result means no repository.
func Status(ctx context.Context, dir string) *DirStatus {
	if isCtxDone(ctx) {
		return nil
	}
	repo, err := gitPlainOpen(dir)
	if err != nil {
		return nil
	}

	res := &DirStatus{Marks: map[string]Mark{}}

	head, err := repoHead(repo)
	switch {
	case err == plumbing.ErrReferenceNotFound:
		res.Branch = "master"
	case err != nil:
		return nil
	case head.Name().IsBranch():
		res.Branch = head.Name().Short()
	default:
		res.Branch = head.Hash().String()[:7]
	}

	wt, err := repoWorktree(repo)
	if err != nil {
		return res
	}
	if isCtxDone(ctx) {
		return res
	}
	status, err := worktreeStatus(wt)
	if err != nil || status.IsClean() {
		return res
	}

	root := wt.Filesystem.Root()
	for relPath, fileStatus := range status {
		name, direct, ok := childName(root, dir, relPath)
		if !ok {
			continue
		}
		if !direct {
			// Changes somewhere below a subdirectory mark it modified.
			res.Marks[name] = MarkModified
			continue
		}
		if mark := markFor(fileStatus); mark != "" {
			res.Marks[name] = mark
		}
	}
	return res
}

// childName maps a repo-relative path to a direct child of dir; direct
// is false when the path lives deeper under a subdirectory.
func childName(repoRoot, dir, relPath string) (name string, direct, ok bool) {
	full := filepath.Join(repoRoot, filepath.FromSlash(relPath))
	rel, err := filepathRel(dir, full)
	if err != nil {
		return "", false, false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return "", false, false
	}
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i], false, true
	}
	return rel, true, true
}

func markFor(fileStatus *git.FileStatus) Mark {
	if fileStatus == nil {
		return ""
	}
	switch {
	case fileStatus.Worktree == git.Untracked:
		return MarkUntracked
	case fileStatus.Worktree == git.Deleted || fileStatus.Staging == git.Deleted:
		return MarkDeleted
	case fileStatus.Staging == git.Added:
		return MarkAdded
	case fileStatus.Worktree == git.Modified || fileStatus.Staging == git.Modified:
		return MarkModified
	}
	return ""
}
