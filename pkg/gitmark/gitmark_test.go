package gitmark

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitAll(t *testing.T, wt *git.Worktree, message string) {
	t.Helper()
	_, err := wt.Commit(message, &git.CommitOptions{
		All:    true,
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestStatus_NonGitDirectory(t *testing.T) {
	status := Status(context.Background(), t.TempDir())
	assert.Nil(t, status)
}

func TestStatus_EmptyRepo(t *testing.T) {
	tempDir := t.TempDir()
	_, err := git.PlainInit(tempDir, false)
	require.NoError(t, err)

	status := Status(context.Background(), tempDir)
	require.NotNil(t, status)
	assert.Equal(t, "master", status.Branch)
}

func TestStatus_Marks(t *testing.T) {
	tempDir := t.TempDir()
	repo, err := git.PlainInit(tempDir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "tracked.txt"), []byte("one\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "sub", "inner.txt"), []byte("x\n"), 0644))
	_, err = wt.Add("tracked.txt")
	require.NoError(t, err)
	_, err = wt.Add("sub/inner.txt")
	require.NoError(t, err)
	commitAll(t, wt, "initial")

	t.Run("clean", func(t *testing.T) {
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, Mark(""), status.Mark("tracked.txt"))
		assert.Equal(t, Mark(""), status.Mark("sub"))
	})

	t.Run("modified", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "tracked.txt"), []byte("one\ntwo\n"), 0644))
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, MarkModified, status.Mark("tracked.txt"))
	})

	t.Run("untracked", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "fresh.txt"), []byte("new\n"), 0644))
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, MarkUntracked, status.Mark("fresh.txt"))
	})

	t.Run("change_below_subdir_marks_it", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "sub", "inner.txt"), []byte("y\n"), 0644))
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, MarkModified, status.Mark("sub"))
	})

	t.Run("subdir_view_sees_own_children", func(t *testing.T) {
		status := Status(context.Background(), filepath.Join(tempDir, "sub"))
		require.NotNil(t, status)
		assert.Equal(t, MarkModified, status.Mark("inner.txt"))
		// Siblings outside the viewed directory are not reported.
		assert.Equal(t, Mark(""), status.Mark("tracked.txt"))
	})

	t.Run("deleted", func(t *testing.T) {
		require.NoError(t, os.Remove(filepath.Join(tempDir, "tracked.txt")))
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, MarkDeleted, status.Mark("tracked.txt"))
	})
}

func TestStatus_Seams(t *testing.T) {
	tempDir := t.TempDir()
	_, err := git.PlainInit(tempDir, false)
	require.NoError(t, err)

	t.Run("head_error", func(t *testing.T) {
		origHead := repoHead
		defer func() { repoHead = origHead }()
		repoHead = func(*git.Repository) (*plumbing.Reference, error) {
			return nil, errors.New("boom")
		}
		assert.Nil(t, Status(context.Background(), tempDir))
	})

	t.Run("worktree_error", func(t *testing.T) {
		origWorktree := repoWorktree
		defer func() { repoWorktree = origWorktree }()
		repoWorktree = func(*git.Repository) (*git.Worktree, error) {
			return nil, errors.New("boom")
		}
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, 0, len(status.Marks))
	})

	t.Run("status_error", func(t *testing.T) {
		origStatus := worktreeStatus
		defer func() { worktreeStatus = origStatus }()
		worktreeStatus = func(*git.Worktree) (git.Status, error) {
			return nil, errors.New("boom")
		}
		status := Status(context.Background(), tempDir)
		require.NotNil(t, status)
		assert.Equal(t, 0, len(status.Marks))
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Nil(t, Status(ctx, tempDir))
	})
}

func TestDirStatus_NilReceiver(t *testing.T) {
	var s *DirStatus
	assert.Equal(t, Mark(""), s.Mark("anything"))
}

func TestChildName(t *testing.T) {
	tests := []struct {
		rel        string
		wantName   string
		wantDirect bool
		wantOK     bool
	}{
		{rel: "a.txt", wantName: "a.txt", wantDirect: true, wantOK: true},
		{rel: "sub/inner.txt", wantName: "sub", wantDirect: false, wantOK: true},
		{rel: "sub/deep/er.txt", wantName: "sub", wantDirect: false, wantOK: true},
	}
	for _, tt := range tests {
		name, direct, ok := childName("/repo", "/repo", tt.rel)
		assert.Equal(t, tt.wantName, name)
		assert.Equal(t, tt.wantDirect, direct)
		assert.Equal(t, tt.wantOK, ok)
	}

	// Paths outside the viewed directory are rejected.
	_, _, ok := childName("/repo", "/repo/sub", "a.txt")
	assert.False(t, ok)
}
