package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWorktreeInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string
	orig := execCommand
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { execCommand = orig })

	c := NewClient()
	require.NoError(t, c.AddWorktree(context.Background(), "", "/tmp/wt/abc123", "abc123"))
	assert.Equal(t, "git", gotName)
	assert.Equal(t, []string{"worktree", "add", "-f", "/tmp/wt/abc123", "abc123"}, gotArgs)
}

func TestAddWorktreeFailure(t *testing.T) {
	orig := execCommand
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "echo 'fatal: invalid reference' >&2; exit 128")
	}
	t.Cleanup(func() { execCommand = orig })

	err := NewClient().AddWorktree(context.Background(), "", "/tmp/wt/bad", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reference")
}

func TestLinkAndCheckout(t *testing.T) {
	tmp := t.TempDir()
	worktree := filepath.Join(tmp, "worktrees", "abc123")
	require.NoError(t, os.MkdirAll(filepath.Join(worktree, "cli"), 0o755))

	buildDir := filepath.Join(tmp, "build")
	require.NoError(t, Link(buildDir, "sort_vec", "abc123", worktree))

	repo, err := Checkout(buildDir, "sort_vec", "abc123")
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(filepath.Join(worktree, "cli"))
	require.NoError(t, err)
	assert.Equal(t, resolved, repo)
}

func TestLinkIdempotent(t *testing.T) {
	tmp := t.TempDir()
	worktree := filepath.Join(tmp, "worktrees", "abc123")
	require.NoError(t, os.MkdirAll(worktree, 0o755))

	buildDir := filepath.Join(tmp, "build")
	require.NoError(t, Link(buildDir, "sort_vec", "abc123", worktree))
	assert.NoError(t, Link(buildDir, "sort_vec", "abc123", worktree))
}

func TestLinkConflict(t *testing.T) {
	tmp := t.TempDir()
	for _, d := range []string{"one", "two"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmp, d), 0o755))
	}

	buildDir := filepath.Join(tmp, "build")
	require.NoError(t, Link(buildDir, "sort_vec", "abc123", filepath.Join(tmp, "one")))
	err := Link(buildDir, "sort_vec", "abc123", filepath.Join(tmp, "two"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already points")
}

func TestCheckoutMissingLink(t *testing.T) {
	_, err := Checkout(filepath.Join(t.TempDir(), "build"), "sort_vec", "missing")
	assert.Error(t, err)
}
