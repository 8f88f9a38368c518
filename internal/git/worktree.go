// Package git manages commit checkouts: worktree creation and the
// build/<bench>/<commit> symlink chain the harness reads builds through.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// execCommand allows tests to stub subprocess creation.
var execCommand = exec.CommandContext

// Worktreer creates commit worktrees.
type Worktreer interface {
	AddWorktree(ctx context.Context, repoDir, dir, commit string) error
}

// Client runs git subcommands.
type Client struct{}

// NewClient creates a new git client.
func NewClient() *Client {
	return &Client{}
}

// AddWorktree materializes commit as a worktree at dir. -f allows
// re-adding a path that held a worktree before. repoDir may be empty to
// run from the working directory.
func (c *Client) AddWorktree(ctx context.Context, repoDir, dir, commit string) error {
	cmd := execCommand(ctx, "git", "worktree", "add", "-f", dir, commit)
	if repoDir != "" {
		cmd.Dir = repoDir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git worktree add %s %s failed: %w\nOutput:\n%s", dir, commit, err, out)
	}
	return nil
}

// LinkPath is the symlink recording where the checkout for a
// (bench, commit) pair lives.
func LinkPath(buildDir, benchFn, commit string) string {
	return filepath.Join(buildDir, benchFn, commit)
}

// Link records worktree as the checkout for a (bench, commit) pair.
// Re-linking to the same target is a no-op; a link pointing elsewhere
// is an error rather than a silent overwrite.
func Link(buildDir, benchFn, commit, worktree string) error {
	link := LinkPath(buildDir, benchFn, commit)
	if existing, err := os.Readlink(link); err == nil {
		if existing == worktree {
			return nil
		}
		return fmt.Errorf("checkout link %s already points at %s", link, existing)
	}
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return fmt.Errorf("creating build directory for %s: %w", link, err)
	}
	if err := os.Symlink(worktree, link); err != nil {
		return fmt.Errorf("linking checkout %s: %w", link, err)
	}
	return nil
}

// Checkout resolves the build symlink for a (bench, commit) pair to the
// cli crate inside the worktree, the working directory for build and
// bench subprocesses.
func Checkout(buildDir, benchFn, commit string) (string, error) {
	link := LinkPath(buildDir, benchFn, commit)
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		return "", fmt.Errorf("resolving checkout link %s (run checkout first?): %w", link, err)
	}
	return filepath.Join(resolved, "cli"), nil
}
