package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"perftool/internal/config"
	"perftool/internal/git"
)

var gitClientFunc = func() git.Worktreer { return git.NewClient() }

var checkoutCmd = newCheckoutCmd()

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

func newCheckoutCmd() *cobra.Command {
	var repoDir string
	cmd := &cobra.Command{
		Use:   "checkout <bench> <commit>",
		Short: "Create a worktree for a commit and build its release binary",
		Long: `Materializes the commit as a git worktree, records it under
build/<bench>/<commit>, and runs the release build inside the checkout's
cli directory so the run command finds a ready binary.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchFn, commit := args[0], args[1]
			settings := config.LoadSettings()

			// Validate the bench exists before creating anything.
			if _, err := config.LoadBench(benchFn); err != nil {
				return err
			}

			worktree, err := filepath.Abs(filepath.Join(settings.WorktreesDir, commit))
			if err != nil {
				return err
			}
			if err := gitClientFunc().AddWorktree(cmd.Context(), repoDir, worktree, commit); err != nil {
				return err
			}
			if err := git.Link(settings.BuildDir, benchFn, commit, worktree); err != nil {
				return err
			}

			repo := filepath.Join(worktree, "cli")
			slog.Info("building release binary", "repo", repo, "commit", commit)
			if err := newRunnerFunc(settings).BuildRelease(cmd.Context(), repo); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Checkout ready: %s\n", repo)
			return nil
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", "", "Repository to create the worktree from (default: working directory)")
	return cmd
}
