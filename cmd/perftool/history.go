package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"perftool/internal/config"
)

var historyCmd = newHistoryCmd()

func init() {
	rootCmd.AddCommand(historyCmd)
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [bench]",
		Short: "Show recorded sampling runs, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchFn := ""
			if len(args) == 1 {
				benchFn = args[0]
			}

			settings := config.LoadSettings()
			store, err := newStoreFunc(settings.HistoryFile)
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(benchFn, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "WHEN\tBENCH\tCOMMIT\tSAMPLES\tRANGE\tELAPSED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t[%d, %d)\t%s\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Bench, r.Commit,
					r.Samples, r.Min, r.Max, r.Elapsed)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to display")
	return cmd
}
