package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"perftool/internal/config"
)

var benchesCmd = newBenchesCmd()

func init() {
	rootCmd.AddCommand(benchesCmd)
}

func newBenchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benches",
		Short: "List bench functions configured in config.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(cfg.Benches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No benches configured.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "BENCH\tPARAMETER\tOUTPUT")
			for _, name := range cfg.BenchNames() {
				b := cfg.Benches[name]
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, b.Parameter, b.Output)
			}
			return w.Flush()
		},
	}
}
