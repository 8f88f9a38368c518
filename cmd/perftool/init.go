package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"perftool/internal/config"
	"perftool/internal/dataset"
)

var initCmd = newInitCmd()

func init() {
	rootCmd.AddCommand(initCmd)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <bench> <commit>",
		Short: "Create or validate the dataset CSV for a (bench, commit) pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchFn, commit := args[0], args[1]
			benchCfg, err := config.LoadBench(benchFn)
			if err != nil {
				return err
			}

			settings := config.LoadSettings()
			path := dataset.Path(settings.DataDir, benchFn, commit)
			writer := dataset.NewWriter(path, dataset.Columns{
				Parameter: benchCfg.Parameter,
				Output:    benchCfg.Output,
			})
			if err := writer.Init(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dataset ready: %s\n", path)
			return nil
		},
	}
}
