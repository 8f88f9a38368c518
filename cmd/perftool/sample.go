package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"perftool/internal/bench"
)

var sampleCmd = newSampleCmd()

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func newSampleCmd() *cobra.Command {
	var opts runOptions
	var count int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw bench parameters without running anything",
		Long: `Prints sampled parameters, one per line. Useful for eyeballing a
distribution before committing to a long run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, err := bench.ParseDistribution(opts.dist)
			if err != nil {
				return err
			}
			sampler := bench.NewSampler(newRandSource(opts.seed), dist, opts.mean)
			for i := 0; i < count; i++ {
				v, err := sampler.Sample(opts.minValue, opts.maxValue)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.minValue, "min", 0, "Lower parameter bound (inclusive)")
	cmd.Flags().IntVar(&opts.maxValue, "max", 0, "Upper parameter bound (exclusive)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of parameters to draw")
	cmd.Flags().StringVar(&opts.dist, "dist", string(bench.Uniform), "Sampling distribution (uniform or lognormal)")
	cmd.Flags().Float64Var(&opts.mean, "mean", 0, "Target mean for lognormal sampling")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 means non-deterministic)")
	cmd.MarkFlagRequired("min")
	cmd.MarkFlagRequired("max")

	return cmd
}
