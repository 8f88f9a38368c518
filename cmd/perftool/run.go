package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"perftool/internal/bench"
	"perftool/internal/config"
	"perftool/internal/dataset"
	"perftool/internal/git"
	"perftool/internal/history"
)

// Seams for tests.
var (
	askOneFunc    = survey.AskOne
	newRunnerFunc = func(s config.Settings) bench.Runner {
		return bench.NewExecRunner(s.BuildCommand, s.BenchCommand)
	}
	newStoreFunc = func(path string) (history.Store, error) {
		return history.NewSQLiteStore(path)
	}
)

type runOptions struct {
	minValue int
	maxValue int
	samples  int
	dist     string
	mean     float64
	seed     uint64
}

var runCmd = newRunCmd()

func init() {
	rootCmd.AddCommand(runCmd)
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [bench] <commit>",
		Short: "Sample parameters and record bench timings for a commit",
		Long: `Runs the sample-and-bench loop against an existing checkout: draw a
parameter, invoke the bench function, parse the timing from its output,
and append the pair to the commit's dataset. Any failure aborts the run.

With the bench argument omitted, prompts over the benches in config.json.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchFn, commit, err := resolveBenchAndCommit(args)
			if err != nil {
				return err
			}
			return runSamples(cmd, benchFn, commit, opts)
		},
	}

	cmd.Flags().IntVar(&opts.minValue, "min", 0, "Lower parameter bound (inclusive)")
	cmd.Flags().IntVar(&opts.maxValue, "max", 0, "Upper parameter bound (exclusive)")
	cmd.Flags().IntVar(&opts.samples, "samples", 1, "Number of sample-and-bench cycles")
	cmd.Flags().StringVar(&opts.dist, "dist", string(bench.Uniform), "Sampling distribution (uniform or lognormal)")
	cmd.Flags().Float64Var(&opts.mean, "mean", 0, "Target mean for lognormal sampling")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 means non-deterministic)")
	cmd.MarkFlagRequired("min")
	cmd.MarkFlagRequired("max")

	return cmd
}

func runSamples(cmd *cobra.Command, benchFn, commit string, opts runOptions) error {
	settings := config.LoadSettings()

	benchCfg, err := config.LoadBench(benchFn)
	if err != nil {
		return err
	}
	repo, err := git.Checkout(settings.BuildDir, benchFn, commit)
	if err != nil {
		return err
	}
	dist, err := bench.ParseDistribution(opts.dist)
	if err != nil {
		return err
	}

	harness := &bench.Harness{
		Sampler: bench.NewSampler(newRandSource(opts.seed), dist, opts.mean),
		Runner:  newRunnerFunc(settings),
	}
	path := dataset.Path(settings.DataDir, benchFn, commit)
	writer := dataset.NewWriter(path, dataset.Columns{
		Parameter: benchCfg.Parameter,
		Output:    benchCfg.Output,
	})
	if err := writer.Init(); err != nil {
		return err
	}

	slog.Info("starting run", "bench", benchFn, "commit", commit,
		"samples", opts.samples, "min", opts.minValue, "max", opts.maxValue, "dist", dist)

	start := time.Now()
	for i := 0; i < opts.samples; i++ {
		rec, err := harness.SampleAndBench(cmd.Context(), benchFn, repo, opts.minValue, opts.maxValue)
		if err != nil {
			return err
		}
		if err := writer.Append(rec); err != nil {
			return err
		}
		slog.Debug("sample recorded", "bench", benchFn, "parameter", rec.Parameter, "output", rec.Output)
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%d %s=%g\n",
			benchCfg.Parameter, rec.Parameter, benchCfg.Output, rec.Output)
	}

	store, err := newStoreFunc(settings.HistoryFile)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()
	if err := store.SaveRun(history.Run{
		Bench:   benchFn,
		Commit:  commit,
		Samples: opts.samples,
		Min:     opts.minValue,
		Max:     opts.maxValue,
		Elapsed: time.Since(start),
	}); err != nil {
		return fmt.Errorf("recording run history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d samples to %s\n", opts.samples, path)
	return nil
}

// resolveBenchAndCommit handles the optional bench argument, prompting
// over the configured benches when it is omitted.
func resolveBenchAndCommit(args []string) (benchFn, commit string, err error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", "", err
	}
	names := cfg.BenchNames()
	if len(names) == 0 {
		return "", "", fmt.Errorf("no benches configured in %s", config.FileName)
	}
	prompt := &survey.Select{
		Message: "Select a bench function:",
		Options: names,
	}
	if err := askOneFunc(prompt, &benchFn); err != nil {
		return "", "", err
	}
	return benchFn, args[0], nil
}

// newRandSource returns a seeded source for reproducible runs, or a
// randomly seeded one when seed is 0.
func newRandSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}
