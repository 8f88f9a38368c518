package bench

import (
	"context"

	"perftool/internal/dataset"
)

// Harness ties the sampler, runner and parser into one sample-and-bench
// cycle. Cycles run sequentially; any failure aborts the whole run.
type Harness struct {
	Sampler *Sampler
	Runner  Runner
}

// SampleAndBench draws one parameter, runs fn against it inside repoPath
// and returns the parameter paired with the parsed timing.
func (h *Harness) SampleAndBench(ctx context.Context, fn, repoPath string, min, max int) (dataset.Record, error) {
	parameter, err := h.Sampler.Sample(min, max)
	if err != nil {
		return dataset.Record{}, err
	}
	raw, err := h.Runner.RunBench(ctx, fn, parameter, repoPath)
	if err != nil {
		return dataset.Record{}, err
	}
	output, err := ParseDuration(raw)
	if err != nil {
		return dataset.Record{}, err
	}
	return dataset.Record{Parameter: parameter, Output: output}, nil
}
