package bench

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution selects how Sample draws parameters.
type Distribution string

const (
	// Uniform draws every value in the range with equal probability.
	Uniform Distribution = "uniform"
	// LogNormal biases toward small parameters while still producing
	// the occasional large one, so long-running benches don't get
	// flooded with extreme inputs.
	LogNormal Distribution = "lognormal"
)

const logNormalSigma = 0.7

// ParseDistribution validates a distribution name from a flag.
func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case Uniform, LogNormal:
		return Distribution(s), nil
	case "":
		return Uniform, nil
	}
	return "", fmt.Errorf("unknown distribution %q (want %s or %s)", s, Uniform, LogNormal)
}

// Sampler draws integer bench parameters. The random source is injected
// so runs can be seeded and tests stay deterministic.
type Sampler struct {
	rng  *rand.Rand
	dist Distribution
	mean float64
}

// NewSampler builds a sampler over src. mean is only consulted in
// log-normal mode.
func NewSampler(src rand.Source, dist Distribution, mean float64) *Sampler {
	if dist == "" {
		dist = Uniform
	}
	return &Sampler{rng: rand.New(src), dist: dist, mean: mean}
}

// Sample returns an integer in [min, max).
func (s *Sampler) Sample(min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("invalid sample range [%d, %d): min must be below max", min, max)
	}
	if s.dist == LogNormal {
		return s.sampleLogNormal(min, max)
	}
	return min + s.rng.IntN(max-min), nil
}

// sampleLogNormal centers the underlying normal at log(mean) + sigma^2
// and redraws until the value lands in [min, max).
func (s *Sampler) sampleLogNormal(min, max int) (int, error) {
	if s.mean <= 0 {
		return 0, fmt.Errorf("log-normal sampling needs a positive mean, got %g", s.mean)
	}
	ln := distuv.LogNormal{
		Mu:    math.Log(s.mean) + logNormalSigma*logNormalSigma,
		Sigma: logNormalSigma,
		Src:   s.rng,
	}
	for {
		v := int(ln.Rand())
		if v >= min && v < max {
			return v, nil
		}
	}
}
