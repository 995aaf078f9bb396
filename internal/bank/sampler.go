package bank

import (
	"math/rand/v2"
	"slices"
)

const (
	// DefaultSampleSize is how many cases the random sampler picks per level.
	DefaultSampleSize = 2

	// DefaultFirstN is how many cases the deterministic sampler takes per level.
	DefaultFirstN = 3
)

// Sampler selects which case identifiers of a level are played and in which
// order. ids arrive sorted numerically; implementations must not modify it.
type Sampler interface {
	Sample(ids []string) []string
}

// RandomSampler picks N identifiers without replacement. A nil Rand uses the
// unseeded global source. N <= 0 keeps every identifier, shuffled.
type RandomSampler struct {
	N    int
	Rand *rand.Rand
}

var _ Sampler = RandomSampler{}

// DefaultSampler returns the runtime default: two random cases per level.
func DefaultSampler() Sampler {
	return RandomSampler{N: DefaultSampleSize}
}

// SeededSampler returns a reproducible RandomSampler.
func SeededSampler(n int, seed uint64) RandomSampler {
	return RandomSampler{N: n, Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s RandomSampler) Sample(ids []string) []string {
	out := slices.Clone(ids)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if s.Rand != nil {
		s.Rand.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	if s.N > 0 && len(out) > s.N {
		out = out[:s.N]
	}
	return out
}

// FirstN takes the first N identifiers in sorted order. N <= 0 keeps all.
type FirstN struct {
	N int
}

var _ Sampler = FirstN{}

func (s FirstN) Sample(ids []string) []string {
	out := slices.Clone(ids)
	if s.N > 0 && len(out) > s.N {
		out = out[:s.N]
	}
	return out
}

// NewSampler maps a configured strategy name to a Sampler. seed 0 means
// unseeded. Unknown names fall back to the random strategy.
func NewSampler(strategy string, n int, seed uint64) Sampler {
	switch strategy {
	case "first":
		if n <= 0 {
			n = DefaultFirstN
		}
		return FirstN{N: n}
	default:
		if n <= 0 {
			n = DefaultSampleSize
		}
		if seed != 0 {
			return SeededSampler(n, seed)
		}
		return RandomSampler{N: n}
	}
}
