// Package xrand provides the seeded uniform noise source used to escape
// singularities in the numerical inverse-kinematics solvers (spec.md §4.3,
// §5). Each call site owns a *rand.Rand constructed from its own seed, so
// identical seeds always reproduce identical sequences and no solver ever
// touches the global math/rand source.
package xrand

import (
	"math/rand"
	"time"
)

// Source draws uniform noise in a symmetric interval.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded deterministically from seed, or from the
// runtime clock when seed is nil — mirroring the optional-seed
// constructors the teacher uses for its motion-profile generators.
func New(seed *int64) *Source {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(s))}
}

// UniformVector fills a vector of length n with independent draws from
// [-level, level].
func (s *Source) UniformVector(n int, level float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (s.rng.Float64()*2 - 1) * level
	}
	return out
}
