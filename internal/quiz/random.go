package quiz

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used to set up rounds.
// Tests inject a scripted implementation.
type Source interface {
	// Shuffle permutes n elements through swap, like rand.Shuffle.
	Shuffle(n int, swap func(i, j int))
	// RandomIndex returns a uniform integer in [0, bound).
	RandomIndex(bound int) int
}

// RandSource is a Source backed by math/rand.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source from seed. A seed of 0 means a time-based seed.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle performs a uniform Fisher-Yates permutation.
func (s *RandSource) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// RandomIndex returns a uniform integer in [0, bound).
func (s *RandSource) RandomIndex(bound int) int {
	return s.rng.Intn(bound)
}
