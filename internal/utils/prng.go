// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard random generator so the whole engine can run
// on a seeded, reproducible stream. Spawn point selection goes through here.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed. A seed of 0 uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
