package maze

import "math/rand"

// Rand is the source of uniformly distributed integers used by a run.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
