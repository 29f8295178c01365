package search

import "math/rand"

// defaultSeed is used when callers pass seed==0, keeping defaults reproducible.
const defaultSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
// The result is not goroutine-safe.
func RandFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
