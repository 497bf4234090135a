package core

// Rand is the single random source a simulation draws from.
// *math/rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// RandRange returns an int in [lo, hi). It returns lo when hi <= lo.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
