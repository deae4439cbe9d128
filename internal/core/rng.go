package core

// Rand is the random source used for topic and block color selection.
// Tests inject a seeded SimpleRNG to make rounds reproducible.
type Rand interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG and draws from the high bits.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Low bits of a power-of-two LCG have short periods.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
