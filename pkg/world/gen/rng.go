package gen

// Rand is the random source threaded through every pass.
// Passes draw from it in scan order, so a fixed seed reproduces the grid.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// RNG is a small deterministic LCG.
type RNG struct {
	state int64
}

// NewRNG seeds an RNG.
func NewRNG(seed int64) *RNG {
	r := &RNG{state: seed ^ 0x5DEECE66D}
	r.next() // discard the first output; it tracks the seed too closely
	return r
}

func (r *RNG) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

func (r *RNG) Float64() float64 {
	return float64(uint64(r.next())>>11) / (1 << 53)
}

func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(uint64(r.next())>>33) % n
	return v
}

// intRange returns a value in [lo, hi], both inclusive.
func intRange(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
