package pattern

// Linear congruential generator constants. The modulus is prime; the
// multiplier and increment are the classic Numerical Recipes pair.
const (
	rngMultiplier = 1664525
	rngIncrement  = 1013904223
	rngModulus    = 982451497
)

// RNG is a deterministic linear congruential generator. Every draw of
// randomness in this package both reads and advances the single seed
// register, so identical seeds and identical call sequences produce
// identical results. The zero value is usable and behaves like NewRNG(0).
type RNG struct {
	seed int64
}

// NewRNG returns a generator whose state register starts at seed.
// Seeds are reduced into [0, modulus) so arbitrary int64 values are safe.
func NewRNG(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the state register.
func (r *RNG) Seed(seed int64) {
	r.seed = ((seed % rngModulus) + rngModulus) % rngModulus
}

// Next advances the register and returns its new value in [0, modulus).
// Every other method consumes exactly one Next call per draw; there are no
// hidden extra draws.
func (r *RNG) Next() int64 {
	r.seed = (rngMultiplier*r.seed + rngIncrement) % rngModulus
	return r.seed
}

// Intn returns a value in [0, spread). A spread ≤ 0 is a defined degenerate
// input: Intn returns 0 without consuming a draw.
func (r *RNG) Intn(spread int) int {
	if spread <= 0 {
		return 0
	}
	return int(r.Next() % int64(spread))
}

// Range returns a value in [lo, hi] inclusive.
func (r *RNG) Range(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Float returns a value in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()) / rngModulus
}

// FloatRange returns a value in [lo, hi).
func (r *RNG) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float()
}

// Pick returns a uniformly chosen element of items. On an empty slice it
// returns the zero value and false without consuming a draw.
func Pick[T any](r *RNG, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[r.Intn(len(items))], true
}
