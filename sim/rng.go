package sim

import "math"

// rng is the xorshift32 generator every subsystem draws from. A single
// instance lives on Simulation (as the persistent engine RNG) and reseeds
// a per-tick copy (tickRNG) at the start of every Tick, so replaying a
// tick's stochastic decisions only requires tickSeed, not wall-clock
// state (spec §4.5, §5 "Determinism").
type rng struct {
	state uint32
}

func newRNG(seed uint32) rng {
	if seed == 0 {
		seed = 1
	}
	return rng{state: seed}
}

// Uint32 advances the generator via xorshift32 and returns the new state.
// Implements internal/gridscan.RNGSource.
func (r *rng) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float returns a pseudo-random float in [0,1).
func (r *rng) Float() float32 {
	f := float32(r.Uint32()) / 4294967296.0
	if f >= 1 { // float32 rounding maps the largest uint32 values to 1.0
		f = math.Nextafter32(1, 0)
	}
	return f
}

// Range returns a pseudo-random integer in [a,b], inclusive.
func (r *rng) Range(a, b int) int {
	if b <= a {
		return a
	}
	return a + int(r.Uint32()%uint32(b-a+1))
}

// Bool returns a pseudo-random boolean with probability p of being true.
func (r *rng) Bool(p float32) bool {
	return r.Float() < p
}
