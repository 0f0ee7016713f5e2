package rng

// minstdA and minstdM are the Park-Miller "minimal standard" LCG
// parameters: state_{k+1} = (a * state_k) mod m. Matches
// original_source/src/variants/sequential.hpp's minstd0_engine exactly.
const (
	minstdA uint64 = 16807
	minstdM uint64 = 2147483647
)

// MINSTD is a MINSTD (a=16807, m=2^31-1) linear congruential generator.
// The zero value is not seeded; call Seed before the first Next.
type MINSTD struct {
	state uint64
}

// NewMINSTD returns a MINSTD generator seeded with seed.
func NewMINSTD(seed uint32) *MINSTD {
	g := &MINSTD{}
	g.Seed(seed)

	return g
}

// Seed resets the generator state. A seed of 0 is folded to 1: 0 is a fixed
// point of the multiplicative LCG (0*a mod m == 0 forever), which would
// produce an all-zero stream.
func (g *MINSTD) Seed(seed uint32) {
	s := uint64(seed) % minstdM
	if s == 0 {
		s = 1
	}
	g.state = s
}

// Next advances the generator and returns the next value in [1, m-1].
func (g *MINSTD) Next() uint32 {
	g.state = (minstdA * g.state) % minstdM

	return uint32(g.state)
}

// Float64 returns Next() mapped onto [0, 1) as (Next()-1)/(m-1), so the
// draw spans the whole unit interval for the inverse-CDF sampling step in
// advance (spec.md §4.1.1 step 4).
func (g *MINSTD) Float64() float64 {
	return float64(g.Next()-1) / float64(minstdM-1)
}
