// Package rng implements the MINSTD linear congruential generator
// (Lewis-Goodman-Miller, a=16807, m=2^31-1) used as the reference PRNG for
// both the sequential and accelerator colony back-ends (spec.md §3, §9).
//
// MINSTD is used verbatim — not math/rand, whose generator parameterization
// is unspecified by the language and would silently break algorithmic
// equivalence between back-ends (property 4/S6 in spec.md §8). Integer
// math only, no floating point in the generator itself.
package rng
