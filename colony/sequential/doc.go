// Package sequential implements the CPU colony engine: one goroutine-free
// pass over a colony of N ants per round (spec.md §4.1), a direct
// translation of the original tool's reference variant. It is the baseline
// every other back-end is checked against for algorithmic equivalence
// (spec.md §8 invariant 4).
package sequential
