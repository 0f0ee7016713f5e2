// Package sopconformance builds the canonical problem instances and
// parameter sets used by scenarios S1-S5 (spec.md §8), so that
// colony/sequential and colony/workgroup exercise byte-identical fixtures
// in their respective test files instead of duplicating the construction.
package sopconformance
