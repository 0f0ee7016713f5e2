// Package colonymat provides the dense, row-major matrices shared by the
// colony engines: integer edge weights, boolean precedence, and the
// float64 pheromone/visibility pair. Every type stores its backing data in
// a single flat slice for cache-friendly access, mirroring the teacher
// library's matrix.Dense, and every accessor is bounds-checked and returns
// a wrapped sentinel error rather than panicking.
package colonymat
