// Package antparams defines AntParams, the scalar knobs and seed that drive
// a single colony run (spec.md §3), built via functional options in the
// style of the teacher library's matrix.NewMatrixOptions/tsp.DefaultOptions.
package antparams
