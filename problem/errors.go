package problem

import "errors"

// ErrDimensionMismatch indicates the weights and dependencies matrices
// disagree in size.
var ErrDimensionMismatch = errors.New("problem: dimension mismatch between weights and dependencies")

// ErrInconsistentWeights indicates weights[i][j] == -1 without
// dependencies[i][j] being true, or vice versa (spec.md §3 invariant).
var ErrInconsistentWeights = errors.New("problem: weights/-1 and dependencies disagree")

// ErrCyclicDependency indicates the dependencies matrix contains a cycle,
// which would make every ant stuck forever.
var ErrCyclicDependency = errors.New("problem: dependencies matrix is cyclic")

// ErrTooSmall indicates N < 2, too small to form a tour with a distinct
// first and last node.
var ErrTooSmall = errors.New("problem: need at least 2 nodes")
