package problem

import "github.com/katalvlaran/sopaco/colonymat"

// Problem is the immutable SOP instance: a weighted directed graph of N
// nodes plus a precedence relation (spec.md §3). A valid tour visits node 0
// first, node N-1 last, every node exactly once, and node i before node j
// whenever dependencies[j][i] holds ("i must precede j").
//
// Invariants enforced by New:
//   - weights.At(i,j) == -1 iff dependencies.At(i,j) is true.
//   - dependencies is acyclic.
//   - N >= 2.
//
// Problem does not enforce "node 0 has no outstanding predecessors" or
// "node N-1 is required last" as load-time errors — those are properties a
// well-formed SOP instance has, but a pathological instance violating them
// is still parseable; it simply produces stuck ants every round (scenario
// S3 in spec.md §8), which is InfeasibleRound, not a load-time failure.
type Problem struct {
	Name    string
	Comment string

	// LowerBound and UpperBound are the known solution bounds from the SOP
	// file's SOLUTION_BOUNDS key, or (-1,-1) if absent.
	LowerBound int
	UpperBound int

	Weights      *colonymat.IntDense
	Dependencies *colonymat.BoolDense
}

// N returns the node count.
func (p *Problem) N() int { return p.Weights.N() }

// New validates and constructs a Problem from already-parsed matrices. The
// sopfile package is the usual caller; tests may also call this directly
// with hand-built matrices.
func New(name, comment string, lower, upper int, weights *colonymat.IntDense, deps *colonymat.BoolDense) (*Problem, error) {
	n := weights.N()
	if n < 2 {
		return nil, ErrTooSmall
	}
	if deps.N() != n {
		return nil, ErrDimensionMismatch
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := weights.At(i, j)
			d, _ := deps.At(i, j)
			if (w == -1) != d {
				return nil, ErrInconsistentWeights
			}
		}
	}

	if hasCycle(deps) {
		return nil, ErrCyclicDependency
	}

	return &Problem{
		Name:         name,
		Comment:      comment,
		LowerBound:   lower,
		UpperBound:   upper,
		Weights:      weights,
		Dependencies: deps,
	}, nil
}

// hasCycle runs Kahn's algorithm over the precedence relation:
// dependencies.At(i,j) true is an edge j->i ("j before i"). A node with
// in-degree zero has no outstanding predecessor and may be "removed";
// removing it lowers the in-degree of every node it was a predecessor for.
// If fewer than N nodes can ever be removed, a cycle remains.
func hasCycle(deps *colonymat.BoolDense) bool {
	n := deps.N()
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, _ := deps.At(i, j); v {
				indeg[i]++
			}
		}
	}

	queue := make([]int, 0, n)
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	removed := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		removed++

		for k := 0; k < n; k++ {
			if v, _ := deps.At(k, node); v {
				indeg[k]--
				if indeg[k] == 0 {
					queue = append(queue, k)
				}
			}
		}
	}

	return removed != n
}
