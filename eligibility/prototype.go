package eligibility

import "github.com/katalvlaran/sopaco/colonymat"

// Prototype is the counter form of eligibility (spec.md §3): counts[i] is the
// number of outstanding predecessors node i still needs before it becomes
// eligible (count reaches zero), or -1 once visited. It is built once per
// Problem and cloned per ant per round.
type Prototype struct {
	counts []int32
}

// BuildPrototype computes the initial per-node predecessor counts for a
// tour that always starts at node 0: every node's counter is its in-degree
// under the precedence relation, node 0 is pre-satisfied for its
// dependents, and node 0 itself is marked visited.
func BuildPrototype(deps *colonymat.BoolDense) *Prototype {
	n := deps.N()
	counts := make([]int32, n)

	for i := 0; i < n; i++ {
		var acc int32
		for j := 0; j < n; j++ {
			if v, _ := deps.At(i, j); v {
				acc++
			}
		}
		counts[i] = acc
	}

	for from := 0; from < n; from++ {
		if v, _ := deps.At(from, 0); v {
			counts[from]--
		}
	}
	counts[0] = -1

	return &Prototype{counts: counts}
}

// Clone returns a fresh per-ant copy of the counter slice.
func (p *Prototype) Clone() []int32 {
	c := make([]int32, len(p.counts))
	copy(c, p.counts)
	return c
}

// Eligible reports whether node has no outstanding predecessors and has not
// already been visited.
func Eligible(counts []int32, node int) bool {
	return counts[node] == 0
}

// MarkVisited marks node as visited and lowers the outstanding-predecessor
// count of every node that depends on it.
func MarkVisited(counts []int32, deps *colonymat.BoolDense, node int) {
	counts[node] = -1
	n := len(counts)
	for from := 0; from < n; from++ {
		if v, _ := deps.At(from, node); v {
			counts[from]--
		}
	}
}
