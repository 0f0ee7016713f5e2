package sopconformance

import (
	"testing"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/problem"
)

// BuildProblem assembles a Problem from dense weight/dependency grids,
// failing the test immediately on any construction error.
func BuildProblem(t testing.TB, weights [][]int, deps [][]bool) *problem.Problem {
	t.Helper()

	n := len(weights)
	w, err := colonymat.NewIntDense(n, 0)
	if err != nil {
		t.Fatalf("NewIntDense: %v", err)
	}
	d, err := colonymat.NewBoolDense(n)
	if err != nil {
		t.Fatalf("NewBoolDense: %v", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := w.Set(i, j, weights[i][j]); err != nil {
				t.Fatalf("w.Set(%d,%d): %v", i, j, err)
			}
			if deps[i][j] {
				if err := d.Set(i, j, true); err != nil {
					t.Fatalf("d.Set(%d,%d): %v", i, j, err)
				}
			}
		}
	}

	p, err := problem.New("conformance", "", -1, -1, w, d)
	if err != nil {
		t.Fatalf("problem.New: %v", err)
	}
	return p
}

// NoDeps returns an N x N grid with no precedence constraints.
func NoDeps(n int) [][]bool {
	d := make([][]bool, n)
	for i := range d {
		d[i] = make([]bool, n)
	}
	return d
}

// Chain3 is S1: the trivial 3-node chain whose only feasible tour is
// 0->1->2, length 2.
func Chain3(t testing.TB) *problem.Problem {
	t.Helper()

	const inf = colonymat.NoEdge
	weights := [][]int{
		{0, 1, inf},
		{inf, 0, 1},
		{inf, inf, 0},
	}
	return BuildProblem(t, weights, NoDeps(3))
}

// PrecedenceForcesOrder is S2: node 1 must precede node 2, so the only
// feasible tour is 0->1->2->3, length 3.
func PrecedenceForcesOrder(t testing.TB) *problem.Problem {
	t.Helper()

	weights := [][]int{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, -1, 0, 1},
		{1, 1, 1, 0},
	}
	deps := NoDeps(4)
	deps[2][1] = true
	return BuildProblem(t, weights, deps)
}

// InfeasibleForcing is S3: node 1 depends on node 2, but node 2 (== N-1)
// can only ever be visited last, so node 1's prerequisite can never be
// satisfied before the tour must end. The instance is structurally
// acyclic (problem.New accepts it) but every tour is runtime-infeasible.
func InfeasibleForcing(t testing.TB) *problem.Problem {
	t.Helper()

	weights := [][]int{
		{0, 1, 1},
		{1, 0, -1},
		{1, 1, 0},
	}
	deps := NoDeps(3)
	deps[1][2] = true
	return BuildProblem(t, weights, deps)
}

// Clamping is S4: initial_pheromone == max_pheromone and rho == 0, so
// every pheromone entry stays pinned at max_pheromone regardless of
// reinforcement.
func Clamping(t testing.TB) (*problem.Problem, antparams.Params) {
	t.Helper()

	p := Chain3(t)
	params := antparams.New(
		antparams.WithPheromoneBounds(0.01, 100),
		antparams.WithInitialPheromone(100),
		antparams.WithRho(0),
	)
	return p, params
}

// Evaporation is S5: q == 0 means best-tour reinforcement spreads zero,
// so every pheromone entry decays geometrically toward min_pheromone.
func Evaporation(t testing.TB) (*problem.Problem, antparams.Params) {
	t.Helper()

	p := Chain3(t)
	params := antparams.New(
		antparams.WithPheromoneBounds(0.0001, 100),
		antparams.WithInitialPheromone(1),
		antparams.WithRho(0.5),
		antparams.WithQ(0),
	)
	return p, params
}
