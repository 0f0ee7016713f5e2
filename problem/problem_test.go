package problem_test

import (
	"testing"

	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/stretchr/testify/require"
)

// chain3 builds the trivial 3-node chain from spec.md scenario S1:
// weights [[0,1,inf],[inf,0,1],[inf,inf,0]], no precedences.
func chain3(t *testing.T) (*colonymat.IntDense, *colonymat.BoolDense) {
	t.Helper()

	w, err := colonymat.NewIntDense(3, colonymat.NoEdge)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 0, 0))
	require.NoError(t, w.Set(1, 1, 0))
	require.NoError(t, w.Set(2, 2, 0))
	require.NoError(t, w.Set(0, 1, 1))
	require.NoError(t, w.Set(1, 2, 1))

	d, err := colonymat.NewBoolDense(3)
	require.NoError(t, err)

	return w, d
}

func TestNew_ValidChain(t *testing.T) {
	t.Parallel()

	w, d := chain3(t)
	p, err := problem.New("chain", "", -1, -1, w, d)
	require.NoError(t, err)
	require.Equal(t, 3, p.N())
}

func TestNew_TooSmall(t *testing.T) {
	t.Parallel()

	w, err := colonymat.NewIntDense(1, 0)
	require.NoError(t, err)
	d, err := colonymat.NewBoolDense(1)
	require.NoError(t, err)

	_, err = problem.New("tiny", "", -1, -1, w, d)
	require.ErrorIs(t, err, problem.ErrTooSmall)
}

func TestNew_DimensionMismatch(t *testing.T) {
	t.Parallel()

	w, err := colonymat.NewIntDense(3, 0)
	require.NoError(t, err)
	d, err := colonymat.NewBoolDense(4)
	require.NoError(t, err)

	_, err = problem.New("bad", "", -1, -1, w, d)
	require.ErrorIs(t, err, problem.ErrDimensionMismatch)
}

func TestNew_InconsistentWeights(t *testing.T) {
	t.Parallel()

	w, d := chain3(t)
	// Mark a dependency without the matching -1 weight sentinel.
	require.NoError(t, d.Set(2, 0, true))

	_, err := problem.New("bad", "", -1, -1, w, d)
	require.ErrorIs(t, err, problem.ErrInconsistentWeights)
}

func TestNew_CyclicDependency(t *testing.T) {
	t.Parallel()

	w, err := colonymat.NewIntDense(3, colonymat.NoEdge)
	require.NoError(t, err)
	d, err := colonymat.NewBoolDense(3)
	require.NoError(t, err)

	// 0 depends on 1, 1 depends on 0: a genuine structural cycle.
	require.NoError(t, w.Set(0, 1, -1))
	require.NoError(t, d.Set(0, 1, true))
	require.NoError(t, w.Set(1, 0, -1))
	require.NoError(t, d.Set(1, 0, true))

	_, err = problem.New("cyclic", "", -1, -1, w, d)
	require.ErrorIs(t, err, problem.ErrCyclicDependency)
}

// TestNew_PrecedenceAcyclicButPracticallyInfeasible covers scenario S3's
// intent (spec.md §8): a precedence relation that is structurally acyclic
// (so it loads fine) but forces node N-1 to both precede and follow node 0,
// making every tour infeasible at runtime rather than at load time.
func TestNew_PrecedenceAcyclicButPracticallyInfeasible(t *testing.T) {
	t.Parallel()

	w, err := colonymat.NewIntDense(3, colonymat.NoEdge)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Set(i, i, 0))
	}
	d, err := colonymat.NewBoolDense(3)
	require.NoError(t, err)

	// node 2 (== N-1, forced last) must precede node 0 (forced first).
	require.NoError(t, w.Set(0, 2, -1))
	require.NoError(t, d.Set(0, 2, true))

	p, err := problem.New("paradox", "", -1, -1, w, d)
	require.NoError(t, err)
	require.Equal(t, 3, p.N())
}
