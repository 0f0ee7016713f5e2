package colonymat_test

import (
	"testing"

	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/stretchr/testify/require"
)

func TestDense_InvalidDimension(t *testing.T) {
	t.Parallel()

	_, err := colonymat.NewDense(0, 1)
	require.ErrorIs(t, err, colonymat.ErrInvalidDimension)

	_, err = colonymat.NewDense(-3, 1)
	require.ErrorIs(t, err, colonymat.ErrInvalidDimension)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m, err := colonymat.NewDense(3, 1.5)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	require.NoError(t, m.Set(0, 0, 9))
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, colonymat.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, colonymat.ErrIndexOutOfBounds)
}

func TestDense_EvaporateAndClamp(t *testing.T) {
	t.Parallel()

	m, err := colonymat.NewDense(2, 10)
	require.NoError(t, err)

	m.EvaporateAll(0.5)
	v, _ := m.At(0, 0)
	require.InDelta(t, 5.0, v, 1e-12)

	m.ClampAll(6, 100)
	v, _ = m.At(0, 0)
	require.Equal(t, 6.0, v)

	require.NoError(t, m.Add(1, 1, 2))
	v, _ = m.At(1, 1)
	require.InDelta(t, 8.0, v, 1e-12)
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	m, _ := colonymat.NewDense(2, 1)
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 99))

	orig, _ := m.At(0, 0)
	cloned, _ := cl.At(0, 0)
	require.Equal(t, 1.0, orig)
	require.Equal(t, 99.0, cloned)
}

func TestIntDense_RouteLength(t *testing.T) {
	t.Parallel()

	m, err := colonymat.NewIntDense(3, 0)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))
	require.NoError(t, m.Set(1, 2, 7))

	require.Equal(t, 12, m.RouteLength([]int{0, 1, 2}))
	require.Equal(t, 0, m.RouteLength([]int{0}))
}

func TestIntDense_RouteLength_NoEdge(t *testing.T) {
	t.Parallel()

	m, err := colonymat.NewIntDense(2, colonymat.NoEdge)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0))

	require.Equal(t, colonymat.NoEdge, m.RouteLength([]int{0, 1}))
}

func TestBoolDense_AtSet(t *testing.T) {
	t.Parallel()

	m, err := colonymat.NewBoolDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, true))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.True(t, v)

	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.False(t, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, colonymat.ErrIndexOutOfBounds)
}
