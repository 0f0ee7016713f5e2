package antparams_test

import (
	"testing"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, antparams.DefaultParams().Validate())
}

func TestNew_AppliesOverrides(t *testing.T) {
	t.Parallel()

	p := antparams.New(
		antparams.WithAlpha(1.5),
		antparams.WithRho(0.2),
		antparams.WithRandomSeed(99),
		antparams.WithVariantArgs("foo=1"),
	)
	require.Equal(t, 1.5, p.Alpha)
	require.Equal(t, 0.2, p.Rho)
	require.Equal(t, uint32(99), p.RandomSeed)
	require.Equal(t, "foo=1", p.VariantArgs)
	require.NoError(t, p.Validate())
}

func TestValidate_RhoOutOfRange(t *testing.T) {
	t.Parallel()

	p := antparams.New(antparams.WithRho(1.5))
	require.ErrorIs(t, p.Validate(), antparams.ErrRhoOutOfRange)

	p = antparams.New(antparams.WithRho(-0.1))
	require.ErrorIs(t, p.Validate(), antparams.ErrRhoOutOfRange)
}

func TestValidate_PheromoneBoundsInverted(t *testing.T) {
	t.Parallel()

	p := antparams.New(antparams.WithPheromoneBounds(10, 1))
	require.ErrorIs(t, p.Validate(), antparams.ErrPheromoneBoundsInverted)
}

func TestValidate_InitialPheromoneOutOfBounds(t *testing.T) {
	t.Parallel()

	p := antparams.New(
		antparams.WithPheromoneBounds(1, 2),
		antparams.WithInitialPheromone(5),
	)
	require.ErrorIs(t, p.Validate(), antparams.ErrInitialPheromoneOutOfBounds)
}

func TestValidate_NonPositiveZeroWeight(t *testing.T) {
	t.Parallel()

	p := antparams.New(antparams.WithZeroWeight(0))
	require.ErrorIs(t, p.Validate(), antparams.ErrNonPositiveZeroWeight)
}

func TestValidate_NonPositiveQ(t *testing.T) {
	t.Parallel()

	p := antparams.New(antparams.WithQ(-1))
	require.ErrorIs(t, p.Validate(), antparams.ErrNonPositiveQ)
}
