package registry_test

import (
	"testing"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/registry"
	"github.com/stretchr/testify/require"
)

func stubFactory(_ *problem.Problem, _ antparams.Params, _ *profiler.Profiler) (colony.Engine, error) {
	return nil, nil
}

func TestRegisterAndLookup(t *testing.T) {
	registry.Register("test-variant-a", "", stubFactory)

	f, err := registry.Lookup("test-variant-a")
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := registry.Lookup("test-variant-does-not-exist")
	require.Error(t, err)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	registry.Register("test-variant-b", "", stubFactory)
	require.Panics(t, func() {
		registry.Register("test-variant-b", "", stubFactory)
	})
}

func TestList_IncludesRegistered(t *testing.T) {
	registry.Register("test-variant-c", "depth=int", stubFactory)

	names := registry.List()
	require.Contains(t, names, "test-variant-c (depth=int)")
}
