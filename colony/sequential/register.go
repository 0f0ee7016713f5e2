package sequential

import (
	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/registry"
)

func init() {
	registry.Register(VariantName, "", func(prob *problem.Problem, params antparams.Params, prof *profiler.Profiler) (colony.Engine, error) {
		return New(prob, params, prof)
	})
}
