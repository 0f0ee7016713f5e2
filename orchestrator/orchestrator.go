package orchestrator

import (
	"context"

	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/profiler"
)

// Result summarizes one Run.
type Result struct {
	BestRouteLength int
}

// Run times and executes a full prepare-then-optimize pass: Prepare once,
// then Optimize for the full round budget, timed under the "prep" and
// "optr" profiler ids respectively (spec.md §6's human report depends on
// both existing). Per-phase (opts/adva/eval/upda) timing is the engine's
// own responsibility, since only it knows its internal phase boundaries.
func Run(ctx context.Context, engine colony.Engine, rounds uint, prof *profiler.Profiler) (Result, error) {
	if prof == nil {
		prof = &profiler.Profiler{}
	}

	prof.Start("prep")
	err := engine.Prepare(ctx)
	prof.Stop("prep")
	if err != nil {
		return Result{}, err
	}

	prof.Start("optr")
	err = engine.Optimize(ctx, rounds)
	prof.Stop("optr")
	if err != nil {
		return Result{}, err
	}

	return Result{BestRouteLength: engine.BestRouteLength()}, nil
}
