package colony

import (
	"context"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
)

// Engine is the contract every colony back-end implements (spec.md §4.1).
// Prepare must be called exactly once before Optimize; Optimize may be
// called repeatedly, each call running the requested number of additional
// rounds and refining the best tour found so far. BestRouteLength reports
// the best route length seen across every Optimize call so far, or the
// int-max sentinel if no ant has ever completed a tour (an infeasible
// instance, spec.md §7).
type Engine interface {
	// Prepare computes whatever state depends only on the problem and
	// parameters: pheromone/visibility matrices, eligibility prototypes,
	// per-ant RNG streams.
	Prepare(ctx context.Context) error

	// Optimize runs rounds additional rounds of advance/evaluate/update.
	// Returns ErrNotPrepared if Prepare has not been called.
	Optimize(ctx context.Context, rounds uint) error

	// BestRouteLength returns the best route length found so far.
	BestRouteLength() int
}

// Factory constructs an Engine bound to a specific problem and parameter
// set, sharing prof so the orchestrator's prep/optr timings and the
// engine's own opts/adva/eval/upda timings land in one Profiler. prof may
// be nil. Concrete colony packages register a Factory under a name via the
// registry package.
type Factory func(prob *problem.Problem, params antparams.Params, prof *profiler.Profiler) (Engine, error)
