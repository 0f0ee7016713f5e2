package sequential

import (
	"context"
	"math"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/eligibility"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/rng"
)

// VariantName is the registry name for this engine.
const VariantName = "sequential"

// ant holds one colony member's per-round working state.
type ant struct {
	currentNode int
	allowed     []int32
	route       []int
	routeLength int
	rng         *rng.MINSTD
}

// Engine is the sequential colony.Engine implementation.
type Engine struct {
	prob   *problem.Problem
	params antparams.Params
	prof   *profiler.Profiler

	pheromone  *colonymat.Dense
	visibility *colonymat.Dense
	prototype  *eligibility.Prototype
	hostRNG    *rng.MINSTD

	ants []ant

	prepared        bool
	bestRouteLength int
	bestRoute       []int
}

// New constructs a sequential Engine bound to prob and params. prof may be
// nil, in which case phase timings are discarded.
func New(prob *problem.Problem, params antparams.Params, prof *profiler.Profiler) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, &colony.ConfigError{Field: "params", Err: err}
	}
	if prof == nil {
		prof = &profiler.Profiler{}
	}
	return &Engine{
		prob:            prob,
		params:          params,
		prof:            prof,
		bestRouteLength: colonymat.NoEdge,
	}, nil
}

// Prepare computes the pheromone/visibility matrices, the eligibility
// prototype, and the per-ant RNG streams (spec.md §4.1, §4.2).
func (e *Engine) Prepare(_ context.Context) error {
	n := e.prob.N()

	pheromone, err := colonymat.NewDense(n, e.params.InitialPheromone)
	if err != nil {
		return err
	}
	visibility, err := colonymat.NewDense(n, 0)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := e.prob.Weights.At(i, j)
			v := 1.0 / math.Max(e.params.ZeroWeight, float64(w))
			_ = visibility.Set(i, j, math.Pow(v, e.params.Beta))
		}
	}

	e.pheromone = pheromone
	e.visibility = visibility
	e.prototype = eligibility.BuildPrototype(e.prob.Dependencies)
	e.hostRNG = rng.NewMINSTD(e.params.RandomSeed)

	e.ants = make([]ant, n)
	for i := range e.ants {
		e.ants[i].rng = rng.NewMINSTD(e.hostRNG.Next())
	}

	e.prepared = true
	return nil
}

// Optimize runs rounds additional advance/evaluate/update cycles.
func (e *Engine) Optimize(ctx context.Context, rounds uint) error {
	if !e.prepared {
		return colony.ErrNotPrepared
	}

	n := e.prob.N()

	for r := uint(0); r < rounds; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.prof.Start("opts")
		e.prof.Start("adva")

		bestIdx := -1
		for i := range e.ants {
			a := &e.ants[i]
			a.allowed = e.prototype.Clone()
			a.currentNode = 0
			a.route = append(a.route[:0], 0)
			a.routeLength = 0

			for step := 0; step < n-1; step++ {
				e.advanceAnt(a)
				if a.currentNode < 0 {
					break
				}
			}

			if a.currentNode != n-1 {
				continue
			}

			a.routeLength = e.prob.Weights.RouteLength(a.route)
			if a.routeLength < e.bestRouteLength {
				e.bestRouteLength = a.routeLength
				e.bestRoute = append(e.bestRoute[:0], a.route...)
			}
			if bestIdx == -1 || e.ants[bestIdx].routeLength > a.routeLength {
				bestIdx = i
			}
		}
		e.prof.Stop("adva")

		e.prof.Start("eval")
		e.prof.Stop("eval")

		e.prof.Start("upda")
		e.pheromone.EvaporateAll(e.params.Rho)

		if bestIdx != -1 {
			best := e.ants[bestIdx]
			spread := e.params.Q / float64(best.routeLength)
			for k := 1; k < len(best.route); k++ {
				_ = e.pheromone.Add(best.route[k-1], best.route[k], spread)
			}
		}

		e.pheromone.ClampAll(e.params.MinPheromone, e.params.MaxPheromone)
		e.prof.Stop("upda")

		e.prof.Stop("opts")
	}

	return nil
}

// BestRouteLength returns the best route length found across every
// Optimize call so far, or colonymat.NoEdge if no ant has ever finished.
func (e *Engine) BestRouteLength() int { return e.bestRouteLength }

// BestRoute returns the node sequence of the best tour found so far, or nil
// if no ant has ever finished.
func (e *Engine) BestRoute() []int { return e.bestRoute }

// Pheromone exposes the pheromone matrix for inspection (tests, reporting
// hooks). Callers must not mutate it outside of Optimize.
func (e *Engine) Pheromone() *colonymat.Dense { return e.pheromone }

// Visibility exposes the precomputed visibility matrix for inspection.
func (e *Engine) Visibility() *colonymat.Dense { return e.visibility }

func (e *Engine) edgeValue(from, to int) float64 {
	pher, _ := e.pheromone.At(from, to)
	vis, _ := e.visibility.At(from, to)
	return math.Pow(pher, e.params.Alpha) * vis
}

// advanceAnt performs one tour-construction step for a (spec.md §4.1.1):
// weigh every still-eligible node by pheromone^alpha * visibility, then
// sample the next node via inverse-CDF over that weight distribution.
func (e *Engine) advanceAnt(a *ant) {
	if a.currentNode < 0 {
		return
	}

	n := e.prob.N()
	nextVals := make([]float64, n)
	var sum float64
	hasPossible := false

	for next := 0; next < n; next++ {
		if !eligibility.Eligible(a.allowed, next) {
			continue
		}
		val := e.edgeValue(a.currentNode, next)
		nextVals[next] = val
		sum += val
		if val > 0 {
			hasPossible = true
		}
	}

	if !hasPossible {
		a.currentNode = -1
		return
	}

	nextNode := -1
	rd := a.rng.Float64() * sum
	for i, v := range nextVals {
		rd -= v
		if rd < 0 {
			nextNode = i
			break
		}
	}

	if nextNode == -1 {
		a.currentNode = -1
		return
	}

	a.currentNode = nextNode
	a.route = append(a.route, nextNode)
	eligibility.MarkVisited(a.allowed, e.prob.Dependencies, nextNode)
}
