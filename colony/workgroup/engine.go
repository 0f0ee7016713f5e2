package workgroup

import (
	"context"
	"math"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/backend"
	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/eligibility"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/rng"
)

// VariantName is the registry name for this engine.
const VariantName = "workgroup"

// defaultWordBits controls the bitmask word width (32 or 64) used when the
// "wordbits" variant argument (see register.go's parseWordBits) is absent,
// mirroring samplemask.hpp's forceInt32Bitmasks toggle.
const defaultWordBits = 64

type ant struct {
	currentNode int
	mask        *eligibility.AntMask
	route       []int
	routeLength int
	rng         *rng.MINSTD
}

// Engine is the work-group colony.Engine implementation: per-round, every
// ant's tour is advanced concurrently on backend.Dispatch, then the
// evaluate/update phases run sequentially so results are reproducible
// regardless of goroutine scheduling order (spec.md §8 invariant 4).
type Engine struct {
	prob   *problem.Problem
	params antparams.Params
	prof   *profiler.Profiler
	dev    backend.Device

	wordBits int

	pheromone  *colonymat.Dense
	visibility *colonymat.Dense
	proto      *eligibility.BitMask
	hostRNG    *rng.MINSTD

	ants []ant

	prepared        bool
	bestRouteLength int
	bestRoute       []int
}

// New constructs a work-group Engine. dev selects where advance work is
// dispatched; wordBits, if zero, defaults to 64.
func New(prob *problem.Problem, params antparams.Params, dev backend.Device, wordBits int, prof *profiler.Profiler) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, &colony.ConfigError{Field: "params", Err: err}
	}
	if wordBits == 0 {
		wordBits = defaultWordBits
	}
	if prof == nil {
		prof = &profiler.Profiler{}
	}
	return &Engine{
		prob:            prob,
		params:          params,
		prof:            prof,
		dev:             dev,
		wordBits:        wordBits,
		bestRouteLength: colonymat.NoEdge,
	}, nil
}

// Prepare computes the pheromone/visibility matrices, the dependency
// bitmask (orientation swap=true: row i holds i's required predecessors),
// and per-ant RNG streams.
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

	proto, err := eligibility.Build(e.prob.Dependencies, e.wordBits, true)
	if err != nil {
		return err
	}

	e.pheromone = pheromone
	e.visibility = visibility
	e.proto = proto
	e.hostRNG = rng.NewMINSTD(e.params.RandomSeed)

	e.ants = make([]ant, n)
	for i := range e.ants {
		e.ants[i].mask = eligibility.NewAntMask(proto)
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

		err := backend.Dispatch(ctx, e.dev, len(e.ants), func(_ context.Context, i int) error {
			e.advanceOneAnt(&e.ants[i], n)
			return nil
		})
		if err != nil {
			e.prof.Stop("adva")
			e.prof.Stop("opts")
			return err
		}
		e.prof.Stop("adva")

		e.prof.Start("eval")
		bestIdx := -1
		for i := range e.ants {
			a := &e.ants[i]
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

// BestRoute returns the node sequence of the best tour found so far.
func (e *Engine) BestRoute() []int { return e.bestRoute }

// Pheromone exposes the pheromone matrix for inspection.
func (e *Engine) Pheromone() *colonymat.Dense { return e.pheromone }

func (e *Engine) edgeValue(from, to int) float64 {
	pher, _ := e.pheromone.At(from, to)
	vis, _ := e.visibility.At(from, to)
	return math.Pow(pher, e.params.Alpha) * vis
}

// advanceOneAnt builds a's entire tour for the round. Each ant only reads
// the shared, unmodified pheromone/visibility matrices and its own RNG
// stream, so this is safe to call concurrently across ants.
func (e *Engine) advanceOneAnt(a *ant, n int) {
	a.mask.Reset()
	a.mask.MarkVisited(0)
	a.currentNode = 0
	a.route = append(a.route[:0], 0)
	a.routeLength = 0

	nextVals := make([]float64, n)
	for step := 0; step < n-1; step++ {
		var sum float64
		hasPossible := false
		for next := 0; next < n; next++ {
			if !a.mask.Eligible(next) {
				nextVals[next] = 0
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
		a.mask.MarkVisited(nextNode)
	}
}
