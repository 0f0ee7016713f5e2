package antparams

import "errors"

// Sentinel errors for Params.Validate. The colony engines' constructors
// surface them wrapped in a colony.ConfigError, per spec.md §7.
var (
	// ErrRhoOutOfRange indicates Rho is outside [0,1].
	ErrRhoOutOfRange = errors.New("antparams: rho must be in [0,1]")

	// ErrPheromoneBoundsInverted indicates MinPheromone > MaxPheromone.
	ErrPheromoneBoundsInverted = errors.New("antparams: min_pheromone exceeds max_pheromone")

	// ErrInitialPheromoneOutOfBounds indicates InitialPheromone is outside
	// [MinPheromone, MaxPheromone].
	ErrInitialPheromoneOutOfBounds = errors.New("antparams: initial_pheromone outside [min_pheromone, max_pheromone]")

	// ErrNonPositiveZeroWeight indicates ZeroWeight <= 0, which would allow
	// division by zero when forming visibility.
	ErrNonPositiveZeroWeight = errors.New("antparams: zero_weight must be > 0")

	// ErrNonPositiveQ indicates Q < 0. Q == 0 is valid: it means a
	// completed tour spreads zero reinforcement (S = q/best_length = 0).
	ErrNonPositiveQ = errors.New("antparams: q must be >= 0")
)
