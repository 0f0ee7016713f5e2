package antparams

// Params holds the ACO scalars and seed driving a single colony run
// (spec.md §3). The zero value is not meaningful; use New with Option
// overrides, or DefaultParams for the reference tool's defaults
// (original_source/src/main.cpp lines 101-111).
type Params struct {
	// Alpha is the pheromone exponent applied to τ in edge_value (§4.1.1).
	Alpha float64

	// Beta is the visibility exponent baked into η at prepare time.
	Beta float64

	// Q scales the per-round reinforcement spread S = Q / best_length.
	Q float64

	// Rho is the evaporation rate, required in [0,1].
	Rho float64

	// InitialPheromone seeds every τ[i][j] at prepare time.
	InitialPheromone float64

	// MinPheromone and MaxPheromone bound the MAX-MIN clamp (§4.1.3 step 3).
	MinPheromone float64
	MaxPheromone float64

	// ZeroWeight floors the denominator of visibility = (1/max(ZeroWeight,w))^Beta.
	ZeroWeight float64

	// RandomSeed seeds the host PRNG that derives one MINSTD stream per ant.
	RandomSeed uint32

	// VariantArgs is opaque to the core; forwarded verbatim to the selected
	// colony variant (spec.md §6, "name[:args]").
	VariantArgs string
}

// Option mutates a Params under construction.
type Option func(*Params)

// WithAlpha overrides Alpha.
func WithAlpha(v float64) Option { return func(p *Params) { p.Alpha = v } }

// WithBeta overrides Beta.
func WithBeta(v float64) Option { return func(p *Params) { p.Beta = v } }

// WithQ overrides Q.
func WithQ(v float64) Option { return func(p *Params) { p.Q = v } }

// WithRho overrides Rho.
func WithRho(v float64) Option { return func(p *Params) { p.Rho = v } }

// WithInitialPheromone overrides InitialPheromone.
func WithInitialPheromone(v float64) Option { return func(p *Params) { p.InitialPheromone = v } }

// WithPheromoneBounds overrides MinPheromone and MaxPheromone together.
func WithPheromoneBounds(min, max float64) Option {
	return func(p *Params) { p.MinPheromone, p.MaxPheromone = min, max }
}

// WithZeroWeight overrides ZeroWeight.
func WithZeroWeight(v float64) Option { return func(p *Params) { p.ZeroWeight = v } }

// WithRandomSeed overrides RandomSeed.
func WithRandomSeed(v uint32) Option { return func(p *Params) { p.RandomSeed = v } }

// WithVariantArgs overrides VariantArgs.
func WithVariantArgs(v string) Option { return func(p *Params) { p.VariantArgs = v } }

// DefaultParams returns the reference tool's defaults
// (original_source/src/main.cpp): Alpha=0.5, Beta=0.5, Q=100, Rho=0.5,
// InitialPheromone=1, MinPheromone=0.01, MaxPheromone=100, ZeroWeight=0.001.
func DefaultParams() Params {
	return Params{
		Alpha:            0.5,
		Beta:             0.5,
		Q:                100,
		Rho:              0.5,
		InitialPheromone: 1,
		MinPheromone:     0.01,
		MaxPheromone:     100,
		ZeroWeight:       0.001,
	}
}

// New builds Params from DefaultParams with the given overrides applied.
func New(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Validate checks domain constraints that must hold before Prepare runs
// (spec.md §7, ConfigError). It returns the first violated sentinel.
func (p Params) Validate() error {
	if p.Rho < 0 || p.Rho > 1 {
		return ErrRhoOutOfRange
	}
	if p.MinPheromone > p.MaxPheromone {
		return ErrPheromoneBoundsInverted
	}
	if p.InitialPheromone < p.MinPheromone || p.InitialPheromone > p.MaxPheromone {
		return ErrInitialPheromoneOutOfBounds
	}
	if p.ZeroWeight <= 0 {
		return ErrNonPositiveZeroWeight
	}
	if p.Q < 0 {
		return ErrNonPositiveQ
	}

	return nil
}
