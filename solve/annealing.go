package solve

import (
	"math"
	"math/rand"

	"github.com/ernst-sim/ernst/hamiltonian"
	"github.com/ernst-sim/ernst/spin"
)

// AnnealingConfig controls the simulated-annealing sampler. Zero value is
// not meaningful; use DefaultAnnealingConfig or NewAnnealingConfig.
type AnnealingConfig struct {
	InitialTemperature float64
	FinalTemperature   float64
	Sweeps             int
	Seed               int64
	Trace              bool
	ExpectUnique       bool
}

// DefaultAnnealingConfig mirrors the reference implementation's defaults:
// a slow cool from room temperature down to near absolute zero over a
// thousand sweeps, with a fixed seed for reproducibility.
func DefaultAnnealingConfig() AnnealingConfig {
	return AnnealingConfig{
		InitialTemperature: 273.15,
		FinalTemperature:   0.015,
		Sweeps:             1000,
		Seed:               42,
		Trace:              false,
	}
}

// AnnealingOption adjusts an AnnealingConfig away from its defaults,
// following the functional-options idiom this module uses throughout
// (builder.BuilderOption's pattern, generalized here to a plain struct).
type AnnealingOption func(*AnnealingConfig)

// WithTemperatures overrides the initial and final temperatures.
func WithTemperatures(initial, final float64) AnnealingOption {
	return func(c *AnnealingConfig) {
		c.InitialTemperature = initial
		c.FinalTemperature = final
	}
}

// WithSweeps overrides the sweep count.
func WithSweeps(sweeps int) AnnealingOption {
	return func(c *AnnealingConfig) { c.Sweeps = sweeps }
}

// WithSeed overrides the PRNG seed.
func WithSeed(seed int64) AnnealingOption {
	return func(c *AnnealingConfig) { c.Seed = seed }
}

// WithTrace keeps every epoch at which a new distinct ground state was
// recorded, instead of trimming history down to the final result set.
func WithTrace(trace bool) AnnealingOption {
	return func(c *AnnealingConfig) { c.Trace = trace }
}

// WithExpectUnique makes SimulatedAnnealing return ErrSolverContract when
// more than one distinct lowest-energy state was observed.
func WithExpectUnique(expect bool) AnnealingOption {
	return func(c *AnnealingConfig) { c.ExpectUnique = expect }
}

// NewAnnealingConfig builds a config from DefaultAnnealingConfig plus any
// number of AnnealingOptions.
func NewAnnealingConfig(opts ...AnnealingOption) AnnealingConfig {
	cfg := DefaultAnnealingConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// AnnealingResult is one distinct lowest-energy state discovered during
// the run, in the order it was first recorded, along with the sweep
// index ("epoch") at which it first appeared.
type AnnealingResult struct {
	State  spin.CompactState
	Energy spin.Energy
	Epoch  int
}

// SimulatedAnnealing samples the Hamiltonian's state space via a
// Metropolis random walk under a geometric cooling schedule, recording
// every distinct state that matches the best energy seen so far.
//
// Each sweep draws exactly two random numbers, in a fixed order: a spin
// index to propose flipping, then an acceptance threshold — regardless
// of whether the proposal turns out to be energy-improving. Fixing that
// draw order (rather than skipping the second draw on an always-accepted
// downhill move) is what makes a given seed reproduce a given trajectory
// bit-for-bit, mirroring the reference sampler's discipline.
//
// Complexity: O(sweeps * n log n) time (Hamiltonian.Flip is O(n log n)
// and a sweep considers reverting one flip), O(k) memory for k distinct recorded
// ground states.
func SimulatedAnnealing(interactions []spin.Interaction, field spin.Field, cfg AnnealingConfig) ([]AnnealingResult, error) {
	h, err := hamiltonian.New(interactions, field, nil)
	if err != nil {
		return nil, err
	}
	n := h.N()

	rng := rand.New(rand.NewSource(cfg.Seed))
	coolingRate := math.Pow(cfg.FinalTemperature/cfg.InitialTemperature, 1/float64(cfg.Sweeps))
	temperature := cfg.InitialTemperature

	best := h.CurrentEnergy()
	seen := map[string]int{}
	var results []AnnealingResult

	record := func(epoch int) {
		key := h.Spins().Bytes()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = len(results)
		results = append(results, AnnealingResult{State: h.Spins().Clone(), Energy: h.CurrentEnergy(), Epoch: epoch})
	}
	record(0)

	// Runs Sweeps-1 proposals, not Sweeps: the reference sampler loops
	// `for sweep in 1..config.sweeps`, an exclusive upper bound despite the
	// field's name. Preserved here for bit-compatible trajectories.
	for sweep := 1; sweep < cfg.Sweeps; sweep++ {
		proposed := rng.Intn(n)
		acceptanceDraw := rng.Float64()

		before := h.CurrentEnergy()
		h.Flip(proposed)
		after := h.CurrentEnergy()
		delta := after - before

		accept := delta <= spin.Epsilon
		if !accept {
			threshold := math.Exp(-float64(delta) / temperature)
			accept = acceptanceDraw < threshold
		}
		if !accept {
			h.Flip(proposed) // revert
		} else if after < best {
			best = after
		}

		if spin.EqualWithin(h.CurrentEnergy(), best, spin.Epsilon) {
			record(sweep)
		}

		temperature *= coolingRate
	}

	if !cfg.Trace {
		results = trimToBest(results, best)
	}

	if cfg.ExpectUnique && len(results) > 1 {
		return results, ErrSolverContract
	}

	return results, nil
}

// trimToBest drops any recorded result whose energy is not within
// tolerance of the final best energy — the reference sampler keeps only
// the tail of "ground_state_update_time" once tracing is off, discarding
// intermediate local optima visited before the walk found its true best.
func trimToBest(results []AnnealingResult, best spin.Energy) []AnnealingResult {
	out := results[:0]
	for _, r := range results {
		if spin.EqualWithin(r.Energy, best, spin.Epsilon) {
			out = append(out, r)
		}
	}
	return out
}
