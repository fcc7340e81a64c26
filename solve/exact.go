package solve

import (
	"fmt"
	"math/bits"

	"github.com/ernst-sim/ernst/hamiltonian"
	"github.com/ernst-sim/ernst/spin"
)

// Result pairs a ground-state configuration with its energy.
type Result struct {
	State  spin.CompactState
	Energy spin.Energy
}

// ExactOption configures FindAllGroundStates.
type ExactOption func(*exactConfig)

type exactConfig struct {
	maxN int
}

// WithMaxExactN overrides the default MaxExactN ceiling. Use sparingly —
// it exists to guard runaway enumeration, not to be routinely raised.
func WithMaxExactN(n int) ExactOption {
	return func(c *exactConfig) { c.maxN = n }
}

// FindAllGroundStates performs an exhaustive search over every spin
// configuration via Gray-code enumeration and returns every state that
// attains the minimum energy, in the order first discovered.
//
// Gray-code enumeration visits all 2^n configurations via a single-bit
// flip between successive states, so the Hamiltonian's incremental Flip
// keeps each step O(n log n) instead of recomputing energy from scratch —
// the same "touch only what changed" discipline tsp.TSPExact's DP table
// applies to tour costs.
//
// Complexity: O(2^n * n log n) time, O(n^2) memory for the Hamiltonian
// plus the result set.
func FindAllGroundStates(interactions []spin.Interaction, field spin.Field, opts ...ExactOption) ([]Result, error) {
	cfg := exactConfig{maxN: MaxExactN}
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := hamiltonian.New(interactions, field, nil)
	if err != nil {
		return nil, err
	}
	n := h.N()
	if n > cfg.maxN {
		return nil, fmt.Errorf("%w: n=%d exceeds limit %d", ErrProblemTooLarge, n, cfg.maxN)
	}

	best := h.CurrentEnergy()
	results := []Result{{State: h.Spins().Clone(), Energy: best}}

	total := uint64(1) << uint(n)
	for k := uint64(1); k < total; k++ {
		bit := bits.TrailingZeros64(k)
		h.Flip(bit)
		e := h.CurrentEnergy()

		switch {
		case e < best && !spin.EqualWithin(e, best, spin.Epsilon):
			best = e
			results = results[:0]
			results = append(results, Result{State: h.Spins().Clone(), Energy: e})
		case spin.EqualWithin(e, best, spin.Epsilon):
			results = append(results, Result{State: h.Spins().Clone(), Energy: e})
		}
	}

	return results, nil
}
