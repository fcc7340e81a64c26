// Package hamiltonian implements the incremental two-local Ising energy
// engine: H(sigma) = -sum_{i<j} J_ij*sigma_i*sigma_j - sum_i h_i*sigma_i.
//
// A TwoLocalHamiltonian is built once from an interaction list and a
// field, mutated exclusively through Flip, and queried through
// CurrentEnergy. Both the linearized interaction array and the field
// vector are backed by Fenwick trees (spin/fenwick) so that Flip touches
// only the O(n) entries a single spin participates in, and CurrentEnergy
// reads the running total in O(log n) rather than re-summing from
// scratch.
package hamiltonian

import (
	"fmt"

	"github.com/ernst-sim/ernst/spin"
	"github.com/ernst-sim/ernst/spin/fenwick"
)

// TwoLocalHamiltonian owns the packed spin state, the linearized
// upper-triangular interaction array, and the two Fenwick trees that
// track the running interaction and field energies.
//
// Ownership & concurrency: a TwoLocalHamiltonian has exclusive ownership
// of its state; it is not safe to mutate from more than one goroutine,
// and this package makes no attempt to do so (spec: single-threaded,
// synchronous engine, no scheduling model). Use Clone for a snapshot
// that is safe to retain past the next Flip.
type TwoLocalHamiltonian struct {
	n              int
	spins          spin.CompactState
	linearized     []spin.Energy // J_ij * sigma_i * sigma_j, indexed by index(i,j,n)
	field          spin.Field
	interactionSum *fenwick.PrefixSumArray
	fieldSum       *fenwick.PrefixSumArray
}

// index maps a canonical pair i<j to its position in the linearized
// upper-triangular array (spec §3): i*(2n-i-1)/2 + (j-i-1).
func index(i, j, n int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// New constructs a TwoLocalHamiltonian from an interaction list, a field,
// and an optional initial state (nil means all spins down).
//
// n is derived from the interactions' maximum spin index, except when
// interactions is empty, in which case n is taken from len(field) (spec
// §4.4: "empty interaction list with non-empty field is valid"). Either
// way len(field) must equal the resolved n, and n must be nonzero.
//
// Complexity: O(n^2) to build the linearized array and its two Fenwick
// trees (the reference algorithm's cost; nothing cheaper exists while
// laying out the full upper-triangular store up front).
func New(interactions []spin.Interaction, field spin.Field, initial []bool) (*TwoLocalHamiltonian, error) {
	n, err := spin.ValidateInteractions(interactions)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = len(field)
	}
	if n == 0 {
		return nil, spin.ErrEmptyProblem
	}
	if len(field) != n {
		return nil, fmt.Errorf("%w: field has %d entries, want %d", spin.ErrShapeMismatch, len(field), n)
	}
	for _, h := range field {
		if err := checkFinite(h); err != nil {
			return nil, err
		}
	}

	spins := spin.NewCompactState(n)
	if initial != nil {
		if len(initial) != n {
			return nil, fmt.Errorf("%w: initial state has %d entries, want %d", spin.ErrShapeMismatch, len(initial), n)
		}
		for i, v := range initial {
			if v {
				spins.Set(i, true)
			}
		}
	}

	fieldContribution := make([]spin.Energy, n)
	for i := 0; i < n; i++ {
		fieldContribution[i] = spins.Sign(i) * field[i]
	}

	linearized := make([]spin.Energy, n*(n-1)/2)
	for _, it := range interactions {
		lo, hi := it.I, it.J
		if lo > hi {
			lo, hi = hi, lo
		}
		linearized[index(lo, hi, n)] = it.J_ * spins.Sign(it.I) * spins.Sign(it.J)
	}

	h := &TwoLocalHamiltonian{
		n:              n,
		spins:          spins,
		linearized:     linearized,
		field:          append(spin.Field(nil), field...),
		interactionSum: fenwick.NewFromSlice(linearized),
		fieldSum:       fenwick.NewFromSlice(fieldContribution),
	}

	return h, nil
}

func checkFinite(v spin.Energy) error {
	f := float64(v)
	if f != f || f > maxFloat64 || f < -maxFloat64 {
		return spin.ErrNonFinite
	}
	return nil
}

const maxFloat64 = 1.7976931348623157e+308

// N returns the number of spins.
func (h *TwoLocalHamiltonian) N() int { return h.n }

// Spins exposes the live packed state for read-only inspection (e.g. to
// build a result). Callers that need to retain a state across a future
// Flip must call Clone().
func (h *TwoLocalHamiltonian) Spins() spin.CompactState { return h.spins }

// Flip toggles spin i and incrementally updates both Fenwick trees.
//
// Complexity: O(n log n) — every other spin j shares a linearized
// interaction slot with i (most of them implicitly zero, but the loop
// still visits each once), each nonzero touch applied via an O(log n)
// Fenwick AddAt; O(log n) more for the field term.
func (h *TwoLocalHamiltonian) Flip(i spin.SpinIndex) {
	wasUp := h.spins.Contains(i)
	h.spins.Toggle(i)

	var deltaSigma spin.Energy = 2
	if wasUp {
		deltaSigma = -2
	}

	// Flipping spin i negates sigma_i and leaves every other spin alone, so
	// every stored entry J_ij*sigma_i_old*sigma_j simply flips sign: the new
	// value is -stored, a delta of -2*stored. Entries that are exactly zero
	// (no interaction between i and j) stay zero and can be skipped.
	for j := 0; j < h.n; j++ {
		if j == i {
			continue
		}
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		idx := index(lo, hi, h.n)
		stored := h.linearized[idx]
		if stored == 0 {
			continue
		}
		delta := -2 * stored
		h.linearized[idx] += delta
		h.interactionSum.AddAt(idx, delta)
	}

	h.fieldSum.AddAt(i, deltaSigma*h.field[i])
}

// CurrentEnergy returns -sum(interaction contributions) - sum(field
// contributions). The overall sign is a fixed convention of this engine
// and never changes across the lifetime of an instance.
func (h *TwoLocalHamiltonian) CurrentEnergy() spin.Energy {
	return -h.interactionSum.Total() - h.fieldSum.Total()
}

// Clone returns a deep copy: packed state, linearized array, and both
// Fenwick trees. Capturing a result (energy, state) pair from a solver
// must go through Clone — aliasing the live Hamiltonian would corrupt
// already-recorded history on the next Flip.
func (h *TwoLocalHamiltonian) Clone() *TwoLocalHamiltonian {
	linearized := append([]spin.Energy(nil), h.linearized...)
	field := append(spin.Field(nil), h.field...)

	fieldContribution := make([]spin.Energy, h.n)
	for i := 0; i < h.n; i++ {
		fieldContribution[i] = h.spins.Sign(i) * field[i]
	}

	return &TwoLocalHamiltonian{
		n:              h.n,
		spins:          h.spins.Clone(),
		linearized:     linearized,
		field:          field,
		interactionSum: fenwick.NewFromSlice(linearized),
		fieldSum:       fenwick.NewFromSlice(fieldContribution),
	}
}
