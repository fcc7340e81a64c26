// Package spin defines the scalar and composite types shared by the
// Hamiltonian and solvers: spin indices, energies, interactions, external
// fields, and the packed spin-configuration bitset.
//
// Every other package in this module (hamiltonian, solve, network, gate)
// imports spin rather than redeclaring these primitives, keeping the wire
// shape of a problem — an interaction list plus a field vector — in one
// place.
package spin

import (
	"errors"
	"fmt"
	"math"
)

// Energy is the scalar type used end-to-end by the engine: couplings,
// fields, and totals are all float32. Comparisons against the global
// minimum use Epsilon-scaled absolute tolerance rather than exact
// equality, since repeated incremental updates accumulate rounding error.
type Energy = float32

// Epsilon is the machine epsilon for Energy (2^-23), used as the base
// tolerance in ground-state and acceptance comparisons (spec: "within
// epsilon" throughout). EqualWithin scales it by 1+|a| before comparing.
const Epsilon Energy = 1.0 / (1 << 23)

// SpinIndex identifies a spin. Indices are dense and start at 0.
type SpinIndex = int

// Interaction is one unordered two-local coupling term (i, j, J). I and J
// need not be given in canonical order by the caller; hamiltonian.New
// (through ValidateInteractions) canonicalizes to min/max and rejects
// i == j. network.SpinNetwork stores interactions as given.
type Interaction struct {
	I, J SpinIndex
	J_   Energy // coupling strength; named J_ to avoid shadowing the field index J
}

// Field is a dense external-field vector h[i], length n.
type Field []Energy

// Sentinel errors for construction-time invariant violations (spec §7:
// all such errors are fatal, reported immediately, never retried).
var (
	// ErrShapeMismatch indicates the field length does not match the
	// number of spins inferred from the interaction list.
	ErrShapeMismatch = errors.New("spin: field length does not match inferred spin count")

	// ErrMalformedInteraction indicates a self-coupling (I == J) or a
	// duplicate unordered pair in the interaction list.
	ErrMalformedInteraction = errors.New("spin: malformed interaction")

	// ErrEmptyProblem indicates n == 0: no interactions and no field.
	ErrEmptyProblem = errors.New("spin: empty problem")

	// ErrNonFinite indicates a NaN or infinite coupling or field value was
	// supplied. The engine never produces non-finite values itself; a
	// non-finite input is treated as a bug in the caller, not a runtime
	// condition to recover from.
	ErrNonFinite = errors.New("spin: non-finite coupling or field value")
)

// EqualWithin reports whether a and b differ by less than the supplied
// tolerance, scaled by 1+|a| to stay meaningful across magnitudes (spec
// P1: "within epsilon = machine_epsilon(f32) * (1 + |sum|)").
func EqualWithin(a, b, tol Energy) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := a
	if scale < 0 {
		scale = -scale
	}
	return diff < tol*(1+scale)
}

// ValidateInteractions canonicalizes i<j for every interaction and
// rejects self-couplings and duplicate unordered pairs. It returns the
// inferred spin count n (one plus the maximum spin index referenced).
func ValidateInteractions(interactions []Interaction) (n int, err error) {
	seen := make(map[[2]SpinIndex]struct{}, len(interactions))
	for _, it := range interactions {
		if it.I == it.J {
			return 0, fmt.Errorf("%w: self-coupling at spin %d", ErrMalformedInteraction, it.I)
		}
		if math.IsNaN(float64(it.J_)) || math.IsInf(float64(it.J_), 0) {
			return 0, fmt.Errorf("%w: coupling (%d,%d)", ErrNonFinite, it.I, it.J)
		}
		lo, hi := it.I, it.J
		if lo > hi {
			lo, hi = hi, lo
		}
		key := [2]SpinIndex{lo, hi}
		if _, dup := seen[key]; dup {
			return 0, fmt.Errorf("%w: duplicate pair (%d,%d)", ErrMalformedInteraction, lo, hi)
		}
		seen[key] = struct{}{}
		if hi+1 > n {
			n = hi + 1
		}
	}

	return n, nil
}
