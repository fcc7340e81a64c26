package hamiltonian_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ernst-sim/ernst/hamiltonian"
	"github.com/ernst-sim/ernst/spin"
)

func threeSpinProblem() ([]spin.Interaction, spin.Field) {
	interactions := []spin.Interaction{
		{I: 0, J: 1, J_: -1},
		{I: 1, J: 2, J_: 2},
		{I: 0, J: 2, J_: 2},
	}
	field := spin.Field{-1, -1, -3}
	return interactions, field
}

// TestCurrentEnergy_MatchesLiteralScenario reproduces the reference
// trajectory: all-down state, then flips 0, 1, 2 in turn.
func TestCurrentEnergy_MatchesLiteralScenario(t *testing.T) {
	interactions, field := threeSpinProblem()
	h, err := hamiltonian.New(interactions, field, nil)
	require.NoError(t, err)

	require.Equal(t, spin.Energy(-8), h.CurrentEnergy())

	h.Flip(0)
	require.Equal(t, spin.Energy(-4), h.CurrentEnergy())

	h.Flip(1)
	require.Equal(t, spin.Energy(4), h.CurrentEnergy())

	h.Flip(2)
	require.Equal(t, spin.Energy(2), h.CurrentEnergy())
}

// TestNew_EmptyInteractionsWithField covers the edge case where the
// interaction list is empty but the field is not: n is taken from the
// field length rather than from any interaction.
func TestNew_EmptyInteractionsWithField(t *testing.T) {
	h, err := hamiltonian.New(nil, spin.Field{1, -1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, h.N())
	require.Equal(t, spin.Energy(-(-1 + 1 - 2)), h.CurrentEnergy())
}

// TestNew_RejectsEmptyProblem covers both interactions and field empty.
func TestNew_RejectsEmptyProblem(t *testing.T) {
	_, err := hamiltonian.New(nil, nil, nil)
	require.True(t, errors.Is(err, spin.ErrEmptyProblem))
}

// TestNew_RejectsFieldShapeMismatch covers a field whose length disagrees
// with the interactions-derived spin count.
func TestNew_RejectsFieldShapeMismatch(t *testing.T) {
	interactions, _ := threeSpinProblem()
	_, err := hamiltonian.New(interactions, spin.Field{1, 2}, nil)
	require.True(t, errors.Is(err, spin.ErrShapeMismatch))
}

func bruteForceEnergy(interactions []spin.Interaction, field spin.Field, state []bool) spin.Energy {
	sign := func(v bool) spin.Energy {
		if v {
			return 1
		}
		return -1
	}
	var interactionSum, fieldSum spin.Energy
	for _, it := range interactions {
		interactionSum += it.J_ * sign(state[it.I]) * sign(state[it.J])
	}
	for i, hv := range field {
		fieldSum += sign(state[i]) * hv
	}
	return -interactionSum - fieldSum
}

// TestFlip_MatchesBruteForceAcrossRandomWalk exercises property P1: the
// incrementally tracked energy must agree with a from-scratch recompute
// after an arbitrary sequence of flips.
func TestFlip_MatchesBruteForceAcrossRandomWalk(t *testing.T) {
	interactions := []spin.Interaction{
		{I: 0, J: 1, J_: 1.5},
		{I: 1, J: 2, J_: -0.5},
		{I: 2, J: 3, J_: 2},
		{I: 0, J: 3, J_: -1},
		{I: 1, J: 3, J_: 0.25},
	}
	field := spin.Field{0.5, -1, 2, -0.25}

	h, err := hamiltonian.New(interactions, field, nil)
	require.NoError(t, err)

	state := make([]bool, 4)
	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 200; step++ {
		i := rng.Intn(4)
		h.Flip(i)
		state[i] = !state[i]

		want := bruteForceEnergy(interactions, field, state)
		require.InDelta(t, float64(want), float64(h.CurrentEnergy()), 1e-3, "step %d", step)
	}
}

// TestFlip_IsInvolution covers property P2: flipping a spin twice returns
// the Hamiltonian to its prior energy.
func TestFlip_IsInvolution(t *testing.T) {
	interactions, field := threeSpinProblem()
	h, err := hamiltonian.New(interactions, field, nil)
	require.NoError(t, err)

	before := h.CurrentEnergy()
	h.Flip(1)
	h.Flip(1)
	require.Equal(t, before, h.CurrentEnergy())
}

// TestClone_IsIndependentOfSubsequentFlips covers the memory-discipline
// invariant: a cloned Hamiltonian does not observe flips applied to its
// source afterward.
func TestClone_IsIndependentOfSubsequentFlips(t *testing.T) {
	interactions, field := threeSpinProblem()
	h, err := hamiltonian.New(interactions, field, nil)
	require.NoError(t, err)

	h.Flip(0)
	snapshot := h.Clone()
	snapshotEnergy := snapshot.CurrentEnergy()

	h.Flip(1)
	h.Flip(2)

	require.Equal(t, snapshotEnergy, snapshot.CurrentEnergy())
	require.NotEqual(t, h.CurrentEnergy(), snapshot.CurrentEnergy())
}
