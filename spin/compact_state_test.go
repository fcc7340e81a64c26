package spin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ernst-sim/ernst/spin"
)

func TestCompactState_ToggleAndContains(t *testing.T) {
	s := spin.NewCompactState(10)
	require.False(t, s.Contains(3))
	s.Toggle(3)
	require.True(t, s.Contains(3))
	s.Toggle(3)
	require.False(t, s.Contains(3))
}

func TestCompactState_Sign(t *testing.T) {
	s := spin.NewCompactState(2)
	require.Equal(t, spin.Energy(-1), s.Sign(0))
	s.Set(0, true)
	require.Equal(t, spin.Energy(1), s.Sign(0))
}

func TestCompactState_CloneIsIndependent(t *testing.T) {
	s := spin.NewCompactState(4)
	s.Set(1, true)
	clone := s.Clone()
	s.Set(2, true)

	require.True(t, clone.Contains(1))
	require.False(t, clone.Contains(2), "mutating the original must not leak into the clone")
}

func TestCompactState_OnesAndStateRoundTrip(t *testing.T) {
	state := []bool{true, false, true, true, false}
	s := spin.FromState(state)
	require.Equal(t, []int{0, 2, 3}, s.Ones())
	require.Equal(t, state, s.ToState())
}

func TestCompactState_BytesDistinguishesDistinctStates(t *testing.T) {
	a := spin.FromState([]bool{true, false, false})
	b := spin.FromState([]bool{false, true, false})
	c := spin.FromState([]bool{true, false, false})

	require.NotEqual(t, a.Bytes(), b.Bytes())
	require.Equal(t, a.Bytes(), c.Bytes())
}

func TestCompactState_SpansMultipleWords(t *testing.T) {
	s := spin.NewCompactState(130)
	s.Set(0, true)
	s.Set(64, true)
	s.Set(129, true)
	require.Equal(t, []int{0, 64, 129}, s.Ones())
}
