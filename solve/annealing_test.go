package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ernst-sim/ernst/solve"
	"github.com/ernst-sim/ernst/spin"
)

// TestSimulatedAnnealing_IsDeterministicForAFixedSeed covers property P6:
// two runs with identical configuration (including seed) must produce
// identical result sets in identical order.
func TestSimulatedAnnealing_IsDeterministicForAFixedSeed(t *testing.T) {
	interactions := []spin.Interaction{
		{I: 0, J: 1, J_: -1},
		{I: 1, J: 2, J_: 2},
		{I: 0, J: 2, J_: 2},
	}
	field := spin.Field{-1, -1, -3}
	cfg := solve.NewAnnealingConfig(solve.WithSeed(42), solve.WithSweeps(500))

	first, err := solve.SimulatedAnnealing(interactions, field, cfg)
	require.NoError(t, err)
	second, err := solve.SimulatedAnnealing(interactions, field, cfg)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Energy, second[i].Energy)
		require.Equal(t, first[i].State.ToState(), second[i].State.ToState())
		require.Equal(t, first[i].Epoch, second[i].Epoch)
	}
}

// TestSimulatedAnnealing_FindsKnownGroundState covers the two-spin COPY
// problem: at a generous sweep count the sampler should find the same
// minimum energy the exact solver reports.
func TestSimulatedAnnealing_FindsKnownGroundState(t *testing.T) {
	interactions := []spin.Interaction{{I: 0, J: 1, J_: 1}}
	field := spin.Field{0, 0}
	cfg := solve.NewAnnealingConfig(
		solve.WithSeed(42),
		solve.WithSweeps(10000),
		solve.WithTemperatures(1.0, 0.001),
	)

	results, err := solve.SimulatedAnnealing(interactions, field, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	exact, err := solve.FindAllGroundStates(interactions, field)
	require.NoError(t, err)

	for _, r := range results {
		require.True(t, spin.EqualWithin(r.Energy, exact[0].Energy, spin.Epsilon))
	}
}

// TestSimulatedAnnealing_ExpectUniqueRejectsMultipleGroundStates covers
// the solver-contract error path.
func TestSimulatedAnnealing_ExpectUniqueRejectsMultipleGroundStates(t *testing.T) {
	interactions := []spin.Interaction{{I: 0, J: 1, J_: 1}}
	field := spin.Field{0, 0}
	cfg := solve.NewAnnealingConfig(
		solve.WithSeed(42),
		solve.WithSweeps(10000),
		solve.WithTemperatures(1.0, 0.001),
		solve.WithExpectUnique(true),
	)

	_, err := solve.SimulatedAnnealing(interactions, field, cfg)
	require.ErrorIs(t, err, solve.ErrSolverContract)
}

// TestSimulatedAnnealing_TraceKeepsEveryRecordedEpoch covers the
// Trace/no-trace distinction: tracing never produces fewer results than
// the trimmed run for the same seed.
func TestSimulatedAnnealing_TraceKeepsEveryRecordedEpoch(t *testing.T) {
	interactions := []spin.Interaction{{I: 0, J: 1, J_: 1}}
	field := spin.Field{0, 0}

	traced, err := solve.SimulatedAnnealing(interactions, field,
		solve.NewAnnealingConfig(solve.WithSeed(42), solve.WithSweeps(2000), solve.WithTrace(true)))
	require.NoError(t, err)

	trimmed, err := solve.SimulatedAnnealing(interactions, field,
		solve.NewAnnealingConfig(solve.WithSeed(42), solve.WithSweeps(2000), solve.WithTrace(false)))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(traced), len(trimmed))
}
