package solve

import "errors"

// MaxExactN bounds the problem size the exact (Gray-code) solver will
// enumerate without an explicit override: 2^n states at one Hamiltonian
// flip apiece is the cost, and it grows without mercy past a few dozen
// spins (mirrors tsp.MaxExactN's role as a resource guard, not a
// correctness limit).
const MaxExactN = 28

// ErrProblemTooLarge signals that the exact solver was asked to
// enumerate more spins than MaxExactN (or a caller-supplied override)
// permits.
var ErrProblemTooLarge = errors.New("solve: problem too large for exact enumeration")

// ErrSolverContract signals that a caller requested a unique ground
// state (ExpectUnique) but the search produced more than one.
var ErrSolverContract = errors.New("solve: ground state is not unique")
