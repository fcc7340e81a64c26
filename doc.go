// Package ernst is a spin-glass ground-state search engine: build a
// two-local Ising Hamiltonian from a list of pairwise couplings and an
// external field, then find the configurations that minimize its energy
// either exactly (Gray-code enumeration) or approximately (simulated
// annealing).
//
// Everything lives under three subpackages plus a solver layer and a
// circuit builder on top:
//
//	spin/         — shared scalar types, the packed CompactState bitset,
//	                and spin/fenwick's Fenwick-tree prefix-sum structure
//	hamiltonian/  — TwoLocalHamiltonian: incremental energy tracking
//	                across single-spin flips
//	solve/        — ExactSolver (exhaustive) and SimulatedAnnealing
//	                (Metropolis sampler) over a Hamiltonian
//	network/      — SpinNetwork: accumulates interactions and field as
//	                logic gates are wired together
//	gate/         — NOT, COPY, AND, OR (binary and ternary), NAND, NOR,
//	                XOR, XNOR compiled into fixed coupling patterns
//
// A minimal example: constrain two spins to agree (a COPY gate) and find
// every configuration consistent with that constraint.
//
//	net := network.New()
//	in := net.AddInputNode(0)
//	out := net.AddUnaryNode(in, gate.Copy(0))
//	states, err := net.FindAllGroundStates([]spin.SpinIndex{in, out})
//
// See cmd/ernst for a larger hand-wired circuit exercising both solvers
// and the gate library end to end.
package ernst
