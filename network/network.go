// Package network builds Ising problems out of logic-gate primitives.
// A SpinNetwork accumulates input, auxiliary, and output spins plus the
// interactions the gate package wires between them; once built, the
// network's interactions and field feed straight into solve.
package network

import (
	"github.com/ernst-sim/ernst/gate"
	"github.com/ernst-sim/ernst/solve"
	"github.com/ernst-sim/ernst/spin"
)

// SpinNetwork accumulates spins and interactions as gates are wired in.
// It owns growing field and interaction slices; nothing about it is
// safe to use from more than one goroutine (same discipline as
// hamiltonian.TwoLocalHamiltonian).
type SpinNetwork struct {
	input        []spin.SpinIndex
	auxiliary    []spin.SpinIndex
	output       []spin.SpinIndex
	interactions []spin.Interaction
	field        spin.Field
}

// New returns an empty SpinNetwork.
func New() *SpinNetwork {
	return &SpinNetwork{}
}

func (n *SpinNetwork) addFreeNode() spin.SpinIndex {
	n.field = append(n.field, 0)
	return len(n.field) - 1
}

// AddInputNode allocates a spin designated as a network input, biased by
// the given field strength.
func (n *SpinNetwork) AddInputNode(bias spin.Energy) spin.SpinIndex {
	i := n.addFreeNode()
	n.input = append(n.input, i)
	n.field[i] = bias
	return i
}

// AddOutputNode allocates a spin designated as a gate output.
func (n *SpinNetwork) AddOutputNode(bias spin.Energy) spin.SpinIndex {
	i := n.addFreeNode()
	n.output = append(n.output, i)
	n.field[i] = bias
	return i
}

// AddAuxiliaryNode allocates a spin with no external designation, used
// by gates (XOR, XNOR) whose constraint needs more than input/output
// spins to encode.
func (n *SpinNetwork) AddAuxiliaryNode(bias spin.Energy) spin.SpinIndex {
	i := n.addFreeNode()
	n.auxiliary = append(n.auxiliary, i)
	n.field[i] = bias
	return i
}

// AddInteraction records a coupling between two already-allocated spins.
// It implements gate.Builder.
func (n *SpinNetwork) AddInteraction(i, j spin.SpinIndex, coupling spin.Energy) {
	n.interactions = append(n.interactions, spin.Interaction{I: i, J: j, J_: coupling})
}

// AddUnaryNode wires a single-input gate and returns its output spin.
func (n *SpinNetwork) AddUnaryNode(input spin.SpinIndex, g gate.UnaryGate) spin.SpinIndex {
	return g(n, input)
}

// AddBinaryNode wires a two-input gate and returns its output spin.
func (n *SpinNetwork) AddBinaryNode(left, right spin.SpinIndex, g gate.BinaryGate) spin.SpinIndex {
	return g(n, left, right)
}

// AddTernaryNode wires a three-input gate and returns its output spin.
func (n *SpinNetwork) AddTernaryNode(first, second, third spin.SpinIndex, g gate.TernaryGate) spin.SpinIndex {
	return g(n, first, second, third)
}

// ExternalMagneticField returns the network's accumulated field vector.
func (n *SpinNetwork) ExternalMagneticField() spin.Field { return n.field }

// Interactions returns the network's accumulated interaction list.
func (n *SpinNetwork) Interactions() []spin.Interaction { return n.interactions }

func project(state []bool, ordering []spin.SpinIndex) []bool {
	if ordering == nil {
		return state
	}
	out := make([]bool, len(ordering))
	for i, idx := range ordering {
		out[i] = state[idx]
	}
	return out
}

// GroundState is one minimum-energy configuration, projected through an
// optional spin ordering.
type GroundState struct {
	Energy spin.Energy
	State  []bool
}

// FindAllGroundStates runs the exact solver over the network's current
// interactions and field. When ordering is non-nil, every returned state
// is re-indexed through it (spec_full: restores the reference
// implementation's spin_ordering projection, dropped from the distilled
// spec but useful whenever a caller only cares about a subset of spins
// in a particular order — e.g. "inputs then output").
func (n *SpinNetwork) FindAllGroundStates(ordering []spin.SpinIndex, opts ...solve.ExactOption) ([]GroundState, error) {
	results, err := solve.FindAllGroundStates(n.interactions, n.field, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]GroundState, len(results))
	for i, r := range results {
		out[i] = GroundState{Energy: r.Energy, State: project(r.State.ToState(), ordering)}
	}
	return out, nil
}

// AnnealingGroundState is one distinct recorded state from a simulated
// annealing run, projected through an optional spin ordering.
type AnnealingGroundState struct {
	Energy spin.Energy
	State  []bool
	Epoch  int
}

// RunSimulatedAnnealing runs the annealer over the network's current
// interactions and field, with the same optional spin-ordering
// projection as FindAllGroundStates.
func (n *SpinNetwork) RunSimulatedAnnealing(cfg solve.AnnealingConfig, ordering []spin.SpinIndex) ([]AnnealingGroundState, error) {
	results, err := solve.SimulatedAnnealing(n.interactions, n.field, cfg)
	out := make([]AnnealingGroundState, len(results))
	for i, r := range results {
		out[i] = AnnealingGroundState{Energy: r.Energy, State: project(r.State.ToState(), ordering), Epoch: r.Epoch}
	}
	return out, err
}
