// Package gate compiles Boolean logic gates into the fixed field-bias and
// coupling patterns whose ground manifold reproduces the gate's truth
// table, following the constant tables of the reference gate library
// (NOT, COPY, AND, OR, NAND, NOR, XOR, XNOR, and the ternary OR).
//
// Gates never hold a reference to the network they are wired into: like
// builder.Constructor, a gate is a plain function value that receives a
// Builder and the spin indices of its inputs, and returns the spin index
// of its output. This sidesteps the reference implementation's node
// trait/back-reference design (spec §9's "cyclic ownership" redesign
// note) in favor of passing the builder explicitly.
package gate

import "github.com/ernst-sim/ernst/spin"

// Builder is the minimal surface a gate needs from a network under
// construction: allocate a biased node and record a coupling between two
// existing spins. network.SpinNetwork implements this interface; gate
// itself never imports network; that keeps the dependency one-directional.
type Builder interface {
	AddOutputNode(bias spin.Energy) spin.SpinIndex
	AddAuxiliaryNode(bias spin.Energy) spin.SpinIndex
	AddInteraction(i, j spin.SpinIndex, coupling spin.Energy)
}

// UnaryGate compiles a single-input gate: allocate the output node(s),
// record the couplings, and return the output spin index.
type UnaryGate func(b Builder, input spin.SpinIndex) spin.SpinIndex

// BinaryGate compiles a two-input gate.
type BinaryGate func(b Builder, left, right spin.SpinIndex) spin.SpinIndex

// TernaryGate compiles a three-input gate.
type TernaryGate func(b Builder, first, second, third spin.SpinIndex) spin.SpinIndex

// Copy returns a COPY gate with the given output bias. A bare COPY(0)
// constrains its output to equal its input; AND/OR/NAND/NOR compile
// themselves from biased COPY sub-gates on each input, exactly as the
// reference library does.
func Copy(bias spin.Energy) UnaryGate {
	return func(b Builder, input spin.SpinIndex) spin.SpinIndex {
		output := b.AddOutputNode(bias)
		b.AddInteraction(input, output, 1.0)
		return output
	}
}

// Not constrains its output to the logical negation of its input.
func Not(b Builder, input spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(0)
	b.AddInteraction(input, output, -1.0)
	return output
}

// And is the two-input AND gate.
func And(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(-1.0)
	l := Copy(0.5)(b, left)
	r := Copy(0.5)(b, right)
	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, output, 1.0)
	b.AddInteraction(r, output, 1.0)
	return output
}

// Or is the two-input OR gate.
func Or(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(1.0)
	l := Copy(-0.5)(b, left)
	r := Copy(-0.5)(b, right)
	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, output, 1.0)
	b.AddInteraction(r, output, 1.0)
	return output
}

// OrTernary is the direct three-input OR gate, restored from the
// reference library's TernaryNode impl for OR (dropped from the
// distilled spec but present in the original source).
func OrTernary(b Builder, first, second, third spin.SpinIndex) spin.SpinIndex {
	const third_ spin.Energy = -1.0 / 3.0
	output := b.AddOutputNode(1.0)
	a := Copy(third_)(b, first)
	c := Copy(third_)(b, second)
	d := Copy(third_)(b, third)

	b.AddInteraction(a, c, third_)
	b.AddInteraction(a, d, third_)
	b.AddInteraction(c, d, third_)
	b.AddInteraction(a, output, 1.0)
	b.AddInteraction(c, output, 1.0)
	b.AddInteraction(d, output, 1.0)
	return output
}

// Nand is the two-input NAND gate.
func Nand(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(1.0)
	l := Copy(0.5)(b, left)
	r := Copy(0.5)(b, right)
	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, output, -1.0)
	b.AddInteraction(r, output, -1.0)
	return output
}

// Nor is the two-input NOR gate.
func Nor(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(-1.0)
	l := Copy(-0.5)(b, left)
	r := Copy(-0.5)(b, right)
	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, output, -1.0)
	b.AddInteraction(r, output, -1.0)
	return output
}

// Xor is the two-input XOR gate; unlike AND/OR/NAND/NOR it needs an
// auxiliary spin to encode the non-linear parity constraint.
func Xor(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(-0.5)
	aux := b.AddAuxiliaryNode(-1.0)
	l := Copy(-0.5)(b, left)
	r := Copy(-0.5)(b, right)

	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, aux, -1.0)
	b.AddInteraction(r, aux, -1.0)
	b.AddInteraction(l, output, -0.5)
	b.AddInteraction(r, output, -0.5)
	b.AddInteraction(aux, output, -1.0)
	return output
}

// Xnor is the two-input XNOR gate.
func Xnor(b Builder, left, right spin.SpinIndex) spin.SpinIndex {
	output := b.AddOutputNode(0.5)
	aux := b.AddAuxiliaryNode(-1.0)
	l := Copy(-0.5)(b, left)
	r := Copy(-0.5)(b, right)

	b.AddInteraction(l, r, -0.5)
	b.AddInteraction(l, aux, -1.0)
	b.AddInteraction(r, aux, -1.0)
	b.AddInteraction(l, output, 0.5)
	b.AddInteraction(r, output, 0.5)
	b.AddInteraction(aux, output, 1.0)
	return output
}
