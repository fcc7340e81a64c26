// Command ernst is a demonstration CLI for the spin-glass engine: it
// wires up a small hand-built circuit, runs both the exact and the
// simulated-annealing solvers over it, and prints what each one found.
//
// The circuit mirrors the reference implementation's own demo binary:
// three strongly-biased input spins (0-2) and four two-input AND groups
// (spins 7-18) over them and spins 3-4, each group's output tied to one
// of spins 3-6 by a COPY coupling, followed by a standalone three-input
// OR chain built directly through the network package.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ernst-sim/ernst/gate"
	"github.com/ernst-sim/ernst/network"
	"github.com/ernst-sim/ernst/solve"
	"github.com/ernst-sim/ernst/spin"
)

func main() {
	sweeps := flag.Int("sweeps", 1000, "number of simulated annealing sweeps")
	seed := flag.Int64("seed", 42, "simulated annealing PRNG seed")
	flag.Parse()

	field := spin.Field{
		5.0, 5.0, 5.0, 0.0, 0.0, 0.0, 0.0,
		0.5, 0.5, -1.0, 0.5, 0.5, -1.0,
		0.5, 0.5, -1.0, 0.5, 0.5, -1.0,
	}
	interactions := []spin.Interaction{
		{I: 0, J: 7, J_: 1.0}, {I: 1, J: 8, J_: 1.0}, {I: 7, J: 8, J_: -0.5},
		{I: 7, J: 9, J_: 1.0}, {I: 8, J: 9, J_: 1.0},
		{I: 1, J: 10, J_: 1.0}, {I: 2, J: 11, J_: 1.0}, {I: 10, J: 11, J_: -0.5},
		{I: 10, J: 12, J_: 1.0}, {I: 11, J: 12, J_: 1.0},
		{I: 0, J: 13, J_: 1.0}, {I: 4, J: 14, J_: 1.0}, {I: 13, J: 14, J_: -0.5},
		{I: 13, J: 15, J_: 1.0}, {I: 14, J: 15, J_: 1.0},
		{I: 3, J: 16, J_: 1.0}, {I: 2, J: 17, J_: 1.0}, {I: 16, J: 17, J_: -0.5},
		{I: 16, J: 18, J_: 1.0}, {I: 17, J: 18, J_: 1.0},
		{I: 3, J: 9, J_: 1.0}, {I: 4, J: 12, J_: 1.0}, {I: 5, J: 15, J_: 1.0}, {I: 6, J: 18, J_: 1.0},
	}

	start := time.Now()
	exact, err := solve.FindAllGroundStates(interactions, field)
	took := time.Since(start)
	if err != nil {
		log.Fatalf("exact solve: %v", err)
	}
	for _, r := range exact {
		fmt.Printf("Energy: %v - State: %v - Took: %s\n", r.Energy, r.State.ToState(), took)
	}

	cfg := solve.NewAnnealingConfig(solve.WithSeed(*seed), solve.WithSweeps(*sweeps))
	start = time.Now()
	annealed, err := solve.SimulatedAnnealing(interactions, field, cfg)
	took = time.Since(start)
	if err != nil {
		log.Fatalf("simulated annealing: %v", err)
	}
	for _, r := range annealed {
		fmt.Printf("Energy: %v - State: %v - Found in sweep number: %d - Took: %s\n", r.Energy, r.State.ToState(), r.Epoch, took)
	}

	net := network.New()
	s0 := net.AddInputNode(0)
	s1 := net.AddInputNode(0)
	s2 := net.AddInputNode(0)
	zAux := net.AddBinaryNode(s0, s1, gate.Or)
	z := net.AddBinaryNode(zAux, s2, gate.Or)

	ternary, err := net.FindAllGroundStates([]spin.SpinIndex{s0, s1, s2, z})
	if err != nil {
		log.Fatalf("ternary OR solve: %v", err)
	}
	fmt.Println("Ternary OR ground states:")
	for _, r := range ternary {
		fmt.Printf("Energy: %v - State: %v\n", r.Energy, r.State)
	}
}
