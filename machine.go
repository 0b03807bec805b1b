package qdisc

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Bit is a single classical measurement outcome.
type Bit int

const (
	Zero Bit = iota
	One
)

var (
	// ErrDirtyRelease is raised when a qubit is released while still
	// carrying |1⟩ weight. Protocols must reset everything they allocate.
	ErrDirtyRelease = errors.New("qdisc: released qubit is not in the default state")

	// ErrForeignQubit is raised when a handle is used against a machine
	// that did not allocate it, or after the handle was invalidated.
	ErrForeignQubit = errors.New("qdisc: qubit does not belong to this machine")

	// ErrArityMismatch is raised when an operation is applied to the wrong
	// number of qubits.
	ErrArityMismatch = errors.New("qdisc: operand count does not match operation arity")
)

/*
Machine is the reference execution substrate: a dynamically sized
state-vector simulator behind the resource contract the protocols consume.
Allocation tensors a fresh |0⟩ qubit onto the register, release contracts it
back out, and measurement collapses state irreversibly. A machine is owned
by a single goroutine; concurrent trials each run their own machine.

Contract violations (releasing a dirty qubit, using a foreign handle,
applying an operation with the wrong arity) are programming errors, not
runtime conditions, and panic with the matching sentinel error.
*/
type Machine struct {
	wf  *WaveFunction
	rng *rand.Rand
}

// NewMachine returns an empty machine with a randomly seeded outcome source.
func NewMachine() *Machine {
	return NewSeededMachine(rand.Uint64())
}

// NewSeededMachine returns an empty machine whose measurement outcomes are
// reproducible for a given seed.
func NewSeededMachine(seed uint64) *Machine {
	return &Machine{
		wf:  NewWaveFunction(),
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Size returns the number of qubits currently allocated.
func (m *Machine) Size() int {
	return m.wf.Qubits()
}

// Allocate acquires one fresh qubit in the default |0⟩ state.
func (m *Machine) Allocate() Qubit {
	return Qubit{machine: m, wire: m.wf.grow()}
}

// AllocateMany acquires n fresh qubits at once.
func (m *Machine) AllocateMany(n int) []Qubit {
	qs := make([]Qubit, n)
	for i := range qs {
		qs[i] = m.Allocate()
	}
	return qs
}

/*
Release returns qubits to the machine. Every released qubit must be back in
the default state; the machine asserts this and panics with ErrDirtyRelease
otherwise, so a leaked protocol shows up in tests instead of poisoning the
next allocation. Releasing a qubit invalidates handles on higher wires, so
protocols release everything they hold in one call.
*/
func (m *Machine) Release(qs ...Qubit) {
	wires := make([]int, len(qs))
	for i, q := range qs {
		if !q.ownedBy(m) {
			panic(ErrForeignQubit)
		}
		wires[i] = q.wire
	}

	// Contract top wires first so the remaining indices stay valid.
	for {
		best := -1
		for i, w := range wires {
			if w >= 0 && (best < 0 || w > wires[best]) {
				best = i
			}
		}
		if best < 0 {
			return
		}
		if !m.wf.drop(wires[best]) {
			panic(ErrDirtyRelease)
		}
		wires[best] = -1
	}
}

// Reset forces a qubit back to |0⟩ by measuring it and flipping when needed.
func (m *Machine) Reset(q Qubit) {
	if m.Measure(q) == One {
		m.apply(gateX, nil, []Qubit{q})
	}
}

/*
Measure performs a projective Z-basis measurement of one qubit: sample the
|1⟩ weight, collapse the register onto the observed outcome, and return the
classical bit. The collapse is irreversible; measuring again without
re-preparation returns the same outcome.
*/
func (m *Machine) Measure(q Qubit) Bit {
	if !q.ownedBy(m) {
		panic(ErrForeignQubit)
	}

	outcome := Zero
	if m.rng.Float64() < m.wf.probability(q.wire) {
		outcome = One
	}
	m.wf.collapse(q.wire, outcome)
	return outcome
}

// apply routes a gate matrix onto the register, with zero or more control
// qubits gating the target subspace.
func (m *Machine) apply(g mat.CMatrix, controls, targets []Qubit) {
	r, _ := g.Dims()
	if r != 1<<len(targets) {
		panic(ErrArityMismatch)
	}

	cw := make([]int, len(controls))
	for i, q := range controls {
		if !q.ownedBy(m) {
			panic(ErrForeignQubit)
		}
		cw[i] = q.wire
	}
	tw := make([]int, len(targets))
	for i, q := range targets {
		if !q.ownedBy(m) {
			panic(ErrForeignQubit)
		}
		tw[i] = q.wire
	}

	m.wf.applyMatrix(g, cw, tw)
}
