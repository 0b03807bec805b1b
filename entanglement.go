package qdisc

/*
Bell-pair helpers for the entangling-wrap protocols.

A Bell pair is maximally entangled: applying any single Pauli to one half
moves the pair into a different, mutually orthogonal Bell state. Preparing
the pair, letting the unknown operation act on one half, and then undoing
the preparation therefore maps each Pauli hypothesis onto a distinct
two-bit measurement pattern: the entangling analogue of the single-qubit
basis-change wrap.
*/

// PrepareBell entangles two default-state qubits into (|00⟩ + |11⟩)/√2.
func PrepareBell(m *Machine, a, b Qubit) {
	Hadamard().Apply(m, a)
	PauliX().Controlled().Apply(m, a, b)
}

// UnprepareBell is the adjoint of PrepareBell: it rotates the four Bell
// states back onto the four computational basis states.
func UnprepareBell(m *Machine, a, b Qubit) {
	PauliX().Controlled().Apply(m, a, b)
	Hadamard().Apply(m, a)
}
