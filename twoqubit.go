package qdisc

// Two-qubit discrimination: the hypotheses are entangling (or trivially
// separable) gates, and a well-chosen basis state already routes each one
// onto a distinct measurement pattern. No ancilla is needed; the second
// operand plays that role.

/*
DistinguishIXFromCNOT identifies an unknown two-qubit operation known to
be either I⊗X or the controlled-NOT with the first operand as control.

Returns 0 for I⊗X and 1 for CNOT. Uses one application.

On |00⟩ the unconditional flip sets the second qubit while the CNOT,
seeing its control at zero, does nothing.
*/
func DistinguishIXFromCNOT(m *Machine, u Unitary) int {
	a := m.Allocate()
	b := m.Allocate()
	defer m.Release(a, b)

	u.Apply(m, a, b)
	outcome := m.Measure(b)
	m.Reset(b)

	return 1 - int(outcome)
}

/*
DistinguishCNOTDirection identifies which operand of an unknown
controlled-NOT is the control.

Returns 0 when the first operand controls and 1 when the second does.
Uses one application; both qubits are restored before release.

Presetting the first qubit to one fires the gate exactly when the first
operand is the control, and the second qubit records whether it fired.
*/
func DistinguishCNOTDirection(m *Machine, u Unitary) int {
	a := m.Allocate()
	b := m.Allocate()
	defer m.Release(a, b)

	PauliX().Apply(m, a)
	u.Apply(m, a, b)

	outcome := m.Measure(b)
	m.Reset(a)
	m.Reset(b)

	return 1 - int(outcome)
}

/*
DistinguishCNOTFromSwap identifies an unknown two-qubit operation known
to be either the controlled-NOT (first operand control) or the SWAP.

Returns 0 for CNOT and 1 for SWAP. Uses one application.

With only the second qubit set, the CNOT is inert while the SWAP carries
the one across: the measured pattern reads 1 or 2, and subtracting one
yields the label.
*/
func DistinguishCNOTFromSwap(m *Machine, u Unitary) int {
	a := m.Allocate()
	b := m.Allocate()
	defer m.Release(a, b)

	PauliX().Apply(m, b)
	u.Apply(m, a, b)

	value := register(m.Measure(a), m.Measure(b))
	m.Reset(a)
	m.Reset(b)

	return value - 1
}

/*
DistinguishTwoQubit identifies an unknown two-qubit operation known to be
one of the identity, CNOT₁₂, CNOT₂₁ or SWAP.

Returns 0 for I, 1 for CNOT₁₂, 2 for CNOT₂₁ and 3 for SWAP. Uses at most
two applications of the operation, and must agree with the standalone
two-hypothesis protocols on their respective subsets.

Two-stage decision. Stage one applies the operation to |11⟩: either CNOT
clears exactly the qubit opposite its control, while I and SWAP both map
|11⟩ to itself. A pattern other than "both one" therefore hands off to
the direction test, shifted past the identity label. A "both one" pattern
leaves I and SWAP: flipping the first qubit and reapplying sends |01⟩ to
itself under I and to |10⟩ under SWAP, so the first qubit decides.
*/
func DistinguishTwoQubit(m *Machine, u Unitary) int {
	a := m.Allocate()
	b := m.Allocate()

	PauliX().Apply(m, a)
	PauliX().Apply(m, b)
	u.Apply(m, a, b)

	value := register(m.Measure(a), m.Measure(b))

	if value != 3 {
		// One of the CNOTs; let the direction protocol tell them apart
		// on fresh resources.
		m.Reset(a)
		m.Reset(b)
		m.Release(a, b)
		return 1 + DistinguishCNOTDirection(m, u)
	}

	// Both one: identity or SWAP. Flip the first qubit and reapply.
	PauliX().Apply(m, a)
	u.Apply(m, a, b)

	outcome := m.Measure(a)
	m.Reset(a)
	m.Reset(b)
	m.Release(a, b)

	if outcome == One {
		return 3
	}
	return 0
}
