package qdisc

// Family A: direct projective discrimination. The two hypotheses act
// differently on a basis state, so a single application followed by a
// computational-basis measurement separates them with zero error.

/*
DistinguishIX identifies an unknown single-qubit operation known to be
either the identity or the Pauli X gate.

Returns 0 for I and 1 for X. Uses one application of the operation.

I leaves |0⟩ alone while X flips it to |1⟩, so the measured bit is the
label: the identity-like hypothesis reads zero, the hypothesis that maps
the default state onto the "one" outcome reads one.
*/
func DistinguishIX(m *Machine, u Unitary) int {
	q := m.Allocate()
	defer m.Release(q)

	u.Apply(m, q)
	outcome := m.Measure(q)
	m.Reset(q)

	return int(outcome)
}
