package qdisc

import "math"

// Family B: ancilla-controlled and phase-kickback discrimination. The
// hypotheses differ by a relative phase, a basis, or a gate ordering;
// wrapping the unknown operation in a basis change, or gating it on an
// ancilla in superposition, turns the invisible difference into a
// measurable bit. Every protocol here is exact: given a faithful
// substrate the returned label is correct on every run.

/*
DistinguishIZ identifies an unknown operation known to be either the
identity or the Pauli Z gate.

Returns 0 for I and 1 for Z. Uses one application of the operation.

I and Z agree on |0⟩ and |1⟩ and differ only on superpositions: inside a
Hadamard wrap, Z flips |+⟩ to |-⟩ while I leaves it alone, and undoing the
wrap maps that sign straight onto the measured bit.
*/
func DistinguishIZ(m *Machine, u Unitary) int {
	q := m.Allocate()
	defer m.Release(q)

	within(m, Hadamard(), func() {
		u.Apply(m, q)
	}, q)
	outcome := m.Measure(q)
	m.Reset(q)

	return int(outcome)
}

/*
DistinguishZS identifies an unknown operation known to be either the Z
gate or the S gate.

Returns 0 for Z and 1 for S. Uses two applications of the operation.

One application cannot separate them, but squaring does: Z² = I while
S² = Z, which reduces the task to the I-vs-Z test inside the same wrap.
*/
func DistinguishZS(m *Machine, u Unitary) int {
	q := m.Allocate()
	defer m.Release(q)

	within(m, Hadamard(), func() {
		u.Apply(m, q)
		u.Apply(m, q)
	}, q)
	outcome := m.Measure(q)
	m.Reset(q)

	return int(outcome)
}

/*
DistinguishHX identifies an unknown operation known to be either the
Hadamard gate or the Pauli X gate.

Returns 0 for H and 1 for X. Uses two applications of the operation.

Conjugating a fixed X by the unknown operation collapses the two cases
onto gates that already act differently on |0⟩: H·X·H = Z fixes |0⟩,
while X·X·X = X flips it.
*/
func DistinguishHX(m *Machine, u Unitary) int {
	q := m.Allocate()
	defer m.Release(q)

	u.Apply(m, q)
	PauliX().Apply(m, q)
	u.Apply(m, q)
	outcome := m.Measure(q)
	m.Reset(q)

	return int(outcome)
}

/*
DistinguishZMinusZ identifies an unknown operation known to be either Z
or -Z.

Returns 0 for Z and 1 for -Z. Uses one controlled application.

The two hypotheses differ by a global phase, which no direct application
can reveal. Gating the operation on an ancilla in |+⟩ makes the phase
relative: the -1 shows up only on the control-is-one branch, rotating the
ancilla from |+⟩ to |-⟩, which the closing Hadamard turns into a bit.
*/
func DistinguishZMinusZ(m *Machine, u Unitary) int {
	control := m.Allocate()
	target := m.Allocate()
	defer m.Release(control, target)

	cu := u.Controlled()

	Hadamard().Apply(m, control)
	cu.Apply(m, control, target)
	Hadamard().Apply(m, control)

	outcome := m.Measure(control)
	m.Reset(control)

	// Z and -Z both fix |0⟩ up to phase, so the target is already clean.
	return int(outcome)
}

/*
DistinguishRzR1 identifies an unknown parameterized family known to be
either the Rz rotations or the R1 rotations.

Returns 0 for Rz and 1 for R1. Uses one controlled application plus one
controlled inverse.

Rz(θ) and R1(θ) differ by the global phase θ/2. Applying the controlled
form at π and the controlled inverse at -π composes to the controlled
form at 2π, where the difference is maximal: Rz(2π) = -I kicks a full
sign onto the ancilla while R1(2π) = I kicks nothing. Both measured bits
(target first, ancilla second) feed the decode: the target always
reads one, so the register value is 3 for Rz and 2 for R1, and the label
is 3 minus the value.
*/
func DistinguishRzR1(m *Machine, u AngleUnitary) int {
	control := m.Allocate()
	target := m.Allocate()
	defer m.Release(control, target)

	Hadamard().Apply(m, control)
	PauliX().Apply(m, target)

	u(math.Pi).Controlled().Apply(m, control, target)
	u(-math.Pi).Adjoint().Controlled().Apply(m, control, target)

	Hadamard().Apply(m, control)

	value := register(m.Measure(target), m.Measure(control))
	m.Reset(control)
	m.Reset(target)

	return 3 - value
}

/*
DistinguishYXZ identifies an unknown operation known to be either Y or
the composed gate X·Z.

Returns 0 for Y and 1 for XZ. Uses two controlled applications.

Y = i·XZ, so one application differs only by an unobservable global
phase, but the squares split: Y² = I while (XZ)² = -I. Two controlled
applications kick that sign onto the ancilla exactly as in the Z-vs-minus-Z
test.
*/
func DistinguishYXZ(m *Machine, u Unitary) int {
	control := m.Allocate()
	target := m.Allocate()
	defer m.Release(control, target)

	cu := u.Controlled()

	Hadamard().Apply(m, control)
	cu.Apply(m, control, target)
	cu.Apply(m, control, target)
	Hadamard().Apply(m, control)

	outcome := m.Measure(control)
	m.Reset(control)

	return int(outcome)
}

/*
DistinguishYXZWithPhases identifies an unknown operation known to be one
of Y, -Y, XZ or -XZ.

Returns 0 for Y, 1 for -Y, 2 for XZ and 3 for -XZ. Uses three controlled
applications of the operation in total.

Two stages. The squares Y² = (−Y)² = I and (XZ)² = (−XZ)² = -I pick the
family first, reusing the Y-vs-XZ kickback. The sign inside the family is
then a plain global phase against a known reference: one more controlled
application followed by the controlled adjoint of the reference composes
to controlled ±I, and the kicked bit is the sign.
*/
func DistinguishYXZWithPhases(m *Machine, u Unitary) int {
	family := DistinguishYXZ(m, u)

	reference := PauliY()
	if family == 1 {
		reference = XZ()
	}

	control := m.Allocate()
	target := m.Allocate()
	defer m.Release(control, target)

	Hadamard().Apply(m, control)
	u.Controlled().Apply(m, control, target)
	reference.Adjoint().Controlled().Apply(m, control, target)
	Hadamard().Apply(m, control)

	sign := m.Measure(control)
	m.Reset(control)
	m.Reset(target)

	return family*2 + int(sign)
}

/*
DistinguishPaulis identifies an unknown operation known to be one of the
four Pauli gates I, X, Y or Z.

Returns 0 for I, 1 for X, 2 for Y and 3 for Z. Uses a single direct
application.

A Bell pair indexes all four hypotheses at once: each Pauli acting on one
half moves the pair into a different orthogonal Bell state, and undoing
the entangling preparation rotates those four states onto the four
computational patterns. The measured pattern arrives in the order I, X,
Z, Y, so a fixed lookup remaps it onto the declared labels.
*/
func DistinguishPaulis(m *Machine, u Unitary) int {
	a := m.Allocate()
	b := m.Allocate()
	defer m.Release(a, b)

	PrepareBell(m, a, b)
	u.Apply(m, a)
	UnprepareBell(m, a, b)

	value := register(m.Measure(a), m.Measure(b))
	m.Reset(a)
	m.Reset(b)

	return []int{0, 1, 3, 2}[value]
}
