package qdisc

// Small circuit combinators shared by the discrimination protocols.

/*
within applies a basis-changing wrap, runs the body inside the changed
basis, and undoes the wrap with its adjoint. This is the conjugation
pattern every kickback protocol is built from: prepare a superposition,
let the unknown operation imprint a phase, rotate the phase back into a
measurable bit.
*/
func within(m *Machine, wrap Unitary, body func(), qs ...Qubit) {
	wrap.Apply(m, qs...)
	body()
	wrap.Adjoint().Apply(m, qs...)
}

// register packs measurement outcomes into an integer, first outcome most
// significant.
func register(bits ...Bit) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | int(b)
	}
	return v
}
