package qdisc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Unitary is the opaque shape of an unknown operation under discrimination.
The protocols see exactly three capabilities (direct application, the
adjoint, and the controlled form) and never the concrete
identity behind them. Which hypothesis a value actually is can only be
established behaviorally, which is the whole game.

The controlled form has arity one higher than its base and takes the
control as its first operand.
*/
type Unitary interface {
	// Arity is the number of qubit operands the operation consumes.
	Arity() int

	// Apply runs the operation on the given qubits of a machine.
	Apply(m *Machine, qs ...Qubit)

	// Adjoint returns the inverse of the operation.
	Adjoint() Unitary

	// Controlled returns the control-gated form of the operation.
	Controlled() Unitary

	fmt.Stringer
}

// AngleUnitary is the shape of a continuously parameterized hypothesis: a
// family of unitaries indexed by a rotation angle.
type AngleUnitary func(theta float64) Unitary

/*
gate is the matrix-backed Unitary variant. Adjoint derives structurally as
the conjugate transpose and Controlled simply grows the control count, so
every hypothesis built from a matrix supports all three capabilities with
no per-gate code.
*/
type gate struct {
	name     string
	arity    int
	controls int
	matrix   mat.CMatrix
}

func newGate(name string, arity int, matrix mat.CMatrix) *gate {
	return &gate{name: name, arity: arity, matrix: matrix}
}

func (g *gate) Arity() int {
	return g.arity + g.controls
}

func (g *gate) Apply(m *Machine, qs ...Qubit) {
	if len(qs) != g.Arity() {
		panic(ErrArityMismatch)
	}
	m.apply(g.matrix, qs[:g.controls], qs[g.controls:])
}

func (g *gate) Adjoint() Unitary {
	return &gate{
		name:     "Adjoint " + g.name,
		arity:    g.arity,
		controls: g.controls,
		matrix:   g.matrix.H(),
	}
}

func (g *gate) Controlled() Unitary {
	return &gate{
		name:     "Controlled " + g.name,
		arity:    g.arity,
		controls: g.controls + 1,
		matrix:   g.matrix,
	}
}

func (g *gate) String() string {
	return g.name
}
