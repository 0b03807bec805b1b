package qdisc

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Raw single-qubit gate matrices. Kept as package vars so Reset and the
// named constructors share one copy.
var (
	gateI = mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, 1,
	})
	gateX = mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
	gateY = mat.NewCDense(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
	gateZ = mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, -1,
	})
	gateH = mat.NewCDense(2, 2, []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	})
	gateS = mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, 1i,
	})
)

// Identity returns the single-qubit identity gate.
func Identity() Unitary { return newGate("I", 1, gateI) }

// PauliX returns the bit-flip gate X.
func PauliX() Unitary { return newGate("X", 1, gateX) }

// PauliY returns the Pauli Y gate.
func PauliY() Unitary { return newGate("Y", 1, gateY) }

// PauliZ returns the phase-flip gate Z.
func PauliZ() Unitary { return newGate("Z", 1, gateZ) }

// MinusY returns -Y, which differs from Y only by a global phase.
func MinusY() Unitary { return scaledGate("-Y", gateY, -1) }

// MinusZ returns -Z, which differs from Z only by a global phase.
func MinusZ() Unitary { return scaledGate("-Z", gateZ, -1) }

// Hadamard returns the basis-change gate H.
func Hadamard() Unitary { return newGate("H", 1, gateH) }

// SGate returns the quarter-turn phase gate S, with S·S = Z.
func SGate() Unitary { return newGate("S", 1, gateS) }

// TGate returns the eighth-turn phase gate T, with T·T = S.
func TGate() Unitary {
	return newGate("T", 1, mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, math.Pi/4)),
	}))
}

// XZ returns the composed gate X·Z (Z first, then X). Note Y = i·XZ: the
// two differ only by a global phase, which is what makes the Y-vs-XZ
// discrimination a phase-kickback problem.
func XZ() Unitary {
	return newGate("XZ", 1, mat.NewCDense(2, 2, []complex128{
		0, -1,
		1, 0,
	}))
}

// MinusXZ returns -X·Z.
func MinusXZ() Unitary {
	return newGate("-XZ", 1, mat.NewCDense(2, 2, []complex128{
		0, 1,
		-1, 0,
	}))
}

// Rx returns the rotation about the X axis by theta.
func Rx(theta float64) Unitary {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return newGate("Rx", 1, mat.NewCDense(2, 2, []complex128{
		c, s,
		s, c,
	}))
}

// Ry returns the rotation about the Y axis by theta, a real rotation that
// moves |0⟩ weight into |1⟩.
func Ry(theta float64) Unitary {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return newGate("Ry", 1, mat.NewCDense(2, 2, []complex128{
		c, -s,
		s, c,
	}))
}

// Rz returns the rotation about the Z axis by theta. Rz(2π) = -I, which is
// invisible directly but observable through the controlled form.
func Rz(theta float64) Unitary {
	return newGate("Rz", 1, mat.NewCDense(2, 2, []complex128{
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	}))
}

// R1 returns the |1⟩-phase rotation by theta. R1(theta) = e^{iθ/2}·Rz(theta),
// so the two families differ only by a global phase.
func R1(theta float64) Unitary {
	return newGate("R1", 1, mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, theta)),
	}))
}

// TwoQubitIdentity returns the identity on a pair of qubits.
func TwoQubitIdentity() Unitary {
	return newGate("I⊗I", 2, mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}))
}

// IdentityTensorX returns I⊗X: the bit flip on the second operand only.
func IdentityTensorX() Unitary {
	return newGate("I⊗X", 2, mat.NewCDense(4, 4, []complex128{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}))
}

// CNOT12 returns the controlled-NOT with the first operand as control.
func CNOT12() Unitary {
	return newGate("CNOT₁₂", 2, mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}))
}

// CNOT21 returns the controlled-NOT with the second operand as control.
func CNOT21() Unitary {
	return newGate("CNOT₂₁", 2, mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	}))
}

// Swap returns the gate exchanging its two operands.
func Swap() Unitary {
	return newGate("SWAP", 2, mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}))
}

// Continuous-angle hypothesis families for the parameterized tasks.
var (
	RzFamily AngleUnitary = Rz
	RyFamily AngleUnitary = Ry
	R1Family AngleUnitary = R1
)

// scaledGate builds a gate from an existing matrix multiplied by a scalar
// (used for the global-phase variants).
func scaledGate(name string, g *mat.CDense, scale complex128) Unitary {
	r, c := g.Dims()
	data := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, scale*g.At(i, j))
		}
	}
	return newGate(name, 1, mat.NewCDense(r, c, data))
}
