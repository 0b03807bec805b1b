// wavefunction.go
package qdisc

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// releaseTolerance is the residual |1⟩ weight a qubit may carry and still
// count as being in the default state. Anything above this trips the
// release assertion.
const releaseTolerance = 1e-9

/*
WaveFunction holds the joint amplitudes of every qubit currently alive on a
Machine. Qubit i owns bit i of the basis-state index, so a register of n
qubits is a vector of 2^n complex amplitudes. The zero-qubit register is the
single amplitude 1, which keeps grow and drop symmetric: allocating tensors
a fresh |0⟩ onto the top, releasing contracts it back out.
*/
type WaveFunction struct {
	amps   []complex128
	qubits int
}

func NewWaveFunction() *WaveFunction {
	return &WaveFunction{amps: []complex128{1}}
}

// Qubits returns the number of wires currently carried by the register.
func (wf *WaveFunction) Qubits() int {
	return wf.qubits
}

// grow tensors a fresh |0⟩ qubit onto the register and returns its wire.
func (wf *WaveFunction) grow() int {
	wf.amps = append(wf.amps, make([]complex128, len(wf.amps))...)
	wf.qubits++
	return wf.qubits - 1
}

// drop contracts wire q back out of the register. It reports false when the
// qubit still carries |1⟩ weight, in which case the register is untouched.
// Wires above q shift down by one.
func (wf *WaveFunction) drop(q int) bool {
	if wf.probability(q) > releaseTolerance {
		return false
	}

	bit := 1 << q
	next := make([]complex128, len(wf.amps)/2)
	for i, amp := range wf.amps {
		if i&bit != 0 {
			continue
		}
		lo := i & (bit - 1)
		hi := (i >> (q + 1)) << q
		next[hi|lo] = amp
	}

	wf.amps = next
	wf.qubits--
	return true
}

// probability returns the total weight on basis states where wire q is 1.
func (wf *WaveFunction) probability(q int) float64 {
	bit := 1 << q
	p := 0.0
	for i, amp := range wf.amps {
		if i&bit != 0 {
			p += real(amp * cmplx.Conj(amp))
		}
	}
	return p
}

/*
collapse projects the register onto the subspace where wire q reads the
given outcome and renormalizes the surviving amplitudes. This is the
irreversible half of a projective measurement; the caller has already
sampled which outcome occurred.
*/
func (wf *WaveFunction) collapse(q int, outcome Bit) {
	bit := 1 << q
	norm := 0.0
	for i, amp := range wf.amps {
		hit := i&bit != 0
		if hit != (outcome == One) {
			wf.amps[i] = 0
			continue
		}
		norm += real(amp * cmplx.Conj(amp))
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i, amp := range wf.amps {
		wf.amps[i] = amp * scale
	}
}

/*
applyMatrix applies a k-qubit gate matrix to the register, restricted to the
subspace where every control wire reads 1. Targets are ordered the way gate
matrices are written: targets[0] is the most significant bit of the matrix
row index. Basis states outside the control subspace pass through unchanged,
which is exactly the phase-kickback behavior the protocols rely on.
*/
func (wf *WaveFunction) applyMatrix(g mat.CMatrix, controls, targets []int) {
	k := len(targets)
	d := 1 << k

	cmask := 0
	for _, c := range controls {
		cmask |= 1 << c
	}
	tmask := 0
	for _, t := range targets {
		tmask |= 1 << t
	}

	scratch := make([]complex128, d)
	for base := range wf.amps {
		if base&tmask != 0 || base&cmask != cmask {
			continue
		}

		for r := 0; r < d; r++ {
			scratch[r] = wf.amps[subIndex(base, r, targets)]
		}
		for r := 0; r < d; r++ {
			var sum complex128
			for c := 0; c < d; c++ {
				sum += g.At(r, c) * scratch[c]
			}
			wf.amps[subIndex(base, r, targets)] = sum
		}
	}
}

// subIndex expands a k-bit gate-local basis index r onto the full register,
// mapping the most significant bit of r to targets[0].
func subIndex(base, r int, targets []int) int {
	k := len(targets)
	idx := base
	for b, t := range targets {
		if r&(1<<(k-1-b)) != 0 {
			idx |= 1 << t
		}
	}
	return idx
}
