package qdisc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMachineLifecycle(t *testing.T) {
	Convey("Given an empty machine", t, func() {
		m := NewSeededMachine(1)

		Convey("When qubits are allocated", func() {
			qs := m.AllocateMany(3)

			So(m.Size(), ShouldEqual, 3)
			So(qs[0].Wire(), ShouldEqual, 0)
			So(qs[2].Wire(), ShouldEqual, 2)

			Convey("And released in the default state", func() {
				m.Release(qs...)
				So(m.Size(), ShouldEqual, 0)
			})
		})

		Convey("When a fresh qubit is measured", func() {
			q := m.Allocate()

			So(m.Measure(q), ShouldEqual, Zero)
			m.Release(q)
		})

		Convey("When a qubit is released while carrying |1⟩ weight", func() {
			q := m.Allocate()
			PauliX().Apply(m, q)

			So(func() { m.Release(q) }, ShouldPanicWith, ErrDirtyRelease)

			m.Reset(q)
			m.Release(q)
		})

		Convey("When a foreign handle is used", func() {
			other := NewSeededMachine(2)
			q := other.Allocate()

			So(func() { m.Measure(q) }, ShouldPanicWith, ErrForeignQubit)

			other.Release(q)
		})
	})
}

func TestMeasurementCollapse(t *testing.T) {
	Convey("Given a qubit in an equal superposition", t, func() {
		m := NewSeededMachine(7)

		Convey("When it is measured many times across preparations", func() {
			ones := 0
			const runs = 2000
			for i := 0; i < runs; i++ {
				q := m.Allocate()
				Hadamard().Apply(m, q)
				if m.Measure(q) == One {
					ones++
				}
				m.Reset(q)
				m.Release(q)
			}

			So(ones, ShouldBeBetween, runs/2-200, runs/2+200)
		})

		Convey("When it is measured twice without re-preparation", func() {
			q := m.Allocate()
			Hadamard().Apply(m, q)

			first := m.Measure(q)
			So(m.Measure(q), ShouldEqual, first)

			m.Reset(q)
			m.Release(q)
		})
	})
}

func TestGateAlgebra(t *testing.T) {
	Convey("Given the elementary gate set", t, func() {
		m := NewSeededMachine(11)

		Convey("H composed with itself is the identity", func() {
			q := m.Allocate()
			within(m, Hadamard(), func() {}, q)

			So(m.Measure(q), ShouldEqual, Zero)
			m.Release(q)
		})

		Convey("S squared acts as Z on |+⟩", func() {
			q := m.Allocate()
			s := SGate()

			Hadamard().Apply(m, q)
			s.Apply(m, q)
			s.Apply(m, q)
			Hadamard().Apply(m, q)

			So(m.Measure(q), ShouldEqual, One)
			m.Reset(q)
			m.Release(q)
		})

		Convey("A Bell pair measures both qubits equal", func() {
			for i := 0; i < 200; i++ {
				a := m.Allocate()
				b := m.Allocate()
				PrepareBell(m, a, b)

				So(m.Measure(a), ShouldEqual, m.Measure(b))

				m.Reset(a)
				m.Reset(b)
				m.Release(a, b)
			}
		})

		Convey("Unpreparing a fresh Bell pair restores the default state", func() {
			a := m.Allocate()
			b := m.Allocate()

			PrepareBell(m, a, b)
			UnprepareBell(m, a, b)

			So(m.Measure(a), ShouldEqual, Zero)
			So(m.Measure(b), ShouldEqual, Zero)
			m.Release(a, b)
		})
	})
}
