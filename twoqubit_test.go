package qdisc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDistinguishIXFromCNOT(t *testing.T) {
	Convey("Given the I⊗X-vs-CNOT discriminator", t, func() {
		m := NewSeededMachine(47)

		Convey("Both hypotheses decide correctly on every run", func() {
			So(exact(1000, 0, func() int { return DistinguishIXFromCNOT(m, IdentityTensorX()) }), ShouldEqual, 1000)
			So(exact(1000, 1, func() int { return DistinguishIXFromCNOT(m, CNOT12()) }), ShouldEqual, 1000)
			So(m.Size(), ShouldEqual, 0)
		})

		Convey("One call suffices", func() {
			metrics, u := Counted(CNOT12())
			DistinguishIXFromCNOT(m, u)
			So(metrics.Invocations(), ShouldEqual, 1)
		})
	})
}

func TestDistinguishCNOTDirection(t *testing.T) {
	Convey("Given the CNOT-direction discriminator", t, func() {
		m := NewSeededMachine(53)

		Convey("Both hypotheses decide correctly on every run", func() {
			So(exact(1000, 0, func() int { return DistinguishCNOTDirection(m, CNOT12()) }), ShouldEqual, 1000)
			So(exact(1000, 1, func() int { return DistinguishCNOTDirection(m, CNOT21()) }), ShouldEqual, 1000)
			So(m.Size(), ShouldEqual, 0)
		})

		Convey("One call suffices", func() {
			metrics, u := Counted(CNOT21())
			DistinguishCNOTDirection(m, u)
			So(metrics.Invocations(), ShouldEqual, 1)
		})
	})
}

func TestDistinguishCNOTFromSwap(t *testing.T) {
	Convey("Given the CNOT-vs-SWAP discriminator", t, func() {
		m := NewSeededMachine(59)

		Convey("Both hypotheses decide correctly on every run", func() {
			So(exact(1000, 0, func() int { return DistinguishCNOTFromSwap(m, CNOT12()) }), ShouldEqual, 1000)
			So(exact(1000, 1, func() int { return DistinguishCNOTFromSwap(m, Swap()) }), ShouldEqual, 1000)
			So(m.Size(), ShouldEqual, 0)
		})

		Convey("One call suffices", func() {
			metrics, u := Counted(Swap())
			DistinguishCNOTFromSwap(m, u)
			So(metrics.Invocations(), ShouldEqual, 1)
		})
	})
}

func TestDistinguishTwoQubit(t *testing.T) {
	Convey("Given the four-way two-qubit discriminator", t, func() {
		m := NewSeededMachine(61)

		hypotheses := []struct {
			name string
			u    Unitary
			want int
		}{
			{"I", TwoQubitIdentity(), 0},
			{"CNOT₁₂", CNOT12(), 1},
			{"CNOT₂₁", CNOT21(), 2},
			{"SWAP", Swap(), 3},
		}

		for _, h := range hypotheses {
			h := h
			Convey("Hypothesis "+h.name+" is labeled correctly on every run", func() {
				got := exact(1000, h.want, func() int { return DistinguishTwoQubit(m, h.u) })
				So(got, ShouldEqual, 1000)
				So(m.Size(), ShouldEqual, 0)
			})
		}

		Convey("At most two calls are made", func() {
			for _, h := range hypotheses {
				metrics, u := Counted(h.u)
				DistinguishTwoQubit(m, u)
				So(metrics.Invocations(), ShouldBeLessThanOrEqualTo, 2)
			}
		})

		Convey("It agrees with the standalone protocols on their subsets", func() {
			for _, u := range []Unitary{CNOT12(), CNOT21()} {
				So(DistinguishTwoQubit(m, u), ShouldEqual, 1+DistinguishCNOTDirection(m, u))
			}
			for _, u := range []Unitary{CNOT12(), Swap()} {
				composite := DistinguishTwoQubit(m, u)
				standalone := DistinguishCNOTFromSwap(m, u)
				if standalone == 0 {
					So(composite, ShouldEqual, 1)
				} else {
					So(composite, ShouldEqual, 3)
				}
			}
		})
	})
}
