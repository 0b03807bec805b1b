package qdisc

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func statConfig(trials int, seed uint64) *Config {
	cfg := NewConfig()
	cfg.EstimatorTrials = trials
	cfg.Seed = seed
	return cfg
}

func TestOverlapEstimator(t *testing.T) {
	Convey("Given the overlap estimator", t, func() {
		plus := func(m *Machine, qs []Qubit) { Hadamard().Apply(m, qs[0]) }

		Convey("Identical preparations estimate overlap 1", func() {
			e := NewOverlapEstimator(statConfig(2000, 71))
			So(e.Estimate(plus, plus, 1), ShouldEqual, 1.0)
		})

		Convey("Orthogonal preparations estimate overlap 0", func() {
			e := NewOverlapEstimator(statConfig(2000, 73))
			flip := func(m *Machine, qs []Qubit) { PauliX().Apply(m, qs[0]) }
			none := func(m *Machine, qs []Qubit) {}

			So(e.Estimate(flip, none, 1), ShouldEqual, 0.0)
		})

		Convey("|+⟩ against |0⟩ estimates overlap near one half", func() {
			e := NewOverlapEstimator(statConfig(20000, 79))
			none := func(m *Machine, qs []Qubit) {}

			So(e.Estimate(plus, none, 1), ShouldAlmostEqual, 0.5, 0.02)
		})
	})
}

func TestDistinguishRzRy(t *testing.T) {
	Convey("Given the Rz-vs-Ry threshold discriminator at θ = π/2", t, func() {
		theta := math.Pi / 2

		Convey("Rz is labeled 0 across repeated runs", func() {
			for run := 0; run < 20; run++ {
				cfg := statConfig(2000, 100+uint64(run))
				So(DistinguishRzRy(cfg, RzFamily, theta), ShouldEqual, 0)
			}
		})

		Convey("Ry is labeled 1 across repeated runs", func() {
			for run := 0; run < 20; run++ {
				cfg := statConfig(2000, 200+uint64(run))
				So(DistinguishRzRy(cfg, RyFamily, theta), ShouldEqual, 1)
			}
		})

		Convey("Angles outside the window are rejected", func() {
			cfg := statConfig(10, 1)
			So(func() { DistinguishRzRy(cfg, RzFamily, 0.001*math.Pi) }, ShouldPanicWith, ErrAngleOutOfWindow)
		})
	})
}

func TestDistinguishRzR1Stat(t *testing.T) {
	Convey("Given the statistical Rz-vs-R1 discriminator at θ = π/2", t, func() {
		theta := math.Pi / 2

		Convey("Both hypothesis families decide correctly across runs", func() {
			for run := 0; run < 20; run++ {
				So(DistinguishRzR1Stat(statConfig(2000, 300+uint64(run)), RzFamily, theta), ShouldEqual, 0)
				So(DistinguishRzR1Stat(statConfig(2000, 400+uint64(run)), R1Family, theta), ShouldEqual, 1)
			}
		})
	})
}

func TestThresholdMonotonicity(t *testing.T) {
	Convey("Given a narrow angle near the edge of the window", t, func() {
		theta := 0.05 * math.Pi

		// At this angle a single Ry trial leaks with probability
		// sin²(θ/2) ≈ 0.006, so ten trials usually miss it and twenty
		// thousand essentially never do.
		misclassified := func(trials int, base uint64) int {
			wrong := 0
			for run := 0; run < 40; run++ {
				cfg := statConfig(trials, base+uint64(run))
				if DistinguishRzRy(cfg, RyFamily, theta) != 1 {
					wrong++
				}
			}
			return wrong
		}

		Convey("Raising the trial budget strictly lowers the error rate", func() {
			small := misclassified(10, 500)
			large := misclassified(20000, 900)

			So(small, ShouldBeGreaterThan, large)
			So(large, ShouldEqual, 0)
		})
	})
}
