package qdisc

import (
	"errors"
	"math"
	"sync"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/stat"
)

// ErrAngleOutOfWindow is raised when a threshold protocol is probed at an
// angle outside the window where its hypotheses stay separable.
var ErrAngleOutOfWindow = errors.New("qdisc: angle outside the configured discrimination window")

// Family C: statistical threshold discrimination. Parameterized rotation
// families cannot be separated exactly with a bounded circuit, but away
// from the isolated angles where they coincide their output states have
// overlap strictly below one, so enough independent trials always tell
// them apart.

// Preparation is a state-preparation procedure over a freshly allocated
// register.
type Preparation func(m *Machine, qs []Qubit)

/*
OverlapEstimator estimates |⟨a|b⟩|² for two prepared states by repeated
independent trials: prepare |a⟩, run the adjoint preparation of |b⟩, and
count how often the register measures back to all zeros. The trial budget
governs confidence, not circuit depth: a perfect match converges on
exactly 1 while anything else leaks misses at a rate set by the true
overlap.
*/
type OverlapEstimator struct {
	Trials  int
	Workers int
	seed    uint64
}

func NewOverlapEstimator(cfg *Config) *OverlapEstimator {
	workers := cfg.EstimatorWorkers
	if workers < 1 {
		workers = 1
	}
	return &OverlapEstimator{
		Trials:  cfg.EstimatorTrials,
		Workers: workers,
		seed:    cfg.Seed,
	}
}

/*
Estimate fans the trial budget out over the worker set and returns the
weighted mean hit fraction. Workers run on private machines and only
count hits, so aggregation is order-independent.
*/
func (e *OverlapEstimator) Estimate(prepare, unprepare Preparation, qubits int) float64 {
	errnie.Info(
		"OverlapEstimator.Estimate - qubits %v, trials %v, workers %v",
		qubits,
		e.Trials,
		e.Workers,
	)

	workers := make([]*trialWorker, e.Workers)
	share := e.Trials / e.Workers
	for i := range workers {
		trials := share
		if i == e.Workers-1 {
			trials = e.Trials - share*(e.Workers-1)
		}
		machine := NewMachine()
		if e.seed != 0 {
			machine = NewSeededMachine(e.seed + uint64(i))
		}
		workers[i] = &trialWorker{machine: machine, trials: trials}
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go w.run(&wg, prepare, unprepare, qubits)
	}
	wg.Wait()

	fractions := make([]float64, 0, len(workers))
	weights := make([]float64, 0, len(workers))
	for _, w := range workers {
		if w.trials == 0 {
			continue
		}
		fractions = append(fractions, float64(w.hits)/float64(w.trials))
		weights = append(weights, float64(w.trials))
	}

	return stat.Mean(fractions, weights)
}

/*
DistinguishRzRy identifies an unknown parameterized family known to be
either the Rz rotations or the Ry rotations, probed at a fixed angle
inside the configured window.

Returns 0 for Rz and 1 for Ry, with error probability shrinking as the
trial budget grows.

Rz only phases |0⟩ while Ry rotates real weight into |1⟩, so the output
state is compared against the Rz reference: a perfect overlap rounds
down to one, any leakage floors to zero, and one minus that is the label.
*/
func DistinguishRzRy(cfg *Config, u AngleUnitary, theta float64) int {
	mustBeInWindow(cfg, theta)

	prepare := func(m *Machine, qs []Qubit) {
		u(theta).Apply(m, qs[0])
	}
	unprepare := func(m *Machine, qs []Qubit) {
		Rz(theta).Adjoint().Apply(m, qs[0])
	}

	overlap := NewOverlapEstimator(cfg).Estimate(prepare, unprepare, 1)
	return 1 - int(math.Floor(overlap+releaseTolerance))
}

/*
DistinguishRzR1Stat identifies an unknown parameterized family known to
be either the Rz rotations or the R1 rotations, by the same threshold
decision as DistinguishRzRy.

Returns 0 for Rz and 1 for R1.

Uncontrolled, the two families differ only by a global phase and no
statistic can separate them, so the compared preparations run the
controlled form against an entangled ancilla: there the phase is
relative, and the R1 hypothesis leaves the pair measurably off the Rz
reference state.
*/
func DistinguishRzR1Stat(cfg *Config, u AngleUnitary, theta float64) int {
	mustBeInWindow(cfg, theta)

	prepare := func(m *Machine, qs []Qubit) {
		Hadamard().Apply(m, qs[0])
		PauliX().Apply(m, qs[1])
		u(theta).Controlled().Apply(m, qs[0], qs[1])
	}
	unprepare := func(m *Machine, qs []Qubit) {
		Rz(theta).Adjoint().Controlled().Apply(m, qs[0], qs[1])
		PauliX().Apply(m, qs[1])
		Hadamard().Apply(m, qs[0])
	}

	overlap := NewOverlapEstimator(cfg).Estimate(prepare, unprepare, 2)
	return 1 - int(math.Floor(overlap+releaseTolerance))
}

func mustBeInWindow(cfg *Config, theta float64) {
	if theta < cfg.MinAngle || theta > cfg.MaxAngle {
		panic(ErrAngleOutOfWindow)
	}
}
