package qdisc

import "sync"

/*
trialWorker runs a slice of the estimator's trial budget on its own
machine. Trials are independent and the worker only reports a hit count,
so results aggregate the same way regardless of scheduling.
*/
type trialWorker struct {
	machine *Machine
	trials  int
	hits    int
}

func (w *trialWorker) run(wg *sync.WaitGroup, prepare, unprepare Preparation, qubits int) {
	defer wg.Done()

	for i := 0; i < w.trials; i++ {
		if w.trial(prepare, unprepare, qubits) {
			w.hits++
		}
	}
}

// trial prepares the first state, undoes the second preparation, and
// reports whether every qubit measured back in the default state, the
// event whose frequency estimates the squared overlap.
func (w *trialWorker) trial(prepare, unprepare Preparation, qubits int) bool {
	qs := w.machine.AllocateMany(qubits)

	prepare(w.machine, qs)
	unprepare(w.machine, qs)

	hit := true
	for _, q := range qs {
		if w.machine.Measure(q) == One {
			hit = false
		}
	}

	for _, q := range qs {
		w.machine.Reset(q)
	}
	w.machine.Release(qs...)

	return hit
}
