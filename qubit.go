package qdisc

/*
Qubit is an opaque handle to a single two-level resource owned by a Machine.
Handles are only meaningful against the machine that allocated them, and a
protocol owns its handles exclusively for the duration of one invocation.
*/
type Qubit struct {
	machine *Machine
	wire    int
}

// Wire returns the bit position this qubit occupies in the machine's
// basis-state index.
func (q Qubit) Wire() int {
	return q.wire
}

func (q Qubit) ownedBy(m *Machine) bool {
	return q.machine == m && q.wire >= 0 && q.wire < m.wf.Qubits()
}
