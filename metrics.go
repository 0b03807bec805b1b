package qdisc

import (
	"sync"
)

/*
CallMetrics counts how many times an unknown operation was invoked, broken
down by the form of the invocation. The direct, adjoint and controlled
forms derived from one counted operation all feed the same metrics value,
so the total is exactly the number a call budget constrains.
*/
type CallMetrics struct {
	mu     sync.RWMutex
	byForm map[string]int64
	total  int64
}

func newCallMetrics() *CallMetrics {
	return &CallMetrics{byForm: make(map[string]int64)}
}

func (cm *CallMetrics) record(form string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.byForm[form]++
	cm.total++
}

// Invocations returns the total number of applications across every form.
func (cm *CallMetrics) Invocations() int64 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.total
}

// Export returns a snapshot of the per-form counts.
func (cm *CallMetrics) Export() map[string]int64 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	out := make(map[string]int64, len(cm.byForm))
	for form, n := range cm.byForm {
		out[form] = n
	}
	return out
}

// Counted wraps a unitary so every application of it, or of any adjoint or
// controlled form derived from it, is tallied. The wrapper is behaviorally
// transparent, which keeps the budget tests honest: protocols cannot tell a
// counted hypothesis from a bare one.
func Counted(u Unitary) (*CallMetrics, Unitary) {
	cm := newCallMetrics()
	return cm, &counted{metrics: cm, inner: u}
}

// CountedAngle is Counted for a parameterized hypothesis family; every
// unitary drawn from the family shares one metrics value.
func CountedAngle(u AngleUnitary) (*CallMetrics, AngleUnitary) {
	cm := newCallMetrics()
	return cm, func(theta float64) Unitary {
		return &counted{metrics: cm, inner: u(theta)}
	}
}

type counted struct {
	metrics  *CallMetrics
	inner    Unitary
	adjoint  bool
	controls int
}

func (c *counted) Arity() int {
	return c.inner.Arity()
}

func (c *counted) Apply(m *Machine, qs ...Qubit) {
	c.metrics.record(c.form())
	c.inner.Apply(m, qs...)
}

func (c *counted) Adjoint() Unitary {
	return &counted{
		metrics:  c.metrics,
		inner:    c.inner.Adjoint(),
		adjoint:  !c.adjoint,
		controls: c.controls,
	}
}

func (c *counted) Controlled() Unitary {
	return &counted{
		metrics:  c.metrics,
		inner:    c.inner.Controlled(),
		adjoint:  c.adjoint,
		controls: c.controls + 1,
	}
}

func (c *counted) String() string {
	return c.inner.String()
}

func (c *counted) form() string {
	switch {
	case c.adjoint && c.controls > 0:
		return "controlled adjoint"
	case c.controls > 0:
		return "controlled"
	case c.adjoint:
		return "adjoint"
	default:
		return "direct"
	}
}
