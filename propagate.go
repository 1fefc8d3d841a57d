// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

import (
	"github.com/sirupsen/logrus"
)

// MaxPasses bounds the relaxation loop of a single Propagate call.
// Feedback through bidirectional passives and latch outputs means there
// is no acyclic evaluation order; the bound guards against a genuinely
// oscillating circuit (e.g. an inverter feeding itself) without hanging.
//
const MaxPasses = 100

// A Propagator relaxes a circuit to a fixed point.
//
type Propagator struct {
	c   *Circuit
	log logrus.FieldLogger
}

// NewPropagator returns a propagator for c, logging through the logrus
// standard logger.
//
func NewPropagator(c *Circuit) *Propagator {
	return &Propagator{c: c, log: logrus.StandardLogger()}
}

// SetLogger redirects the propagator's diagnostics.
//
func (p *Propagator) SetLogger(l logrus.FieldLogger) {
	p.log = l
}

// Circuit returns the circuit being propagated.
//
func (p *Propagator) Circuit() *Circuit { return p.c }

// Propagate evaluates every device in registration order, repeatedly,
// until no net changes state between passes, and reports whether the
// circuit converged within MaxPasses.
//
// Non-convergence is not an error: a warning is logged and the circuit is
// left in its last-evaluated state.
//
func (p *Propagator) Propagate() bool {
	prev := p.Snapshot()
	for i := 0; i < MaxPasses; i++ {
		for _, d := range p.c.Devices() {
			d.Evaluate(p.c)
		}
		cur := p.Snapshot()
		if snapshotsEqual(prev, cur) {
			return true
		}
		prev = cur
	}
	p.log.WithFields(logrus.Fields{
		"passes": MaxPasses,
		"nets":   len(prev),
	}).Warn("propagation did not converge")
	return false
}

// Snapshot returns the resolved state of every net, keyed by net id.
//
func (p *Propagator) Snapshot() map[NetID]State {
	m := make(map[NetID]State, len(p.c.nets))
	for id, n := range p.c.nets {
		m[id] = n.Resolve()
	}
	return m
}

// nets are neither created nor destroyed during propagation, so equal
// key sets can be assumed.
func snapshotsEqual(a, b map[NetID]State) bool {
	for id, s := range a {
		if b[id] != s {
			return false
		}
	}
	return true
}
