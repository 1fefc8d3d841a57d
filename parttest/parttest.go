// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package parttest provides instrumentation devices and a small harness
// for exercising breadsim parts in tests: a Source stands in for
// whatever would drive the inputs of the device under test, a Probe
// stands in for whatever would read its outputs.
//
package parttest

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// A Source is a test-controlled driver. Each of its pins can be set to
// assert a level or be released; the setting takes effect on the next
// propagation.
//
type Source struct {
	name   string
	pins   []*breadsim.Pin
	levels []breadsim.State
}

// NewSource returns a source with n output pins named S0 .. S<n-1>, all
// initially released.
//
func NewSource(name string, n int) *Source {
	s := &Source{
		name:   name,
		pins:   make([]*breadsim.Pin, n),
		levels: make([]breadsim.State, n),
	}
	for i := range s.pins {
		s.pins[i] = breadsim.NewPin("S"+strconv.Itoa(i), breadsim.Output)
	}
	return s
}

// Name implements breadsim.Device.
//
func (s *Source) Name() string { return s.name }

// Pins implements breadsim.Device.
//
func (s *Source) Pins() []*breadsim.Pin { return s.pins }

// Pin returns output pin i.
//
func (s *Source) Pin(i int) *breadsim.Pin { return s.pins[i] }

// Set makes pin i assert the given level.
//
func (s *Source) Set(i int, high bool) {
	if high {
		s.levels[i] = breadsim.High
	} else {
		s.levels[i] = breadsim.Low
	}
}

// Release makes pin i float.
//
func (s *Source) Release(i int) {
	s.levels[i] = breadsim.Float
}

// SetValue asserts v across all pins, least significant bit on pin 0.
//
func (s *Source) SetValue(v uint64) {
	for i := range s.pins {
		s.Set(i, v&(1<<uint(i)) != 0)
	}
}

// Evaluate implements breadsim.Device.
//
func (s *Source) Evaluate(c *breadsim.Circuit) {
	for i, p := range s.pins {
		switch s.levels[i] {
		case breadsim.High:
			c.Drive(p, true)
		case breadsim.Low:
			c.Drive(p, false)
		default:
			c.Release(p)
		}
	}
}

// A Probe is a sense-only device recording the state of its pins on
// every evaluation.
//
type Probe struct {
	name   string
	pins   []*breadsim.Pin
	states []breadsim.State
}

// NewProbe returns a probe with n input pins named P0 .. P<n-1>.
//
func NewProbe(name string, n int) *Probe {
	p := &Probe{
		name:   name,
		pins:   make([]*breadsim.Pin, n),
		states: make([]breadsim.State, n),
	}
	for i := range p.pins {
		p.pins[i] = breadsim.NewPin("P"+strconv.Itoa(i), breadsim.Input)
	}
	return p
}

// Name implements breadsim.Device.
//
func (p *Probe) Name() string { return p.name }

// Pins implements breadsim.Device.
//
func (p *Probe) Pins() []*breadsim.Pin { return p.pins }

// Pin returns input pin i.
//
func (p *Probe) Pin(i int) *breadsim.Pin { return p.pins[i] }

// Evaluate implements breadsim.Device.
//
func (p *Probe) Evaluate(c *breadsim.Circuit) {
	for i, pin := range p.pins {
		p.states[i] = c.State(pin)
	}
}

// State returns the state of pin i as of the last evaluation.
//
func (p *Probe) State(i int) breadsim.State { return p.states[i] }

// Value returns the recorded states as an integer, pin 0 the least
// significant bit; Float and Conflict read as 0.
//
func (p *Probe) Value() uint64 {
	var v uint64
	for i := range p.states {
		if p.states[i].Level() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// A Harness bundles a circuit and a propagator for part tests.
//
type Harness struct {
	C *breadsim.Circuit
	P *breadsim.Propagator
}

// NewHarness returns a harness around an empty circuit.
//
func NewHarness() *Harness {
	c := breadsim.New()
	return &Harness{C: c, P: breadsim.NewPropagator(c)}
}

// Add registers a device, see Circuit.Add.
//
func (h *Harness) Add(d breadsim.Device) breadsim.Device { return h.C.Add(d) }

// Connect joins pins, see Circuit.Connect.
//
func (h *Harness) Connect(pins ...*breadsim.Pin) { h.C.Connect(pins...) }

// Propagate relaxes the circuit, see Propagator.Propagate.
//
func (h *Harness) Propagate() bool { return h.P.Propagate() }

// Pulse drives source pin i through a full low-high-low pulse, with a
// propagation after each transition, producing one rising and one
// falling edge at the device under test.
//
func (h *Harness) Pulse(s *Source, i int) {
	s.Set(i, false)
	h.Propagate()
	s.Set(i, true)
	h.Propagate()
	s.Set(i, false)
	h.Propagate()
}

// BusValue reads the given pins as an integer, least significant bit
// first, using their resolved net states.
//
func (h *Harness) BusValue(pins ...*breadsim.Pin) uint64 {
	var v uint64
	for i, p := range pins {
		if h.C.Level(p) {
			v |= 1 << uint(i)
		}
	}
	return v
}
