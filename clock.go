// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

// An Edge is a clock transition.
//
type Edge uint8

// Clock edges.
//
const (
	FallingEdge Edge = iota
	RisingEdge
)

func (e Edge) String() string {
	if e == RisingEdge {
		return "rising"
	}
	return "falling"
}

// A ClockDriver drives one net as a square-wave clock source. It starts
// Low; each Tick flips the level. It is a Device so that propagation
// passes keep the current level asserted.
//
type ClockDriver struct {
	name  string
	out   *Pin
	level bool
	ticks uint64
}

// NewClockDriver returns a clock driver with a single output pin named
// "CLK". Connect the pin and Add the driver to the circuit like any
// other device.
//
func NewClockDriver(name string) *ClockDriver {
	return &ClockDriver{name: name, out: NewPin("CLK", Output)}
}

// Name returns the driver's name.
//
func (ck *ClockDriver) Name() string { return ck.name }

// Pins returns the driver's pin list: just the clock output.
//
func (ck *ClockDriver) Pins() []*Pin { return []*Pin{ck.out} }

// Pin returns the clock output pin.
//
func (ck *ClockDriver) Pin() *Pin { return ck.out }

// Evaluate re-asserts the current clock level.
//
func (ck *ClockDriver) Evaluate(c *Circuit) {
	c.Drive(ck.out, ck.level)
}

// Tick flips the clock level, drives the net and returns the edge that
// just occurred.
//
func (ck *ClockDriver) Tick(c *Circuit) Edge {
	ck.level = !ck.level
	ck.ticks++
	c.Drive(ck.out, ck.level)
	if ck.level {
		return RisingEdge
	}
	return FallingEdge
}

// Ticks returns the number of half-cycles driven so far.
//
func (ck *ClockDriver) Ticks() uint64 { return ck.ticks }

// Level returns the current clock level.
//
func (ck *ClockDriver) Level() bool { return ck.level }
