// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package parts provides a library of breadboard devices for breadsim:
// power sources, passives, 74HC-series logic and parallel memories.
//
// Device pin lists follow physical DIP order, power pins included, for
// the benefit of layout consumers. Logical bit order (A0, D0, ...) is
// decoded from the named pin fields and never from physical position.
//
package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// dip carries the name and physical pin list common to all devices.
type dip struct {
	name string
	pins []*breadsim.Pin
}

func (d *dip) Name() string               { return d.name }
func (d *dip) Pins() []*breadsim.Pin      { return d.pins }
func (d *dip) setPins(p ...*breadsim.Pin) { d.pins = p }

// in, out, bidir and power build pins of the corresponding role.
func in(name string) *breadsim.Pin    { return breadsim.NewPin(name, breadsim.Input) }
func out(name string) *breadsim.Pin   { return breadsim.NewPin(name, breadsim.Output) }
func bidir(name string) *breadsim.Pin { return breadsim.NewPin(name, breadsim.Bidirectional) }
func power(name string) *breadsim.Pin { return breadsim.NewPin(name, breadsim.Power) }

// inBus returns n input pins named prefix0 .. prefix<n-1>.
func inBus(prefix string, n int) []*breadsim.Pin {
	b := make([]*breadsim.Pin, n)
	for i := range b {
		b[i] = in(prefix + strconv.Itoa(i))
	}
	return b
}

// busValue reads a bus as an integer, least significant bit first. Each
// pin is read excluding its own driver entry, so a device may sample a
// bus it also drives (e.g. a memory's data pins) and see only what the
// rest of the circuit asserts.
func busValue(c *breadsim.Circuit, pins []*breadsim.Pin) int {
	v := 0
	for i, p := range pins {
		if c.StateExcluding(p).Level() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// driveBus asserts v on the bus, least significant bit first.
func driveBus(c *breadsim.Circuit, pins []*breadsim.Pin, v int) {
	for i, p := range pins {
		c.Drive(p, v&(1<<uint(i)) != 0)
	}
}

// releaseBus tri-states the whole bus. Buses are never partially
// updated: a device either drives or releases all of its output pins.
func releaseBus(c *breadsim.Circuit, pins []*breadsim.Pin) {
	for _, p := range pins {
		c.Release(p)
	}
}
