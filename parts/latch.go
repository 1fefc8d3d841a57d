// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC573 is an 8-bit transparent latch (74HC573 shaped).
//
// While LE is high the latched value tracks the D inputs on every
// evaluation; the value present when LE falls is held until LE rises
// again. The Q outputs drive the latched value while ~OE is low and are
// tri-stated otherwise.
//
type HC573 struct {
	dip
	OE  *breadsim.Pin // ~OE, output enable, active low
	LE  *breadsim.Pin // latch enable, transparent while high
	D   [8]*breadsim.Pin
	Q   [8]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin

	value  uint8
	prevLE bool
}

// NewHC573 returns an 8-bit transparent latch.
//
//	Inputs: D0-D7, LE, ~OE
//	Outputs: Q0-Q7 (tri-state)
//
func NewHC573(name string) *HC573 {
	l := &HC573{
		OE:  in("~OE"),
		LE:  in("LE"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	l.name = name
	for i := range l.D {
		l.D[i] = in("D" + strconv.Itoa(i))
		l.Q[i] = out("Q" + strconv.Itoa(i))
	}
	// DIP-20; the Q bank ascends the opposite way to the D bank.
	l.setPins(l.OE,
		l.D[0], l.D[1], l.D[2], l.D[3], l.D[4], l.D[5], l.D[6], l.D[7],
		l.GND, l.LE,
		l.Q[7], l.Q[6], l.Q[5], l.Q[4], l.Q[3], l.Q[2], l.Q[1], l.Q[0],
		l.VCC)
	return l
}

// Evaluate implements breadsim.Device.
//
func (l *HC573) Evaluate(c *breadsim.Circuit) {
	le := c.Level(l.LE)
	// transparent while high, one final capture on the pass where LE
	// has just fallen
	if le || l.prevLE {
		l.value = uint8(busValue(c, l.D[:]))
	}
	l.prevLE = le

	if !c.Level(l.OE) {
		driveBus(c, l.Q[:], int(l.value))
	} else {
		releaseBus(c, l.Q[:])
	}
}

// Value returns the latched value.
//
func (l *HC573) Value() uint8 { return l.value }
