// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC574 is an 8-bit edge-triggered register (74HC574 shaped).
//
// A rising edge on CLK captures the D inputs. The previous clock level is
// updated unconditionally on every evaluation, so repeated passes with an
// unchanged clock never retrigger a capture, and the next capture
// requires the clock to return low and rise again. The Q outputs drive
// the register value while ~OE is low and are tri-stated otherwise.
//
// The physical Q pin order is reversed versus the logical index (as on
// the real DIP-20 package); the Q field is always logically indexed.
//
type HC574 struct {
	dip
	OE  *breadsim.Pin // ~OE, output enable, active low
	CLK *breadsim.Pin
	D   [8]*breadsim.Pin
	Q   [8]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin

	value   uint8
	prevCLK bool
}

// NewHC574 returns an 8-bit edge-triggered register.
//
//	Inputs: D0-D7, CLK, ~OE
//	Outputs: Q0-Q7 (tri-state)
//
func NewHC574(name string) *HC574 {
	r := &HC574{
		OE:  in("~OE"),
		CLK: in("CLK"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	r.name = name
	for i := range r.D {
		r.D[i] = in("D" + strconv.Itoa(i))
		r.Q[i] = out("Q" + strconv.Itoa(i))
	}
	r.setPins(r.OE,
		r.D[0], r.D[1], r.D[2], r.D[3], r.D[4], r.D[5], r.D[6], r.D[7],
		r.GND, r.CLK,
		r.Q[7], r.Q[6], r.Q[5], r.Q[4], r.Q[3], r.Q[2], r.Q[1], r.Q[0],
		r.VCC)
	return r
}

// Evaluate implements breadsim.Device.
//
func (r *HC574) Evaluate(c *breadsim.Circuit) {
	clk := c.Level(r.CLK)
	if clk && !r.prevCLK {
		r.value = uint8(busValue(c, r.D[:]))
	}
	r.prevCLK = clk

	if !c.Level(r.OE) {
		driveBus(c, r.Q[:], int(r.value))
	} else {
		releaseBus(c, r.Q[:])
	}
}

// Value returns the registered value.
//
func (r *HC574) Value() uint8 { return r.value }
