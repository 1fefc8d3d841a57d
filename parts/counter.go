// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC193 is a 4-bit synchronous up/down binary counter (74HC193
// shaped) with dual clock inputs.
//
// Priorities: CLR (active high, asynchronous) forces the value to 0
// regardless of every other input; ~LOAD (active low) then loads the
// data inputs combinationally; otherwise the value increments on a
// rising edge of UP (with DOWN held high) and decrements on a rising
// edge of DOWN (with UP held high), wrapping 15->0 and 0->15. UP and
// DOWN keep independent previous-level trackers, updated on every
// evaluation.
//
// ~CO pulses low exactly while the value is 15 and UP is low; ~BO pulses
// low exactly while the value is 0 and DOWN is low. The count outputs
// are always driven.
//
type HC193 struct {
	dip
	UP   *breadsim.Pin    // count-up clock, rising edge
	DOWN *breadsim.Pin    // count-down clock, rising edge
	CLR  *breadsim.Pin    // asynchronous clear, active high
	LOAD *breadsim.Pin    // ~LOAD, asynchronous parallel load, active low
	D    [4]*breadsim.Pin // parallel data
	Q    [4]*breadsim.Pin // count outputs
	CO   *breadsim.Pin    // ~CO, carry out, active low
	BO   *breadsim.Pin    // ~BO, borrow out, active low
	VCC  *breadsim.Pin
	GND  *breadsim.Pin

	value  uint8
	prevUp bool
	prevDn bool
}

// NewHC193 returns a 4-bit up/down counter.
//
//	Inputs: UP, DOWN, CLR, ~LOAD, D0-D3
//	Outputs: Q0-Q3, ~CO, ~BO (always driven)
//
func NewHC193(name string) *HC193 {
	n := &HC193{
		UP:   in("UP"),
		DOWN: in("DOWN"),
		CLR:  in("CLR"),
		LOAD: in("~LOAD"),
		CO:   out("~CO"),
		BO:   out("~BO"),
		VCC:  power("VCC"),
		GND:  power("GND"),
	}
	n.name = name
	for i := range n.D {
		n.D[i] = in("D" + strconv.Itoa(i))
		n.Q[i] = out("Q" + strconv.Itoa(i))
	}
	// DIP-16
	n.setPins(n.D[1], n.Q[1], n.Q[0], n.DOWN, n.UP, n.Q[2], n.Q[3], n.GND,
		n.D[3], n.D[2], n.LOAD, n.CO, n.BO, n.CLR, n.D[0], n.VCC)
	return n
}

// Evaluate implements breadsim.Device.
//
func (n *HC193) Evaluate(c *breadsim.Circuit) {
	up := c.Level(n.UP)
	dn := c.Level(n.DOWN)
	switch {
	case c.Level(n.CLR):
		n.value = 0
	case !c.Level(n.LOAD):
		n.value = uint8(busValue(c, n.D[:])) & 0x0F
	default:
		if up && !n.prevUp && dn {
			n.value = (n.value + 1) & 0x0F
		}
		if dn && !n.prevDn && up {
			n.value = (n.value - 1) & 0x0F
		}
	}
	n.prevUp = up
	n.prevDn = dn

	driveBus(c, n.Q[:], int(n.value))
	c.Drive(n.CO, !(n.value == 15 && !up))
	c.Drive(n.BO, !(n.value == 0 && !dn))
}

// Value returns the current count.
//
func (n *HC193) Value() uint8 { return n.value }

// An HC161 is a 4-bit synchronous presettable counter (74HC161 shaped)
// with a single clock.
//
// ~CLR (active low) clears asynchronously. On a rising CLK edge, ~LOAD
// low loads the data inputs; otherwise the value increments while both
// ENP and ENT are high. RCO is high exactly while the value is 15 and
// ENT is high, for ripple cascading.
//
type HC161 struct {
	dip
	CLR  *breadsim.Pin // ~CLR, asynchronous clear, active low
	CLK  *breadsim.Pin
	LOAD *breadsim.Pin // ~LOAD, synchronous load, active low
	ENP  *breadsim.Pin
	ENT  *breadsim.Pin
	D    [4]*breadsim.Pin
	Q    [4]*breadsim.Pin
	RCO  *breadsim.Pin
	VCC  *breadsim.Pin
	GND  *breadsim.Pin

	value   uint8
	prevCLK bool
}

// NewHC161 returns a 4-bit presettable counter.
//
//	Inputs: CLK, ~CLR, ~LOAD, ENP, ENT, D0-D3
//	Outputs: Q0-Q3, RCO (always driven)
//
func NewHC161(name string) *HC161 {
	n := &HC161{
		CLR:  in("~CLR"),
		CLK:  in("CLK"),
		LOAD: in("~LOAD"),
		ENP:  in("ENP"),
		ENT:  in("ENT"),
		RCO:  out("RCO"),
		VCC:  power("VCC"),
		GND:  power("GND"),
	}
	n.name = name
	for i := range n.D {
		n.D[i] = in("D" + strconv.Itoa(i))
		n.Q[i] = out("Q" + strconv.Itoa(i))
	}
	// DIP-16
	n.setPins(n.CLR, n.CLK, n.D[0], n.D[1], n.D[2], n.D[3], n.ENP, n.GND,
		n.LOAD, n.ENT, n.Q[3], n.Q[2], n.Q[1], n.Q[0], n.RCO, n.VCC)
	return n
}

// Evaluate implements breadsim.Device.
//
func (n *HC161) Evaluate(c *breadsim.Circuit) {
	clk := c.Level(n.CLK)
	switch {
	case !c.Level(n.CLR):
		n.value = 0
	case clk && !n.prevCLK:
		if !c.Level(n.LOAD) {
			n.value = uint8(busValue(c, n.D[:])) & 0x0F
		} else if c.Level(n.ENP) && c.Level(n.ENT) {
			n.value = (n.value + 1) & 0x0F
		}
	}
	n.prevCLK = clk

	driveBus(c, n.Q[:], int(n.value))
	c.Drive(n.RCO, n.value == 15 && c.Level(n.ENT))
}

// Value returns the current count.
//
func (n *HC161) Value() uint8 { return n.value }
