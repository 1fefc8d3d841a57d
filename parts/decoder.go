// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC138 is a combinational 3-to-8 decoder (74HC138 shaped), active-low
// outputs. When enabled (G1 high, ~G2A low, ~G2B low, all must hold) the
// selected output is driven low and the other seven high; when disabled
// all eight are driven high. Purely combinational, no internal state.
//
type HC138 struct {
	dip
	A   [3]*breadsim.Pin // A0-A2, address
	G1  *breadsim.Pin    // enable, active high
	G2A *breadsim.Pin    // ~G2A, enable, active low
	G2B *breadsim.Pin    // ~G2B, enable, active low
	Y   [8]*breadsim.Pin // ~Y0-~Y7, active low
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewHC138 returns a combinational 3-to-8 decoder.
//
//	Inputs: A0-A2, G1, ~G2A, ~G2B
//	Outputs: ~Y0-~Y7 (always driven)
//
func NewHC138(name string) *HC138 {
	d := &HC138{
		G1:  in("G1"),
		G2A: in("~G2A"),
		G2B: in("~G2B"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	d.name = name
	for i := range d.A {
		d.A[i] = in("A" + strconv.Itoa(i))
	}
	for i := range d.Y {
		d.Y[i] = out("~Y" + strconv.Itoa(i))
	}
	d.setPins(d.A[0], d.A[1], d.A[2], d.G2A, d.G2B, d.G1,
		d.Y[7], d.GND,
		d.Y[6], d.Y[5], d.Y[4], d.Y[3], d.Y[2], d.Y[1], d.Y[0],
		d.VCC)
	return d
}

// Evaluate implements breadsim.Device.
//
func (d *HC138) Evaluate(c *breadsim.Circuit) {
	en := c.Level(d.G1) && !c.Level(d.G2A) && !c.Level(d.G2B)
	decodeLow(c, d.Y[:], busValue(c, d.A[:]), en)
}

// An HC137 is a 3-to-8 decoder with address latches (74HC137 shaped),
// active-low outputs.
//
// The address is tracked live while ~GL is low (transparent), captured on
// its rising transition and held while it stays high. Decoding uses the
// latched address; the enable (G1 high, ~G2 low) is evaluated fresh every
// pass.
//
type HC137 struct {
	dip
	A   [3]*breadsim.Pin
	GL  *breadsim.Pin // ~GL, address latch enable, transparent while low
	G1  *breadsim.Pin // enable, active high
	G2  *breadsim.Pin // ~G2, enable, active low
	Y   [8]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin

	addr   int
	prevGL bool
}

// NewHC137 returns a latched-address 3-to-8 decoder.
//
//	Inputs: A0-A2, ~GL, G1, ~G2
//	Outputs: ~Y0-~Y7 (always driven)
//
func NewHC137(name string) *HC137 {
	d := &HC137{
		GL:  in("~GL"),
		G1:  in("G1"),
		G2:  in("~G2"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	d.name = name
	for i := range d.A {
		d.A[i] = in("A" + strconv.Itoa(i))
	}
	for i := range d.Y {
		d.Y[i] = out("~Y" + strconv.Itoa(i))
	}
	d.setPins(d.A[0], d.A[1], d.A[2], d.GL, d.G2, d.G1,
		d.Y[7], d.GND,
		d.Y[6], d.Y[5], d.Y[4], d.Y[3], d.Y[2], d.Y[1], d.Y[0],
		d.VCC)
	return d
}

// Evaluate implements breadsim.Device.
//
func (d *HC137) Evaluate(c *breadsim.Circuit) {
	gl := c.Level(d.GL)
	// transparent while low, one capture on the pass where ~GL has just
	// risen
	if !gl || !d.prevGL {
		d.addr = busValue(c, d.A[:])
	}
	d.prevGL = gl

	en := c.Level(d.G1) && !c.Level(d.G2)
	decodeLow(c, d.Y[:], d.addr, en)
}

// An HC154 is a combinational 4-to-16 decoder (74HC154 shaped),
// active-low outputs, enabled while both ~G1 and ~G2 are low.
//
type HC154 struct {
	dip
	A   [4]*breadsim.Pin
	G1  *breadsim.Pin // ~G1, enable, active low
	G2  *breadsim.Pin // ~G2, enable, active low
	Y   [16]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewHC154 returns a combinational 4-to-16 decoder.
//
//	Inputs: A0-A3, ~G1, ~G2
//	Outputs: ~Y0-~Y15 (always driven)
//
func NewHC154(name string) *HC154 {
	d := &HC154{
		G1:  in("~G1"),
		G2:  in("~G2"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	d.name = name
	for i := range d.A {
		d.A[i] = in("A" + strconv.Itoa(i))
	}
	for i := range d.Y {
		d.Y[i] = out("~Y" + strconv.Itoa(i))
	}
	d.setPins(
		d.Y[0], d.Y[1], d.Y[2], d.Y[3], d.Y[4], d.Y[5], d.Y[6], d.Y[7],
		d.Y[8], d.Y[9], d.Y[10], d.GND,
		d.Y[11], d.Y[12], d.Y[13], d.Y[14], d.Y[15],
		d.G2, d.G1,
		d.A[3], d.A[2], d.A[1], d.A[0],
		d.VCC)
	return d
}

// Evaluate implements breadsim.Device.
//
func (d *HC154) Evaluate(c *breadsim.Circuit) {
	en := !c.Level(d.G1) && !c.Level(d.G2)
	decodeLow(c, d.Y[:], busValue(c, d.A[:]), en)
}

// decodeLow drives the selected output low and all others high; with en
// false, all outputs are driven high.
func decodeLow(c *breadsim.Circuit, y []*breadsim.Pin, idx int, en bool) {
	for i, p := range y {
		c.Drive(p, !(en && i == idx))
	}
}
