// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC283 is a 4-bit binary full adder with fast carry (74HC283
// shaped). Purely combinational: S = A + B + C0 on every evaluation,
// with C4 the carry out. Outputs are always driven.
//
type HC283 struct {
	dip
	A   [4]*breadsim.Pin
	B   [4]*breadsim.Pin
	C0  *breadsim.Pin // carry in
	S   [4]*breadsim.Pin
	C4  *breadsim.Pin // carry out
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewHC283 returns a 4-bit full adder.
//
//	Inputs: A1-A4, B1-B4, C0
//	Outputs: S1-S4, C4 (always driven)
//
func NewHC283(name string) *HC283 {
	a := &HC283{
		C0:  in("C0"),
		C4:  out("C4"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	a.name = name
	for i := range a.A {
		u := strconv.Itoa(i + 1)
		a.A[i] = in("A" + u)
		a.B[i] = in("B" + u)
		a.S[i] = out("S" + u)
	}
	// DIP-16
	a.setPins(a.S[1], a.B[1], a.A[1], a.S[0], a.A[0], a.B[0], a.C0, a.GND,
		a.C4, a.S[3], a.B[3], a.A[3], a.S[2], a.A[2], a.B[2], a.VCC)
	return a
}

// Evaluate implements breadsim.Device.
//
func (a *HC283) Evaluate(c *breadsim.Circuit) {
	sum := busValue(c, a.A[:]) + busValue(c, a.B[:])
	if c.Level(a.C0) {
		sum++
	}
	driveBus(c, a.S[:], sum)
	c.Drive(a.C4, sum&0x10 != 0)
}
