// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// An HC245 is an 8-bit bus transceiver (74HC245 shaped).
//
// While ~OE is low it forwards levels from the A bus to the B bus when
// DIR is high and from B to A when DIR is low; the sending side is
// sampled excluding the transceiver's own drives, and the whole receiving
// side is driven as a unit. While ~OE is high both buses are released.
//
type HC245 struct {
	dip
	DIR *breadsim.Pin // direction: high A->B, low B->A
	OE  *breadsim.Pin // ~OE, output enable, active low
	A   [8]*breadsim.Pin
	B   [8]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewHC245 returns an 8-bit bus transceiver.
//
//	Inputs: DIR, ~OE
//	Buses: A0-A7, B0-B7 (bidirectional, tri-state)
//
func NewHC245(name string) *HC245 {
	t := &HC245{
		DIR: in("DIR"),
		OE:  in("~OE"),
		VCC: power("VCC"),
		GND: power("GND"),
	}
	t.name = name
	for i := range t.A {
		t.A[i] = bidir("A" + strconv.Itoa(i))
		t.B[i] = bidir("B" + strconv.Itoa(i))
	}
	// DIP-20; the B bank ascends the opposite way to the A bank.
	t.setPins(t.DIR,
		t.A[0], t.A[1], t.A[2], t.A[3], t.A[4], t.A[5], t.A[6], t.A[7],
		t.GND,
		t.B[7], t.B[6], t.B[5], t.B[4], t.B[3], t.B[2], t.B[1], t.B[0],
		t.OE, t.VCC)
	return t
}

// Evaluate implements breadsim.Device.
//
func (t *HC245) Evaluate(c *breadsim.Circuit) {
	if c.Level(t.OE) {
		releaseBus(c, t.A[:])
		releaseBus(c, t.B[:])
		return
	}
	if c.Level(t.DIR) {
		releaseBus(c, t.A[:])
		for i := range t.B {
			c.Drive(t.B[i], c.StateExcluding(t.A[i]).Level())
		}
	} else {
		releaseBus(c, t.B[:])
		for i := range t.A {
			c.Drive(t.A[i], c.StateExcluding(t.B[i]).Level())
		}
	}
}
