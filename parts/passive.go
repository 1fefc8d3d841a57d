// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import "github.com/db47h/breadsim"

// passThrough implements the bidirectional passive pattern for a device
// sitting between pins a and b. Each side is sensed excluding the
// device's own drive on that side; if exactly one side is actively
// driven, its level is forwarded to the other side and the device's
// drive on the driven side is released. With both or neither side
// driven, both keys are released. A Conflict counts as driven but has no
// single level to forward, so it also releases both keys.
func passThrough(c *breadsim.Circuit, a, b *breadsim.Pin) {
	sa := c.StateExcluding(a)
	sb := c.StateExcluding(b)
	switch {
	case (sa == breadsim.High || sa == breadsim.Low) && sb == breadsim.Float:
		c.Drive(b, sa.Level())
		c.Release(a)
	case (sb == breadsim.High || sb == breadsim.Low) && sa == breadsim.Float:
		c.Drive(a, sb.Level())
		c.Release(b)
	default:
		c.Release(a)
		c.Release(b)
	}
}

// A Resistor is a bidirectional passive: it forwards a level from its
// driven side to its undriven side. (Resistance values are a rendering
// concern; electrically the simulation treats it as a pass-through.)
//
type Resistor struct {
	dip
	P1 *breadsim.Pin
	P2 *breadsim.Pin
}

// NewResistor returns a resistor.
//
//	Pins: 1, 2
//
func NewResistor(name string) *Resistor {
	r := &Resistor{
		P1: bidir("1"),
		P2: bidir("2"),
	}
	r.name = name
	r.setPins(r.P1, r.P2)
	return r
}

// Evaluate implements breadsim.Device.
//
func (r *Resistor) Evaluate(c *breadsim.Circuit) {
	passThrough(c, r.P1, r.P2)
}

// A Button is a gated passive: while pressed it behaves like a Resistor,
// while released it drives nothing and releases both sides on every
// evaluation.
//
type Button struct {
	dip
	P1      *breadsim.Pin
	P2      *breadsim.Pin
	pressed bool
}

// NewButton returns a button, initially released.
//
//	Pins: 1, 2
//
func NewButton(name string) *Button {
	b := &Button{
		P1: bidir("1"),
		P2: bidir("2"),
	}
	b.name = name
	b.setPins(b.P1, b.P2)
	return b
}

// SetPressed sets the button's externally controlled pressed flag. The
// effect is visible after the next propagation.
//
func (b *Button) SetPressed(pressed bool) { b.pressed = pressed }

// Pressed returns the pressed flag.
//
func (b *Button) Pressed() bool { return b.pressed }

// Evaluate implements breadsim.Device.
//
func (b *Button) Evaluate(c *breadsim.Circuit) {
	if !b.pressed {
		c.Release(b.P1)
		c.Release(b.P2)
		return
	}
	passThrough(c, b.P1, b.P2)
}
