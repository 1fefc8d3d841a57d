// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import "github.com/db47h/breadsim"

// A LED senses the states of its two terminals and drives nothing. It is
// lit while current could flow through it: anode resolved High, cathode
// resolved Low.
//
type LED struct {
	dip
	A *breadsim.Pin // anode
	K *breadsim.Pin // cathode

	lit bool
}

// NewLED returns a LED.
//
//	Pins: A (anode), K (cathode)
//
func NewLED(name string) *LED {
	l := &LED{
		A: in("A"),
		K: in("K"),
	}
	l.name = name
	l.setPins(l.A, l.K)
	return l
}

// Evaluate implements breadsim.Device.
//
func (l *LED) Evaluate(c *breadsim.Circuit) {
	l.lit = c.State(l.A) == breadsim.High && c.State(l.K) == breadsim.Low
}

// Lit reports whether the LED was lit as of the last evaluation.
//
func (l *LED) Lit() bool { return l.lit }
