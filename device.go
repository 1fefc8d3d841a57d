// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

// A Device is a component mounted in a circuit.
//
// Pins returns the device's fixed pin list in physical order; the order
// matters to layout consumers, never to Evaluate. Evaluate is called once
// per propagation pass, in circuit registration order, and must assert or
// release every output pin the device owns: a level asserted on a pass
// and not released on the next leaks into the net until released.
//
type Device interface {
	Name() string
	Pins() []*Pin
	Evaluate(c *Circuit)
}

// An EdgeListener is a device that wants to be notified whenever a clock
// driver ticks. The Emulator calls OnClockEdge after flipping the clock
// level and before propagating. Most sequential devices do not need this:
// they detect edges themselves from pin levels during Evaluate.
//
type EdgeListener interface {
	Device
	OnClockEdge(c *Circuit, e Edge)
}
