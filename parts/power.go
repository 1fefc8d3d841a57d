// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import "github.com/db47h/breadsim"

// A Battery is a power source. It drives VCC high and GND low on every
// evaluation, unconditionally; it never tri-states.
//
type Battery struct {
	dip
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewBattery returns a battery.
//
//	Pins: VCC, GND
//
func NewBattery(name string) *Battery {
	b := &Battery{
		VCC: power("VCC"),
		GND: power("GND"),
	}
	b.name = name
	b.setPins(b.VCC, b.GND)
	return b
}

// Evaluate implements breadsim.Device.
//
func (b *Battery) Evaluate(c *breadsim.Circuit) {
	c.Drive(b.VCC, true)
	c.Drive(b.GND, false)
}
