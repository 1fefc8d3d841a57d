// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

// A Role documents the intended direction of a pin. The simulation does
// not enforce it; it exists for layout and rendering consumers.
//
type Role uint8

// Pin roles.
//
const (
	Input Role = iota
	Output
	Bidirectional
	Power
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case Output:
		return "output"
	case Bidirectional:
		return "bidirectional"
	case Power:
		return "power"
	}
	return "invalid"
}

// A Pin is a named terminal of a device. A pin is owned by exactly one
// device for that device's lifetime and is bound to at most one net,
// by Circuit.Connect. The pin doubles as the driver key for any level the
// owning device asserts through it.
//
type Pin struct {
	name string
	role Role
	c    *Circuit
	net  NetID
}

// NewPin returns an unbound pin. Devices create their pins once, at
// construction, in physical pin order.
//
func NewPin(name string, role Role) *Pin {
	return &Pin{name: name, role: role}
}

// Name returns the pin name, e.g. "D0" or "~OE".
//
func (p *Pin) Name() string { return p.name }

// Role returns the pin's documented role.
//
func (p *Pin) Role() Role { return p.role }

// Net returns the id of the net the pin is bound to, or 0 if unbound.
//
func (p *Pin) Net() NetID { return p.net }

// State returns the resolved state of the pin's net. An unbound pin
// reads Float.
//
func (p *Pin) State() State {
	if p.c == nil || p.net == 0 {
		return Float
	}
	return p.c.net(p.net).Resolve()
}

// Level returns the boolean logic level of the pin's net. Float and
// Conflict both read as false.
//
func (p *Pin) Level() bool {
	return p.State().Level()
}
