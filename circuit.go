// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

import "sort"

// A Circuit owns the devices and nets of one board.
//
// Devices are evaluated in registration order. Nets are created and
// merged by Connect; ids are allocated by the circuit, not globally.
//
type Circuit struct {
	devices []Device
	nets    map[NetID]*Net
	lastID  NetID
}

// New returns an empty circuit.
//
func New() *Circuit {
	return &Circuit{nets: make(map[NetID]*Net)}
}

// Add registers a device with the circuit and returns it.
//
func (c *Circuit) Add(d Device) Device {
	c.devices = append(c.devices, d)
	return d
}

// Devices returns the registered devices in registration order.
//
func (c *Circuit) Devices() []Device { return c.devices }

// Nets returns the live nets ordered by id.
//
func (c *Circuit) Nets() []*Net {
	ns := make([]*Net, 0, len(c.nets))
	for _, n := range c.nets {
		ns = append(ns, n)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i].id < ns[j].id })
	return ns
}

func (c *Circuit) net(id NetID) *Net { return c.nets[id] }

func (c *Circuit) allocNet() *Net {
	c.lastID++
	n := newNet(c.lastID)
	c.nets[n.id] = n
	return n
}

// Connect joins the given pins onto a single net.
//
// If any pin is already bound to a net, all pins join that net; if the
// pins span several existing nets, those nets are merged: every pin of a
// discarded net is repointed to the surviving net and the discarded net,
// along with any driver entries it held, is dropped. A fresh net is
// created only when none of the pins had one. Wiring is expected to
// happen before simulation starts; a merge performed between evaluations
// leaves the surviving net's state unspecified until the next propagate
// re-asserts every live driver.
//
func (c *Circuit) Connect(pins ...*Pin) {
	if len(pins) == 0 {
		return
	}
	var dst *Net
	for _, p := range pins {
		if p.net != 0 {
			dst = c.nets[p.net]
			break
		}
	}
	if dst == nil {
		dst = c.allocNet()
	}
	for _, p := range pins {
		switch {
		case p.net == dst.id:
			continue
		case p.net != 0:
			c.merge(dst, c.nets[p.net])
		default:
			c.bind(dst, p)
		}
	}
}

// merge absorbs src into dst. Driver entries held by src are dropped;
// they are re-asserted (or not) on the next propagation pass.
func (c *Circuit) merge(dst, src *Net) {
	for _, p := range src.pins {
		p.net = dst.id
		dst.pins = append(dst.pins, p)
	}
	delete(c.nets, src.id)
}

func (c *Circuit) bind(n *Net, p *Pin) {
	p.c = c
	p.net = n.id
	n.pins = append(n.pins, p)
}

// Drive asserts a level on the net bound to p, under p's driver key.
// Driving an unbound pin is a no-op.
//
func (c *Circuit) Drive(p *Pin, high bool) {
	if p.net == 0 {
		return
	}
	c.nets[p.net].drive(p, high)
}

// Release removes p's driver entry, if any, from the net bound to p.
//
func (c *Circuit) Release(p *Pin) {
	if p.net == 0 {
		return
	}
	c.nets[p.net].release(p)
}

// State returns the resolved state of the net bound to p, or Float for an
// unbound pin.
//
func (c *Circuit) State(p *Pin) State {
	if p.net == 0 {
		return Float
	}
	return c.nets[p.net].Resolve()
}

// StateExcluding resolves the net bound to p with p's own driver entry
// removed. See Net.ResolveExcluding.
//
func (c *Circuit) StateExcluding(p *Pin) State {
	if p.net == 0 {
		return Float
	}
	return c.nets[p.net].ResolveExcluding(p)
}

// Level returns the boolean logic level of the net bound to p.
//
func (c *Circuit) Level(p *Pin) bool {
	return c.State(p).Level()
}
