// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

// A NetID identifies a net within its Circuit. The zero value means
// "no net".
//
type NetID int

// A Net is an electrical node shared by one or more pins.
//
// Levels are asserted on a net under a driver key, one key per
// (component, output purpose); the key used here is the driving Pin
// itself. A net only ever stores High or Low entries: Float and Conflict
// are derived, never asserted. An entry stays in the driver map until it
// is released under the same key, so components must release every key
// they are not currently asserting, on every evaluation.
//
type Net struct {
	id      NetID
	pins    []*Pin
	drivers map[*Pin]State
}

func newNet(id NetID) *Net {
	return &Net{id: id, drivers: make(map[*Pin]State)}
}

// ID returns the net's identity within its circuit.
//
func (n *Net) ID() NetID { return n.id }

// Pins returns the pins bound to the net, in connection order.
//
func (n *Net) Pins() []*Pin { return n.pins }

func (n *Net) drive(key *Pin, high bool) {
	if high {
		n.drivers[key] = High
	} else {
		n.drivers[key] = Low
	}
}

func (n *Net) release(key *Pin) {
	delete(n.drivers, key)
}

// Resolve derives the net's state from its active drivers: Float with no
// driver, Conflict with both a High and a Low driver, the uniform level
// otherwise.
//
func (n *Net) Resolve() State {
	return resolve(n.drivers, nil)
}

// ResolveExcluding resolves the net as if the entry under key were
// removed (a no-op if the key is not driving). Bidirectional passives use
// this to sense what the rest of the circuit asserts on a net without
// reading back their own contribution.
//
func (n *Net) ResolveExcluding(key *Pin) State {
	return resolve(n.drivers, key)
}

func resolve(drivers map[*Pin]State, exclude *Pin) State {
	var hasHigh, hasLow bool
	for k, v := range drivers {
		if k == exclude {
			continue
		}
		switch v {
		case High:
			hasHigh = true
		case Low:
			hasLow = true
		}
	}
	switch {
	case hasHigh && hasLow:
		return Conflict
	case hasHigh:
		return High
	case hasLow:
		return Low
	}
	return Float
}
