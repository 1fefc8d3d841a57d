// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

// A State is the resolved logic state of a net.
//
type State uint8

// Resolved net states.
//
const (
	Float    State = iota // no active driver
	Low                   // all drivers assert low
	High                  // all drivers assert high
	Conflict              // simultaneous high and low drivers
)

func (s State) String() string {
	switch s {
	case Float:
		return "FLOAT"
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	case Conflict:
		return "CONFLICT"
	}
	return "INVALID"
}

// Level returns the boolean logic level of s. Only High reads as true;
// Float and Conflict both read as false.
//
func (s State) Level() bool {
	return s == High
}
