// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
)

// A QuadGate is a package of four independent two-input gates with
// push-pull outputs (74HC00/08/32 shaped). Gate i computes
// Y[i] = fn(A[i], B[i]) on every evaluation.
//
type QuadGate struct {
	dip
	A   [4]*breadsim.Pin
	B   [4]*breadsim.Pin
	Y   [4]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin

	fn func(a, b bool) bool
}

func newQuadGate(name string, fn func(a, b bool) bool) *QuadGate {
	g := &QuadGate{
		VCC: power("VCC"),
		GND: power("GND"),
		fn:  fn,
	}
	g.name = name
	for i := range g.A {
		u := strconv.Itoa(i + 1)
		g.A[i] = in(u + "A")
		g.B[i] = in(u + "B")
		g.Y[i] = out(u + "Y")
	}
	// DIP-14
	g.setPins(g.A[0], g.B[0], g.Y[0], g.A[1], g.B[1], g.Y[1], g.GND,
		g.Y[2], g.A[2], g.B[2], g.Y[3], g.A[3], g.B[3], g.VCC)
	return g
}

// NewHC00 returns a quad 2-input NAND gate package.
//
func NewHC00(name string) *QuadGate {
	return newQuadGate(name, func(a, b bool) bool { return !(a && b) })
}

// NewHC08 returns a quad 2-input AND gate package.
//
func NewHC08(name string) *QuadGate {
	return newQuadGate(name, func(a, b bool) bool { return a && b })
}

// NewHC32 returns a quad 2-input OR gate package.
//
func NewHC32(name string) *QuadGate {
	return newQuadGate(name, func(a, b bool) bool { return a || b })
}

// Evaluate implements breadsim.Device.
//
func (g *QuadGate) Evaluate(c *breadsim.Circuit) {
	for i := range g.Y {
		c.Drive(g.Y[i], g.fn(c.Level(g.A[i]), c.Level(g.B[i])))
	}
}

// An HexInverter is a package of six inverters with push-pull outputs
// (74HC04 shaped).
//
type HexInverter struct {
	dip
	A   [6]*breadsim.Pin
	Y   [6]*breadsim.Pin
	VCC *breadsim.Pin
	GND *breadsim.Pin
}

// NewHC04 returns a hex inverter package.
//
func NewHC04(name string) *HexInverter {
	g := &HexInverter{
		VCC: power("VCC"),
		GND: power("GND"),
	}
	g.name = name
	for i := range g.A {
		u := strconv.Itoa(i + 1)
		g.A[i] = in(u + "A")
		g.Y[i] = out(u + "Y")
	}
	// DIP-14
	g.setPins(g.A[0], g.Y[0], g.A[1], g.Y[1], g.A[2], g.Y[2], g.GND,
		g.Y[3], g.A[3], g.Y[4], g.A[4], g.Y[5], g.A[5], g.VCC)
	return g
}

// Evaluate implements breadsim.Device.
//
func (g *HexInverter) Evaluate(c *breadsim.Circuit) {
	for i := range g.Y {
		c.Drive(g.Y[i], !c.Level(g.A[i]))
	}
}
