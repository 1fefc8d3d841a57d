// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/breadsim"
	"github.com/db47h/breadsim/parts"
	"github.com/db47h/breadsim/parttest"
)

// source pin indices for the HC193 board.
const (
	cUP = iota
	cDOWN
	cCLR
	cLOAD
	cD0
)

// counter193Board wires an HC193 between a source and a probe. Probe
// pins 0-3 are Q0-Q3, 4 is ~CO and 5 is ~BO.
func counter193Board(t *testing.T) (*parttest.Harness, *parttest.Source, *parttest.Probe, *parts.HC193) {
	t.Helper()
	h := parttest.NewHarness()
	src := h.Add(parttest.NewSource("src", 8)).(*parttest.Source)
	ctr := h.Add(parts.NewHC193("U1")).(*parts.HC193)
	q := h.Add(parttest.NewProbe("q", 6)).(*parttest.Probe)
	h.Connect(ctr.UP, src.Pin(cUP))
	h.Connect(ctr.DOWN, src.Pin(cDOWN))
	h.Connect(ctr.CLR, src.Pin(cCLR))
	h.Connect(ctr.LOAD, src.Pin(cLOAD))
	for i := 0; i < 4; i++ {
		h.Connect(ctr.D[i], src.Pin(cD0+i))
		h.Connect(ctr.Q[i], q.Pin(i))
	}
	h.Connect(ctr.CO, q.Pin(4))
	h.Connect(ctr.BO, q.Pin(5))
	// idle: both clocks high, CLR low, ~LOAD high
	src.Set(cUP, true)
	src.Set(cDOWN, true)
	src.Set(cLOAD, true)
	h.Propagate()
	return h, src, q, ctr
}

// upPulse takes UP low then high again, i.e. one falling then one
// rising edge, leaving UP high.
func upPulse(h *parttest.Harness, src *parttest.Source) {
	src.Set(cUP, false)
	h.Propagate()
	src.Set(cUP, true)
	h.Propagate()
}

func downPulse(h *parttest.Harness, src *parttest.Source) {
	src.Set(cDOWN, false)
	h.Propagate()
	src.Set(cDOWN, true)
	h.Propagate()
}

func TestHC193_countUpAndWrap(t *testing.T) {
	h, src, q, ctr := counter193Board(t)

	for i := 1; i <= 15; i++ {
		upPulse(h, src)
		assert.Equal(t, uint8(i), ctr.Value(), "after %d pulses", i)
	}
	assert.EqualValues(t, 15, q.Value()&0x0F)

	// ~CO asserts only while UP is low at the terminal count
	src.Set(cUP, false)
	h.Propagate()
	assert.Equal(t, breadsim.Low, q.State(4), "~CO at 15 with UP low")
	src.Set(cUP, true)
	h.Propagate()
	assert.Equal(t, breadsim.High, q.State(4), "~CO at 15 with UP high")

	// 16th pulse wraps to 0
	upPulse(h, src)
	assert.Equal(t, uint8(0), ctr.Value())
	assert.EqualValues(t, 0, q.Value()&0x0F)
}

func TestHC193_countDownAndBorrow(t *testing.T) {
	h, src, q, ctr := counter193Board(t)

	downPulse(h, src)
	assert.Equal(t, uint8(15), ctr.Value(), "down from 0 wraps to 15")

	for i := 14; i >= 0; i-- {
		downPulse(h, src)
		assert.Equal(t, uint8(i), ctr.Value())
	}

	// ~BO asserts only while DOWN is low at 0
	src.Set(cDOWN, false)
	h.Propagate()
	assert.Equal(t, breadsim.Low, q.State(5), "~BO at 0 with DOWN low")
	src.Set(cDOWN, true)
	h.Propagate()
	assert.Equal(t, breadsim.High, q.State(5), "~BO at 0 with DOWN high")
}

func TestHC193_loadAndClear(t *testing.T) {
	h, src, _, ctr := counter193Board(t)

	// ~LOAD low loads D combinationally
	src.SetValue(0xA<<cD0 | 1<<cUP | 1<<cDOWN)
	h.Propagate()
	assert.Equal(t, uint8(10), ctr.Value())

	// loading tracks the data inputs while ~LOAD stays low
	src.Set(cD0, true)
	h.Propagate()
	assert.Equal(t, uint8(11), ctr.Value())

	// CLR wins over a simultaneous load
	src.Set(cCLR, true)
	h.Propagate()
	assert.Equal(t, uint8(0), ctr.Value())

	// counting resumes once both are deasserted
	src.Set(cCLR, false)
	src.Set(cLOAD, true)
	h.Propagate()
	upPulse(h, src)
	assert.Equal(t, uint8(1), ctr.Value())
}

func TestHC193_clockGating(t *testing.T) {
	h, src, _, ctr := counter193Board(t)

	// a rising UP edge with DOWN low is ignored
	src.Set(cDOWN, false)
	h.Propagate()
	upPulse(h, src)
	assert.Equal(t, uint8(0), ctr.Value())
	src.Set(cDOWN, true)
	h.Propagate()
	assert.Equal(t, uint8(0), ctr.Value())

	upPulse(h, src)
	assert.Equal(t, uint8(1), ctr.Value())
}

func TestHC161_countLoadClear(t *testing.T) {
	h := parttest.NewHarness()
	// src: CLK, ~CLR, ~LOAD, ENP, ENT, D0-D3
	src := h.Add(parttest.NewSource("src", 9)).(*parttest.Source)
	ctr := h.Add(parts.NewHC161("U1")).(*parts.HC161)
	q := h.Add(parttest.NewProbe("q", 5)).(*parttest.Probe)
	h.Connect(ctr.CLK, src.Pin(0))
	h.Connect(ctr.CLR, src.Pin(1))
	h.Connect(ctr.LOAD, src.Pin(2))
	h.Connect(ctr.ENP, src.Pin(3))
	h.Connect(ctr.ENT, src.Pin(4))
	for i := 0; i < 4; i++ {
		h.Connect(ctr.D[i], src.Pin(5+i))
		h.Connect(ctr.Q[i], q.Pin(i))
	}
	h.Connect(ctr.RCO, q.Pin(4))

	src.Set(1, true) // ~CLR high
	src.Set(2, true) // ~LOAD high
	src.Set(3, true) // ENP
	src.Set(4, true) // ENT
	h.Propagate()

	// count three rising edges
	for i := 1; i <= 3; i++ {
		h.Pulse(src, 0)
		assert.Equal(t, uint8(i), ctr.Value())
	}

	// ENP low freezes the count
	src.Set(3, false)
	h.Propagate()
	h.Pulse(src, 0)
	assert.Equal(t, uint8(3), ctr.Value())
	src.Set(3, true)
	h.Propagate()

	// synchronous load of 14, then RCO on reaching 15
	src.SetValue(0xE<<5 | 1<<1 | 1<<3 | 1<<4)
	h.Propagate()
	assert.Equal(t, uint8(3), ctr.Value(), "~LOAD low alone does not load")
	h.Pulse(src, 0)
	assert.Equal(t, uint8(14), ctr.Value())
	src.Set(2, true)
	h.Propagate()
	assert.Equal(t, breadsim.Low, q.State(4))
	h.Pulse(src, 0)
	assert.Equal(t, uint8(15), ctr.Value())
	assert.Equal(t, breadsim.High, q.State(4), "RCO at terminal count")

	// asynchronous clear
	src.Set(1, false)
	h.Propagate()
	assert.Equal(t, uint8(0), ctr.Value())
	assert.EqualValues(t, 0, q.Value()&0x0F)
}
