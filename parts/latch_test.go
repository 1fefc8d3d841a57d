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

// latch control/source pin indices
const (
	lOE = iota
	lLE
	lD0 // D0..D7 at lD0..lD0+7
)

func latchBoard(t *testing.T) (*parttest.Harness, *parttest.Source, *parttest.Probe, *parts.HC573) {
	t.Helper()
	h := parttest.NewHarness()
	src := h.Add(parttest.NewSource("src", 10)).(*parttest.Source)
	l := h.Add(parts.NewHC573("U1")).(*parts.HC573)
	q := h.Add(parttest.NewProbe("q", 8)).(*parttest.Probe)
	h.Connect(l.OE, src.Pin(lOE))
	h.Connect(l.LE, src.Pin(lLE))
	for i := 0; i < 8; i++ {
		h.Connect(l.D[i], src.Pin(lD0+i))
		h.Connect(l.Q[i], q.Pin(i))
	}
	return h, src, q, l
}

func TestHC573_transparent(t *testing.T) {
	h, src, q, _ := latchBoard(t)
	src.Set(lOE, false) // outputs enabled
	src.Set(lLE, true)  // transparent

	src.Set(lD0, true)
	for i := 1; i < 8; i++ {
		src.Set(lD0+i, false)
	}
	h.Propagate()
	assert.Equal(t, breadsim.High, q.State(0))
	assert.Equal(t, breadsim.Low, q.State(1))
	assert.EqualValues(t, 0x01, q.Value())

	// transparent: the outputs track the data
	src.SetValue(0xA5<<lD0 | 1<<lLE)
	h.Propagate()
	assert.EqualValues(t, 0xA5, q.Value())
}

func TestHC573_latches(t *testing.T) {
	h, src, q, l := latchBoard(t)
	src.Set(lOE, false)
	src.Set(lLE, true)
	src.Set(lD0, true)
	h.Propagate()
	assert.EqualValues(t, 0x01, q.Value())

	// LE high to low captures; later data changes are ignored
	src.Set(lLE, false)
	h.Propagate()
	src.Set(lD0, false)
	src.Set(lD0+1, true)
	h.Propagate()
	assert.EqualValues(t, 0x01, q.Value())
	assert.EqualValues(t, 0x01, l.Value())

	// reopening the latch makes it track again
	src.Set(lLE, true)
	h.Propagate()
	assert.EqualValues(t, 0x02, q.Value())
}

func TestHC573_triState(t *testing.T) {
	h, src, q, _ := latchBoard(t)
	src.Set(lLE, true)
	src.Set(lD0, true)
	src.Set(lOE, true) // outputs disabled
	h.Propagate()
	for i := 0; i < 8; i++ {
		assert.Equal(t, breadsim.Float, q.State(i), "Q%d", i)
	}

	src.Set(lOE, false)
	h.Propagate()
	assert.EqualValues(t, 0x01, q.Value())
}
