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

// transceiverBoard puts a source and a probe on each side of an HC245.
// Control source pins: 0 = DIR, 1 = ~OE.
func transceiverBoard(t *testing.T) (h *parttest.Harness, ctl, a, b *parttest.Source, pa, pb *parttest.Probe) {
	t.Helper()
	h = parttest.NewHarness()
	ctl = h.Add(parttest.NewSource("ctl", 2)).(*parttest.Source)
	a = h.Add(parttest.NewSource("a", 8)).(*parttest.Source)
	b = h.Add(parttest.NewSource("b", 8)).(*parttest.Source)
	pa = h.Add(parttest.NewProbe("pa", 8)).(*parttest.Probe)
	pb = h.Add(parttest.NewProbe("pb", 8)).(*parttest.Probe)
	x := h.Add(parts.NewHC245("U1")).(*parts.HC245)
	h.Connect(x.DIR, ctl.Pin(0))
	h.Connect(x.OE, ctl.Pin(1))
	for i := 0; i < 8; i++ {
		h.Connect(x.A[i], a.Pin(i), pa.Pin(i))
		h.Connect(x.B[i], b.Pin(i), pb.Pin(i))
	}
	return h, ctl, a, b, pa, pb
}

func TestHC245_forward(t *testing.T) {
	h, ctl, a, _, _, pb := transceiverBoard(t)

	ctl.Set(0, true)  // DIR: A -> B
	ctl.Set(1, false) // ~OE low
	a.SetValue(0xC3)
	h.Propagate()
	assert.EqualValues(t, 0xC3, pb.Value())

	a.SetValue(0x3C)
	h.Propagate()
	assert.EqualValues(t, 0x3C, pb.Value())
}

func TestHC245_reverse(t *testing.T) {
	h, ctl, a, b, pa, _ := transceiverBoard(t)

	ctl.Set(0, false) // DIR: B -> A
	ctl.Set(1, false)
	b.SetValue(0x81)
	h.Propagate()
	assert.EqualValues(t, 0x81, pa.Value())

	// flipping DIR mid-flight must not leave stale drives on A
	for i := 0; i < 8; i++ {
		b.Release(i)
	}
	ctl.Set(0, true)
	a.SetValue(0x18)
	h.Propagate()
	assert.EqualValues(t, 0x18, pa.Value(), "A side driven by its source only")
	for i := 0; i < 8; i++ {
		assert.NotEqual(t, breadsim.Conflict, pa.State(i), "A%d after direction flip", i)
	}
}

func TestHC245_triState(t *testing.T) {
	h, ctl, a, b, pa, pb := transceiverBoard(t)
	_, _ = a, b

	ctl.Set(0, true)
	ctl.Set(1, true) // disabled
	h.Propagate()
	for i := 0; i < 8; i++ {
		assert.Equal(t, breadsim.Float, pa.State(i))
		assert.Equal(t, breadsim.Float, pb.State(i))
	}
}
