// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/breadsim/parts"
	"github.com/db47h/breadsim/parttest"
)

func TestQuadGate_truthTables(t *testing.T) {
	tests := []struct {
		name string
		gate func(string) *parts.QuadGate
		want [4]bool // outputs for (a,b) = (0,0) (0,1) (1,0) (1,1)
	}{
		{"HC00", parts.NewHC00, [4]bool{true, true, true, false}},
		{"HC08", parts.NewHC08, [4]bool{false, false, false, true}},
		{"HC32", parts.NewHC32, [4]bool{false, true, true, true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := parttest.NewHarness()
			src := h.Add(parttest.NewSource("src", 8)).(*parttest.Source)
			g := h.Add(tc.gate("U1")).(*parts.QuadGate)
			y := h.Add(parttest.NewProbe("y", 4)).(*parttest.Probe)
			// feed all four input combinations to the four gates at once
			for i := 0; i < 4; i++ {
				h.Connect(g.A[i], src.Pin(2*i))
				h.Connect(g.B[i], src.Pin(2*i+1))
				h.Connect(g.Y[i], y.Pin(i))
				src.Set(2*i, i&2 != 0)
				src.Set(2*i+1, i&1 != 0)
			}
			h.Propagate()
			for i, want := range tc.want {
				assert.Equal(t, want, y.State(i).Level(), "gate %d", i)
			}
		})
	}
}

func TestHexInverter(t *testing.T) {
	h := parttest.NewHarness()
	src := h.Add(parttest.NewSource("src", 6)).(*parttest.Source)
	g := h.Add(parts.NewHC04("U1")).(*parts.HexInverter)
	y := h.Add(parttest.NewProbe("y", 6)).(*parttest.Probe)
	for i := 0; i < 6; i++ {
		h.Connect(g.A[i], src.Pin(i))
		h.Connect(g.Y[i], y.Pin(i))
	}

	src.SetValue(0x2A) // 101010
	h.Propagate()
	assert.EqualValues(t, 0x15, y.Value())

	// floating inputs read low, so the outputs go high
	for i := 0; i < 6; i++ {
		src.Release(i)
	}
	h.Propagate()
	assert.EqualValues(t, 0x3F, y.Value())
}
