// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"strconv"

	"github.com/db47h/breadsim"
	"github.com/pkg/errors"
)

// A Memory is a byte-addressed parallel memory with an 8-bit tri-state
// data bus. The ROM and RAM variants share addressing and enables and
// differ only in capacity and whether writes take effect.
//
// A write is captured while ~CE and ~WE are both low; the data bus is
// sampled excluding the memory's own (stale) drive, and the outputs are
// tri-stated for as long as the write condition holds, so a write
// dominates a simultaneous read. The data bus is driven from the store
// while ~CE and ~OE are low and ~WE is high, and released otherwise.
// On a ROM the write is silently discarded.
//
type Memory struct {
	dip
	CE  *breadsim.Pin    // ~CE, chip enable, active low
	OE  *breadsim.Pin    // ~OE, output enable, active low
	WE  *breadsim.Pin    // ~WE, write enable, active low
	A   []*breadsim.Pin  // address, A0 = LSB
	D   [8]*breadsim.Pin // data bus, bidirectional
	VCC *breadsim.Pin
	GND *breadsim.Pin

	data     []uint8
	writable bool
}

// NewRAM2K returns a 2K x 8 static RAM (6116 shaped, 11 address bits).
//
func NewRAM2K(name string) *Memory { return newMemory(name, 11, true) }

// NewRAM32K returns a 32K x 8 static RAM (62256 shaped, 15 address bits).
//
func NewRAM32K(name string) *Memory { return newMemory(name, 15, true) }

// NewROM2K returns a 2K x 8 ROM (28C16 shaped, 11 address bits). Write
// attempts are silently discarded.
//
func NewROM2K(name string) *Memory { return newMemory(name, 11, false) }

// NewROM32K returns a 32K x 8 ROM (28C256 shaped, 15 address bits).
// Write attempts are silently discarded.
//
func NewROM32K(name string) *Memory { return newMemory(name, 15, false) }

func newMemory(name string, addrBits int, writable bool) *Memory {
	m := &Memory{
		CE:       in("~CE"),
		OE:       in("~OE"),
		WE:       in("~WE"),
		A:        inBus("A", addrBits),
		VCC:      power("VCC"),
		GND:      power("GND"),
		data:     make([]uint8, 1<<uint(addrBits)),
		writable: writable,
	}
	m.name = name
	for i := range m.D {
		m.D[i] = bidir("D" + strconv.Itoa(i))
	}
	if addrBits > 11 {
		// DIP-28 (28C256 / 62256)
		m.setPins(m.A[14], m.A[12], m.A[7], m.A[6], m.A[5], m.A[4],
			m.A[3], m.A[2], m.A[1], m.A[0],
			m.D[0], m.D[1], m.D[2], m.GND,
			m.D[3], m.D[4], m.D[5], m.D[6], m.D[7],
			m.CE, m.A[10], m.OE, m.A[11], m.A[9], m.A[8], m.A[13],
			m.WE, m.VCC)
	} else {
		// DIP-24 (28C16 / 6116)
		m.setPins(m.A[7], m.A[6], m.A[5], m.A[4], m.A[3], m.A[2],
			m.A[1], m.A[0],
			m.D[0], m.D[1], m.D[2], m.GND,
			m.D[3], m.D[4], m.D[5], m.D[6], m.D[7],
			m.CE, m.A[10], m.OE, m.WE, m.A[9], m.A[8], m.VCC)
	}
	return m
}

// Size returns the capacity in bytes.
//
func (m *Memory) Size() int { return len(m.data) }

// Load initializes the store from img, starting at address 0. It fails
// if img does not fit. Loading works on ROM and RAM alike; it models
// programming the part out of circuit.
//
func (m *Memory) Load(img []byte) error {
	if len(img) > len(m.data) {
		return errors.Errorf("%s: image size %d exceeds capacity %d", m.name, len(img), len(m.data))
	}
	copy(m.data, img)
	return nil
}

// Peek returns the byte stored at addr, bypassing the pins.
//
func (m *Memory) Peek(addr int) uint8 { return m.data[addr&(len(m.data)-1)] }

// Evaluate implements breadsim.Device.
//
func (m *Memory) Evaluate(c *breadsim.Circuit) {
	ce := !c.Level(m.CE)
	oe := !c.Level(m.OE)
	we := !c.Level(m.WE)
	addr := busValue(c, m.A)

	if ce && we {
		if m.writable {
			m.data[addr] = uint8(busValue(c, m.D[:]))
		}
	}
	if ce && oe && !we {
		driveBus(c, m.D[:], int(m.data[addr]))
	} else {
		releaseBus(c, m.D[:])
	}
}
