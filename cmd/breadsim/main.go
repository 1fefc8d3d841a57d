// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command breadsim runs a small demo board: a clock feeds a 74HC193
// counter, the low count bits select one of eight LEDs through a 74HC138
// decoder, and a ROM wired on the same count bits is read back. Net
// activity is logged on every simulation step.
package main

import (
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/breadsim"
	"github.com/db47h/breadsim/parts"
)

var (
	hz      float64
	steps   int
	romPath string
)

func main() {
	cmd := &cobra.Command{
		Use:          "breadsim",
		Short:        "demo breadboard simulation: clock, counter, decoder, LEDs, ROM",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().Float64Var(&hz, "hz", 8, "clock frequency in Hz")
	cmd.Flags().IntVar(&steps, "steps", 32, "number of half-cycles to run")
	cmd.Flags().StringVar(&romPath, "rom", "", "ROM image file (defaults to a builtin pattern)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()

	c := breadsim.New()
	bat := c.Add(parts.NewBattery("BAT1")).(*parts.Battery)
	clk := breadsim.NewClockDriver("CLK1")
	c.Add(clk)

	ctr := c.Add(parts.NewHC193("U1")).(*parts.HC193)
	c.Connect(ctr.UP, clk.Pin())
	c.Connect(ctr.DOWN, bat.VCC)
	c.Connect(ctr.LOAD, bat.VCC)
	c.Connect(ctr.CLR, bat.GND)
	for i := range ctr.D {
		c.Connect(ctr.D[i], bat.GND)
	}

	dec := c.Add(parts.NewHC138("U2")).(*parts.HC138)
	for i := range dec.A {
		c.Connect(dec.A[i], ctr.Q[i])
	}
	c.Connect(dec.G1, bat.VCC)
	c.Connect(dec.G2A, bat.GND)
	c.Connect(dec.G2B, bat.GND)

	// one current limiting resistor feeding all anodes; the decoder's
	// active-low output sinks the selected LED's cathode
	r := c.Add(parts.NewResistor("R1")).(*parts.Resistor)
	c.Connect(r.P1, bat.VCC)
	leds := make([]*parts.LED, 8)
	for i := range leds {
		leds[i] = c.Add(parts.NewLED("LED" + strconv.Itoa(i))).(*parts.LED)
		c.Connect(leds[i].A, r.P2)
		c.Connect(leds[i].K, dec.Y[i])
	}

	rom := c.Add(parts.NewROM2K("U3")).(*parts.Memory)
	c.Connect(rom.CE, bat.GND)
	c.Connect(rom.OE, bat.GND)
	c.Connect(rom.WE, bat.VCC)
	for i := range ctr.Q {
		c.Connect(rom.A[i], ctr.Q[i])
	}
	for i := 4; i < len(rom.A); i++ {
		c.Connect(rom.A[i], bat.GND)
	}
	if err := loadROM(rom); err != nil {
		return err
	}

	emu := breadsim.NewEmulator(c, clk)
	emu.Propagator().SetLogger(log)

	done := make(chan struct{})
	var once sync.Once
	n := 0
	emu.OnTick(func(e *breadsim.Emulator) {
		n++
		lit := -1
		for i, l := range leds {
			if l.Lit() {
				lit = i
			}
		}
		log.WithFields(logrus.Fields{
			"step":  n,
			"count": ctr.Value(),
			"led":   lit,
			"rom":   rom.Peek(int(ctr.Value())),
		}).Info("tick")
		for id, s := range e.Propagator().Snapshot() {
			if s == breadsim.Conflict {
				log.WithField("net", id).Warn("bus conflict")
			}
		}
		if n >= steps {
			once.Do(func() { close(done) })
		}
	})

	if err := emu.Run(hz); err != nil {
		return err
	}
	<-done
	emu.Pause()
	log.WithField("steps", emu.Ticks()).Info("paused")
	return nil
}

func loadROM(rom *parts.Memory) error {
	if romPath == "" {
		img := make([]byte, 16)
		for i := range img {
			img[i] = byte(i * i)
		}
		return rom.Load(img)
	}
	img, err := os.ReadFile(romPath)
	if err != nil {
		return errors.Wrap(err, "read ROM image")
	}
	return errors.Wrap(rom.Load(img), "load ROM image")
}
