// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package breadsim

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// An Emulator coordinates clock ticking and propagation into discrete
// simulation steps.
//
// One Step is one clock half-cycle: every clock driver ticks once, then
// the whole circuit is propagated to a steady state. Steps may be invoked
// directly (synchronous) or scheduled periodically with Run. A mutex
// serializes steps, so a multi-threaded host may call into the emulator
// freely; Pause never interrupts a step already in progress.
//
type Emulator struct {
	mu     sync.Mutex
	prop   *Propagator
	clocks []*ClockDriver
	ticks  uint64
	onTick func(*Emulator)
	stop   chan struct{}
	done   chan struct{}
}

// NewEmulator returns an emulator stepping c with the given clock
// drivers. One propagation is run immediately so that the circuit is in a
// stable initial state before any stepping occurs.
//
// The clock drivers must also be registered with the circuit (Add) so
// that propagation passes keep their levels asserted.
//
func NewEmulator(c *Circuit, clocks ...*ClockDriver) *Emulator {
	e := &Emulator{prop: NewPropagator(c), clocks: clocks}
	e.prop.Propagate()
	return e
}

// Propagator returns the emulator's propagator.
//
func (e *Emulator) Propagator() *Propagator { return e.prop }

// OnTick registers fn to be called at the end of every step, from within
// the step. There is a single slot: re-registration overwrites the
// previous callback, nil clears it. The callback must not call back into
// the emulator.
//
func (e *Emulator) OnTick(fn func(*Emulator)) {
	e.mu.Lock()
	e.onTick = fn
	e.mu.Unlock()
}

// Ticks returns the number of steps run so far.
//
func (e *Emulator) Ticks() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

// Running reports whether periodic stepping is scheduled.
//
func (e *Emulator) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stop != nil
}

// Step runs one simulation step: tick every clock driver one half-cycle,
// notify edge listeners, propagate, then invoke the tick callback.
//
func (e *Emulator) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.step()
}

func (e *Emulator) step() {
	c := e.prop.Circuit()
	for _, ck := range e.clocks {
		edge := ck.Tick(c)
		for _, d := range c.Devices() {
			if l, ok := d.(EdgeListener); ok {
				l.OnClockEdge(c, edge)
			}
		}
	}
	e.prop.Propagate()
	e.ticks++
	if e.onTick != nil {
		e.onTick(e)
	}
}

// Run schedules periodic steps approximating the given clock frequency.
// Since one step is a half-cycle, steps run every 500/hz milliseconds.
// Run is idempotent while already running.
//
func (e *Emulator) Run(hz float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stop != nil {
		return nil
	}
	if hz <= 0 {
		return errors.Errorf("invalid clock frequency %vHz", hz)
	}
	period := time.Duration(float64(500*time.Millisecond) / hz)
	stop := make(chan struct{})
	done := make(chan struct{})
	e.stop, e.done = stop, done
	go e.loop(period, stop, done)
	return nil
}

func (e *Emulator) loop(period time.Duration, stop, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			// a tick racing a concurrent Pause must not start a step
			select {
			case <-stop:
				return
			default:
			}
			e.Step()
		}
	}
}

// Pause cancels periodic stepping and waits for the scheduler goroutine
// to exit. A step already in progress completes; no further scheduled
// step begins. Pause is idempotent while not running.
//
func (e *Emulator) Pause() {
	e.mu.Lock()
	stop, done := e.stop, e.done
	e.stop, e.done = nil, nil
	e.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// SetSpeed changes the stepping frequency of a running emulator; it is a
// no-op when not running.
//
func (e *Emulator) SetSpeed(hz float64) error {
	if !e.Running() {
		return nil
	}
	e.Pause()
	return e.Run(hz)
}
