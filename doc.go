/*
Package breadsim simulates networks of discrete electronic components wired
together on shared electrical nets, the way they would be on a solderless
breadboard.

Every net resolves its logic state from the set of drivers currently
asserting a level on it: no driver reads as Float, agreeing drivers as High
or Low, and disagreeing drivers as Conflict. Components never mutate nets
directly; they assert or release a level under their own driver key and the
net derives the rest. Sequential behavior (latches, registers, counters) is
built from private component state carried across evaluations.

Because the component families include feedback loops and bidirectional
passives, there is no acyclic evaluation order to exploit. The Propagator
instead relaxes the whole circuit to a fixed point: it re-evaluates every
component in registration order until no net changes state, up to a bounded
number of passes.

The Emulator layers a clock on top: each Step ticks every ClockDriver one
half-cycle and propagates to a new steady state. Run schedules periodic
steps at an approximate frequency and Pause cancels them between steps.

The device library lives in package parts.
*/
package breadsim
