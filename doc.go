// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package segsim is a cycle-accurate behavioral simulation of a synchronous
controller driving four time-multiplexed 7-segment displays.

The controller scrolls a fixed character message across the displays. It is
built from four blocks: a divider deriving a slow enable pulse from the fast
reference tick (TickGen), a wrapping 4-bit scroll position counter (Counter),
a character ROM mapping the position to four simultaneous segment patterns
(CharTable), and a free-running display multiplexer (Muxer). The Controller
type composes them and advances all of them on a single reference tick.

The simulation is single threaded and fully deterministic: one call to
Controller.Step is one rising edge of the reference clock, and the observable
outputs (shared segment bus and active-low anode select) depend only on the
step sequence, never on wall-clock time.
*/
package segsim
