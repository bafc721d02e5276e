// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

// DefaultTerminal is the divider terminal count that yields a ~1 Hz pulse
// from a 100 MHz reference tick (period terminal+1 = 50,000,000 ticks).
//
const DefaultTerminal = 49999999

// A TickGen divides the reference tick down to a slow enable pulse.
//
//	Inputs: (the reference tick, implicit in each Step call)
//	Outputs: pulse
//	Function: pulse once every terminal+1 ticks, on the tick where the
//	internal count reaches terminal; the count then wraps to 0.
//
// There is no second clock in the system: the pulse train is the only
// mechanism separating the slow message-update domain from the fast
// refresh domain.
//
type TickGen struct {
	count    uint32
	terminal uint32
}

// NewTickGen returns a tick generator pulsing once every terminal+1
// reference ticks. A terminal of 0 pulses on every tick.
//
func NewTickGen(terminal uint32) *TickGen {
	return &TickGen{terminal: terminal}
}

// Step advances the generator by one reference tick and reports whether
// this tick carries the slow-domain pulse.
//
func (g *TickGen) Step() bool {
	if g.count == g.terminal {
		g.count = 0
		return true
	}
	g.count++
	return false
}

// Count returns the current divider count. It is bounded by the terminal
// value: the count wraps to 0 on the same tick it reaches it.
//
func (g *TickGen) Count() uint32 {
	return g.count
}
