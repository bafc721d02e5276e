// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

import (
	"github.com/pkg/errors"
)

// DefaultMessage is the message scrolled when the caller has nothing better
// to show. It is shorter than MessageLen and gets space padded, so the
// display blanks out as the tail scrolls past.
//
const DefaultMessage = "HELLO FPGA LAB 123"

// A Controller wires the divider, position counter, character ROM and
// display multiplexer into the complete scrolling display. It is the sole
// owner of all component state: the components never reference each other,
// they only exchange values through Step.
//
// Each Step is one rising edge of the reference clock and advances, in
// order: the divider, the position counter (enabled by the divider's
// registered pulse), the ROM lookup, and the multiplexer. The multiplexer
// advances on every tick regardless of the pulse; the two rates meet only
// through the read-only pattern array passed between them.
//
type Controller struct {
	div   *TickGen
	pos   *Counter
	rom   *CharTable
	mux   *Muxer
	pulse bool // divider output register, sampled by the counter next tick

	// Control inputs, driven by an external collaborator (buttons or a
	// test harness) and sampled at every Step. Reset overrides Load;
	// both override scrolling while asserted.
	Reset     bool
	Load      bool
	LoadValue uint8
}

// New returns a controller scrolling the given message, with the divider
// wrapping at the given terminal count. Use DefaultTerminal for the source
// hardware's ~1 Hz scroll rate; tests and tracing want something smaller.
//
func New(message string, terminal uint32) (*Controller, error) {
	rom, err := NewCharTable(message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build character ROM")
	}
	return &Controller{
		div: NewTickGen(terminal),
		pos: &Counter{},
		rom: rom,
		mux: &Muxer{},
	}, nil
}

// Step advances the whole controller by one reference tick and returns the
// two observable outputs: the shared segment bus and the active-low anode
// select.
//
// The counter samples the divider's pulse as a registered signal: a pulse
// driven on tick t advances the position on tick t+1, matching the
// edge-sampling behavior of the source hardware.
//
func (ctl *Controller) Step() (segments Pattern, anodes uint8) {
	pulse := ctl.div.Step()
	position := ctl.pos.Step(ctl.Reset, ctl.Load, ctl.pulse, ctl.LoadValue)
	ctl.pulse = pulse
	return ctl.mux.Step(ctl.rom.Patterns(position))
}

// Position returns the current scroll position.
//
func (ctl *Controller) Position() uint8 {
	return ctl.pos.Value()
}

// Select returns which of the four displays the multiplexer currently
// drives.
//
func (ctl *Controller) Select() uint8 {
	return ctl.mux.Select()
}

// Patterns returns the four patterns currently presented to the
// multiplexer.
//
func (ctl *Controller) Patterns() [numDisplays]Pattern {
	return ctl.rom.Patterns(ctl.pos.Value())
}
