// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

const (
	phaseBits = 17
	phaseMask = 1<<phaseBits - 1
)

// anodePatterns is the active-low one-hot anode select, indexed by the top
// two bits of the phase counter. Exactly one bit is 0: the display currently
// powered.
var anodePatterns = [numDisplays]uint8{
	0: 0xe, // 1110
	1: 0xd, // 1101
	2: 0xb, // 1011
	3: 0x7, // 0111
}

// A Muxer time-multiplexes four segment patterns onto the single shared
// segment bus.
//
//	Inputs: patterns[4][7]
//	Outputs: segments[7], anodes[4]
//	Function: segments = patterns[phase>>15]; anodes = one-hot-low select.
//
// The 17-bit phase counter free-runs with natural wraparound and no reset;
// at a 100 MHz reference tick its top two bits step each display at ~190 Hz,
// fast enough that all four appear lit at once.
//
type Muxer struct {
	phase uint32
}

// Step advances the phase counter by one reference tick and returns the
// shared segment bus and the anode select. The outputs are combinational on
// the phase value of this same step, not a registered copy.
//
func (m *Muxer) Step(patterns [numDisplays]Pattern) (segments Pattern, anodes uint8) {
	m.phase = (m.phase + 1) & phaseMask
	sel := m.phase >> (phaseBits - 2)
	return patterns[sel], anodePatterns[sel]
}

// Select returns the display currently driven (the top two phase bits).
//
func (m *Muxer) Select() uint8 {
	return uint8(m.phase >> (phaseBits - 2))
}
