// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

import (
	"github.com/pkg/errors"
)

const (
	numPositions = 16
	numDisplays  = 4

	// MessageLen is the fixed message length: display 3 at position 15
	// reads message index 15+3.
	MessageLen = numPositions + numDisplays - 1
)

// A Pattern is a 7-segment pattern, segments a to g in bits 0 to 6,
// 1 = segment lit.
//
type Pattern uint8

// font maps displayable characters to segment patterns. Characters with no
// sensible 7-segment rendering are simply absent; CharTable construction
// fails on them rather than displaying garbage.
var font = map[byte]Pattern{
	' ': 0x00,
	'-': 0x40,
	'_': 0x08,
	'0': 0x3f,
	'1': 0x06,
	'2': 0x5b,
	'3': 0x4f,
	'4': 0x66,
	'5': 0x6d,
	'6': 0x7d,
	'7': 0x07,
	'8': 0x7f,
	'9': 0x6f,
	'A': 0x77,
	'B': 0x7c,
	'C': 0x39,
	'D': 0x5e,
	'E': 0x79,
	'F': 0x71,
	'G': 0x3d,
	'H': 0x76,
	'I': 0x06,
	'J': 0x1e,
	'L': 0x38,
	'N': 0x54,
	'O': 0x3f,
	'P': 0x73,
	'Q': 0x67,
	'R': 0x50,
	'S': 0x6d,
	'T': 0x78,
	'U': 0x3e,
	'Y': 0x6e,
}

// A CharTable is the character ROM: an immutable mapping from a scroll
// position and a display index to a segment pattern. Each display reads the
// message at offset position+display, so the four displays always show four
// consecutive characters sliding left as the position advances.
//
//	Inputs: position[4], display[2]
//	Outputs: pattern[7]
//	Function: pattern = font[message[position+display]]
//
// The 16x4 table is precomputed at construction; Lookup is total over its
// domain and pure.
//
type CharTable struct {
	rom [numPositions][numDisplays]Pattern
}

// NewCharTable builds the ROM for the given message. Messages shorter than
// MessageLen are padded with trailing spaces; longer ones are rejected, as
// is any character missing from the 7-segment font.
//
func NewCharTable(message string) (*CharTable, error) {
	if message == "" {
		return nil, errors.New("empty message")
	}
	if len(message) > MessageLen {
		return nil, errors.Errorf("message %q longer than %d characters", message, MessageLen)
	}
	t := &CharTable{}
	for pos := 0; pos < numPositions; pos++ {
		for d := 0; d < numDisplays; d++ {
			ch := byte(' ')
			if i := pos + d; i < len(message) {
				ch = message[i]
			}
			p, ok := font[ch]
			if !ok {
				return nil, errors.Errorf("character %q has no 7-segment pattern", ch)
			}
			t.rom[pos][d] = p
		}
	}
	return t, nil
}

// Lookup returns the pattern shown by the given display at the given scroll
// position. Arguments outside 0-15 and 0-3 are caller bugs: the counter and
// multiplexer guarantee the ranges by construction, so Lookup panics instead
// of clamping.
//
func (t *CharTable) Lookup(position, display int) Pattern {
	if position < 0 || position >= numPositions || display < 0 || display >= numDisplays {
		panic("segsim: character ROM lookup out of range")
	}
	return t.rom[position][display]
}

// Patterns returns the four simultaneous display patterns at the given
// position.
//
func (t *CharTable) Patterns(position uint8) [numDisplays]Pattern {
	var ps [numDisplays]Pattern
	for d := range ps {
		ps[d] = t.Lookup(int(position), d)
	}
	return ps
}
