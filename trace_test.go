// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim_test

import (
	"math/bits"
	"testing"

	"github.com/db47h/segsim"
)

func TestRecorder(t *testing.T) {
	ctl, err := segsim.New(segsim.DefaultMessage, 9)
	if err != nil {
		t.Fatal(err)
	}
	rec := segsim.NewRecorder(ctl)
	rec.Run(60)
	rec.Run(40)

	if rec.Ticks() != 100 {
		t.Fatalf("Ticks() = %d, want 100", rec.Ticks())
	}
	for _, n := range []int{len(rec.Segments), len(rec.Anodes), len(rec.Position), len(rec.Select)} {
		if n != 100 {
			t.Fatalf("series length = %d, want 100", n)
		}
	}
	for i, an := range rec.Anodes {
		if bits.OnesCount8(^an&0xf) != 1 {
			t.Fatalf("tick %d: anodes = %04b not one-hot-low", i+1, an)
		}
	}
	// terminal 9: pulses on ticks 10, 20... take effect one tick later, so
	// the position after tick 100 is 9.
	if got := rec.Position[99]; got != 9 {
		t.Errorf("position after 100 ticks = %d, want 9", got)
	}
	for i := 1; i < len(rec.Position); i++ {
		d := (rec.Position[i] - rec.Position[i-1]) & 0xf
		if d > 1 {
			t.Fatalf("tick %d: position jumped from %d to %d", i+1, rec.Position[i-1], rec.Position[i])
		}
	}
}
