// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim_test

import (
	"fmt"
	"testing"

	"github.com/db47h/segsim"
)

func TestTickGen_periodicity(t *testing.T) {
	for _, terminal := range []uint32{0, 1, 3, 9, 255} {
		t.Run(fmt.Sprintf("terminal=%d", terminal), func(t *testing.T) {
			g := segsim.NewTickGen(terminal)
			period := int(terminal) + 1
			// three full periods: exactly one pulse per period, on its
			// last tick, with the count wrapping to 0 on that same tick.
			for i := 0; i < 3*period; i++ {
				pulse := g.Step()
				want := i%period == period-1
				if pulse != want {
					t.Fatalf("step %d: pulse = %v, want %v", i, pulse, want)
				}
				if pulse && g.Count() != 0 {
					t.Fatalf("step %d: count = %d after pulse, want 0", i, g.Count())
				}
			}
		})
	}
}

func TestTickGen_countBounded(t *testing.T) {
	const terminal = 7
	g := segsim.NewTickGen(terminal)
	for i := 0; i < 10*(terminal+1); i++ {
		g.Step()
		if g.Count() > terminal {
			t.Fatalf("step %d: count = %d exceeds terminal %d", i, g.Count(), terminal)
		}
	}
}
