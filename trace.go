// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package segsim

// A Recorder drives a Controller and captures its observable signals after
// every step, for comparison against expected waveforms or for plotting.
// Samples are appended across multiple Run calls.
//
type Recorder struct {
	ctl *Controller

	Segments []Pattern
	Anodes   []uint8
	Position []uint8
	Select   []uint8
}

// NewRecorder returns a recorder sampling the given controller.
//
func NewRecorder(ctl *Controller) *Recorder {
	return &Recorder{ctl: ctl}
}

// Run advances the controller by n reference ticks, recording every
// observable signal after each step.
//
func (r *Recorder) Run(n int) {
	for i := 0; i < n; i++ {
		seg, an := r.ctl.Step()
		r.Segments = append(r.Segments, seg)
		r.Anodes = append(r.Anodes, an)
		r.Position = append(r.Position, r.ctl.Position())
		r.Select = append(r.Select, r.ctl.Select())
	}
}

// Ticks returns the number of recorded steps.
//
func (r *Recorder) Ticks() int {
	return len(r.Segments)
}
