// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command segtrace runs the display controller simulation for a number of
// reference ticks, prints the visible frame whenever the scroll position
// changes and optionally renders a waveform plot of the recorded signals.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/db47h/segsim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	message  = flag.String("msg", segsim.DefaultMessage, "message to scroll (19 characters max)")
	terminal = flag.Uint("terminal", 1<<17-1, "divider terminal count (49999999 on the real hardware)")
	ticks    = flag.Int("ticks", 1<<21, "number of reference ticks to simulate")
	plotFile = flag.String("plot", "", "write a waveform plot (PNG) to this file")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	ctl, err := segsim.New(*message, uint32(*terminal))
	if err != nil {
		log.Fatal(err)
	}
	rec := segsim.NewRecorder(ctl)
	rec.Run(*ticks)

	printFrames(rec, *message)
	if *plotFile != "" {
		if err := savePlot(rec, *plotFile); err != nil {
			log.Fatal(err)
		}
		log.Print("plot written to ", *plotFile)
	}
}

// printFrames prints the four-character window shown by the displays each
// time the scroll position changes.
func printFrames(rec *segsim.Recorder, msg string) {
	if n := segsim.MessageLen - len(msg); n > 0 {
		msg += strings.Repeat(" ", n)
	}
	last := -1
	for i, p := range rec.Position {
		if int(p) == last {
			continue
		}
		last = int(p)
		fmt.Printf("tick %9d  pos %2d  [%s]\n", i+1, p, msg[p:p+4])
	}
}

func savePlot(rec *segsim.Recorder, name string) error {
	pos := make(plotter.XYs, rec.Ticks())
	sel := make(plotter.XYs, rec.Ticks())
	for i := 0; i < rec.Ticks(); i++ {
		pos[i].X, pos[i].Y = float64(i), float64(rec.Position[i])
		sel[i].X, sel[i].Y = float64(i), float64(rec.Select[i])
	}
	lp, err := plotter.NewLine(pos)
	if err != nil {
		return err
	}
	ls, err := plotter.NewLine(sel)
	if err != nil {
		return err
	}
	ls.Color = color.RGBA{R: 0xc0, A: 0xff}

	p := plot.New()
	p.Title.Text = "display controller trace"
	p.X.Label.Text = "reference tick"
	p.Y.Label.Text = "value"
	p.Add(lp, ls)
	p.Legend.Add("scroll position", lp)
	p.Legend.Add("display select", ls)
	return p.Save(10*vg.Inch, 4*vg.Inch, name)
}
