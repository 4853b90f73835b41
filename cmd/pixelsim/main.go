// Command pixelsim is the headless reference driver for the engine: it
// loads a scenario, paints the starting scene, runs a fixed number of
// ticks, and prints periodic telemetry. It has no window or renderer —
// that is the seam an interactive front-end would occupy.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/asreonn/pixelsim/config"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/sim"
	"github.com/asreonn/pixelsim/world"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "scenario.json", "Scenario file to load")
		ticks        = flag.Int("ticks", 600, "Number of ticks to run")
		reportEvery  = flag.Int("report-every", 60, "Print telemetry every N ticks")
		quiet        = flag.Bool("quiet", false, "Disable console output")
	)
	flag.Parse()

	scenario, err := config.Load(*scenarioPath)
	if err != nil {
		log.Fatalf("loading scenario %s: %v", *scenarioPath, err)
	}

	if !*quiet {
		fmt.Println("=== pixelsim ===")
		fmt.Printf("grid: %dx%d, tick rate: %.1f Hz, paint ops: %d\n",
			scenario.Width, scenario.Height, scenario.TickHz, len(scenario.Paint))
	}

	table := material.NewTable()
	w := world.New(scenario.Width, scenario.Height, table)

	for _, op := range scenario.Paint {
		applyPaintOp(w, op)
	}

	s := sim.New(scenario.TickHz, table)
	if scenario.SeedOverride != 0 {
		s.SetSeed(scenario.SeedOverride)
	}
	defer s.Destroy()
	realDt := 1.0 / scenario.TickHz

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		s.Update(w, realDt)

		if !*quiet && *reportEvery > 0 && (i+1)%*reportEvery == 0 {
			stats := s.Snapshot()
			fmt.Printf("tick %6d: %6.3fms (avg %6.3fms), active chunks %d, cells updated %d\n",
				stats.TickCount, stats.TickTimeMs, stats.AvgTickTimeMs, w.ActiveChunks(), w.CellsUpdated())
		}
	}

	if !*quiet {
		elapsed := time.Since(start)
		fmt.Printf("ran %d ticks in %s (%.1f ticks/s simulated at %.1f Hz)\n",
			*ticks, elapsed, float64(*ticks)/elapsed.Seconds(), 1/realDt)
	}
}

func applyPaintOp(w *world.World, op config.PaintOp) {
	m := op.MaterialID()
	switch op.Shape {
	case "circle":
		w.PaintCircle(op.X, op.Y, op.Radius, m)
	case "line":
		w.PaintLine(op.X, op.Y, op.X1, op.Y1, op.Radius, m)
	default:
		log.Printf("unknown paint shape %q, skipping", op.Shape)
	}
}
