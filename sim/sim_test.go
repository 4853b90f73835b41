package sim

import (
	"testing"

	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

func countMat(w *world.World, m material.ID) int {
	n := 0
	for y := 0; y < w.H; y++ {
		for x := 0; x < w.W; x++ {
			if w.GetMat(x, y) == m {
				n++
			}
		}
	}
	return n
}

// TestMassConservationNonReactive checks spec §8's mass-conservation
// invariant: in a closed grid with no FIRE, ACID, or ICE/WATER/STEAM and
// no phase-crossing temperatures, motion is pure swap, so every
// material's cell count is invariant across ticks.
func TestMassConservationNonReactive(t *testing.T) {
	table := material.NewTable()
	w := world.New(40, 40, table)
	w.PaintLine(0, 0, 39, 0, 0, material.MatStone)
	w.PaintLine(0, 39, 39, 39, 0, material.MatStone)
	w.PaintLine(0, 0, 0, 39, 0, material.MatStone)
	w.PaintLine(39, 0, 39, 39, 0, material.MatStone)
	w.PaintCircle(20, 10, 6, material.MatSand)

	before := countMat(w, material.MatSand)
	s := seededSim(60, table, 99)
	for i := 0; i < 400; i++ {
		s.Tick(w)
	}
	after := countMat(w, material.MatSand)

	if before != after {
		t.Fatalf("SAND count changed under pure gravity: before=%d after=%d", before, after)
	}
}

// TestVelocityStaysWithinTerminal checks |vel| <= terminal_velocity_fixed
// for every cell after a run (spec §8).
func TestVelocityStaysWithinTerminal(t *testing.T) {
	table := material.NewTable()
	w := world.New(50, 80, table)
	w.PaintCircle(25, 5, 8, material.MatSand)
	w.PaintCircle(25, 40, 8, material.MatWater)

	s := seededSim(60, table, 5)
	for i := 0; i < 200; i++ {
		s.Tick(w)
	}

	for y := 0; y < w.H; y++ {
		for x := 0; x < w.W; x++ {
			m := w.GetMat(x, y)
			limit := table.Get(m).TerminalVelocityFixed
			if vy := w.VelY(x, y).Abs(); vy > limit {
				t.Fatalf("cell (%d,%d) vel_y=%v exceeds terminal %v", x, y, vy, limit)
			}
		}
	}
}

// TestTempStaysInRange checks temp in [-100, 2000] for every cell (spec §8).
func TestTempStaysInRange(t *testing.T) {
	table := material.NewTable()
	w := world.New(40, 40, table)
	w.SetMat(20, 20, material.MatFire)
	w.PaintCircle(20, 20, 3, material.MatWood)

	s := seededSim(60, table, 3)
	for i := 0; i < 500; i++ {
		s.Tick(w)
	}

	for y := 0; y < w.H; y++ {
		for x := 0; x < w.W; x++ {
			temp := w.Temp(x, y)
			if temp < -100 || temp > 2000 {
				t.Fatalf("cell (%d,%d) temp=%v out of [-100,2000]", x, y, temp)
			}
		}
	}
}

// TestChunkGatingSoundness checks that after a tick, the chunk
// neighbourhood of cells mutated before it is active: at least one chunk
// around the painted cells must be (spec §8).
func TestChunkGatingSoundness(t *testing.T) {
	table := material.NewTable()
	w := world.New(96, 96, table)
	w.PaintCircle(48, 10, 4, material.MatSand)

	s := seededSim(60, table, 11)
	s.Tick(w) // painting activated the neighbourhood; this tick's chunk flip makes it current

	cx, cy := 48/world.ChunkSize, 10/world.ChunkSize
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := (cx+dx)*world.ChunkSize+1, (cy+dy)*world.ChunkSize+1
			if x < 0 || x >= w.W || y < 0 || y >= w.H {
				continue
			}
			if w.IsChunkActive(x, y) {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected at least one chunk in the mutated neighbourhood to be active on the next tick")
	}
}

// TestPauseStepOnce checks that Update does nothing while paused unless a
// single step was requested (spec §6).
func TestPauseStepOnce(t *testing.T) {
	table := material.NewTable()
	w := world.New(10, 10, table)
	s := seededSim(60, table, 1)

	s.SetPaused(true)
	before := s.TickCount()
	s.Update(w, 1.0)
	if s.TickCount() != before {
		t.Fatal("Update should not tick while paused")
	}

	s.StepOnce()
	s.Update(w, 0)
	if s.TickCount() != before+1 {
		t.Fatalf("StepOnce should advance exactly one tick, got %d ticks", s.TickCount()-before)
	}

	s.Update(w, 0)
	if s.TickCount() != before+1 {
		t.Fatal("single-step flag should clear itself after firing once")
	}
}

// TestAccumulatorClampsSpiral checks the max-accumulator-multiple clamp so
// a huge realDt does not cause an unbounded catch-up burst (spec §4.5).
func TestAccumulatorClampsSpiral(t *testing.T) {
	table := material.NewTable()
	w := world.New(10, 10, table)
	s := seededSim(60, table, 1)

	s.Update(w, 1000.0) // a huge stall
	if s.TickCount() > maxAccumulatorMultiple {
		t.Fatalf("expected at most %d ticks from a clamped accumulator, got %d", maxAccumulatorMultiple, s.TickCount())
	}
}
