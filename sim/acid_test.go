package sim

import (
	"testing"

	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// TestAcidCorrodesStoneEventually checks the corrosion roll against a
// corrodible neighbour (spec §4.10): with enough attempts, an acid cell
// surrounded by STONE eventually converts at least one neighbour to
// SMOKE or EMPTY.
func TestAcidCorrodesStoneEventually(t *testing.T) {
	table := material.NewTable()
	s := seededSim(60, table, 17)

	corroded := false
	for i := 0; i < 2000 && !corroded; i++ {
		w := world.New(3, 3, table)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if x == 1 && y == 1 {
					continue
				}
				w.SetMat(x, y, material.MatStone)
			}
		}
		w.SetMat(1, 1, material.MatAcid)

		s.acidCell(w, 1, 1)

		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if x == 1 && y == 1 {
					continue
				}
				if m := w.GetMat(x, y); m == material.MatSmoke || m == material.MatEmpty {
					corroded = true
				}
			}
		}
	}
	if !corroded {
		t.Fatal("an acid cell fully surrounded by STONE should eventually corrode a neighbour")
	}
}

// TestAcidDoesNotTouchNonCorrodible checks that FLUID/empty neighbours are
// never mistaken for corrodible targets.
func TestAcidDoesNotTouchNonCorrodible(t *testing.T) {
	table := material.NewTable()
	w := world.New(3, 3, table)
	w.SetMat(1, 1, material.MatAcid)
	w.SetMat(1, 0, material.MatWater)

	s := seededSim(60, table, 1)
	for i := 0; i < 500; i++ {
		s.acidCell(w, 1, 1)
		if w.GetMat(1, 0) != material.MatWater {
			t.Fatal("WATER is not corrodible and should never be replaced by the acid pass")
		}
	}
}
