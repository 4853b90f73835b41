package sim

import (
	"testing"

	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// TestScenarioSandPile mirrors end-to-end scenario 1: a column of SAND
// dropped over a STONE floor settles into a pile, conserving its total
// cell count, never drifting above its drop height.
func TestScenarioSandPile(t *testing.T) {
	table := material.NewTable()
	w := world.New(100, 100, table)
	for y := 95; y < 100; y++ {
		for x := 0; x < 100; x++ {
			w.SetMat(x, y, material.MatStone)
		}
	}
	for y := 0; y < 6; y++ {
		for x := 45; x < 55; x++ {
			w.SetMat(x, y, material.MatSand)
		}
	}

	s := seededSim(60, table, 100)
	for i := 0; i < 500; i++ {
		s.Tick(w)
	}

	count := 0
	aboveFloor := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if w.GetMat(x, y) == material.MatSand {
				count++
				if y > 50 {
					aboveFloor++
				}
			}
		}
	}
	if count != 60 {
		t.Fatalf("expected all 60 SAND cells to persist (falling sand only swaps), got %d", count)
	}
	if aboveFloor != count {
		t.Fatalf("expected the pile to have fully settled below y=50 after 500 ticks, found %d of %d cells still above", count-aboveFloor, count)
	}
}

// TestScenarioWaterLevelsConverge mirrors end-to-end scenario 2: two
// basins of differing initial water height, connected by an open channel
// above a low dividing wall, move toward a common level over time.
func TestScenarioWaterLevelsConverge(t *testing.T) {
	table := material.NewTable()
	w := world.New(60, 50, table)

	for x := 0; x < 60; x++ {
		w.SetMat(x, 45, material.MatStone)
	}
	for y := 35; y < 45; y++ {
		w.SetMat(30, y, material.MatStone)
	}

	for y := 25; y < 45; y++ { // left basin, height 20
		for x := 1; x < 30; x++ {
			w.SetMat(x, y, material.MatWater)
		}
	}
	for y := 40; y < 45; y++ { // right basin, height 5
		for x := 31; x < 59; x++ {
			w.SetMat(x, y, material.MatWater)
		}
	}

	columnHeightAt := func(x int) int {
		h := 0
		for y := 44; y >= 0; y-- {
			if w.GetMat(x, y) == material.MatWater {
				h++
			} else {
				break
			}
		}
		return h
	}

	initialDiff := columnHeightAt(10) - columnHeightAt(50)
	if initialDiff < 0 {
		initialDiff = -initialDiff
	}

	s := seededSim(60, table, 200)
	for i := 0; i < 2000; i++ {
		s.Tick(w)
	}

	finalDiff := columnHeightAt(10) - columnHeightAt(50)
	if finalDiff < 0 {
		finalDiff = -finalDiff
	}

	if finalDiff >= initialDiff {
		t.Fatalf("expected the two basins to move toward a common level: initial diff %d, final diff %d", initialDiff, finalDiff)
	}
}

// TestScenarioFireConsumesWood mirrors end-to-end scenario 3: an ignited
// block of WOOD eventually either fully converts away from WOOD or burns
// itself out.
func TestScenarioFireConsumesWood(t *testing.T) {
	table := material.NewTable()
	w := world.New(40, 40, table)
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			w.SetMat(x, y, material.MatWood)
		}
	}
	w.SetMat(20, 20, material.MatFire)

	s := seededSim(60, table, 300)
	for i := 0; i < 2000; i++ {
		s.Tick(w)
	}

	woodLeft, fireLeft := 0, 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			switch w.GetMat(x, y) {
			case material.MatWood:
				woodLeft++
			case material.MatFire:
				fireLeft++
			}
		}
	}
	if woodLeft != 0 && fireLeft != 0 {
		t.Fatalf("expected all WOOD consumed or the fire to die out; wood=%d fire=%d remaining", woodLeft, fireLeft)
	}
}

// TestScenarioFireNearWaterDies mirrors end-to-end scenario 4: a FIRE
// cell below a WATER cell does not outlive FIRE's hard lifetime cap, and
// WATER/STEAM remains in the area afterward.
func TestScenarioFireNearWaterDies(t *testing.T) {
	table := material.NewTable()
	w := world.New(10, 10, table)
	w.SetMat(5, 6, material.MatFire)
	w.SetMat(5, 5, material.MatWater)

	s := seededSim(60, table, 400)
	for i := 0; i < 150; i++ { // comfortably past FIRE's 120-tick hard death cap
		s.Tick(w)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if w.GetMat(x, y) == material.MatFire {
				t.Fatal("FIRE should be gone well before 150 ticks given its hard lifetime cap")
			}
		}
	}

	found := false
	for y := 0; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if m := w.GetMat(x, y); m == material.MatWater || m == material.MatSteam {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected WATER or STEAM to remain near the original site after the fire died")
	}
}

// TestScenarioAcidErodesStone mirrors end-to-end scenario 5: a standing
// column of ACID above a STONE block erodes it over time, producing
// SMOKE byproducts, while never gaining ACID cells.
func TestScenarioAcidErodesStone(t *testing.T) {
	table := material.NewTable()
	w := world.New(20, 30, table)
	for y := 20; y < 25; y++ {
		for x := 5; x < 10; x++ {
			w.SetMat(x, y, material.MatStone)
		}
	}
	for y := 0; y < 15; y++ {
		for x := 5; x < 10; x++ {
			w.SetMat(x, y, material.MatAcid)
		}
	}

	countMat := func(m material.ID) int {
		n := 0
		for y := 0; y < 30; y++ {
			for x := 0; x < 20; x++ {
				if w.GetMat(x, y) == m {
					n++
				}
			}
		}
		return n
	}

	initialStone := countMat(material.MatStone)
	initialAcid := countMat(material.MatAcid)

	s := seededSim(60, table, 500)
	sawSmoke := false
	for i := 0; i < 5000; i++ {
		s.Tick(w)
		if !sawSmoke && countMat(material.MatSmoke) > 0 {
			sawSmoke = true
		}
	}

	if countMat(material.MatStone) >= initialStone {
		t.Fatalf("expected the STONE block to be reduced by corrosion; before=%d after=%d", initialStone, countMat(material.MatStone))
	}
	if !sawSmoke {
		t.Fatal("expected corrosion byproduct SMOKE cells to have appeared")
	}
	if countMat(material.MatAcid) > initialAcid {
		t.Fatalf("ACID count should never increase; before=%d after=%d", initialAcid, countMat(material.MatAcid))
	}
}

// TestScenarioIceMeltsInHeat mirrors end-to-end scenario 6: an ICE cell
// surrounded by a ring of FIRE eventually becomes WATER.
func TestScenarioIceMeltsInHeat(t *testing.T) {
	table := material.NewTable()
	w := world.New(10, 10, table)
	w.SetMat(5, 5, material.MatIce)
	for _, p := range [][2]int{{4, 4}, {5, 4}, {6, 4}, {4, 5}, {6, 5}, {4, 6}, {5, 6}, {6, 6}} {
		w.SetMat(p[0], p[1], material.MatFire)
	}

	s := seededSim(60, table, 600)
	melted := false
	for i := 0; i < 2000 && !melted; i++ {
		s.Tick(w)
		if w.GetMat(5, 5) != material.MatIce {
			melted = true
		}
	}
	if !melted {
		t.Fatal("expected the ICE cell surrounded by fire to melt within 2000 ticks")
	}
	if m := w.GetMat(5, 5); m != material.MatWater && m != material.MatEmpty && m != material.MatSteam {
		t.Fatalf("expected ICE to have become WATER (or further transitioned), got %v", m)
	}
}
