package sim

import (
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

const (
	smokeDissipateBase = 0.006
	steamCondenseBase  = 0.01
	steamRiseChance    = 0.9
	smokeRiseChance    = 0.85
	gasHorizontalGate  = 0.3
)

// gasUpdate drives SMOKE and STEAM: dissipation/condensation checks, then
// rise movement. Scanned top-down so a gas cell that rises this tick is
// not revisited lower in the same pass (spec §4.9). FIRE is a gas-state
// material but is driven entirely by fireUpdate, so it is skipped here.
func (s *Simulation) gasUpdate(w *world.World) {
	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.TopDown, gridscan.Random, func(x, y int) bool {
		s.gasCell(w, x, y)
		return true
	})
}

func (s *Simulation) gasCell(w *world.World, x, y int) {
	m := w.GetMat(x, y)
	if m != material.MatSmoke && m != material.MatSteam {
		return
	}
	if w.HasFlag(x, y, cell.Updated) {
		return
	}

	w.IncLifetime(x, y)
	lifetime := w.Lifetime(x, y)

	if m == material.MatSmoke {
		p := smokeDissipateBase * (1 + float32(lifetime)/100)
		if s.tickRNG.Bool(p) {
			w.SetMat(x, y, material.MatEmpty)
			w.AddFlag(x, y, cell.Updated)
			w.IncCellsUpdated()
			return
		}
	} else {
		temp := w.Temp(x, y)
		if temp < 80 {
			p := steamCondenseBase * (80 - temp) / 80
			if s.tickRNG.Bool(p) {
				w.SetMat(x, y, material.MatWater)
				w.AddFlag(x, y, cell.Updated)
				w.IncCellsUpdated()
				return
			}
		}
	}

	riseChance := float32(smokeRiseChance)
	if m == material.MatSteam {
		riseChance = steamRiseChance
	}
	if !s.tickRNG.Bool(riseChance) {
		w.AddFlag(x, y, cell.Updated)
		return
	}

	if tx, ty, ok := gasRiseMove(&s.tickRNG, w, x, y); ok {
		w.SwapCells(x, y, tx, ty)
		w.AddFlag(x, y, cell.Updated)
		w.AddFlag(tx, ty, cell.Updated)
		w.IncCellsUpdated()
		return
	}

	// Priority 4 (smoke only): bubble up through the fluid directly above.
	if m == material.MatSmoke && w.Table().IsFluid(w.GetMat(x, y-1)) {
		w.SwapCells(x, y, x, y-1)
		w.AddFlag(x, y, cell.Updated)
		w.AddFlag(x, y-1, cell.Updated)
		w.IncCellsUpdated()
		return
	}

	w.AddFlag(x, y, cell.Updated)
}

// gasRiseMove resolves priorities 1-3 of the rise movement shared by the
// gas and fire subsystems (spec §4.9 / §4.8 step 5): straight up, then
// diagonal up, then (gated) horizontal, each tie-broken randomly between
// an open left and an open right candidate.
func gasRiseMove(r *rng, w *world.World, x, y int) (int, int, bool) {
	if w.GasPassable(x, y-1) {
		return x, y - 1, true
	}

	leftOK := w.GasPassable(x-1, y-1)
	rightOK := w.GasPassable(x+1, y-1)
	if leftOK || rightOK {
		if leftOK && rightOK {
			if r.Bool(0.5) {
				return x - 1, y - 1, true
			}
			return x + 1, y - 1, true
		}
		if leftOK {
			return x - 1, y - 1, true
		}
		return x + 1, y - 1, true
	}

	if r.Bool(gasHorizontalGate) {
		hLeftOK := w.GasPassable(x-1, y)
		hRightOK := w.GasPassable(x+1, y)
		if hLeftOK || hRightOK {
			if hLeftOK && hRightOK {
				if r.Bool(0.5) {
					return x - 1, y, true
				}
				return x + 1, y, true
			}
			if hLeftOK {
				return x - 1, y, true
			}
			return x + 1, y, true
		}
	}

	return 0, 0, false
}
