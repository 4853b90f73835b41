package sim

import (
	"github.com/asreonn/pixelsim/behavior"
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// acidCorrodeChance is the per-neighbour corrosion roll (spec §4.10).
const acidCorrodeChance = 0.08

// acidUpdate drives the corrosive half of ACID's behaviour: its movement
// is handled by fluidUpdate, so this pass only rolls against corrodible
// neighbours. Scanned bottom-up with a randomised horizontal direction,
// the same as powder and fire (spec §4.10).
func (s *Simulation) acidUpdate(w *world.World) {
	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.BottomUp, gridscan.Random, func(x, y int) bool {
		s.acidCell(w, x, y)
		return true
	})
}

func (s *Simulation) acidCell(w *world.World, x, y int) {
	if w.GetMat(x, y) != material.MatAcid {
		return
	}
	if w.HasFlag(x, y, cell.Updated) {
		return
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !behavior.Corrodible(w.GetMat(nx, ny)) {
				continue
			}
			if !s.tickRNG.Bool(acidCorrodeChance) {
				continue
			}

			if s.tickRNG.Bool(0.5) {
				w.SetMat(nx, ny, material.MatSmoke)
				w.SetLifetime(nx, ny, 0)
			} else {
				w.SetMat(nx, ny, material.MatEmpty)
			}

			if s.tickRNG.Bool(0.5) {
				w.SetMat(x, y, material.MatEmpty)
			}

			w.AddFlag(x, y, cell.Updated)
			w.AddFlag(nx, ny, cell.Updated)
			w.IncCellsUpdated()
			return
		}
	}
}
