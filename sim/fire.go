package sim

import (
	"github.com/asreonn/pixelsim/behavior"
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

const (
	fireDeathRandom  = 0.02
	fireMaxLifetime  = 120
	fireSmokeChance  = 0.15
	fireSpreadChance = 0.03
	fireRiseChance   = 0.6
)

// fireUpdate drives FIRE: ages and kills burning cells, produces smoke,
// spreads to flammable neighbours, and rises like a gas. Scanned
// bottom-up with a randomised horizontal direction, the same as powder
// (spec §4.8).
func (s *Simulation) fireUpdate(w *world.World) {
	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.BottomUp, gridscan.Random, func(x, y int) bool {
		s.fireCell(w, x, y)
		return true
	})
}

func (s *Simulation) fireCell(w *world.World, x, y int) {
	if w.GetMat(x, y) != material.MatFire {
		return
	}
	if w.HasFlag(x, y, cell.Updated) {
		return
	}

	w.IncLifetime(x, y)
	lifetime := w.Lifetime(x, y)

	if s.tickRNG.Bool(fireDeathRandom) || lifetime >= fireMaxLifetime {
		s.fireDie(w, x, y)
		return
	}

	if s.tickRNG.Bool(fireSmokeChance) && w.IsEmpty(x, y-1) {
		w.SetMat(x, y-1, material.MatSmoke)
		w.AddFlag(x, y-1, cell.Updated)
	}

	s.fireSpread(w, x, y)

	if s.tickRNG.Bool(fireRiseChance) {
		if tx, ty, ok := gasRiseMove(&s.tickRNG, w, x, y); ok {
			w.SwapCells(x, y, tx, ty)
			w.AddFlag(tx, ty, cell.Updated)
			w.IncCellsUpdated()
		}
	}

	w.AddFlag(x, y, cell.Updated)
}

// fireDie resolves the death roll: mostly ash or smoke, occasionally
// nothing at all (spec §4.8 step 2).
func (s *Simulation) fireDie(w *world.World, x, y int) {
	r := s.tickRNG.Float()
	next := material.MatEmpty
	switch {
	case r < 0.3:
		next = material.MatAsh
	case r < 0.8:
		next = material.MatSmoke
	}
	w.SetMat(x, y, next)
	w.SetLifetime(x, y, 0)
	w.RemoveFlag(x, y, cell.Burning)
	w.AddFlag(x, y, cell.Updated)
	w.IncCellsUpdated()
}

// fireSpread rolls independently for each of the 8 neighbours, igniting
// any flammable one (spec §4.8 step 4).
func (s *Simulation) fireSpread(w *world.World, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !s.tickRNG.Bool(fireSpreadChance) {
				continue
			}
			nx, ny := x+dx, y+dy
			if !behavior.Flammable(w.GetMat(nx, ny)) {
				continue
			}
			w.SetMat(nx, ny, material.MatFire)
			w.AddFlag(nx, ny, cell.Burning)
		}
	}
}
