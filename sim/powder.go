package sim

import (
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// impactThreshold is the minimum |vel_y| a falling powder grain needs to
// splash the fluid it displaces (spec §4.6 step 6).
const impactThreshold = 1.5

// powderUpdate drives SAND, SOIL and ASH: settle check, fixed-point
// gravity integration, straight fall or diagonal slide, then displace
// into empty/fluid/gas as density allows. Scanned bottom-up with a
// per-tick randomised horizontal direction so no column is always
// resolved before its neighbour (spec §4.6).
func (s *Simulation) powderUpdate(w *world.World) {
	tbl := w.Table()
	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.BottomUp, gridscan.Random, func(x, y int) bool {
		s.powderCell(w, tbl, x, y)
		return true
	})
}

func (s *Simulation) powderCell(w *world.World, tbl *material.Table, x, y int) {
	m := w.GetMat(x, y)
	if !tbl.IsPowder(m) {
		return
	}
	if w.HasFlag(x, y, cell.Updated) {
		return
	}
	props := tbl.Get(m)

	if s.tickRNG.Bool(props.SettleProbability) {
		if !w.PowderPassable(x, y+1) && !w.PowderPassable(x-1, y+1) && !w.PowderPassable(x+1, y+1) {
			return
		}
	}

	vy := applyGravity(w.VelY(x, y), props)
	w.SetVelY(x, y, vy)

	steps := vy.Steps(3)
	if steps == 0 {
		steps = 1
	}

	tx, ty := x, y
	moved := false
	for st := 1; st <= steps; st++ {
		ny := y + st
		if w.PowderPassable(x, ny) {
			tx, ty = x, ny
			moved = true
			continue
		}
		if st == 1 {
			w.SetVelY(x, y, 0)
		}
		break
	}

	if steps == 1 && !moved {
		if tx2, ty2, ok := s.powderSlide(w, props, x, y); ok {
			tx, ty = tx2, ty2
			moved = true
		}
	}

	if !moved {
		return
	}

	target := w.GetMat(tx, ty)
	switch {
	case tbl.IsEmpty(target):
		w.SwapCells(x, y, tx, ty)
	case tbl.IsFluid(target) || tbl.IsGas(target):
		if tbl.Density(m) <= tbl.Density(target) {
			return
		}
		wasFluid := tbl.IsFluid(target)
		impactSpeed := w.VelY(x, y).Abs()
		displacedSeed := w.ColorSeed(tx, ty)
		w.SwapCells(x, y, tx, ty)
		if wasFluid && impactSpeed.ToFloat() > impactThreshold {
			s.splash(w, tx, ty, target, displacedSeed)
		}
	default:
		return
	}

	w.AddFlag(x, y, cell.Updated)
	w.AddFlag(tx, ty, cell.Updated)
	w.IncCellsUpdated()
}

// powderSlide resolves the diagonal-slide tie-break: slide_bias picks the
// preferred side, cohesion can suppress the slide outright when both
// diagonals are open (spec §4.6 step 5).
func (s *Simulation) powderSlide(w *world.World, props *material.Props, x, y int) (int, int, bool) {
	leftOK := w.PowderPassable(x-1, y+1)
	rightOK := w.PowderPassable(x+1, y+1)
	if !leftOK && !rightOK {
		return 0, 0, false
	}
	if leftOK && rightOK && s.tickRNG.Bool(props.Cohesion) {
		return 0, 0, false
	}
	preferLeft := s.tickRNG.Bool(props.SlideBias)
	if leftOK && rightOK {
		if preferLeft {
			return x - 1, y + 1, true
		}
		return x + 1, y + 1, true
	}
	if leftOK {
		return x - 1, y + 1, true
	}
	return x + 1, y + 1, true
}

// splash places a droplet of the displaced fluid above the impact point
// on a random side, when the impact speed cleared impactThreshold (spec
// §4.6 step 6).
func (s *Simulation) splash(w *world.World, ix, iy int, fluidMat material.ID, fluidSeed uint32) {
	dx := -1
	if s.tickRNG.Bool(0.5) {
		dx = 1
	}
	sx, sy := ix+dx, iy-1
	if !w.FluidPassable(sx, sy) {
		return
	}
	w.SetMat(sx, sy, fluidMat)
	w.SetColorSeed(sx, sy, fluidSeed)
	vx := cell.FromFloat(0.8)
	if dx < 0 {
		vx = -vx
	}
	w.SetVelX(sx, sy, vx)
	w.SetVelY(sx, sy, cell.FromFloat(-0.5))
	w.AddFlag(sx, sy, cell.Updated)
}
