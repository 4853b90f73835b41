package sim

import (
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// fluidDispersionPasses is FLUID_DISPERSION_PASSES from spec §4.7: fluids
// get a second pass within the same tick so a level gap can close by more
// than one cell before the next subsystem runs.
const fluidDispersionPasses = 2

// fluidUpdate drives WATER and ACID: gravity fall, horizontal flow, and a
// column-height pressure-equalisation pass, over two dispersion passes.
// The spec leaves fluid scan order unstated; bottom-up mirrors the powder
// subsystem so a column resolves its fall before a neighbour reads its
// height for pressure equalisation.
func (s *Simulation) fluidUpdate(w *world.World) {
	tbl := w.Table()
	gridscan.IterateMultipass(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.BottomUp, gridscan.Random, fluidDispersionPasses,
		func(x, y int) { w.RemoveFlag(x, y, cell.Updated) },
		func(x, y int) bool {
			s.fluidCell(w, tbl, x, y)
			return true
		},
	)
}

func (s *Simulation) fluidCell(w *world.World, tbl *material.Table, x, y int) {
	m := w.GetMat(x, y)
	if !tbl.IsFluid(m) {
		return
	}
	if w.HasFlag(x, y, cell.Updated) {
		return
	}
	props := tbl.Get(m)

	vy := applyGravity(w.VelY(x, y), props)
	w.SetVelY(x, y, vy)

	steps := vy.Steps(2)
	if steps == 0 && vy != 0 {
		steps = 1
	}

	tx, ty := x, y
	moved := false
	for st := 1; st <= steps; st++ {
		ny := y + st
		if w.FluidPassable(x, ny) {
			tx, ty = x, ny
			moved = true
			continue
		}
		if st == 1 {
			w.SetVelY(x, y, 0)
		}
		break
	}

	if !moved || vy <= 0 {
		if tx2, ty2, ok := s.fluidFlow(w, props, x, y); ok {
			tx, ty = tx2, ty2
			moved = true
		}
	}

	if !moved {
		if tx2, ty2, ok := s.fluidEqualize(w, m, x, y); ok {
			tx, ty = tx2, ty2
			moved = true
		}
	}

	w.SetVelX(x, y, w.VelX(x, y).Mul(props.DragFactorFixed))

	if !moved {
		return
	}
	w.SwapCells(x, y, tx, ty)
	w.AddFlag(x, y, cell.Updated)
	w.AddFlag(tx, ty, cell.Updated)
	w.IncCellsUpdated()
}

// fluidFlow is the horizontal-flow step: gated by flow_rate, ties broken
// randomly between an open left and an open right neighbour.
func (s *Simulation) fluidFlow(w *world.World, props *material.Props, x, y int) (int, int, bool) {
	if !s.tickRNG.Bool(props.FlowRate) {
		return 0, 0, false
	}
	leftOK := w.FluidPassable(x-1, y)
	rightOK := w.FluidPassable(x+1, y)
	if !leftOK && !rightOK {
		return 0, 0, false
	}
	if leftOK && rightOK {
		if s.tickRNG.Bool(0.5) {
			return x - 1, y, true
		}
		return x + 1, y, true
	}
	if leftOK {
		return x - 1, y, true
	}
	return x + 1, y, true
}

// fluidEqualize is the pressure-equalisation step: a cell that neither
// fell nor flowed moves toward a horizontal neighbour whose same-material
// column is at least two cells shorter (spec §4.7 step 5).
func (s *Simulation) fluidEqualize(w *world.World, m material.ID, x, y int) (int, int, bool) {
	if !s.tickRNG.Bool(0.3) {
		return 0, 0, false
	}
	selfH := columnHeight(w, m, x, y)
	leftShort := selfH-columnHeight(w, m, x-1, y) >= 2 && w.FluidPassable(x-1, y)
	rightShort := selfH-columnHeight(w, m, x+1, y) >= 2 && w.FluidPassable(x+1, y)
	switch {
	case leftShort && rightShort:
		if s.tickRNG.Bool(0.5) {
			return x - 1, y, true
		}
		return x + 1, y, true
	case leftShort:
		return x - 1, y, true
	case rightShort:
		return x + 1, y, true
	default:
		return 0, 0, false
	}
}
