// Package world is the mutable grid: a Structure-of-Arrays cell store
// keyed by index y*W+x, plus the paired chunk-activation bitmaps. It is
// the Go analogue of the teacher's core.VoxelPlanet (core/voxel_planet.go)
// — a single flat allocation created once at startup and mutated in place
// for the life of the simulation, with no destroy/free step needed since
// Go is garbage collected (Destroy is kept as a no-op method only to
// preserve the engine API surface named in spec §6).
package world

import (
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/material"
)

// World is the cell grid. All exported accessors are bounds-checked;
// out-of-bounds reads return the Empty material, out-of-bounds writes are
// no-ops (spec §3 invariants, §4.12).
type World struct {
	W, H  int
	table *material.Table

	mat     []material.ID
	matNext []material.ID // reserved, unused by the in-place scan (spec §9)

	flags     []cell.Flags
	colorSeed []uint32

	temp     []float32
	tempNext []float32

	velX, velY []cell.Fixed8

	lifetime []uint8

	pressure []float32
	density  []float32

	chunkActive     chunkBitmap
	chunkActiveNext chunkBitmap
	activeChunks    int

	cellsUpdated int
}

// New allocates a W x H grid, filled with Empty. table supplies the
// per-material properties consulted by every mutation below.
func New(w, h int, table *material.Table) *World {
	n := w * h
	cx := (w + ChunkSize - 1) / ChunkSize
	cy := (h + ChunkSize - 1) / ChunkSize
	return &World{
		W: w, H: h, table: table,
		mat:       make([]material.ID, n),
		matNext:   make([]material.ID, n),
		flags:     make([]cell.Flags, n),
		colorSeed: make([]uint32, n),
		temp:      make([]float32, n),
		tempNext:  make([]float32, n),
		velX:      make([]cell.Fixed8, n),
		velY:      make([]cell.Fixed8, n),
		lifetime:  make([]uint8, n),
		pressure:  make([]float32, n),
		density:   make([]float32, n),

		chunkActive:     newChunkBitmap(cx, cy),
		chunkActiveNext: newChunkBitmap(cx, cy),
	}
}

// Destroy is a no-op kept for API parity with the spec's world_destroy;
// Go's garbage collector reclaims the grid once the World is unreferenced.
func (w *World) Destroy() {}

// Table returns the material table backing this world.
func (w *World) Table() *material.Table { return w.table }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.W && y >= 0 && y < w.H
}

func (w *World) idx(x, y int) int { return y*w.W + x }

// Clear resets every cell to its zero value (Empty material, no heat, no
// velocity) and clears both chunk bitmaps.
func (w *World) Clear() {
	for i := range w.mat {
		w.mat[i] = material.MatEmpty
		w.matNext[i] = material.MatEmpty
		w.flags[i] = 0
		w.colorSeed[i] = 0
		w.temp[i] = 0
		w.tempNext[i] = 0
		w.velX[i] = 0
		w.velY[i] = 0
		w.lifetime[i] = 0
		w.pressure[i] = 0
		w.density[i] = 0
	}
	w.chunkActive.clear()
	w.chunkActiveNext.clear()
	w.activeChunks = 0
	w.cellsUpdated = 0
}

// GetMat returns the material at (x,y), or Empty if out of bounds.
func (w *World) GetMat(x, y int) material.ID {
	if !w.inBounds(x, y) {
		return material.MatEmpty
	}
	return w.mat[w.idx(x, y)]
}

// SetMat directly sets the material at (x,y). It zeroes the cell's
// velocity (spec §3: "velocity is zeroed whenever a cell's material is
// set directly, as opposed to swapped") and activates the 8-neighbourhood
// of chunks around (x,y). Out-of-bounds writes are no-ops.
func (w *World) SetMat(x, y int, m material.ID) {
	if !w.inBounds(x, y) {
		return
	}
	i := w.idx(x, y)
	w.mat[i] = m
	w.velX[i] = 0
	w.velY[i] = 0
	w.ActivateChunk(x, y)
}

// SwapCells exchanges mat, colorSeed, velX, velY and lifetime between the
// two cells (flags are NOT swapped, per spec §4.1) and activates the
// chunk neighbourhood of both endpoints.
func (w *World) SwapCells(ax, ay, bx, by int) {
	if !w.inBounds(ax, ay) || !w.inBounds(bx, by) {
		return
	}
	ai, bi := w.idx(ax, ay), w.idx(bx, by)
	w.mat[ai], w.mat[bi] = w.mat[bi], w.mat[ai]
	w.colorSeed[ai], w.colorSeed[bi] = w.colorSeed[bi], w.colorSeed[ai]
	w.velX[ai], w.velX[bi] = w.velX[bi], w.velX[ai]
	w.velY[ai], w.velY[bi] = w.velY[bi], w.velY[ai]
	w.lifetime[ai], w.lifetime[bi] = w.lifetime[bi], w.lifetime[ai]
	w.ActivateChunk(ax, ay)
	w.ActivateChunk(bx, by)
}

// IsEmpty reports whether the material at (x,y) has state class Empty.
func (w *World) IsEmpty(x, y int) bool { return w.table.IsEmpty(w.GetMat(x, y)) }

// IsSolid reports whether the material at (x,y) has state class Solid.
func (w *World) IsSolid(x, y int) bool { return w.table.IsSolid(w.GetMat(x, y)) }

// PowderPassable reports whether a powder grain may enter (x,y): empty,
// fluid or gas, and in bounds (out of bounds acts as a solid wall).
func (w *World) PowderPassable(x, y int) bool {
	if !w.inBounds(x, y) {
		return false
	}
	m := w.mat[w.idx(x, y)]
	return w.table.IsEmpty(m) || w.table.IsFluid(m) || w.table.IsGas(m)
}

// FluidPassable reports whether a fluid may enter (x,y): empty or gas.
func (w *World) FluidPassable(x, y int) bool {
	if !w.inBounds(x, y) {
		return false
	}
	m := w.mat[w.idx(x, y)]
	return w.table.IsEmpty(m) || w.table.IsGas(m)
}

// GasPassable reports whether a gas may enter (x,y): empty only.
func (w *World) GasPassable(x, y int) bool {
	if !w.inBounds(x, y) {
		return false
	}
	return w.table.IsEmpty(w.mat[w.idx(x, y)])
}

// ClearTickFlags clears only the Updated bit across the whole grid (spec
// §4.1). Other flags (Burning, Frozen, ...) have tick-persistent scope.
func (w *World) ClearTickFlags() {
	for i := range w.flags {
		w.flags[i] &^= cell.Updated
	}
}

// CellsUpdated returns the number of cell updates the subsystem updaters
// have counted so far this tick.
func (w *World) CellsUpdated() int { return w.cellsUpdated }

// ResetCellsUpdated zeroes the per-tick counter.
func (w *World) ResetCellsUpdated() { w.cellsUpdated = 0 }

// IncCellsUpdated increments the per-tick counter. Subsystem updaters call
// this once per cell they move or transform (a fall, flow, rise, fire
// death, smoke dissipation, steam condensation or acid corrosion); fire
// spread, smoke production, splashes and thermal phase changes are not
// counted.
func (w *World) IncCellsUpdated() { w.cellsUpdated++ }

// GetCellColor returns the render-facing colour for the cell at (x,y).
func (w *World) GetCellColor(x, y int) material.Color {
	if !w.inBounds(x, y) {
		return w.table.Get(material.MatEmpty).BaseColor
	}
	i := w.idx(x, y)
	return w.table.Color(w.mat[i], w.colorSeed[i])
}
