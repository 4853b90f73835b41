package world

import "github.com/asreonn/pixelsim/internal/cell"

// GetFlags returns the full flag bitmask at (x,y).
func (w *World) GetFlags(x, y int) cell.Flags {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.flags[w.idx(x, y)]
}

// HasFlag reports whether every bit in mask is set at (x,y).
func (w *World) HasFlag(x, y int, mask cell.Flags) bool {
	return w.GetFlags(x, y).Has(mask)
}

// SetFlags overwrites the flag bitmask at (x,y).
func (w *World) SetFlags(x, y int, f cell.Flags) {
	if !w.inBounds(x, y) {
		return
	}
	w.flags[w.idx(x, y)] = f
}

// AddFlag ORs mask into the flags at (x,y).
func (w *World) AddFlag(x, y int, mask cell.Flags) {
	if !w.inBounds(x, y) {
		return
	}
	w.flags[w.idx(x, y)] |= mask
}

// RemoveFlag clears mask from the flags at (x,y).
func (w *World) RemoveFlag(x, y int, mask cell.Flags) {
	if !w.inBounds(x, y) {
		return
	}
	w.flags[w.idx(x, y)] &^= mask
}

// Temp returns the current-tick temperature at (x,y), in Celsius.
func (w *World) Temp(x, y int) float32 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.temp[w.idx(x, y)]
}

// SetTemp sets the current-tick temperature at (x,y).
func (w *World) SetTemp(x, y int, v float32) {
	if !w.inBounds(x, y) {
		return
	}
	w.temp[w.idx(x, y)] = v
}

// TempNext returns the next-tick (double-buffered) temperature at (x,y).
func (w *World) TempNext(x, y int) float32 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.tempNext[w.idx(x, y)]
}

// SetTempNext sets the next-tick temperature at (x,y).
func (w *World) SetTempNext(x, y int, v float32) {
	if !w.inBounds(x, y) {
		return
	}
	w.tempNext[w.idx(x, y)] = v
}

// AddTempNext adds delta to the next-tick temperature at (x,y).
func (w *World) AddTempNext(x, y int, delta float32) {
	if !w.inBounds(x, y) {
		return
	}
	w.tempNext[w.idx(x, y)] += delta
}

// SwapTempBuffers swaps temp and tempNext. Called once per tick, after
// the thermal pass (spec §3 invariants).
func (w *World) SwapTempBuffers() {
	w.temp, w.tempNext = w.tempNext, w.temp
}

// VelX returns the fixed-point horizontal velocity at (x,y).
func (w *World) VelX(x, y int) cell.Fixed8 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.velX[w.idx(x, y)]
}

// SetVelX sets the fixed-point horizontal velocity at (x,y).
func (w *World) SetVelX(x, y int, v cell.Fixed8) {
	if !w.inBounds(x, y) {
		return
	}
	w.velX[w.idx(x, y)] = v
}

// VelY returns the fixed-point vertical velocity at (x,y).
func (w *World) VelY(x, y int) cell.Fixed8 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.velY[w.idx(x, y)]
}

// SetVelY sets the fixed-point vertical velocity at (x,y).
func (w *World) SetVelY(x, y int, v cell.Fixed8) {
	if !w.inBounds(x, y) {
		return
	}
	w.velY[w.idx(x, y)] = v
}

// Lifetime returns the tick count since spawn at (x,y).
func (w *World) Lifetime(x, y int) uint8 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.lifetime[w.idx(x, y)]
}

// SetLifetime sets the lifetime counter at (x,y).
func (w *World) SetLifetime(x, y int, v uint8) {
	if !w.inBounds(x, y) {
		return
	}
	w.lifetime[w.idx(x, y)] = v
}

// IncLifetime increments the lifetime counter at (x,y), saturating at 255,
// and activates the chunk neighbourhood of (x,y) so an ageing cell keeps
// being visited until it dies or dissipates.
func (w *World) IncLifetime(x, y int) {
	if !w.inBounds(x, y) {
		return
	}
	i := w.idx(x, y)
	if w.lifetime[i] < 255 {
		w.lifetime[i]++
	}
	w.ActivateChunk(x, y)
}

// ColorSeed returns the stable per-grain colour variation seed at (x,y).
func (w *World) ColorSeed(x, y int) uint32 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.colorSeed[w.idx(x, y)]
}

// SetColorSeed sets the colour variation seed at (x,y).
func (w *World) SetColorSeed(x, y int, seed uint32) {
	if !w.inBounds(x, y) {
		return
	}
	w.colorSeed[w.idx(x, y)] = seed
}

// Pressure returns the (advisory, currently unused by any rule) pressure
// field at (x,y); reserved per spec §3.
func (w *World) Pressure(x, y int) float32 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.pressure[w.idx(x, y)]
}

// SetPressure sets the reserved pressure field at (x,y).
func (w *World) SetPressure(x, y int, v float32) {
	if !w.inBounds(x, y) {
		return
	}
	w.pressure[w.idx(x, y)] = v
}

// Density returns the reserved advisory density field at (x,y). Movement
// rules use material.Table.Density instead; this field is a per-cell
// override slot for future use.
func (w *World) Density(x, y int) float32 {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.density[w.idx(x, y)]
}

// SetDensity sets the reserved density field at (x,y).
func (w *World) SetDensity(x, y int, v float32) {
	if !w.inBounds(x, y) {
		return
	}
	w.density[w.idx(x, y)] = v
}
