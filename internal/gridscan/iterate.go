// Package gridscan implements the centralised grid scan shared by every
// subsystem updater: vertical direction, optionally-randomised horizontal
// direction, and chunk-active gating. It depends on neither world nor sim
// — callers pass plain width/height and a chunk-active predicate — so
// there is no import cycle between the grid and the RNG that drives it
// (mirroring the teacher's own core/physics_interface.go split, where
// core defines the port and physics implements it).
package gridscan

// Vertical selects the row scan direction.
type Vertical int

const (
	TopDown Vertical = iota
	BottomUp
)

// Horizontal selects the column scan direction. Random picks a direction
// once per Iterate call from the RNG source.
type Horizontal int

const (
	L2R Horizontal = iota
	R2L
	Random
)

// RNGSource is the one-method port the iterator needs from a simulation's
// per-tick RNG, to resolve a Random horizontal direction.
type RNGSource interface {
	Uint32() uint32
}

// CellFunc is invoked once per visited cell. Returning false stops the
// scan early.
type CellFunc func(x, y int) bool

// Iterate scans a width x height grid in the given vertical order, with a
// horizontal order chosen by horizontal (resolved once per call when
// Random), skipping cells whose chunk is not active.
func Iterate(rng RNGSource, width, height int, isChunkActive func(x, y int) bool, vertical Vertical, horizontal Horizontal, fn CellFunc) {
	scanLeft := horizontal == R2L
	if horizontal == Random {
		scanLeft = rng.Uint32()&1 == 1
	}

	rows := rowOrder(height, vertical)
	cols := colOrder(width, scanLeft)

	for _, y := range rows {
		for _, x := range cols {
			if isChunkActive != nil && !isChunkActive(x, y) {
				continue
			}
			if !fn(x, y) {
				return
			}
		}
	}
}

// IterateMultipass runs Iterate passes times. When clearUpdated is
// non-nil, it is invoked over every visited (chunk-active) cell between
// passes, matching the fluid subsystem's two-pass dispersion (spec §4.7).
func IterateMultipass(rng RNGSource, width, height int, isChunkActive func(x, y int) bool, vertical Vertical, horizontal Horizontal, passes int, clearUpdated func(x, y int), fn CellFunc) {
	for p := 0; p < passes; p++ {
		if p > 0 && clearUpdated != nil {
			Iterate(rng, width, height, isChunkActive, vertical, horizontal, func(x, y int) bool {
				clearUpdated(x, y)
				return true
			})
		}
		Iterate(rng, width, height, isChunkActive, vertical, horizontal, fn)
	}
}

func rowOrder(height int, vertical Vertical) []int {
	rows := make([]int, height)
	if vertical == TopDown {
		for i := 0; i < height; i++ {
			rows[i] = i
		}
	} else {
		for i := 0; i < height; i++ {
			rows[i] = height - 1 - i
		}
	}
	return rows
}

func colOrder(width int, scanLeft bool) []int {
	cols := make([]int, width)
	if !scanLeft {
		for i := 0; i < width; i++ {
			cols[i] = i
		}
	} else {
		for i := 0; i < width; i++ {
			cols[i] = width - 1 - i
		}
	}
	return cols
}
