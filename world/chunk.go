package world

// ChunkSize is the edge length, in cells, of one activity-tracking chunk.
const ChunkSize = 32

// chunkBitmap is a word-packed bitset over the chunk grid.
type chunkBitmap struct {
	bits []uint64
	cx, cy int // chunk grid dimensions
}

func newChunkBitmap(cx, cy int) chunkBitmap {
	n := cx * cy
	return chunkBitmap{bits: make([]uint64, (n+63)/64), cx: cx, cy: cy}
}

func (b *chunkBitmap) index(ccx, ccy int) int { return ccy*b.cx + ccx }

func (b *chunkBitmap) inBounds(ccx, ccy int) bool {
	return ccx >= 0 && ccx < b.cx && ccy >= 0 && ccy < b.cy
}

func (b *chunkBitmap) set(ccx, ccy int) {
	if !b.inBounds(ccx, ccy) {
		return
	}
	i := b.index(ccx, ccy)
	b.bits[i/64] |= 1 << uint(i%64)
}

func (b *chunkBitmap) get(ccx, ccy int) bool {
	if !b.inBounds(ccx, ccy) {
		return false
	}
	i := b.index(ccx, ccy)
	return b.bits[i/64]&(1<<uint(i%64)) != 0
}

func (b *chunkBitmap) clear() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

func (b *chunkBitmap) count() int {
	n := 0
	for _, w := range b.bits {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}

// chunkOf returns the chunk coordinates containing cell (x,y).
func chunkOf(x, y int) (int, int) { return x / ChunkSize, y / ChunkSize }

// ActivateChunk activates the chunk containing (x,y) and its full
// 8-neighbourhood in the write bitmap, to be read next tick. This is the
// REDESIGN FLAG normalisation from spec §9: the original source only
// activated a diagonal-ish subset of neighbours, which can stall activity
// propagation at chunk edges; the full neighbourhood avoids that.
func (w *World) ActivateChunk(x, y int) {
	ccx, ccy := chunkOf(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			w.chunkActiveNext.set(ccx+dx, ccy+dy)
		}
	}
}

// IsChunkActive reports whether the chunk containing (x,y) is active for
// the tick currently in progress (the bitmap frozen at tick start).
func (w *World) IsChunkActive(x, y int) bool {
	ccx, ccy := chunkOf(x, y)
	return w.chunkActive.get(ccx, ccy)
}

// UpdateChunkActivation swaps the active/active-next bitmaps and recounts
// ActiveChunks. The write bitmap must be zeroed before the next tick;
// callers activate chunks explicitly as cells mutate, so it is cleared
// here rather than relying on callers to do it.
func (w *World) UpdateChunkActivation() {
	w.chunkActive, w.chunkActiveNext = w.chunkActiveNext, w.chunkActive
	w.activeChunks = w.chunkActive.count()
	w.chunkActiveNext.clear()
}

// ActiveChunks returns the number of chunks active for the current tick.
func (w *World) ActiveChunks() int { return w.activeChunks }
