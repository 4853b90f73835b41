// Package cell holds the small per-cell value types shared by world and the
// sim subsystem updaters: the flag bitmask and the fixed-point velocity
// representation. Splitting these out avoids an import cycle between world
// and sim, the same way the teacher keeps core free of the physics package.
package cell

// Flags is the per-cell 16-bit overlay bitmask.
type Flags uint16

const (
	Updated   Flags = 1 << iota // cleared at the start of every tick
	Burning                     // persistent until a rule clears it
	Static                      // persistent
	Wet                         // persistent
	Hot                         // persistent
	Corroding                   // persistent
	Frozen                      // persistent
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
