package sim

import (
	"github.com/asreonn/pixelsim/internal/cell"
	"github.com/asreonn/pixelsim/material"
)

// applyGravity integrates one tick of fixed-point gravity for a cell
// whose current vertical velocity is vy, per the formula shared by the
// powder and fluid subsystems (spec §4.6 step 2, §4.7 step 1):
// vel_y += gravity_step; vel_y *= drag_factor; vel_y clamped to terminal.
func applyGravity(vy cell.Fixed8, props *material.Props) cell.Fixed8 {
	vy = vy.Add(props.GravityStepFixed)
	vy = vy.Mul(props.DragFactorFixed)
	return vy.Clamp(props.TerminalVelocityFixed)
}

// columnHeight counts consecutive cells of material m starting at (x,y)
// and going upward (decreasing y), inclusive of (x,y) itself. Used by the
// fluid subsystem's pressure-equalisation pass.
func columnHeight(w worldReader, m material.ID, x, y int) int {
	h := 0
	for cy := y; cy >= 0 && w.GetMat(x, cy) == m; cy-- {
		h++
	}
	return h
}

// worldReader is the minimal read surface columnHeight needs; kept as an
// unexported interface only so this helper can be unit tested against a
// stub without pulling in a full world.World.
type worldReader interface {
	GetMat(x, y int) material.ID
}
