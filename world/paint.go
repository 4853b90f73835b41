package world

import "github.com/asreonn/pixelsim/material"

// PaintCircle fills a filled disc of radius r centred on (cx,cy) with m,
// using per-cell SetMat so velocity resets and chunk activation happen
// through the normal write path. An integer fill of every cell in the
// bounding square with dx*dx+dy*dy <= r*r: no third-party geometry library in the retrieved pack
// targets 2D raster discs (go-gl/mathgl and gonum operate on 3D
// transforms and numerical linear algebra respectively), so this is
// grounded on the teacher's own hand-rolled rasterisation style in
// geometry.go/sphere_geometry.go rather than an external dependency.
func (w *World) PaintCircle(cx, cy, r int, m material.ID) {
	if r < 0 {
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				w.SetMat(cx+dx, cy+dy, m)
			}
		}
	}
}

// PaintLine draws a line from (x0,y0) to (x1,y1) using Bresenham's
// algorithm, stamping a disc of radius r (thickness) at every step.
func (w *World) PaintLine(x0, y0, x1, y1, r int, m material.ID) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if r <= 0 {
			w.SetMat(x, y, m)
		} else {
			w.PaintCircle(x, y, r, m)
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
