package sim

import (
	"math"

	"github.com/asreonn/pixelsim/internal/gridscan"
	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

const (
	ambientTemp         = 20.0
	heatDiffusionRate   = 0.15
	fireTemperature     = 800.0
	ambientCoolingRate  = 0.001
	tempClampMin        = -100.0
	tempClampMax        = 2000.0
	lowConductivityFloor = 0.001
)

// thermalUpdate runs the two top-down passes of spec §4.11: diffusion
// into tempNext, then phase-change rolls against the still-current temp,
// and finally swaps the double buffer once. Neither pass randomises
// horizontal order; conduction has no left/right bias to break a tie on.
func (s *Simulation) thermalUpdate(w *world.World) {
	tbl := w.Table()

	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.TopDown, gridscan.L2R, func(x, y int) bool {
		s.thermalDiffuse(w, tbl, x, y)
		return true
	})

	gridscan.Iterate(&s.tickRNG, w.W, w.H, w.IsChunkActive, gridscan.TopDown, gridscan.L2R, func(x, y int) bool {
		s.thermalPhaseCell(w, x, y)
		return true
	})

	w.SwapTempBuffers()
}

var thermalOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func (s *Simulation) thermalDiffuse(w *world.World, tbl *material.Table, x, y int) {
	m := w.GetMat(x, y)
	temp := w.Temp(x, y)

	switch {
	case m == material.MatFire:
		w.SetTempNext(x, y, fireTemperature)
		return
	case tbl.IsEmpty(m):
		w.SetTempNext(x, y, temp+(ambientTemp-temp)*0.1)
		return
	}

	props := tbl.Get(m)
	if props.Conductivity <= lowConductivityFloor {
		w.SetTempNext(x, y, temp)
		return
	}

	var heatIn float32
	count := 0
	for _, o := range thermalOffsets {
		nx, ny := x+o[0], y+o[1]
		if nx < 0 || nx >= w.W || ny < 0 || ny >= w.H {
			continue
		}
		nprops := tbl.Get(w.GetMat(nx, ny))
		heatIn += (w.Temp(nx, ny) - temp) * sqrt32(props.Conductivity*nprops.Conductivity)
		count++
	}

	next := temp
	if count > 0 {
		hc := props.HeatCapacity
		if hc < 0.1 {
			hc = 0.1
		}
		next = temp + (heatIn*heatDiffusionRate/float32(count))/hc
	}
	next += (ambientTemp - next) * ambientCoolingRate
	if next < tempClampMin {
		next = tempClampMin
	}
	if next > tempClampMax {
		next = tempClampMax
	}
	w.SetTempNext(x, y, next)
}

// thermalPhaseCell rolls ICE/WATER/STEAM transitions against the
// current (pre-swap) temperature, nudging the already-computed tempNext
// by the transition's latent-heat adjustment (spec §4.11 pass 2).
func (s *Simulation) thermalPhaseCell(w *world.World, x, y int) {
	m := w.GetMat(x, y)
	temp := w.Temp(x, y)

	switch m {
	case material.MatIce:
		if temp > 0 && s.tickRNG.Bool(0.01+temp*0.002) {
			w.SetMat(x, y, material.MatWater)
			w.AddTempNext(x, y, -10)
		}
	case material.MatWater:
		switch {
		case temp < 0 && s.tickRNG.Bool(0.005+(-temp)*0.001):
			w.SetMat(x, y, material.MatIce)
			w.AddTempNext(x, y, 5)
		case temp > 100 && s.tickRNG.Bool(0.02+(temp-100)*0.005):
			w.SetMat(x, y, material.MatSteam)
			w.SetLifetime(x, y, 0)
			w.AddTempNext(x, y, -50)
		}
	case material.MatSteam:
		if temp < 80 && s.tickRNG.Bool(0.01+(80-temp)*0.001) {
			w.SetMat(x, y, material.MatWater)
			w.SetLifetime(x, y, 0)
			w.AddTempNext(x, y, 20)
		}
	}
}

func sqrt32(v float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}
