// Package sim is the tick orchestrator: it owns the fixed-step
// accumulator, the per-tick RNG, and the six subsystem updaters (powder,
// fluid, fire, gas, acid, thermal), run in that fixed order every tick.
// It is the Go analogue of the teacher's UpdateVoxelPhysicsCPU
// (physics/voxel_physics_cpu.go), which also runs a fixed ordered list of
// physics phases over a planet each step and times them individually —
// but single-threaded and scan-order deterministic rather than the
// teacher's worker-pool/amortized variants, per spec §5's Non-goal on a
// multi-threaded worker model.
package sim

import (
	"time"

	"github.com/asreonn/pixelsim/material"
	"github.com/asreonn/pixelsim/world"
)

// maxAccumulatorMultiple bounds the fixed-step accumulator at 5*dt to
// prevent the "spiral of death" when real_dt spikes (spec §4.5).
const maxAccumulatorMultiple = 5

// TickStats is the read-only telemetry snapshot exposed to a driver or
// test (spec §6).
type TickStats struct {
	TickCount     uint64
	TickTimeMs    float64
	AvgTickTimeMs float64

	PowderUs  int64
	FluidUs   int64
	FireUs    int64
	GasUs     int64
	AcidUs    int64
	ThermalUs int64
	TotalUs   int64
}

// Simulation is the tick orchestrator. It does not own a World; the same
// Simulation can drive any World of compatible size across calls to
// Update/Tick.
type Simulation struct {
	table *material.Table

	dt          float64
	accumulator float64

	engineRNG rng
	tickRNG   rng

	paused     bool
	singleStep bool

	tickCount   uint64
	totalTimeMs float64

	stats TickStats
}

// New creates a Simulation ticking at tickHz, seeded from the current
// time (spec §4.5). table is consulted by every subsystem pass.
func New(tickHz float64, table *material.Table) *Simulation {
	return &Simulation{
		table:     table,
		dt:        1.0 / tickHz,
		engineRNG: newRNG(uint32(time.Now().UnixNano()) | 1),
	}
}

// SetSeed overrides the engine RNG's seed, replacing the time-based seed
// New started it with. A driver that read a non-zero seed from its
// configuration (e.g. scenario.SeedOverride) calls this once before the
// first Tick to make the run reproducible (spec §8, "Determinism").
func (s *Simulation) SetSeed(seed uint32) {
	s.engineRNG = newRNG(seed)
}

// Destroy is a no-op kept for API parity with the spec's
// simulation_destroy; Simulation owns no resources beyond the Go heap.
func (s *Simulation) Destroy() {}

// SetPaused sets the paused state directly.
func (s *Simulation) SetPaused(p bool) { s.paused = p }

// TogglePause flips the paused state.
func (s *Simulation) TogglePause() { s.paused = !s.paused }

// StepOnce requests exactly one tick be run on the next Update call, even
// while paused.
func (s *Simulation) StepOnce() { s.singleStep = true }

// Reset clears the tick clock and telemetry, re-seeding the engine RNG
// from the current time. It does not touch any World.
func (s *Simulation) Reset() {
	s.accumulator = 0
	s.tickCount = 0
	s.totalTimeMs = 0
	s.paused = false
	s.singleStep = false
	s.stats = TickStats{}
	s.engineRNG = newRNG(uint32(time.Now().UnixNano()) | 1)
}

// Paused reports whether the simulation is currently paused.
func (s *Simulation) Paused() bool { return s.paused }

// TickCount returns the number of ticks run so far.
func (s *Simulation) TickCount() uint64 { return s.tickCount }

// Snapshot returns the telemetry recorded by the most recent Tick.
func (s *Simulation) Snapshot() TickStats { return s.stats }

// Update is the sole per-frame entry point (spec §4.5). realDt is the
// wall-clock time since the previous call, in seconds.
func (s *Simulation) Update(w *world.World, realDt float64) {
	if s.paused && !s.singleStep {
		return
	}
	if s.singleStep {
		s.Tick(w)
		s.singleStep = false
		return
	}

	s.accumulator += realDt
	if max := maxAccumulatorMultiple * s.dt; s.accumulator > max {
		s.accumulator = max
	}
	for s.accumulator >= s.dt {
		s.Tick(w)
		s.accumulator -= s.dt
	}
}

// Tick runs exactly one fixed-step simulation tick: refresh the per-tick
// RNG seed, clear tick-scoped flags, run the six subsystem passes in
// their fixed order, then flip chunk activation for next tick. The
// subsystem order (powder -> fluid -> fire -> gas -> acid -> thermal) is
// an observable contract (spec §9), not an implementation detail.
func (s *Simulation) Tick(w *world.World) {
	start := time.Now()

	s.tickRNG = newRNG(s.engineRNG.Uint32())

	w.ClearTickFlags()
	w.ResetCellsUpdated()

	var us [6]int64
	run := func(i int, fn func()) {
		t0 := time.Now()
		fn()
		us[i] = time.Since(t0).Microseconds()
	}

	run(0, func() { s.powderUpdate(w) })
	run(1, func() { s.fluidUpdate(w) })
	run(2, func() { s.fireUpdate(w) })
	run(3, func() { s.gasUpdate(w) })
	run(4, func() { s.acidUpdate(w) })
	run(5, func() { s.thermalUpdate(w) })

	w.UpdateChunkActivation()
	s.tickCount++

	elapsedMs := time.Since(start).Seconds() * 1000
	s.totalTimeMs += elapsedMs

	s.stats = TickStats{
		TickCount:     s.tickCount,
		TickTimeMs:    elapsedMs,
		AvgTickTimeMs: s.totalTimeMs / float64(s.tickCount),
		PowderUs:      us[0],
		FluidUs:       us[1],
		FireUs:        us[2],
		GasUs:         us[3],
		AcidUs:        us[4],
		ThermalUs:     us[5],
		TotalUs:       us[0] + us[1] + us[2] + us[3] + us[4] + us[5],
	}
}
