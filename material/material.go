// Package material is the static, read-only registry of per-material
// properties: state class, density, gravity, drag, thermal thresholds,
// and the derived lookup tables every other package consults. It is
// initialised once and never mutated afterward, mirroring the teacher's
// core.MaterialProperties table (core/voxel_types.go) but laid out as a
// dense array rather than a map, since the material id space here is a
// small fixed roster known at compile time.
package material

import "github.com/asreonn/pixelsim/internal/cell"

// ID identifies a material. The zero value is Empty.
type ID uint8

// State classifies a material's physical phase.
type State uint8

const (
	Empty State = iota
	Solid
	Powder
	Fluid
	Gas
)

// The fixed material roster, in the order the original source's
// behaviour table defines them.
const (
	MatEmpty ID = iota
	MatSand
	MatStone
	MatWater
	MatWood
	MatFire
	MatSmoke
	MatSoil
	MatIce
	MatSteam
	MatAsh
	MatAcid

	matCount
)

// Color is a base RGB color with a variation amplitude.
type Color struct {
	R, G, B uint8
}

// Props holds every static property of one material.
type Props struct {
	Name  string
	State State

	BaseColor       Color
	ColorVariation  uint8 // 0-255, random per-grain amplitude

	Density     float32 // kg/m^3, scaled
	Friction    float32 // 0-1
	Cohesion    float32 // 0-1, clumpiness for powders

	GravityScale      float32 // multiplier on GravityAccel
	DragCoeff         float32 // 0-1
	TerminalVelocity  float32 // cells/tick
	FlowRate          float32 // 0-1, horizontal flow chance (fluids/gases)
	SettleProbability float32 // 0-1
	SlideBias         float32 // 0-1

	Conductivity float32 // heat transfer rate
	HeatCapacity float32 // thermal mass
	IgnitionTemp float32
	MeltingTemp  float32
	BoilingTemp  float32

	// Precomputed fixed-point mirrors, built by NewTable.
	GravityStepFixed     cell.Fixed8
	DragFactorFixed      cell.Fixed8
	TerminalVelocityFixed cell.Fixed8
}

// GravityAccel is the global gravity constant (cells/tick^2) all
// materials' GravityScale is relative to.
const GravityAccel = 0.08

// Table is the immutable roster plus derived lookup tables.
type Table struct {
	props [matCount]Props

	isPowder [matCount]bool
	isFluid  [matCount]bool
	isSolid  [matCount]bool
	isEmpty  [matCount]bool
	isGas    [matCount]bool
}

// NewTable builds the full material roster and its derived tables. It is
// meant to be called once at startup, the same way the original source's
// material_init runs once before the simulation loop begins.
func NewTable() *Table {
	t := &Table{}
	t.props = [matCount]Props{
		MatEmpty: {Name: "empty", State: Empty},
		MatSand: {
			Name: "sand", State: Powder,
			BaseColor: Color{194, 178, 128}, ColorVariation: 20,
			Density: 1600, Friction: 0.6, Cohesion: 0.05,
			GravityScale: 1.0, DragCoeff: 0.02, TerminalVelocity: 8,
			SettleProbability: 0.3, SlideBias: 0.5,
			Conductivity: 0.15, HeatCapacity: 0.8,
			MeltingTemp: 1700, BoilingTemp: 2230,
		},
		MatStone: {
			Name: "stone", State: Solid,
			BaseColor: Color{120, 120, 120}, ColorVariation: 15,
			Density: 2600,
			Conductivity: 0.3, HeatCapacity: 0.9,
			MeltingTemp: 1200, BoilingTemp: 2700,
		},
		MatWater: {
			Name: "water", State: Fluid,
			BaseColor: Color{64, 128, 220}, ColorVariation: 10,
			Density: 1000, GravityScale: 1.0, DragCoeff: 0.05, TerminalVelocity: 6,
			FlowRate: 0.7,
			Conductivity: 0.6, HeatCapacity: 4.2,
			MeltingTemp: 0, BoilingTemp: 100,
		},
		MatWood: {
			Name: "wood", State: Solid,
			BaseColor: Color{120, 80, 40}, ColorVariation: 18,
			Density: 700,
			Conductivity: 0.1, HeatCapacity: 1.7,
			IgnitionTemp: 300, MeltingTemp: 100000, BoilingTemp: 100000,
		},
		MatFire: {
			Name: "fire", State: Gas,
			BaseColor: Color{255, 120, 20}, ColorVariation: 40,
			Density: 0.2, DragCoeff: 0.1, TerminalVelocity: 4,
			Conductivity: 0.05, HeatCapacity: 0.2,
		},
		MatSmoke: {
			Name: "smoke", State: Gas,
			BaseColor: Color{90, 90, 90}, ColorVariation: 20,
			Density: 0.3, DragCoeff: 0.08, TerminalVelocity: 3,
			FlowRate: 0.4,
			Conductivity: 0.05, HeatCapacity: 0.3,
		},
		MatSoil: {
			Name: "soil", State: Powder,
			BaseColor: Color{92, 64, 38}, ColorVariation: 22,
			Density: 1300, Friction: 0.65, Cohesion: 0.15,
			GravityScale: 1.0, DragCoeff: 0.02, TerminalVelocity: 8,
			SettleProbability: 0.35, SlideBias: 0.5,
			Conductivity: 0.2, HeatCapacity: 0.9,
			MeltingTemp: 1500, BoilingTemp: 2500,
		},
		MatIce: {
			Name: "ice", State: Solid,
			BaseColor: Color{200, 230, 245}, ColorVariation: 8,
			Density: 920,
			Conductivity: 0.4, HeatCapacity: 2.1,
			MeltingTemp: 0, BoilingTemp: 100,
		},
		MatSteam: {
			Name: "steam", State: Gas,
			BaseColor: Color{230, 230, 235}, ColorVariation: 12,
			Density: 0.6, DragCoeff: 0.06, TerminalVelocity: 3,
			FlowRate: 0.5,
			Conductivity: 0.1, HeatCapacity: 2.0,
			BoilingTemp: 100,
		},
		MatAsh: {
			Name: "ash", State: Powder,
			BaseColor: Color{80, 80, 80}, ColorVariation: 15,
			Density: 600, Friction: 0.5, Cohesion: 0.1,
			GravityScale: 0.9, DragCoeff: 0.03, TerminalVelocity: 6,
			SettleProbability: 0.4, SlideBias: 0.5,
			Conductivity: 0.1, HeatCapacity: 0.8,
			MeltingTemp: 100000, BoilingTemp: 100000,
		},
		MatAcid: {
			Name: "acid", State: Fluid,
			BaseColor: Color{160, 220, 40}, ColorVariation: 16,
			Density: 1100, GravityScale: 1.0, DragCoeff: 0.05, TerminalVelocity: 6,
			FlowRate: 0.7,
			Conductivity: 0.5, HeatCapacity: 3.0,
			MeltingTemp: -20, BoilingTemp: 120,
		},
	}

	for i := range t.props {
		p := &t.props[i]
		p.GravityStepFixed = cell.FromFloat(p.GravityScale * GravityAccel)
		p.DragFactorFixed = cell.FromFloat(1 - p.DragCoeff)
		p.TerminalVelocityFixed = cell.FromFloat(p.TerminalVelocity)

		t.isPowder[i] = p.State == Powder
		t.isFluid[i] = p.State == Fluid
		t.isSolid[i] = p.State == Solid
		t.isEmpty[i] = p.State == Empty
		t.isGas[i] = p.State == Gas
	}

	return t
}

func (t *Table) clampID(id ID) ID {
	if id >= matCount {
		return MatEmpty
	}
	return id
}

// Get returns the properties for id, falling back to Empty for any
// invalid id (spec §4.12: invalid material ids fall back to EMPTY).
func (t *Table) Get(id ID) *Props { return &t.props[t.clampID(id)] }

// State returns the state class for id.
func (t *Table) State(id ID) State { return t.props[t.clampID(id)].State }

// IsPowder, IsFluid, IsSolid, IsEmpty, IsGas are the derived boolean
// lookups precomputed at NewTable time.
func (t *Table) IsPowder(id ID) bool { return t.isPowder[t.clampID(id)] }
func (t *Table) IsFluid(id ID) bool  { return t.isFluid[t.clampID(id)] }
func (t *Table) IsSolid(id ID) bool  { return t.isSolid[t.clampID(id)] }
func (t *Table) IsEmpty(id ID) bool  { return t.isEmpty[t.clampID(id)] }
func (t *Table) IsGas(id ID) bool    { return t.isGas[t.clampID(id)] }

// Density is a convenience accessor used by the displacement rules in
// powder and fluid updates.
func (t *Table) Density(id ID) float32 { return t.props[t.clampID(id)].Density }

// hash32 is a small integer hash used to derive stable per-grain color
// variation from a cell's color seed (FNV-1a, 32-bit).
func hash32(x uint32) uint32 {
	const offset = 2166136261
	const prime = 16777619
	h := uint32(offset)
	for i := 0; i < 4; i++ {
		h ^= (x >> (8 * i)) & 0xff
		h *= prime
	}
	return h
}

// Color returns the base colour of id perturbed by a hash of seed within
// +/- the material's ColorVariation.
func (t *Table) Color(id ID, seed uint32) Color {
	p := t.Get(id)
	if p.ColorVariation == 0 {
		return p.BaseColor
	}
	h := hash32(seed)
	variation := int(p.ColorVariation)
	offset := int(h%uint32(2*variation+1)) - variation
	clampChannel := func(c uint8) uint8 {
		v := int(c) + offset
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{
		R: clampChannel(p.BaseColor.R),
		G: clampChannel(p.BaseColor.G),
		B: clampChannel(p.BaseColor.B),
	}
}
