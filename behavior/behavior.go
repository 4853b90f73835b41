// Package behavior holds pure functions over material id: movement,
// interaction, state-change, and lifetime classifiers, plus the inert
// StateTransition/ReactionRule data types. Ported directly from
// original_source/include/materials/behavior.h's BHV_* bitmask table.
package behavior

import "github.com/asreonn/pixelsim/material"

// Flags is a bitmask of material behaviours.
type Flags uint32

const (
	None Flags = 0

	// Movement
	FlagFalls Flags = 1 << (iota - 1)
	FlagRises
	FlagFlows
	FlagSlides
	FlagStatic

	// Interaction
	FlagFlammable
	FlagConductsHeat
	FlagCorrodible
	FlagCorrosive
	FlagExtinguishes

	// State change
	FlagMelts
	FlagFreezes
	FlagBoils
	FlagCondenses
	FlagBurnsOut

	// Lifetime
	FlagDissipates
	FlagSpreads
	FlagProducesSmoke
	FlagProducesHeat
)

var table = [...]Flags{
	material.MatEmpty: None,
	material.MatSand:  FlagFalls | FlagSlides | FlagConductsHeat | FlagCorrodible,
	material.MatStone: FlagStatic | FlagConductsHeat | FlagCorrodible,
	material.MatWater: FlagFalls | FlagFlows | FlagConductsHeat | FlagFreezes | FlagBoils | FlagExtinguishes,
	material.MatWood:  FlagStatic | FlagFlammable | FlagConductsHeat | FlagCorrodible,
	material.MatFire:  FlagRises | FlagSpreads | FlagProducesSmoke | FlagProducesHeat | FlagBurnsOut,
	material.MatSmoke: FlagRises | FlagFlows | FlagDissipates,
	material.MatSoil:  FlagFalls | FlagSlides | FlagConductsHeat | FlagCorrodible,
	material.MatIce:   FlagStatic | FlagConductsHeat | FlagMelts,
	material.MatSteam: FlagRises | FlagFlows | FlagCondenses | FlagDissipates,
	material.MatAsh:   FlagFalls | FlagSlides | FlagConductsHeat,
	material.MatAcid:  FlagFalls | FlagFlows | FlagCorrosive | FlagConductsHeat,
}

// Get returns the behaviour flags for id, or None for an id outside the
// known roster.
func Get(id material.ID) Flags {
	if int(id) >= len(table) {
		return None
	}
	return table[id]
}

// Has reports whether id has every bit set in mask.
func Has(id material.ID, mask Flags) bool { return Get(id)&mask == mask }

// Movement queries.
func Falls(id material.ID) bool    { return Has(id, FlagFalls) }
func Rises(id material.ID) bool    { return Has(id, FlagRises) }
func Flows(id material.ID) bool    { return Has(id, FlagFlows) }
func Slides(id material.ID) bool   { return Has(id, FlagSlides) }
func IsStatic(id material.ID) bool { return Has(id, FlagStatic) }

// Interaction queries.
func Flammable(id material.ID) bool    { return Has(id, FlagFlammable) }
func ConductsHeat(id material.ID) bool { return Has(id, FlagConductsHeat) }
func Corrodible(id material.ID) bool   { return Has(id, FlagCorrodible) }
func Corrosive(id material.ID) bool    { return Has(id, FlagCorrosive) }
func Extinguishes(id material.ID) bool { return Has(id, FlagExtinguishes) }

// State-change queries.
func CanMelt(id material.ID) bool     { return Has(id, FlagMelts) }
func CanFreeze(id material.ID) bool   { return Has(id, FlagFreezes) }
func CanBoil(id material.ID) bool     { return Has(id, FlagBoils) }
func CanCondense(id material.ID) bool { return Has(id, FlagCondenses) }

// Lifetime queries.
func Dissipates(id material.ID) bool    { return Has(id, FlagDissipates) }
func ProducesSmoke(id material.ID) bool { return Has(id, FlagProducesSmoke) }
func ProducesHeat(id material.ID) bool  { return Has(id, FlagProducesHeat) }

// StateTransition is inert data describing a probabilistic phase change.
type StateTransition struct {
	Result      material.ID
	Threshold   float32
	Probability float32
}

// ReactionRule is inert data describing a probabilistic cell-pair
// reaction (e.g. acid corroding stone).
type ReactionRule struct {
	Target          material.ID
	ResultSelf      material.ID
	ResultTarget    material.ID
	Probability     float32
	Byproduct       material.ID
	ByproductChance float32
}
