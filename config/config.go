// Package config loads the JSON scenario files cmd/pixelsim runs: grid
// dimensions, starting paint operations, and simulation tunables. It
// mirrors the teacher's own config.loadSettings (config/settings.go):
// defaults populated first, then a JSON file decoded over them if
// present, with a missing file treated as "use defaults" rather than an
// error. Unlike the teacher it returns the loaded value instead of
// writing a package-level global — sim and world stay config-free and
// take explicit constructor arguments; this package exists only for the
// reference driver.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asreonn/pixelsim/material"
)

// PaintOp describes one starting-scene paint operation, applied in list
// order by the driver after the world is created.
type PaintOp struct {
	Shape string `json:"shape"` // "circle" or "line"
	Mat   string `json:"mat"`

	X  int `json:"x"`
	Y  int `json:"y"`
	X1 int `json:"x1"` // line endpoint; ignored for circle
	Y1 int `json:"y1"`
	Radius int `json:"radius"`
}

// Scenario is the JSON-tagged root of a scenario file.
type Scenario struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	TickHz   float64 `json:"tickHz"`
	SeedOverride uint32 `json:"seedOverride"` // 0 means "use time-based seed"

	Paint []PaintOp `json:"paint"`
}

// defaultScenario mirrors the teacher's defaults-first block in
// loadSettings: a small scene that runs and renders something even with
// no scenario file at all.
func defaultScenario() Scenario {
	return Scenario{
		Width:  256,
		Height: 144,
		TickHz: 60,
		Paint: []PaintOp{
			{Shape: "line", Mat: "stone", X: 0, Y: 130, X1: 255, Y1: 130, Radius: 4},
		},
	}
}

// Load reads a scenario file at path, applying it over defaultScenario.
// A missing file is not an error (os.IsNotExist short-circuits to "use
// defaults"), matching the teacher's own settings.json handling.
func Load(path string) (*Scenario, error) {
	s := defaultScenario()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &s, nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// matByName resolves a scenario's lowercase material name to a
// material.ID; an unrecognised name resolves to MatEmpty, the same
// fallback the engine itself uses for invalid ids (spec §4.12).
var matByName = map[string]material.ID{
	"empty": material.MatEmpty,
	"sand":  material.MatSand,
	"stone": material.MatStone,
	"water": material.MatWater,
	"wood":  material.MatWood,
	"fire":  material.MatFire,
	"smoke": material.MatSmoke,
	"soil":  material.MatSoil,
	"ice":   material.MatIce,
	"steam": material.MatSteam,
	"ash":   material.MatAsh,
	"acid":  material.MatAcid,
}

// MaterialID resolves a PaintOp's material name.
func (p PaintOp) MaterialID() material.ID {
	if id, ok := matByName[p.Mat]; ok {
		return id
	}
	return material.MatEmpty
}
