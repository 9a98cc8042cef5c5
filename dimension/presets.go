// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a well-known quantity with a conventional symbol and its fixed
// dimension formula.
type Preset struct {
	Key         string // lookup key, snake_case
	Symbol      string // default variable name
	Description string
	Dims        Exponents
}

// Variable materializes the preset as a Variable named symbol, or the
// preset's default Symbol when symbol is empty.
func (p Preset) Variable(symbol string) (Variable, error) {
	if strings.TrimSpace(symbol) == "" {
		symbol = p.Symbol
	}

	return NewVariable(symbol, p.Dims)
}

// Raw returns the preset as a boundary row named symbol (or the default Symbol).
func (p Preset) Raw(symbol string) Raw {
	if strings.TrimSpace(symbol) == "" {
		symbol = p.Symbol
	}
	d := p.Dims.Clone()

	return Raw{Name: symbol, Exponents: d[:]}
}

// presetRow is one line of the static table: key, symbol, description, M, L, T.
type presetRow struct {
	key, symbol, desc string
	m, l, t           int64
}

// presetTable is pure data, sorted by key.
var presetTable = []presetRow{
	{"acceleration", "a", "Acceleration", 0, 1, -2},
	{"angular_velocity", "omega", "Angular velocity", 0, 0, -1},
	{"area", "A", "Area", 0, 2, 0},
	{"chord_length", "c", "Chord length", 0, 1, 0},
	{"circulation", "Gamma", "Circulation", 0, 2, -1},
	{"density", "rho", "Density", 1, -3, 0},
	{"diameter", "D", "Diameter", 0, 1, 0},
	{"energy", "E", "Energy", 1, 2, -2},
	{"force", "F", "Force", 1, 1, -2},
	{"frequency", "f", "Frequency", 0, 0, -1},
	{"gravity", "g", "Gravitational acceleration", 0, 1, -2},
	{"kinematic_viscosity", "nu", "Kinematic viscosity", 0, 2, -1},
	{"length", "L", "Length", 0, 1, 0},
	{"mass", "m", "Mass", 1, 0, 0},
	{"mass_flow_rate", "mdot", "Mass flow rate", 1, 0, -1},
	{"power", "P", "Power", 1, 2, -3},
	{"pressure", "p", "Pressure", 1, -1, -2},
	{"pressure_difference", "DeltaP", "Pressure difference", 1, -1, -2},
	{"surface_tension", "sigma", "Surface tension", 1, 0, -2},
	{"time", "t", "Time", 0, 0, 1},
	{"tip_clearance", "tau", "Tip clearance", 0, 1, 0},
	{"velocity", "v", "Velocity", 0, 1, -1},
	{"viscosity", "mu", "Dynamic viscosity", 1, -1, -1},
	{"volume_flow_rate", "Q", "Volume flow rate", 0, 3, -1},
}

func (r presetRow) preset() Preset {
	return Preset{Key: r.key, Symbol: r.symbol, Description: r.desc, Dims: NewExponents(r.m, r.l, r.t)}
}

// Presets returns the whole table ordered by key. Each call returns fresh values.
func Presets() []Preset {
	out := make([]Preset, len(presetTable))
	for i, r := range presetTable {
		out[i] = r.preset()
	}

	return out
}

// LookupPreset finds a preset by key. Keys are matched case-insensitively and
// spaces or dashes are treated as underscores ("Mass flow rate" works).
func LookupPreset(key string) (Preset, error) {
	norm := normalizeKey(key)
	i := sort.Search(len(presetTable), func(i int) bool { return presetTable[i].key >= norm })
	if i < len(presetTable) && presetTable[i].key == norm {
		return presetTable[i].preset(), nil
	}

	return Preset{}, fmt.Errorf("%q: %w", key, ErrUnknownPreset)
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))

	return strings.NewReplacer(" ", "_", "-", "_").Replace(key)
}
