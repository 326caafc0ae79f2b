// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/module"
)

// Scenario is a shading pattern: an optional uniform base irradiance
// followed by ordered shades.
type Scenario struct {
	Name  string   `toml:"name,omitempty"`
	Base  *float64 `toml:"base,omitempty"`
	Shade []Shade  `toml:"shade"`
}

// Shade sets Irradiance on a group of cells. Cells lists indices in series
// order; Row and Col address the layout grid (both: one cell, one alone: a
// full row or column). Both kinds may be combined.
type Shade struct {
	Cells      []int   `toml:"cells,omitempty"`
	Row        *int    `toml:"row,omitempty"`
	Col        *int    `toml:"col,omitempty"`
	Irradiance float64 `toml:"irradiance"`
}

// ParseScenario decodes a TOML scenario. Unknown keys are rejected.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	if s.Base != nil && !cell.ValidIrradiance(*s.Base) {
		return Scenario{}, fmt.Errorf("base=%v: %w", *s.Base, ErrScenario)
	}
	for k, sh := range s.Shade {
		if len(sh.Cells) == 0 && sh.Row == nil && sh.Col == nil {
			return Scenario{}, fmt.Errorf("shade %d addresses no cells: %w", k, ErrScenario)
		}
		if !cell.ValidIrradiance(sh.Irradiance) {
			return Scenario{}, fmt.Errorf("shade %d irradiance=%v: %w", k, sh.Irradiance, ErrScenario)
		}
	}
	return s, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Irradiance resolves the scenario against m and returns the resulting
// per-cell irradiance. m is not modified.
func (s Scenario) Irradiance(m *module.Module) ([]float64, error) {
	ee := m.Irradiance()
	if s.Base != nil {
		for i := range ee {
			ee[i] = *s.Base
		}
	}

	l := m.Layout()
	for k, sh := range s.Shade {
		for _, i := range sh.Cells {
			if i < 0 || i >= len(ee) {
				return nil, fmt.Errorf("shade %d: cell %d of %d: %w", k, i, len(ee), ErrScenario)
			}
			ee[i] = sh.Irradiance
		}

		var coords [][2]int
		switch {
		case sh.Row != nil && sh.Col != nil:
			coords = append(coords, [2]int{*sh.Row, *sh.Col})
		case sh.Row != nil:
			for c := 0; c < l.Cols; c++ {
				coords = append(coords, [2]int{*sh.Row, c})
			}
		case sh.Col != nil:
			for r := 0; r < l.Rows; r++ {
				coords = append(coords, [2]int{r, *sh.Col})
			}
		}
		for _, rc := range coords {
			i, err := l.Index(rc[0], rc[1])
			if err != nil {
				return nil, fmt.Errorf("shade %d: %w: %w", k, ErrScenario, err)
			}
			ee[i] = sh.Irradiance
		}
	}
	return ee, nil
}

// Apply sets the scenario's irradiance on m with a single update. On error
// m is unchanged.
func (s Scenario) Apply(m *module.Module) error {
	ee, err := s.Irradiance(m)
	if err != nil {
		return err
	}
	return m.SetIrradianceValues(ee)
}
