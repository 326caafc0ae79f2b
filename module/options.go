// SPDX-License-Identifier: MIT

// Package module: functional options for New.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (programmer error). New and SetIrradiance* report errors instead.
//   - Cross-option consistency (partition vs. cell count, layout vs. cell
//     count, irradiance length) is checked by New and reported as an error.
package module

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/topology"
)

// Defaults for New.
const (
	DefaultNumberCells = 96  // standard 96-cell module
	DefaultIrradiance  = 1.0 // [suns]
	DefaultParallelism = 1   // sequential recompute
)

// Option customizes a Module before construction.
type Option func(*config)

type config struct {
	numberCells int
	cellsSet    bool
	layout      *topology.Layout
	partition   []int
	ee          float64
	eeValues    []float64
	provider    cell.Provider
	logger      *slog.Logger
	workers     int
}

func defaultConfig() config {
	return config{
		numberCells: DefaultNumberCells,
		ee:          DefaultIrradiance,
		workers:     DefaultParallelism,
	}
}

// WithNumberCells sets the cell count. Panics if n < 1.
func WithNumberCells(n int) Option {
	if n < 1 {
		panic("module: WithNumberCells(n<1)")
	}
	return func(c *config) {
		c.numberCells = n
		c.cellsSet = true
	}
}

// WithLayout assigns the physical and electrical cell positions. Without
// WithNumberCells the cell count follows the layout.
func WithLayout(l topology.Layout) Option {
	return func(c *config) { c.layout = &l }
}

// WithSubstrings sets the explicit partition of cells per substring, in
// series order. It overrides the default table. The sum is checked by New.
// Panics on an empty partition.
func WithSubstrings(cells ...int) Option {
	if len(cells) == 0 {
		panic("module: WithSubstrings()")
	}
	p := slices.Clone(cells)
	return func(c *config) { c.partition = p }
}

// WithIrradiance sets a uniform initial irradiance [suns].
func WithIrradiance(ee float64) Option {
	return func(c *config) {
		c.ee = ee
		c.eeValues = nil
	}
}

// WithIrradianceValues sets the initial per-cell irradiance; New requires
// len(ee) == numberCells.
func WithIrradianceValues(ee []float64) Option {
	v := slices.Clone(ee)
	return func(c *config) { c.eeValues = v }
}

// WithProvider sets the cell curve provider. Panics on nil.
func WithProvider(p cell.Provider) Option {
	if p == nil {
		panic("module: WithProvider(nil)")
	}
	return func(c *config) { c.provider = p }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("module: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithParallelism bounds the number of goroutines used per recompute.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("module: WithParallelism(n<1)")
	}
	return func(c *config) { c.workers = n }
}
