// SPDX-License-Identifier: MIT

// Package pvmod models photovoltaic modules under partial shading.
//
// A module is a chain of solar cells wired in series, split into substrings
// that each sit behind a bypass diode. When cells receive different
// irradiance, their I-V curves no longer match: series cells share current
// but not voltage, shaded cells are driven into reverse bias, and bypass
// diodes clamp whole substrings. pvmod resamples every cell curve onto a
// common current axis, sums voltages per substring, applies the bypass
// clamp, and sums substrings into the module I-V and P-V curves.
//
// Packages:
//
//	ivcurve/       interpolation, curve orientation, log-spaced sampling
//	cell/          Provider contract, reference two-diode Model, Cell
//	topology/      serpentine and cross-tied layouts, STD96/TCT96 presets
//	module/        Module (irradiance state), SubstringVoltage, Synthesize, Curve
//	ivplot/        module and cell figures (gonum/plot)
//	config/        viper runtime configuration, TOML shading scenarios
//	cmd/pvmodule/  command-line front end
//
// Quick start:
//
//	m, err := module.New(module.WithLayout(topology.STD96()))
//	if err != nil { ... }
//	_ = m.SetIrradiance(0.2, 0)    // shade the first cell
//	pmp, vmp, imp := m.Curve().MaxPower()
package pvmod
