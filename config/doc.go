// SPDX-License-Identifier: MIT

// Package config loads pvmodule runtime settings and shading scenarios.
//
// Runtime settings come from viper: a .pvmodule.{yaml,toml} file or an
// explicit --config path, PVMODULE_* environment variables, and flags, in
// viper's usual precedence. Load fills Config and validates it; Options
// turns it into module options.
//
// Scenarios are TOML files describing irradiance on a module:
//
//	name = "chimney"
//	base = 1.0
//
//	[[shade]]
//	cells = [0, 1, 2]
//	irradiance = 0.2
//
//	[[shade]]
//	row = 3          # with col: one cell; alone: the whole row
//	col = 4
//	irradiance = 0.5
//
// Shades are applied in order on top of base; Apply commits them with a
// single module update.
package config
