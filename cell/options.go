// SPDX-License-Identifier: MIT

// Package cell: functional configuration for the reference Model.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (programmer error). Model evaluation itself never panics.
//   - Defaults below are the single source of truth; NewModel starts from
//     them and applies options in order (later overrides earlier).
package cell

import "math"

// ---------- Defaults (single source of truth) ----------

// Electrical defaults for a 156 mm mono-Si cell at standard test conditions.
const (
	DefaultRs      = 0.004267236774264931   // series resistance [Ω]
	DefaultRsh     = 10.01226369025448      // shunt resistance [Ω]
	DefaultIsat1   = 2.286188161253440e-11  // diode one saturation current [A]
	DefaultIsat2   = 1.117455042372326e-6   // diode two saturation current [A]
	DefaultIsc0    = 6.3056                 // short-circuit current at 1 sun [A]
	DefaultTcell   = 298.15                 // cell temperature [K]
	DefaultARBD    = 1.036748445065697e-4   // breakdown coefficient
	DefaultVRBD    = -5.527260068445654     // reverse breakdown voltage [V]
	DefaultNRBD    = 3.284628553041425      // breakdown exponent
	DefaultVbypass = -0.5                   // bypass diode clamp [V]
	DefaultNpts    = 101                    // samples per curve branch
	DefaultMargin  = 0.02                   // reverse sweep stops at VRBD·(1−margin)
)

// Physical constants.
const (
	boltzmann = 1.380649e-23    // [J/K]
	charge    = 1.602176634e-19 // [C]
)

// Newton solver policy for Voc.
const (
	vocTolerance = 1e-12 // [V]
	vocMaxIter   = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicResistance  = "cell: resistance must be finite and > 0"
	panicSeriesRes   = "cell: series resistance must be finite and ≥ 0"
	panicSaturation  = "cell: saturation current must be finite and > 0"
	panicIsc0        = "cell: Isc0 must be finite and > 0"
	panicTemperature = "cell: temperature must be finite and > 0 K"
	panicBreakdown   = "cell: VRBD must be finite and < 0"
	panicBypass      = "cell: Vbypass must be finite and ≤ 0"
	panicPoints      = "cell: Npts must be ≥ 2"
	panicMargin      = "cell: margin must be in (0, 1)"
	panicCoefficient = "cell: breakdown coefficients must be finite and ≥ 0"
)

// Option mutates Model parameters before construction.
type Option func(*params)

// params stores the effective configuration after applying options.
type params struct {
	rs, rsh      float64
	isat1, isat2 float64
	isc0         float64
	tcell        float64
	aRBD, nRBD   float64
	vRBD         float64
	vBypass      float64
	npts         int
	margin       float64
}

func defaultParams() params {
	return params{
		rs:      DefaultRs,
		rsh:     DefaultRsh,
		isat1:   DefaultIsat1,
		isat2:   DefaultIsat2,
		isc0:    DefaultIsc0,
		tcell:   DefaultTcell,
		aRBD:    DefaultARBD,
		nRBD:    DefaultNRBD,
		vRBD:    DefaultVRBD,
		vBypass: DefaultVbypass,
		npts:    DefaultNpts,
		margin:  DefaultMargin,
	}
}

// WithSeriesResistance sets Rs [Ω]; zero is allowed (ideal contacts).
func WithSeriesResistance(rs float64) Option {
	if !finite(rs) || rs < 0 {
		panic(panicSeriesRes)
	}
	return func(p *params) { p.rs = rs }
}

// WithShuntResistance sets Rsh [Ω].
func WithShuntResistance(rsh float64) Option {
	if !finite(rsh) || rsh <= 0 {
		panic(panicResistance)
	}
	return func(p *params) { p.rsh = rsh }
}

// WithSaturationCurrents sets the diode one and diode two saturation currents [A].
func WithSaturationCurrents(isat1, isat2 float64) Option {
	if !finite(isat1) || !finite(isat2) || isat1 <= 0 || isat2 <= 0 {
		panic(panicSaturation)
	}
	return func(p *params) { p.isat1, p.isat2 = isat1, isat2 }
}

// WithIsc0 sets the 1-sun short-circuit current [A].
func WithIsc0(isc0 float64) Option {
	if !finite(isc0) || isc0 <= 0 {
		panic(panicIsc0)
	}
	return func(p *params) { p.isc0 = isc0 }
}

// WithTemperature sets the cell temperature [K].
func WithTemperature(kelvin float64) Option {
	if !finite(kelvin) || kelvin <= 0 {
		panic(panicTemperature)
	}
	return func(p *params) { p.tcell = kelvin }
}

// WithBreakdown sets the avalanche model: coefficient a, exponent n and the
// breakdown voltage vrbd (< 0).
func WithBreakdown(a, n, vrbd float64) Option {
	if !finite(a) || !finite(n) || a < 0 || n < 0 {
		panic(panicCoefficient)
	}
	if !finite(vrbd) || vrbd >= 0 {
		panic(panicBreakdown)
	}
	return func(p *params) { p.aRBD, p.nRBD, p.vRBD = a, n, vrbd }
}

// WithBypassVoltage sets the bypass diode clamp voltage (≤ 0).
func WithBypassVoltage(v float64) Option {
	if !finite(v) || v > 0 {
		panic(panicBypass)
	}
	return func(p *params) { p.vBypass = v }
}

// WithPoints sets the number of samples per curve branch; curves carry
// 2·n samples (reverse + forward) and module axes 2·n currents.
func WithPoints(n int) Option {
	if n < 2 {
		panic(panicPoints)
	}
	return func(p *params) { p.npts = n }
}

// WithBreakdownMargin sets how far short of VRBD the reverse sweep stops,
// as a fraction of VRBD. Smaller margins reach higher breakdown currents.
func WithBreakdownMargin(m float64) Option {
	if !finite(m) || m <= 0 || m >= 1 {
		panic(panicMargin)
	}
	return func(p *params) { p.margin = m }
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
