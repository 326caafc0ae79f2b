// SPDX-License-Identifier: MIT

package module

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pvmod/ivcurve"
)

// Curve is a module characteristic sampled on the shared current axis.
// I is non-decreasing; V, P and every column of Vsubstr are aligned with it.
type Curve struct {
	I       []float64  // module current [A]
	V       []float64  // module voltage [V]
	P       []float64  // module power [W]
	Vsubstr *mat.Dense // substring voltages, len(I) × substrings [V]
}

// Len returns the number of axis samples.
func (c Curve) Len() int { return len(c.I) }

// Substrings returns the number of substrings.
func (c Curve) Substrings() int {
	if c.Vsubstr == nil {
		return 0
	}
	_, cols := c.Vsubstr.Dims()
	return cols
}

// Substring returns a copy of the voltage column of substring k.
// Panics if k is out of range.
func (c Curve) Substring(k int) []float64 {
	return mat.Col(nil, k, c.Vsubstr)
}

// MaxPower returns the maximum power point (Pmp, Vmp, Imp).
// An empty curve yields zeros.
func (c Curve) MaxPower() (p, v, i float64) {
	if len(c.P) == 0 {
		return 0, 0, 0
	}
	k := floats.MaxIdx(c.P)
	return c.P[k], c.V[k], c.I[k]
}

// OpenCircuitVoltage returns V at I = 0.
func (c Curve) OpenCircuitVoltage() float64 {
	return ivcurve.Interpolate(0, c.I, c.V)
}

// ShortCircuitCurrent returns I at V = 0.
func (c Curve) ShortCircuitCurrent() float64 {
	vs, is := ivcurve.Orient(c.V, c.I)
	return ivcurve.Interpolate(0, vs, is)
}

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	out := Curve{
		I: append([]float64(nil), c.I...),
		V: append([]float64(nil), c.V...),
		P: append([]float64(nil), c.P...),
	}
	if c.Vsubstr != nil {
		out.Vsubstr = mat.DenseCopyOf(c.Vsubstr)
	}
	return out
}
