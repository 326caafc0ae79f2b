// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pvmod/ivcurve"
)

// Model is the reference Provider: a two-diode cell with shunt leakage and
// avalanche breakdown. A Model is immutable after NewModel and safe for
// concurrent use.
type Model struct {
	p   params
	vt  float64   // thermal voltage [V]
	fwd []float64 // forward sweep fractions of Voc
	rev []float64 // reverse sweep fractions of VRBD·(1−margin), high to low
}

// NewModel builds a Model from the defaults and the given options.
// Complexity: O(Npts) to precompute the sweep fractions.
func NewModel(opts ...Option) *Model {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	rev := ivcurve.ReversePoints(p.npts)
	// sweep from the breakdown end towards 0 V
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return &Model{
		p:   p,
		vt:  boltzmann * p.tcell / charge,
		fwd: ivcurve.ForwardPoints(p.npts),
		rev: rev,
	}
}

// Constants implements Provider.
func (m *Model) Constants() Constants {
	return Constants{
		Isc0:    m.p.isc0,
		VRBD:    m.p.vRBD,
		Vbypass: m.p.vBypass,
		Npts:    m.p.npts,
	}
}

// ThermalVoltage returns k·T/q at the model temperature.
func (m *Model) ThermalVoltage() float64 { return m.vt }

// Voc returns the open-circuit voltage at irradiance ee, i.e. the diode
// voltage at which Icell = 0. It runs Newton iteration from the
// single-diode estimate, which lies right of the root; the residual is
// concave and decreasing there, so the iterates converge monotonically.
// Returns 0 for a dark cell.
func (m *Model) Voc(ee float64) float64 {
	isc := ee * m.p.isc0
	if isc <= 0 {
		return 0
	}
	vt := m.vt
	v := vt * math.Log(isc/m.p.isat1+1)
	for i := 0; i < vocMaxIter; i++ {
		e1 := math.Exp(v / vt)
		e2 := math.Exp(v / (2 * vt))
		fr := m.breakdownFactor(v)
		f := isc - m.p.isat1*(e1-1) - m.p.isat2*(e2-1) - v/m.p.rsh*(1+fr)
		// d/dv of fRBD = aRBD·nRBD·(1 − v/VRBD)^(−nRBD−1) / VRBD
		dfr := fr * m.p.nRBD / (1 - v/m.p.vRBD) / m.p.vRBD
		df := -m.p.isat1*e1/vt - m.p.isat2*e2/(2*vt) - (1+fr+v*dfr)/m.p.rsh
		dv := f / df
		v -= dv
		if math.Abs(dv) < vocTolerance {
			break
		}
	}

	return v
}

// Curve implements Provider. The returned samples follow increasing diode
// voltage: 2·Npts points, the reverse branch first.
//
// Errors:
//   - ErrInvalidIrradiance when ee is negative or non-finite.
//
// Complexity: O(Npts).
func (m *Model) Curve(ee float64) (Curve, error) {
	if !ValidIrradiance(ee) {
		return Curve{}, fmt.Errorf("Model.Curve(%v): %w", ee, ErrInvalidIrradiance)
	}

	voc := m.Voc(ee)
	n := len(m.rev) + len(m.fwd)
	vd := make([]float64, 0, n)
	vmin := m.p.vRBD * (1 - m.p.margin)
	for _, f := range m.rev {
		vd = append(vd, vmin*f)
	}
	for _, f := range m.fwd {
		vd = append(vd, voc*f)
	}

	c := Curve{
		I:   make([]float64, n),
		V:   make([]float64, n),
		P:   make([]float64, n),
		Voc: voc,
	}
	igen := ee * m.p.isc0
	for k, v := range vd {
		i := igen - m.diodeCurrent(v) - v/m.p.rsh*(1+m.breakdownFactor(v))
		c.I[k] = i
		c.V[k] = v - i*m.p.rs
		c.P[k] = c.I[k] * c.V[k]
	}

	return c, nil
}

// diodeCurrent returns Id1 + Id2 at diode voltage v.
func (m *Model) diodeCurrent(v float64) float64 {
	return m.p.isat1*(math.Exp(v/m.vt)-1) + m.p.isat2*(math.Exp(v/(2*m.vt))-1)
}

// breakdownFactor returns aRBD·(1 − v/VRBD)^(−nRBD). The base is floored at
// machine epsilon so the factor stays finite at v = VRBD.
func (m *Model) breakdownFactor(v float64) float64 {
	base := 1 - v/m.p.vRBD
	if base <= 0 {
		base = epsilon
	}

	return m.p.aRBD * math.Pow(base, -m.p.nRBD)
}

const epsilon = 2.220446049250313e-16
