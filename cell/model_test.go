// SPDX-License-Identifier: MIT

package cell_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/ivcurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModel_Voc checks the Newton solution against the diode equation and
// its dependence on irradiance.
func TestModel_Voc(t *testing.T) {
	m := cell.NewModel()

	voc := m.Voc(1)
	assert.InDelta(t, 0.67, voc, 0.02, "1-sun Voc of the default cell")

	// residual of the open-circuit equation
	vt := m.ThermalVoltage()
	frbd := cell.DefaultARBD * math.Pow(1-voc/cell.DefaultVRBD, -cell.DefaultNRBD)
	res := cell.DefaultIsc0 -
		cell.DefaultIsat1*(math.Exp(voc/vt)-1) -
		cell.DefaultIsat2*(math.Exp(voc/(2*vt))-1) -
		voc/cell.DefaultRsh*(1+frbd)
	assert.InDelta(t, 0, res, 1e-8)

	assert.Less(t, m.Voc(0.2), voc, "less light, lower Voc")
	assert.Equal(t, 0.0, m.Voc(0), "dark cell has no open-circuit voltage")
}

// TestModel_CurveShape verifies sample count, ordering and the operating
// points Isc and Voc.
func TestModel_CurveShape(t *testing.T) {
	m := cell.NewModel(cell.WithPoints(60))
	c, err := m.Curve(1)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.Equal(t, 120, c.Len())

	// increasing voltage, decreasing current
	assert.True(t, ivcurve.IsNonDecreasing(c.V), "voltage increases along the sweep")
	for k := 1; k < c.Len(); k++ {
		assert.LessOrEqual(t, c.I[k], c.I[k-1], "current decreases at %d", k)
	}

	// last sample is the open-circuit point
	assert.InDelta(t, c.Voc, c.V[c.Len()-1], 1e-8)
	assert.InDelta(t, 0, c.I[c.Len()-1], 1e-8)

	// first sample sits near breakdown with a large reverse current
	assert.Less(t, c.V[0], 0.95*cell.DefaultVRBD)
	assert.Greater(t, c.I[0], cell.DefaultIsc0)

	// current at 0 V is close to Isc0
	is, vs := ivcurve.Orient(c.V, c.I)
	assert.InDelta(t, cell.DefaultIsc0, ivcurve.Interpolate(0, is, vs), 0.01)

	for k := range c.P {
		assert.Equal(t, c.I[k]*c.V[k], c.P[k])
	}
}

// TestModel_ForwardMonotonicity verifies that forward-bias voltage never rises
// with current, before and after resampling onto a current axis.
func TestModel_ForwardMonotonicity(t *testing.T) {
	m := cell.NewModel()
	c, err := m.Curve(0.8)
	require.NoError(t, err)

	is, vs := ivcurve.Orient(c.I, c.V)
	for k := 1; k < len(is); k++ {
		assert.LessOrEqual(t, vs[k], vs[k-1])
	}

	axis := ivcurve.Scale(nil, ivcurve.ForwardPoints(200), 0, 0.8*cell.DefaultIsc0)
	res := ivcurve.InterpolateInto(nil, axis, is, vs)
	for k := 1; k < len(res); k++ {
		assert.LessOrEqual(t, res[k], res[k-1])
	}
}

// TestModel_DarkCell ensures a zero-irradiance curve is finite.
func TestModel_DarkCell(t *testing.T) {
	c, err := cell.NewModel().Curve(0)
	require.NoError(t, err)
	for k := range c.I {
		assert.False(t, math.IsNaN(c.I[k]) || math.IsInf(c.I[k], 0))
		assert.False(t, math.IsNaN(c.V[k]) || math.IsInf(c.V[k], 0))
	}
	assert.Equal(t, 0.0, c.Voc)
}

// TestModel_InvalidIrradiance checks rejected inputs.
func TestModel_InvalidIrradiance(t *testing.T) {
	m := cell.NewModel()
	for _, ee := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err := m.Curve(ee)
		assert.ErrorIs(t, err, cell.ErrInvalidIrradiance, "ee=%v", ee)
	}
}

// TestModel_Constants mirrors the configured scalars.
func TestModel_Constants(t *testing.T) {
	m := cell.NewModel(
		cell.WithIsc0(8),
		cell.WithBreakdown(cell.DefaultARBD, cell.DefaultNRBD, -12),
		cell.WithBypassVoltage(-0.6),
		cell.WithPoints(40),
	)
	assert.Equal(t, cell.Constants{Isc0: 8, VRBD: -12, Vbypass: -0.6, Npts: 40}, m.Constants())
}

// TestOptions_Panics verifies that option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	cases := map[string]func(){
		"NegativeRs":      func() { cell.WithSeriesResistance(-1) },
		"ZeroRsh":         func() { cell.WithShuntResistance(0) },
		"ZeroIsat":        func() { cell.WithSaturationCurrents(0, 1e-6) },
		"ZeroIsc0":        func() { cell.WithIsc0(0) },
		"ZeroKelvin":      func() { cell.WithTemperature(0) },
		"PositiveVRBD":    func() { cell.WithBreakdown(1e-4, 3, 1) },
		"NegativeCoef":    func() { cell.WithBreakdown(-1, 3, -5) },
		"PositiveBypass":  func() { cell.WithBypassVoltage(0.1) },
		"OnePoint":        func() { cell.WithPoints(1) },
		"MarginOne":       func() { cell.WithBreakdownMargin(1) },
		"NaNSeriesResist": func() { cell.WithSeriesResistance(math.NaN()) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) { assert.Panics(t, fn) })
	}
}
