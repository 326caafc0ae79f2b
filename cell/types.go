// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"
	"slices"
)

// Curve is a sampled cell I-V characteristic, including reverse bias.
// I, V and P are equal length; their common order is whatever the Provider
// produced (Model emits increasing voltage, decreasing current).
type Curve struct {
	I   []float64 // cell current [A]
	V   []float64 // cell voltage [V]
	P   []float64 // cell power [W]
	Voc float64   // open-circuit voltage [V]
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.I) }

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	return Curve{
		I:   slices.Clone(c.I),
		V:   slices.Clone(c.V),
		P:   slices.Clone(c.P),
		Voc: c.Voc,
	}
}

// Validate reports ErrInvalidCurve when the curve is empty, its slices
// disagree in length, or any sample is NaN or infinite.
func (c Curve) Validate() error {
	n := len(c.I)
	if n == 0 {
		return fmt.Errorf("empty curve: %w", ErrInvalidCurve)
	}
	if len(c.V) != n || len(c.P) != n {
		return fmt.Errorf("len(I)=%d len(V)=%d len(P)=%d: %w", n, len(c.V), len(c.P), ErrInvalidCurve)
	}
	for k := 0; k < n; k++ {
		if !finite(c.I[k]) || !finite(c.V[k]) || !finite(c.P[k]) {
			return fmt.Errorf("sample %d (I=%v V=%v P=%v): %w", k, c.I[k], c.V[k], c.P[k], ErrInvalidCurve)
		}
	}

	return nil
}

// Constants are the module-wide scalars shared by every cell of a Provider.
type Constants struct {
	Isc0    float64 // short-circuit current at 1 sun [A]
	VRBD    float64 // reverse breakdown voltage [V], negative
	Vbypass float64 // bypass diode forward clamp [V], negative
	Npts    int     // sample density per curve branch
}

// Provider computes cell I-V curves. Implementations must be safe for
// concurrent use: a module may evaluate several cells in parallel.
type Provider interface {
	// Curve returns the I-V characteristic at irradiance ee [suns].
	Curve(ee float64) (Curve, error)

	// Constants returns the scalars shared by every curve of this Provider.
	Constants() Constants
}

// ValidIrradiance reports whether ee is finite and non-negative.
func ValidIrradiance(ee float64) bool {
	return ee >= 0 && !math.IsInf(ee, 1) && !math.IsNaN(ee)
}
