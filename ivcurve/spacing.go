// SPDX-License-Identifier: MIT

package ivcurve

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// MinPoints is the smallest sample count accepted by the spacing generators.
const MinPoints = 2

// logBase is the upper end of the log span; the generated fractions are
// (logBase - logspace(...)) / (logBase - 1), which packs samples towards 1.
const logBase = 11.0

// ForwardPoints returns n fractions rising from exactly 0 to exactly 1 with
// spacing that shrinks towards 1. Multiplied by Voc it yields a forward-bias
// voltage sweep that is dense around the open-circuit knee.
//
// Panics if n < MinPoints (programmer error).
// Complexity: O(n).
func ForwardPoints(n int) []float64 {
	mustPoints(n)
	pts := floats.LogSpan(make([]float64, n), logBase, 1)
	for i := range pts {
		pts[i] = (logBase - pts[i]) / (logBase - 1)
	}
	pts[0] = 0 // LogSpan may leave a rounding residue at the first sample

	return pts
}

// ReversePoints returns n fractions rising from 1/(10n) to exactly 1, dense
// towards 1. The smallest value is strictly positive so that the reverse
// branch never duplicates the forward branch's 0 V sample.
//
// Panics if n < MinPoints.
// Complexity: O(n).
func ReversePoints(n int) []float64 {
	mustPoints(n)
	inv := 1 / float64(n)
	pts := floats.LogSpan(make([]float64, n), logBase-inv, 1)
	for i := range pts {
		pts[i] = (logBase - pts[i]) / (logBase - 1)
	}

	return pts
}

// ModuleForwardPoints returns 1 - reverse(ForwardPoints(n)): fractions rising
// from 0 to 1 that are dense near 0. Scaled onto [Isc, Imax] they sample the
// module axis tightly just above the short-circuit current.
func ModuleForwardPoints(n int) []float64 {
	pts := ForwardPoints(n)
	slices.Reverse(pts)
	for i := range pts {
		pts[i] = 1 - pts[i]
	}

	return pts
}

// ModuleReversePoints returns 1 + 1/(10n) - ReversePoints(n): fractions
// falling from ~1 to 1/(10n). Scaled onto [Imin, Isc] they sample the module
// axis from the most negative current up to just below Isc, dense near Isc.
func ModuleReversePoints(n int) []float64 {
	pts := ReversePoints(n)
	shift := 1 + 1/(10*float64(n))
	for i := range pts {
		pts[i] = shift - pts[i]
	}

	return pts
}

// Scale maps fractions onto a segment: dst[i] = (end-start)*frac[i] + start.
// A nil dst is allocated. Returns dst[:len(frac)].
func Scale(dst, frac []float64, start, end float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(frac))
	}
	dst = dst[:len(frac)]
	span := end - start
	for i, f := range frac {
		dst[i] = span*f + start
	}

	return dst
}

func mustPoints(n int) {
	if n < MinPoints {
		panic("ivcurve: sample count must be ≥ 2")
	}
}
