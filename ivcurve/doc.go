// SPDX-License-Identifier: MIT

// Package ivcurve provides the numeric primitives shared by every layer that
// handles sampled current–voltage curves.
//
// What:
//
//   - Interpolate / InterpolateInto: piecewise-linear lookup on a
//     non-decreasing abscissa, clamped to the sample domain (no extrapolation).
//   - Orient: returns copies of (x, f) ordered by increasing x, so curves
//     delivered in any consistent order can be interpolated.
//   - ForwardPoints / ReversePoints / ModuleForwardPoints / ModuleReversePoints:
//     log-spaced fractions in [0,1] that concentrate samples near the knee of
//     a diode curve (Voc for cells, Isc for modules).
//
// Why:
//
//   - Series-connected elements share current, not voltage, so curves must be
//     resampled onto a common current axis before voltages can be summed.
//
// Degenerate input:
//
//   - Interpolation never returns NaN for finite samples: values outside the
//     domain take the boundary sample, repeated abscissae collapse onto the
//     first matching sample, and an empty curve yields 0.
//
// Complexity:
//
//   - Interpolate: O(log n). InterpolateInto: O(m log n). Orient: O(n) for
//     monotone input, O(n log n) otherwise.
package ivcurve
