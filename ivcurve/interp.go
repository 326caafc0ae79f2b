// SPDX-License-Identifier: MIT

package ivcurve

import (
	"slices"
	"sort"
)

// Interpolate returns the piecewise-linear value of f at x, given samples
// (xp[k], fp[k]) with xp non-decreasing.
//
// Behavior highlights:
//   - x ≤ xp[0] yields fp[0]; x ≥ xp[n-1] yields fp[n-1] (clamped, never extrapolated).
//   - When x hits a sample exactly, the first sample with that abscissa wins.
//   - Empty input yields 0; a single sample yields that sample.
//   - A NaN x, or NaN samples, never index out of range: the nearest end
//     sample is returned instead.
//
// The caller must pass equal-length slices; extra elements of the longer one
// are ignored.
//
// Complexity: O(log n).
func Interpolate(x float64, xp, fp []float64) float64 {
	n := min(len(xp), len(fp))
	if n == 0 {
		return 0
	}
	if n == 1 || x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}

	// first index with xp[j] >= x; xp[0] < x < xp[n-1] ⇒ 1 ≤ j ≤ n-1
	// for ordered data, NaN breaks that bound
	j := sort.SearchFloat64s(xp[:n], x)
	switch {
	case j >= n:
		return fp[n-1]
	case j == 0:
		return fp[0]
	}
	if xp[j] == x {
		return fp[j]
	}
	x0, x1 := xp[j-1], xp[j]

	return fp[j-1] + (x-x0)*(fp[j]-fp[j-1])/(x1-x0)
}

// InterpolateInto evaluates Interpolate for every element of x and writes the
// results into dst, which must be at least len(x) long. It returns dst[:len(x)].
// A nil dst is allocated.
// Complexity: O(m log n).
func InterpolateInto(dst, x, xp, fp []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	dst = dst[:len(x)]
	for i, xi := range x {
		dst[i] = Interpolate(xi, xp, fp)
	}

	return dst
}

// Orient returns copies of x and f reordered so that x is non-decreasing.
//
// Curves produced by a diode solver are usually ordered by increasing
// voltage, i.e. decreasing current; those are simply reversed. Any other
// order falls back to a stable sort so that ties keep their original
// relative order.
//
// The inputs are never modified. Extra elements of the longer slice are
// dropped.
func Orient(x, f []float64) (xs, fs []float64) {
	n := min(len(x), len(f))
	xs = slices.Clone(x[:n])
	fs = slices.Clone(f[:n])
	if n < 2 || IsNonDecreasing(xs) {
		return xs, fs
	}

	slices.Reverse(xs)
	slices.Reverse(fs)
	if IsNonDecreasing(xs) {
		return xs, fs
	}

	// arbitrary order: stable sort of index pairs on the original data
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	for k, i := range idx {
		xs[k], fs[k] = x[i], f[i]
	}

	return xs, fs
}

// IsNonDecreasing reports whether s[i] ≤ s[i+1] for all i.
func IsNonDecreasing(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
