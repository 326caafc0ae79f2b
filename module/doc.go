// SPDX-License-Identifier: MIT

// Package module synthesizes the I-V and P-V curves of a photovoltaic module
// from the curves of its cells, under arbitrary (partial) shading.
//
// What:
//
//   - Module owns numberCells cells, a partition of those cells into
//     series-connected substrings, and the per-cell irradiance vector.
//   - SubstringVoltage sums member-cell voltages on a shared current axis and
//     clamps the result at the bypass-diode voltage.
//   - Synthesize builds that axis from the cell curves and aggregates the
//     substrings into module current, voltage and power.
//
// Algorithm (per recomputation):
//
//  1. For each cell, IatVrbd = I at V = VRBD on the cell's own curve.
//     Isc = mean(Ee)·Isc0.
//  2. Low branch  = (min(0, min Icell) − Isc)·ModuleReversePoints + Isc.
//     High branch = (max IatVrbd − Isc)·ModuleForwardPoints + Isc.
//     Axis = low ++ high, 2·Npts samples, non-decreasing.
//  3. For substring s and axis current i: Vsubstr[i,s] = Σ V_cell(i), each
//     V_cell obtained by clamped linear interpolation on the cell's samples
//     sorted by increasing current; sums below Vbypass become Vbypass.
//  4. Vmod = row sums of Vsubstr; Pmod = I·Vmod.
//
// State:
//
//   - Every SetIrradiance* call recomputes the touched cells and then the full
//     module curve before returning. Failed calls leave the module unchanged.
//   - Readers and writers are serialized with a sync.RWMutex; a reader never
//     observes a half-updated curve.
//   - WithParallelism fans cell and substring work out over an errgroup;
//     results are gathered by index, so output does not depend on it.
//
// Complexity:
//
//   - Recompute: O(C·T) provider work for C touched cells of T each, plus
//     O(N·P·log T) interpolation for N cells and P axis points.
//
// Errors:
//
//   - ErrConfiguration: invalid partition, layout or provider constants.
//   - ErrShapeMismatch: irradiance count does not match the target cells.
//   - ErrInvalidIrradiance: negative or non-finite irradiance.
//   - ErrCellIndex: cell index out of range.
package module
