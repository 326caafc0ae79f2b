// SPDX-License-Identifier: MIT

// Package ivplot renders module and cell characteristics as figures.
//
// What:
//
//   - WriteModule draws a 2×1 figure: module I-V on top, P-V below.
//   - WriteCells draws a 2×2 figure of every cell curve: reverse and forward
//     I-V on the first row, reverse and forward P-V on the second, with axis
//     limits derived from the provider constants.
//
// Formats are those accepted by gonum's draw.NewFormattedCanvas (png, svg,
// pdf, eps, jpg, tif, tex). Rendering is pure: nothing is read from or kept
// on the module.
//
// Errors:
//
//   - ErrNoData: empty curve or no cells.
//   - ErrFormat: unknown output format.
package ivplot
