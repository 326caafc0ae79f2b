// SPDX-License-Identifier: MIT

// Package topology assigns every cell of a module a place on the physical
// rows×cols grid and in the electrical wiring.
//
// What:
//
//   - Position records (Row, Col, Series, Parallel, Substring) for one cell.
//   - Layout is an immutable, ordered list of Positions: index k is the k-th
//     cell of the module's series order.
//   - Serpentine and CrossTied generate Layouts from (rows, cols); STD96 and
//     TCT96 are the 96-cell presets built from them.
//   - Explicit validates a caller-supplied assignment.
//
// Wiring rules:
//
//   - Serpentine: row-major; odd rows run right to left (ribbon zig-zag).
//     Series = index+1, Substring = ⌊(index+offset)/size⌋, Parallel unlinked.
//   - CrossTied: column-major; Series = c·rows+r+1 except on the last row,
//     Parallel = (c+1)·rows+r except on the last column,
//     Substring = ⌊row/rowsPerSubstring⌋.
//
// Layouts are pure data computed once; they never depend on irradiance.
//
// Complexity:
//
//   - Generators: O(rows×cols) time and memory.
//   - Index: O(1) after construction; SubstringSizes/Grid: O(n).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1.
//   - ErrOutOfRange: coordinate or index outside the grid.
//   - ErrDuplicatePosition: two cells claim the same coordinate.
//   - ErrLayoutSize: value count does not match the layout.
package topology
