// SPDX-License-Identifier: MIT

// Package topology provides the layout generators and Layout accessors.
package topology

import "fmt"

// SerpentineRule traverses rows top to bottom; even rows left to right, odd
// rows right to left.
func SerpentineRule(rows, cols int) []Coord {
	out := make([]Coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for k := 0; k < cols; k++ {
			c := k
			if r%2 == 1 {
				c = cols - 1 - k
			}
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// ColumnMajorRule traverses columns left to right, each top to bottom.
func ColumnMajorRule(rows, cols int) []Coord {
	out := make([]Coord, 0, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// Serpentine builds a zig-zag ribbon layout over a rows×cols grid.
// Series position is traversal index + 1; substring id is
// ⌊(index + offset) / size⌋ with size defaulting to rows×cols.
// Returns ErrEmptyGrid if rows or cols < 1.
// Complexity: O(rows×cols).
func Serpentine(rows, cols int, opts ...Option) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("Serpentine(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}
	o := gatherOptions(opts)
	size := o.SubstringSize
	if size == 0 {
		size = rows * cols
	}

	return place(rows, cols, SerpentineRule, func(n int, xy Coord) Position {
		return Position{
			Row:       xy.Row,
			Col:       xy.Col,
			Series:    n + 1,
			Parallel:  Unlinked,
			Substring: (n + o.SubstringOffset) / size,
		}
	})
}

// CrossTied builds a total-cross-tied layout: cells are series-tied down each
// column and cross-tied across each row. Traversal is column-major.
// Returns ErrEmptyGrid if rows or cols < 1.
// Complexity: O(rows×cols).
func CrossTied(rows, cols int, opts ...Option) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("CrossTied(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}
	o := gatherOptions(opts)
	per := o.RowsPerSubstring
	if per == 0 {
		per = rows
	}

	return place(rows, cols, ColumnMajorRule, func(_ int, xy Coord) Position {
		r, c := xy.Row, xy.Col
		p := Position{Row: r, Col: c, Series: Unlinked, Parallel: Unlinked, Substring: r / per}
		if r < rows-1 {
			p.Series = c*rows + r + 1
		}
		if c < cols-1 {
			p.Parallel = (c+1)*rows + r
		}
		return p
	})
}

// place walks the grid in rule order and wires the n-th visited coordinate
// into the n-th cell.
func place(rows, cols int, rule Rule, wire func(n int, xy Coord) Position) (Layout, error) {
	coords := rule(rows, cols)
	pos := make([]Position, len(coords))
	for n, xy := range coords {
		pos[n] = wire(n, xy)
	}

	return newLayout(rows, cols, pos)
}

// Explicit validates a caller-supplied assignment on a rows×cols grid.
// The positions are copied. Every position must lie inside the grid and no
// coordinate may repeat; the grid need not be fully populated.
func Explicit(rows, cols int, positions []Position) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("Explicit(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}
	cp := make([]Position, len(positions))
	copy(cp, positions)

	return newLayout(rows, cols, cp)
}

// STD96 is the standard 96-cell ribbon module: 12×8 serpentine, three
// substrings of 32 cells.
func STD96() Layout {
	l, _ := Serpentine(12, 8, WithSubstringSize(32))
	return l
}

// TCT96 is the 96-cell total-cross-tied module: 12×8, three substrings of
// four rows each.
func TCT96() Layout {
	l, _ := CrossTied(12, 8, WithRowsPerSubstring(4))
	return l
}

// standardGrids maps common cell counts to
// (rows, cols, substring size, substring offset).
var standardGrids = map[int][4]int{
	72:  {12, 6, 24, 0},
	96:  {12, 8, 32, 0},
	128: {16, 8, 24, 8},
}

// Standard returns the default serpentine layout for n cells: a known
// module grid when n is a standard size, else a single n×1 ribbon.
// The 128-cell grid splits into substrings of 16, 24, 24, 24, 24, 16.
// Returns ErrEmptyGrid if n < 1.
func Standard(n int) (Layout, error) {
	if g, ok := standardGrids[n]; ok {
		return Serpentine(g[0], g[1], WithSubstringSize(g[2]), WithSubstringOffset(g[3]))
	}
	return Serpentine(n, 1)
}

// newLayout checks bounds and uniqueness, then builds the reverse index.
func newLayout(rows, cols int, pos []Position) (Layout, error) {
	index := make([]int, rows*cols)
	for i := range index {
		index[i] = -1
	}
	for k, p := range pos {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return Layout{}, fmt.Errorf("cell %d at (%d,%d): %w", k, p.Row, p.Col, ErrOutOfRange)
		}
		off := p.Row*cols + p.Col
		if index[off] >= 0 {
			return Layout{}, fmt.Errorf("cells %d and %d at (%d,%d): %w", index[off], k, p.Row, p.Col, ErrDuplicatePosition)
		}
		index[off] = k
	}

	return Layout{Rows: rows, Cols: cols, positions: pos, index: index}, nil
}

// Len returns the number of cells in the layout.
func (l Layout) Len() int { return len(l.positions) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (l Layout) InBounds(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

// At returns the Position of cell k.
func (l Layout) At(k int) (Position, error) {
	if k < 0 || k >= len(l.positions) {
		return Position{}, fmt.Errorf("At(%d): %w", k, ErrOutOfRange)
	}
	return l.positions[k], nil
}

// Positions returns a copy of all positions in cell order.
func (l Layout) Positions() []Position {
	out := make([]Position, len(l.positions))
	copy(out, l.positions)
	return out
}

// Index returns the cell index at (row, col). Unpopulated coordinates of an
// Explicit layout also report ErrOutOfRange.
// Complexity: O(1).
func (l Layout) Index(row, col int) (int, error) {
	if !l.InBounds(row, col) {
		return 0, fmt.Errorf("Index(%d,%d): %w", row, col, ErrOutOfRange)
	}
	k := l.index[row*l.Cols+col]
	if k < 0 {
		return 0, fmt.Errorf("Index(%d,%d) unpopulated: %w", row, col, ErrOutOfRange)
	}
	return k, nil
}

// SubstringSizes returns the lengths of the contiguous runs of equal
// Substring ids in cell order. For generated layouts this is the partition
// of cells into bypass-diode groups.
func (l Layout) SubstringSizes() []int {
	var out []int
	for k, p := range l.positions {
		if k == 0 || p.Substring != l.positions[k-1].Substring {
			out = append(out, 0)
		}
		out[len(out)-1]++
	}
	return out
}

// Contiguous reports whether every Substring id occupies a single run in
// cell order, so that SubstringSizes is a complete partition into
// bypass-diode groups. Cross-tied layouts revisit ids column by column and
// are not contiguous.
// Complexity: O(n).
func (l Layout) Contiguous() bool {
	seen := make(map[int]bool)
	for k, p := range l.positions {
		if k > 0 && p.Substring == l.positions[k-1].Substring {
			continue
		}
		if seen[p.Substring] {
			return false
		}
		seen[p.Substring] = true
	}
	return true
}

// Grid projects a per-cell vector onto a Rows×Cols matrix, grid[row][col].
// Unpopulated coordinates hold 0. Returns ErrLayoutSize if len(values)
// differs from Len.
func (l Layout) Grid(values []float64) ([][]float64, error) {
	if len(values) != len(l.positions) {
		return nil, fmt.Errorf("Grid: got %d values for %d cells: %w", len(values), len(l.positions), ErrLayoutSize)
	}
	grid := make([][]float64, l.Rows)
	for r := range grid {
		grid[r] = make([]float64, l.Cols)
	}
	for k, p := range l.positions {
		grid[p.Row][p.Col] = values[k]
	}
	return grid, nil
}
