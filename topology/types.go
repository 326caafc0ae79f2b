// SPDX-License-Identifier: MIT

// Package topology defines Position, Layout and the generator options.
package topology

// Unlinked marks a Position with no series successor or parallel tie.
const Unlinked = -1

// Position places one cell on the grid and in the wiring.
type Position struct {
	Row, Col  int // coordinates within the grid
	Series    int // 1-based series order, or Unlinked
	Parallel  int // cross-tie group, or Unlinked
	Substring int // bypass-diode group
}

// Coord is a (row, col) pair produced by a traversal rule.
type Coord struct {
	Row, Col int
}

// Rule enumerates the grid coordinates of a rows×cols grid in wiring order.
type Rule func(rows, cols int) []Coord

// Layout is an immutable, ordered cell assignment. Rows and Cols define the
// grid; positions[k] describes the k-th cell. index maps a row-major grid
// offset back to the cell index.
type Layout struct {
	Rows, Cols int
	positions  []Position
	index      []int
}

// Options contains tunable parameters for the layout generators.
type Options struct {
	// SubstringSize is the cell count per substring in Serpentine; 0 means
	// the whole grid forms one substring.
	SubstringSize int
	// SubstringOffset shifts the Serpentine substring boundaries.
	SubstringOffset int
	// RowsPerSubstring groups CrossTied rows into substrings; 0 means all rows.
	RowsPerSubstring int
}

// Option customizes a generator.
type Option func(*Options)

// WithSubstringSize sets the Serpentine substring size. Panics if n < 1.
func WithSubstringSize(n int) Option {
	if n < 1 {
		panic("topology: WithSubstringSize(n<1)")
	}
	return func(o *Options) { o.SubstringSize = n }
}

// WithSubstringOffset sets the Serpentine substring offset. Panics if k < 0.
func WithSubstringOffset(k int) Option {
	if k < 0 {
		panic("topology: WithSubstringOffset(k<0)")
	}
	return func(o *Options) { o.SubstringOffset = k }
}

// WithRowsPerSubstring sets the CrossTied rows per substring. Panics if n < 1.
func WithRowsPerSubstring(n int) Option {
	if n < 1 {
		panic("topology: WithRowsPerSubstring(n<1)")
	}
	return func(o *Options) { o.RowsPerSubstring = n }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
