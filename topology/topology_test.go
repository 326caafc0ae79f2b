// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pvmod/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const u = topology.Unlinked

//----------------------------------------------------------------------------//
// Generators
//----------------------------------------------------------------------------//

// TestSerpentine_Small checks traversal order, series numbering and
// substring ids with an offset on a 2×3 grid.
func TestSerpentine_Small(t *testing.T) {
	l, err := topology.Serpentine(2, 3, topology.WithSubstringSize(2), topology.WithSubstringOffset(1))
	require.NoError(t, err)

	want := []topology.Position{
		{Row: 0, Col: 0, Series: 1, Parallel: u, Substring: 0},
		{Row: 0, Col: 1, Series: 2, Parallel: u, Substring: 1},
		{Row: 0, Col: 2, Series: 3, Parallel: u, Substring: 1},
		{Row: 1, Col: 2, Series: 4, Parallel: u, Substring: 2},
		{Row: 1, Col: 1, Series: 5, Parallel: u, Substring: 2},
		{Row: 1, Col: 0, Series: 6, Parallel: u, Substring: 3},
	}
	if diff := cmp.Diff(want, l.Positions()); diff != "" {
		t.Errorf("Serpentine(2,3) positions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 2, 1}, l.SubstringSizes())
}

// TestCrossTied_Small checks the series and parallel ties on a 3×2 grid.
func TestCrossTied_Small(t *testing.T) {
	l, err := topology.CrossTied(3, 2, topology.WithRowsPerSubstring(1))
	require.NoError(t, err)

	want := []topology.Position{
		{Row: 0, Col: 0, Series: 1, Parallel: 3, Substring: 0},
		{Row: 1, Col: 0, Series: 2, Parallel: 4, Substring: 1},
		{Row: 2, Col: 0, Series: u, Parallel: 5, Substring: 2},
		{Row: 0, Col: 1, Series: 4, Parallel: u, Substring: 0},
		{Row: 1, Col: 1, Series: 5, Parallel: u, Substring: 1},
		{Row: 2, Col: 1, Series: u, Parallel: u, Substring: 2},
	}
	if diff := cmp.Diff(want, l.Positions()); diff != "" {
		t.Errorf("CrossTied(3,2) positions mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerators_EmptyGrid(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (topology.Layout, error)
	}{
		{"SerpentineNoRows", func() (topology.Layout, error) { return topology.Serpentine(0, 3) }},
		{"SerpentineNoCols", func() (topology.Layout, error) { return topology.Serpentine(3, 0) }},
		{"CrossTied", func() (topology.Layout, error) { return topology.CrossTied(-1, 2) }},
		{"Explicit", func() (topology.Layout, error) { return topology.Explicit(0, 0, nil) }},
		{"Standard", func() (topology.Layout, error) { return topology.Standard(0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			assert.ErrorIs(t, err, topology.ErrEmptyGrid)
		})
	}
}

//----------------------------------------------------------------------------//
// Presets
//----------------------------------------------------------------------------//

func TestSTD96(t *testing.T) {
	l := topology.STD96()
	assert.Equal(t, 96, l.Len())
	assert.Equal(t, 12, l.Rows)
	assert.Equal(t, 8, l.Cols)
	assert.Equal(t, []int{32, 32, 32}, l.SubstringSizes())

	// second row runs right to left
	k, err := l.Index(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 8, k)
	k, err = l.Index(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, k)

	last, err := l.At(95)
	require.NoError(t, err)
	assert.Equal(t, topology.Position{Row: 11, Col: 0, Series: 96, Parallel: u, Substring: 2}, last)
}

func TestTCT96(t *testing.T) {
	l := topology.TCT96()
	assert.Equal(t, 96, l.Len())

	// each column contributes one run per group of four rows
	sizes := l.SubstringSizes()
	assert.Len(t, sizes, 24)
	for _, s := range sizes {
		assert.Equal(t, 4, s)
	}

	p, err := l.At(11) // bottom of the first column
	require.NoError(t, err)
	assert.Equal(t, topology.Position{Row: 11, Col: 0, Series: u, Parallel: 23, Substring: 2}, p)

	p, err = l.At(84) // top of the last column
	require.NoError(t, err)
	assert.Equal(t, topology.Position{Row: 0, Col: 7, Series: 85, Parallel: u, Substring: 0}, p)
}

func TestStandard(t *testing.T) {
	cases := []struct {
		n          int
		rows, cols int
		sizes      []int
	}{
		{72, 12, 6, []int{24, 24, 24}},
		{96, 12, 8, []int{32, 32, 32}},
		{128, 16, 8, []int{16, 24, 24, 24, 24, 16}},
		{10, 10, 1, []int{10}},
	}
	for _, tc := range cases {
		l, err := topology.Standard(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.n, l.Len())
		assert.Equal(t, tc.rows, l.Rows, "n=%d", tc.n)
		assert.Equal(t, tc.cols, l.Cols, "n=%d", tc.n)
		assert.Equal(t, tc.sizes, l.SubstringSizes(), "n=%d", tc.n)
	}
}

//----------------------------------------------------------------------------//
// Explicit layouts and accessors
//----------------------------------------------------------------------------//

func TestExplicit(t *testing.T) {
	in := []topology.Position{
		{Row: 0, Col: 1, Series: 1, Parallel: u},
		{Row: 1, Col: 1, Series: 2, Parallel: u, Substring: 1},
	}
	l, err := topology.Explicit(2, 2, in)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	in[0].Row = 1 // caller's slice is not retained
	p, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Row)

	_, err = l.Index(0, 0)
	assert.ErrorIs(t, err, topology.ErrOutOfRange, "unpopulated coordinate")

	_, err = topology.Explicit(2, 2, []topology.Position{{Row: 2, Col: 0}})
	assert.ErrorIs(t, err, topology.ErrOutOfRange)

	_, err = topology.Explicit(2, 2, []topology.Position{{Row: 1, Col: 1}, {Row: 1, Col: 1}})
	assert.ErrorIs(t, err, topology.ErrDuplicatePosition)
}

func TestLayout_Accessors(t *testing.T) {
	l, err := topology.Serpentine(2, 2)
	require.NoError(t, err)

	assert.True(t, l.InBounds(1, 1))
	assert.False(t, l.InBounds(2, 0))
	assert.False(t, l.InBounds(0, -1))

	_, err = l.At(4)
	assert.ErrorIs(t, err, topology.ErrOutOfRange)
	_, err = l.Index(-1, 0)
	assert.ErrorIs(t, err, topology.ErrOutOfRange)

	ps := l.Positions()
	ps[0].Series = 42
	p, _ := l.At(0)
	assert.Equal(t, 1, p.Series, "Positions returns a copy")

	// serpentine on 2×2: (0,0) (0,1) (1,1) (1,0)
	grid, err := l.Grid([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {4, 3}}, grid)

	_, err = l.Grid([]float64{1})
	assert.ErrorIs(t, err, topology.ErrLayoutSize)
}

func TestLayout_Contiguous(t *testing.T) {
	assert.True(t, topology.STD96().Contiguous())
	assert.False(t, topology.TCT96().Contiguous(), "cross-tied ids repeat per column")
	assert.True(t, topology.Layout{}.Contiguous())

	l, err := topology.Explicit(1, 3, []topology.Position{
		{Row: 0, Col: 0, Substring: 2},
		{Row: 0, Col: 1, Substring: 5},
		{Row: 0, Col: 2, Substring: 2},
	})
	require.NoError(t, err)
	assert.False(t, l.Contiguous())
	assert.Equal(t, []int{1, 1, 1}, l.SubstringSizes())
}

func TestRules(t *testing.T) {
	want := []topology.Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if diff := cmp.Diff(want, topology.ColumnMajorRule(2, 2)); diff != "" {
		t.Errorf("ColumnMajorRule mismatch (-want +got):\n%s", diff)
	}

	var rule topology.Rule = topology.SerpentineRule
	want = []topology.Coord{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if diff := cmp.Diff(want, rule(2, 2)); diff != "" {
		t.Errorf("SerpentineRule mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { topology.WithSubstringSize(0) })
	assert.Panics(t, func() { topology.WithSubstringOffset(-1) })
	assert.Panics(t, func() { topology.WithRowsPerSubstring(0) })
}
