// SPDX-License-Identifier: MIT

package topology

import "errors"

var (
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("topology: grid must have at least one row and one column")
	// ErrOutOfRange indicates a coordinate or cell index outside the grid.
	ErrOutOfRange = errors.New("topology: position out of range")
	// ErrDuplicatePosition indicates two cells mapped onto the same coordinate.
	ErrDuplicatePosition = errors.New("topology: duplicate position")
	// ErrLayoutSize indicates a per-cell vector whose length differs from the layout.
	ErrLayoutSize = errors.New("topology: value count does not match layout")
)
