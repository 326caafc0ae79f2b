// SPDX-License-Identifier: MIT

package ivplot

import "errors"

var (
	// ErrNoData indicates an empty curve or an empty cell set.
	ErrNoData = errors.New("ivplot: nothing to plot")
	// ErrFormat indicates an output format the canvas backend does not know.
	ErrFormat = errors.New("ivplot: unsupported format")
)
