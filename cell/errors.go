// SPDX-License-Identifier: MIT

package cell

import "errors"

var (
	// ErrInvalidCurve indicates a Provider returned an empty curve,
	// current/voltage/power slices of different lengths, or a non-finite
	// sample.
	ErrInvalidCurve = errors.New("cell: invalid curve samples")

	// ErrInvalidIrradiance indicates a negative or non-finite irradiance.
	ErrInvalidIrradiance = errors.New("cell: irradiance must be finite and ≥ 0")

	// ErrNilProvider indicates a Cell was requested without a Provider.
	ErrNilProvider = errors.New("cell: provider is nil")
)
