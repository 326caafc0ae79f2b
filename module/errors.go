// SPDX-License-Identifier: MIT

package module

import "errors"

// ErrConfiguration indicates a module that cannot be built: a substring
// partition that does not sum to the cell count, a non-positive substring,
// a layout whose size disagrees with the cell count, or unusable provider
// constants.
var ErrConfiguration = errors.New("module: invalid configuration")

// ErrShapeMismatch indicates an irradiance sequence whose length matches
// neither the module nor the requested cell subset.
var ErrShapeMismatch = errors.New("module: irradiance shape mismatch")

// ErrInvalidIrradiance indicates a negative, NaN or infinite irradiance.
var ErrInvalidIrradiance = errors.New("module: invalid irradiance")

// ErrCellIndex indicates a cell index outside [0, numberCells).
var ErrCellIndex = errors.New("module: cell index out of range")
