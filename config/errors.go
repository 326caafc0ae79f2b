// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig indicates runtime settings that cannot build a module.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrScenario indicates a malformed or inapplicable shading scenario.
	ErrScenario = errors.New("config: invalid scenario")
)
