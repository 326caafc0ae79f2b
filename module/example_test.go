// SPDX-License-Identifier: MIT

package module_test

import (
	"fmt"

	"github.com/katalvlaran/pvmod/module"
	"github.com/katalvlaran/pvmod/topology"
)

// ExampleModule_SetIrradiance shades one cell of a standard 96-cell module
// and compares the maximum power before and after.
func ExampleModule_SetIrradiance() {
	m, err := module.New(module.WithLayout(topology.STD96()))
	if err != nil {
		fmt.Println(err)
		return
	}
	before, _, _ := m.Curve().MaxPower()

	if err = m.SetIrradiance(0.2, 0); err != nil {
		fmt.Println(err)
		return
	}
	after, _, _ := m.Curve().MaxPower()

	fmt.Println("substrings:", m.Partition())
	fmt.Println("power lost:", after < before)

	// Output:
	// substrings: [32 32 32]
	// power lost: true
}
