// SPDX-License-Identifier: MIT

package topology_test

import (
	"fmt"

	"github.com/katalvlaran/pvmod/topology"
)

// ExampleSerpentine prints the wiring order of a small ribbon module split
// into two substrings.
func ExampleSerpentine() {
	l, _ := topology.Serpentine(2, 3, topology.WithSubstringSize(3))

	for _, p := range l.Positions() {
		fmt.Printf("(%d,%d) series=%d substring=%d\n", p.Row, p.Col, p.Series, p.Substring)
	}
	fmt.Println("sizes:", l.SubstringSizes())

	// Output:
	// (0,0) series=1 substring=0
	// (0,1) series=2 substring=0
	// (0,2) series=3 substring=0
	// (1,2) series=4 substring=1
	// (1,1) series=5 substring=1
	// (1,0) series=6 substring=1
	// sizes: [3 3]
}
