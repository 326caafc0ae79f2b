// SPDX-License-Identifier: MIT

package cell

import "fmt"

// Cell is one solar cell: its irradiance and the curve derived from it.
// The curve is recomputed on every irradiance write and is never stale.
//
// A Cell is not safe for concurrent mutation; the owning module serializes
// writes. Clone yields a fully independent copy.
type Cell struct {
	provider Provider
	ee       float64
	curve    Curve
}

// New evaluates provider at irradiance ee and returns the resulting Cell.
//
// Errors:
//   - ErrNilProvider when provider is nil.
//   - ErrInvalidIrradiance for negative or non-finite ee.
//   - ErrInvalidCurve when the provider's samples are malformed.
func New(provider Provider, ee float64) (*Cell, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	c := &Cell{provider: provider}
	if err := c.SetIrradiance(ee); err != nil {
		return nil, err
	}

	return c, nil
}

// SetIrradiance recomputes the curve at ee. On error the cell is unchanged.
func (c *Cell) SetIrradiance(ee float64) error {
	if !ValidIrradiance(ee) {
		return fmt.Errorf("Cell.SetIrradiance(%v): %w", ee, ErrInvalidIrradiance)
	}
	curve, err := c.provider.Curve(ee)
	if err != nil {
		return fmt.Errorf("Cell.SetIrradiance(%v): %w", ee, err)
	}
	if err = curve.Validate(); err != nil {
		return fmt.Errorf("Cell.SetIrradiance(%v): %w", ee, err)
	}
	c.ee, c.curve = ee, curve

	return nil
}

// Irradiance returns the current irradiance [suns].
func (c *Cell) Irradiance() float64 { return c.ee }

// Curve returns the cell's samples. The slices are shared with the cell and
// must be treated as read-only; use Curve().Clone() to keep a private copy.
func (c *Cell) Curve() Curve { return c.curve }

// Voc returns the open-circuit voltage at the current irradiance.
func (c *Cell) Voc() float64 { return c.curve.Voc }

// Provider returns the provider used to evaluate this cell.
func (c *Cell) Provider() Provider { return c.provider }

// Clone returns a deep copy: same provider (immutable), private samples.
// Complexity: O(len(curve)).
func (c *Cell) Clone() *Cell {
	return &Cell{
		provider: c.provider,
		ee:       c.ee,
		curve:    c.curve.Clone(),
	}
}
