// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/topology"
)

// Module is a photovoltaic module: cells in series order, their substring
// partition, layout and irradiance, plus the module curve derived from
// them. The curve is always consistent with the irradiance.
//
// A Module is safe for concurrent use. Writers are serialized and readers
// never observe a partially recomputed state.
type Module struct {
	mu sync.RWMutex

	provider  cell.Provider
	consts    cell.Constants
	layout    topology.Layout
	partition []int
	logger    *slog.Logger
	workers   int

	cells []*cell.Cell
	ee    []float64
	curve Curve
}

// New builds a module from the options and computes its initial curve.
//
// Defaults: 96 cells at 1 sun, cell.NewModel() as provider and the
// standard layout for the cell count. Without WithSubstrings the partition
// follows the layout's substring runs when each substring id forms one
// contiguous run in series order (topology.Layout.Contiguous). Layouts
// whose ids repeat, such as TCT96, fall back to the standard size table
// (72 → 24/24/24, 96 → 32/32/32, 128 → 16/24/24/24/24/16, otherwise one
// substring).
//
// Errors:
//   - ErrConfiguration: partition does not sum to the cell count, layout
//     size disagrees with WithNumberCells, or provider Npts < 2.
//   - ErrShapeMismatch: WithIrradianceValues length differs from the count.
//   - ErrInvalidIrradiance: negative or non-finite irradiance.
//   - wrapped provider errors.
func New(opts ...Option) (*Module, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		layout topology.Layout
		err    error
	)
	switch {
	case cfg.layout != nil && cfg.cellsSet && cfg.layout.Len() != cfg.numberCells:
		return nil, fmt.Errorf("layout has %d cells, module %d: %w", cfg.layout.Len(), cfg.numberCells, ErrConfiguration)
	case cfg.layout != nil:
		layout = *cfg.layout
		cfg.numberCells = layout.Len()
		if cfg.numberCells == 0 {
			return nil, fmt.Errorf("empty layout: %w", ErrConfiguration)
		}
	default:
		if layout, err = topology.Standard(cfg.numberCells); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	n := cfg.numberCells

	partition := cfg.partition
	if partition == nil {
		partition = defaultPartition(layout)
	}
	if err = checkPartition(partition, n); err != nil {
		return nil, err
	}

	ee := slices.Clone(cfg.eeValues)
	if ee == nil {
		ee = make([]float64, n)
		for i := range ee {
			ee[i] = cfg.ee
		}
	} else if len(ee) != n {
		return nil, fmt.Errorf("%d irradiance values for %d cells: %w", len(ee), n, ErrShapeMismatch)
	}
	if err = checkIrradiance(ee); err != nil {
		return nil, err
	}

	provider := cfg.provider
	if provider == nil {
		provider = cell.NewModel()
	}
	consts := provider.Constants()
	if consts.Npts < 2 {
		return nil, fmt.Errorf("provider Npts=%d: %w", consts.Npts, ErrConfiguration)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Module{
		provider:  provider,
		consts:    consts,
		layout:    layout,
		partition: partition,
		logger:    logger,
		workers:   cfg.workers,
	}

	// one prototype, deep-copied per cell, then re-evaluated where the
	// irradiance differs
	proto, err := cell.New(provider, ee[0])
	if err != nil {
		return nil, fmt.Errorf("module.New: %w", err)
	}
	cells := make([]*cell.Cell, n)
	var touched []int
	for i := range cells {
		cells[i] = proto.Clone()
		if ee[i] != ee[0] {
			touched = append(touched, i)
		}
	}
	if err = m.evaluate(cells, ee, touched); err != nil {
		return nil, fmt.Errorf("module.New: %w", err)
	}

	m.cells, m.ee = cells, ee
	m.curve = m.recompute(cells, ee)

	return m, nil
}

// defaultPartition uses the substring runs of l, or of the standard layout
// when l's substring ids are not contiguous.
func defaultPartition(l topology.Layout) []int {
	if l.Contiguous() {
		return l.SubstringSizes()
	}
	std, err := topology.Standard(l.Len())
	if err != nil {
		return []int{l.Len()}
	}
	return std.SubstringSizes()
}

// SetIrradiance sets ee on every listed cell, or on all cells when none
// are listed, then recomputes the module curve.
//
// Errors: ErrInvalidIrradiance, ErrCellIndex. On error nothing changes.
func (m *Module) SetIrradiance(ee float64, cells ...int) error {
	n := len(cells)
	if n == 0 {
		n = m.NumberCells()
	}
	return m.SetIrradianceValues(slices.Repeat([]float64{ee}, n), cells...)
}

// SetIrradianceValues assigns ee[j] to cells[j], or ee[i] to cell i when no
// cells are listed, then recomputes the module curve. When an index is
// listed twice the last value wins.
//
// Errors: ErrShapeMismatch when len(ee) matches neither numberCells (no
// cells listed) nor len(cells); ErrInvalidIrradiance; ErrCellIndex.
// On error nothing changes.
func (m *Module) SetIrradianceValues(ee []float64, cells ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.ee)
	if len(cells) == 0 {
		if len(ee) != n {
			return fmt.Errorf("SetIrradianceValues: %d values for %d cells: %w", len(ee), n, ErrShapeMismatch)
		}
		cells = make([]int, n)
		for i := range cells {
			cells[i] = i
		}
	} else if len(ee) != len(cells) {
		return fmt.Errorf("SetIrradianceValues: %d values for %d listed cells: %w", len(ee), len(cells), ErrShapeMismatch)
	}
	if err := checkIrradiance(ee); err != nil {
		return fmt.Errorf("SetIrradianceValues: %w", err)
	}

	next := slices.Clone(m.ee)
	seen := make(map[int]bool, len(cells))
	touched := make([]int, 0, len(cells))
	for j, i := range cells {
		if i < 0 || i >= n {
			return fmt.Errorf("SetIrradianceValues: cell %d of %d: %w", i, n, ErrCellIndex)
		}
		next[i] = ee[j]
		if !seen[i] {
			seen[i] = true
			touched = append(touched, i)
		}
	}

	// work on private clones of the touched cells so failure leaves m intact
	work := slices.Clone(m.cells)
	for _, i := range touched {
		work[i] = m.cells[i].Clone()
	}
	if err := m.evaluate(work, next, touched); err != nil {
		return fmt.Errorf("SetIrradianceValues: %w", err)
	}

	curve := m.recompute(work, next)
	m.cells, m.ee, m.curve = work, next, curve

	return nil
}

// evaluate sets cells[i] to ee[i] for every touched index, in parallel.
func (m *Module) evaluate(cells []*cell.Cell, ee []float64, touched []int) error {
	var g errgroup.Group
	g.SetLimit(m.workers)
	for _, i := range touched {
		g.Go(func() error {
			if err := cells[i].SetIrradiance(ee[i]); err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (m *Module) recompute(cells []*cell.Cell, ee []float64) Curve {
	curves := make([]cell.Curve, len(cells))
	for i, c := range cells {
		curves[i] = c.Curve()
	}
	curve := synthesize(curves, ee, m.partition, m.consts, m.workers)

	pmp, vmp, imp := curve.MaxPower()
	m.logger.Debug("module curve recomputed",
		"cells", len(cells),
		"substrings", len(m.partition),
		"points", curve.Len(),
		"pmp", pmp, "vmp", vmp, "imp", imp)

	return curve
}

func checkIrradiance(ee []float64) error {
	for i, v := range ee {
		if !cell.ValidIrradiance(v) {
			return fmt.Errorf("value %d = %v: %w", i, v, ErrInvalidIrradiance)
		}
	}
	return nil
}

// NumberCells returns the cell count.
func (m *Module) NumberCells() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}

// Partition returns a copy of the cells-per-substring partition.
func (m *Module) Partition() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.partition)
}

// Layout returns the module layout.
func (m *Module) Layout() topology.Layout {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.layout
}

// Constants returns the provider constants.
func (m *Module) Constants() cell.Constants {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.consts
}

// Irradiance returns a copy of the per-cell irradiance.
func (m *Module) Irradiance() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.ee)
}

// IrradianceGrid projects the irradiance onto the layout grid,
// grid[row][col].
func (m *Module) IrradianceGrid() [][]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	grid, _ := m.layout.Grid(m.ee)
	return grid
}

// Curve returns a copy of the module curve.
func (m *Module) Curve() Curve {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curve.Clone()
}

// CellCurve returns a copy of the curve of cell i.
// Errors: ErrCellIndex.
func (m *Module) CellCurve(i int) (cell.Curve, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.cells) {
		return cell.Curve{}, fmt.Errorf("CellCurve(%d): %w", i, ErrCellIndex)
	}
	return m.cells[i].Curve().Clone(), nil
}

// CellCurves returns copies of all cell curves in series order.
func (m *Module) CellCurves() []cell.Curve {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]cell.Curve, len(m.cells))
	for i, c := range m.cells {
		out[i] = c.Curve().Clone()
	}
	return out
}

// Clone returns an independent deep copy: later irradiance changes on
// either module never affect the other.
// Complexity: O(N·T) for N cells of T samples.
func (m *Module) Clone() *Module {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cells := make([]*cell.Cell, len(m.cells))
	for i, c := range m.cells {
		cells[i] = c.Clone()
	}
	return &Module{
		provider:  m.provider,
		consts:    m.consts,
		layout:    m.layout,
		partition: slices.Clone(m.partition),
		logger:    m.logger,
		workers:   m.workers,
		cells:     cells,
		ee:        slices.Clone(m.ee),
		curve:     m.curve.Clone(),
	}
}
