// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/ivcurve"
)

// oriented is a cell curve sorted by increasing current.
type oriented struct {
	i, v []float64
}

func orientAll(curves []cell.Curve) []oriented {
	out := make([]oriented, len(curves))
	for n, c := range curves {
		out[n].i, out[n].v = ivcurve.Orient(c.I, c.V)
	}
	return out
}

// Axis returns the shared current axis for a set of cell curves: a low
// branch from min(0, min Icell) up to just below Isc followed by a high
// branch from Isc up to the largest current any cell carries at VRBD.
// Isc = mean(ee)·Isc0. The result has 2·Npts non-decreasing samples.
//
// Errors: ErrShapeMismatch when len(ee) != len(curves); ErrConfiguration
// for an empty set or Npts < 2; a wrapped cell.ErrInvalidCurve for
// malformed samples.
func Axis(curves []cell.Curve, ee []float64, k cell.Constants) ([]float64, error) {
	if err := checkInputs(curves, ee, k); err != nil {
		return nil, err
	}
	return axis(curves, ee, k), nil
}

func axis(curves []cell.Curve, ee []float64, k cell.Constants) []float64 {
	iAtVrbd := make([]float64, len(curves))
	imin := 0.0
	for n, c := range curves {
		vs, is := ivcurve.Orient(c.V, c.I)
		iAtVrbd[n] = ivcurve.Interpolate(k.VRBD, vs, is)
		imin = math.Min(imin, floats.Min(c.I))
	}
	isc := floats.Sum(ee) / float64(len(ee)) * k.Isc0

	low := ivcurve.Scale(nil, ivcurve.ModuleReversePoints(k.Npts), isc, imin)
	high := ivcurve.Scale(nil, ivcurve.ModuleForwardPoints(k.Npts), isc, floats.Max(iAtVrbd))

	return append(low, high...)
}

// SubstringVoltage returns the voltage of series-connected cells at every
// current of axis. Each member's voltage is interpolated on its own samples
// (clamped to their range, never extrapolated) and the voltages are summed;
// sums below vbypass are replaced by vbypass.
// Complexity: O(len(axis)·len(members)·log T).
func SubstringVoltage(axis []float64, members []cell.Curve, vbypass float64) []float64 {
	return substringVoltage(make([]float64, len(axis)), axis, orientAll(members), vbypass)
}

func substringVoltage(dst, axis []float64, members []oriented, vbypass float64) []float64 {
	for j, i := range axis {
		sum := 0.0
		for _, m := range members {
			sum += ivcurve.Interpolate(i, m.i, m.v)
		}
		if sum < vbypass {
			sum = vbypass
		}
		dst[j] = sum
	}
	return dst
}

// Synthesize aggregates cell curves into the module curve. curves are in
// series order; partition lists the cells per substring; ee is the
// irradiance each curve was computed at.
//
// Errors: ErrShapeMismatch, ErrConfiguration (see Axis and the partition
// rules of New), or a wrapped cell.ErrInvalidCurve.
func Synthesize(curves []cell.Curve, ee []float64, partition []int, k cell.Constants) (Curve, error) {
	if err := checkInputs(curves, ee, k); err != nil {
		return Curve{}, err
	}
	if err := checkPartition(partition, len(curves)); err != nil {
		return Curve{}, err
	}

	return synthesize(curves, ee, partition, k, 1), nil
}

// synthesize assumes validated inputs. Substrings are evaluated by up to
// workers goroutines, each writing its own column.
func synthesize(curves []cell.Curve, ee []float64, partition []int, k cell.Constants, workers int) Curve {
	ax := axis(curves, ee, k)
	cells := orientAll(curves)
	vsub := mat.NewDense(len(ax), len(partition), nil)

	var g errgroup.Group
	g.SetLimit(workers)
	start := 0
	for s, size := range partition {
		members := cells[start : start+size]
		start += size
		g.Go(func() error {
			vsub.SetCol(s, substringVoltage(make([]float64, len(ax)), ax, members, k.Vbypass))
			return nil
		})
	}
	_ = g.Wait() // substring workers never return an error

	v := make([]float64, len(ax))
	for r := range v {
		v[r] = floats.Sum(vsub.RawRowView(r))
	}
	p := floats.MulTo(make([]float64, len(ax)), ax, v)

	return Curve{I: ax, V: v, P: p, Vsubstr: vsub}
}

func checkInputs(curves []cell.Curve, ee []float64, k cell.Constants) error {
	if len(curves) == 0 {
		return fmt.Errorf("no cell curves: %w", ErrConfiguration)
	}
	if len(ee) != len(curves) {
		return fmt.Errorf("%d irradiance values for %d cells: %w", len(ee), len(curves), ErrShapeMismatch)
	}
	if k.Npts < ivcurve.MinPoints {
		return fmt.Errorf("Npts=%d: %w", k.Npts, ErrConfiguration)
	}
	for n, c := range curves {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("cell %d: %w", n, err)
		}
	}
	return nil
}

// checkPartition requires positive substring sizes summing to n.
func checkPartition(partition []int, n int) error {
	if len(partition) == 0 {
		return fmt.Errorf("empty substring partition: %w", ErrConfiguration)
	}
	sum := 0
	for s, size := range partition {
		if size < 1 {
			return fmt.Errorf("substring %d has %d cells: %w", s, size, ErrConfiguration)
		}
		sum += size
	}
	if sum != n {
		return fmt.Errorf("substrings %v sum to %d, want %d cells: %w", partition, sum, n, ErrConfiguration)
	}
	return nil
}
