// SPDX-License-Identifier: MIT

package ivplot

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/module"
)

// Default figure geometry.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 8 * vg.Inch
	DefaultPad    = vg.Length(10)
)

// Option customizes a figure.
type Option func(*options)

type options struct {
	width, height vg.Length
}

// WithSize sets the figure size. Panics on a non-positive dimension.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("ivplot: WithSize(non-positive)")
	}
	return func(o *options) { o.width, o.height = width, height }
}

func gather(opts []Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteModule renders the module I-V and P-V curves of c to w. The current
// axis is capped at Isc0 + 1 so the reverse-bias tail does not dwarf the
// operating region.
func WriteModule(w io.Writer, c module.Curve, k cell.Constants, format string, opts ...Option) error {
	if c.Len() == 0 {
		return fmt.Errorf("WriteModule: %w", ErrNoData)
	}

	iv := newPlot("Module I-V Characteristics", "", "Module Current, I [A]")
	if err := addLine(iv, 0, c.V, c.I); err != nil {
		return fmt.Errorf("WriteModule: %w", err)
	}
	iv.Y.Max = k.Isc0 + 1

	pv := newPlot("Module P-V Characteristics", "Module Voltage, V [V]", "Module Power, P [W]")
	if err := addLine(pv, 0, c.V, c.P); err != nil {
		return fmt.Errorf("WriteModule: %w", err)
	}

	return render(w, format, gather(opts), [][]*plot.Plot{{iv}, {pv}})
}

// WriteCells renders every cell curve to w as a 2×2 figure. Reverse panels
// span [VRBD−1, 0]; forward panels span [0, max Voc].
func WriteCells(w io.Writer, curves []cell.Curve, k cell.Constants, format string, opts ...Option) error {
	if len(curves) == 0 {
		return fmt.Errorf("WriteCells: %w", ErrNoData)
	}
	vocs := make([]float64, len(curves))
	for n, c := range curves {
		if c.Len() == 0 {
			return fmt.Errorf("WriteCells: cell %d: %w", n, ErrNoData)
		}
		vocs[n] = c.Voc
	}
	vocMax := floats.Max(vocs)
	if vocMax <= 0 {
		vocMax = 1 // all dark
	}
	vLow := k.VRBD - 1

	panels := []struct {
		title, xlabel, ylabel  string
		power                  bool
		xmin, xmax, ymin, ymax float64
	}{
		{"Cell Reverse I-V Characteristics", "", "Cell Current, I [A]", false, vLow, 0, 0, k.Isc0 + 10},
		{"Cell Forward I-V Characteristics", "", "Cell Current, I [A]", false, 0, vocMax, 0, k.Isc0 + 1},
		{"Cell Reverse P-V Characteristics", "Cell Voltage, V [V]", "Cell Power, P [W]", true, vLow, 0, (k.Isc0 + 10) * vLow, -1},
		{"Cell Forward P-V Characteristics", "Cell Voltage, V [V]", "Cell Power, P [W]", true, 0, vocMax, 0, (k.Isc0 + 1) * vocMax},
	}
	plots := make([]*plot.Plot, len(panels))
	for j, pn := range panels {
		p := newPlot(pn.title, pn.xlabel, pn.ylabel)
		for n, c := range curves {
			y := c.I
			if pn.power {
				y = c.P
			}
			if err := addLine(p, n, c.V, y); err != nil {
				return fmt.Errorf("WriteCells: cell %d: %w", n, err)
			}
		}
		p.X.Min, p.X.Max = pn.xmin, pn.xmax
		p.Y.Min, p.Y.Max = pn.ymin, pn.ymax
		plots[j] = p
	}

	return render(w, format, gather(opts), [][]*plot.Plot{plots[:2], plots[2:]})
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, n int, x, y []float64) error {
	pts := make(plotter.XYs, min(len(x), len(y)))
	for j := range pts {
		pts[j].X, pts[j].Y = x[j], y[j]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = plotutil.Color(n)
	p.Add(l)
	return nil
}

// render lays the plots out on a grid of tiles and writes the canvas.
func render(w io.Writer, format string, o options, plots [][]*plot.Plot) error {
	img, err := draw.NewFormattedCanvas(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("format %q: %w", format, ErrFormat)
	}
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      DefaultPad,
		PadY:      DefaultPad,
		PadTop:    DefaultPad / 2,
		PadBottom: DefaultPad / 2,
		PadLeft:   DefaultPad / 2,
		PadRight:  DefaultPad / 2,
	}
	canvases := plot.Align(plots, t, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	if _, err = img.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}
