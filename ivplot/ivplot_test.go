// SPDX-License-Identifier: MIT

package ivplot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/pvmod/cell"
	"github.com/katalvlaran/pvmod/ivplot"
	"github.com/katalvlaran/pvmod/module"
)

func smallModule(t *testing.T) *module.Module {
	t.Helper()
	m, err := module.New(
		module.WithNumberCells(8),
		module.WithSubstrings(4, 4),
		module.WithProvider(cell.NewModel(cell.WithPoints(20))),
	)
	require.NoError(t, err)
	require.NoError(t, m.SetIrradiance(0.3, 2))
	return m
}

func TestWriteModule(t *testing.T) {
	m := smallModule(t)

	var svg bytes.Buffer
	require.NoError(t, ivplot.WriteModule(&svg, m.Curve(), m.Constants(), "svg"))
	assert.Contains(t, svg.String(), "<svg")
	assert.Contains(t, svg.String(), "Module P-V Characteristics")

	var png bytes.Buffer
	require.NoError(t, ivplot.WriteModule(&png, m.Curve(), m.Constants(), "png", ivplot.WithSize(4*vg.Inch, 3*vg.Inch)))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
}

func TestWriteCells(t *testing.T) {
	m := smallModule(t)

	var buf bytes.Buffer
	require.NoError(t, ivplot.WriteCells(&buf, m.CellCurves(), m.Constants(), "svg"))
	for _, title := range []string{
		"Cell Reverse I-V Characteristics",
		"Cell Forward I-V Characteristics",
		"Cell Reverse P-V Characteristics",
		"Cell Forward P-V Characteristics",
	} {
		assert.Contains(t, buf.String(), title)
	}
}

func TestWrite_Errors(t *testing.T) {
	m := smallModule(t)
	var buf bytes.Buffer

	assert.ErrorIs(t, ivplot.WriteModule(&buf, module.Curve{}, m.Constants(), "svg"), ivplot.ErrNoData)
	assert.ErrorIs(t, ivplot.WriteCells(&buf, nil, m.Constants(), "svg"), ivplot.ErrNoData)
	assert.ErrorIs(t, ivplot.WriteCells(&buf, []cell.Curve{{}}, m.Constants(), "svg"), ivplot.ErrNoData)
	assert.ErrorIs(t, ivplot.WriteModule(&buf, m.Curve(), m.Constants(), "bmp"), ivplot.ErrFormat)

	assert.Panics(t, func() { ivplot.WithSize(0, vg.Inch) })
}
