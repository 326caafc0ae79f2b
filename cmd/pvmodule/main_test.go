// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pvmod/config"
	"github.com/katalvlaran/pvmod/ivplot"
)

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"--help"}))
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "curve")
	assert.Contains(t, out.String(), "plot")
}

func TestRun_CurveSummary(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"curve", "--points", "15"}))

	s := out.String()
	assert.Contains(t, s, "cells       96")
	assert.Contains(t, s, "substrings  [32 32 32]")
	for _, key := range []string{"Voc", "Isc", "Pmp", "Vmp", "Imp"} {
		assert.Contains(t, s, key)
	}
}

func TestRun_CurveCSV(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"curve", "--csv", "--cells", "8", "--substrings", "4,4", "--points", "10"}
	require.NoError(t, run(&out, &errOut, args))

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+2*10)
	assert.Equal(t, []string{"I", "V", "P", "V0", "V1"}, rows[0])
	for _, r := range rows[1:] {
		assert.Len(t, r, 5)
	}
}

func TestRun_Scenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shade.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"leaf\"\n[[shade]]\ncells = [0]\nirradiance = 0.1\n"), 0o600))

	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"curve", "--points", "10", "--scenario", path}))
	assert.Contains(t, errOut.String(), "scenario applied")
	assert.Contains(t, errOut.String(), "name=leaf")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[shade]]\ncells = [500]\nirradiance = 0.1\n"), 0o600))
	err := run(&out, &errOut, []string{"curve", "--points", "10", "--scenario", bad})
	assert.ErrorIs(t, err, config.ErrScenario)
}

func TestRun_Plot(t *testing.T) {
	dir := t.TempDir()
	mod := filepath.Join(dir, "module.svg")
	cells := filepath.Join(dir, "cells.png")

	var out, errOut bytes.Buffer
	args := []string{"plot", "--cells", "8", "--points", "10", "-o", mod, "--cells-out", cells}
	require.NoError(t, run(&out, &errOut, args))

	for _, p := range []string{mod, cells} {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}

	bmp := filepath.Join(dir, "module.bmp")
	err := run(&out, &errOut, []string{"plot", "--cells", "8", "--points", "10", "-o", bmp})
	assert.ErrorIs(t, err, ivplot.ErrFormat)
	_, statErr := os.Stat(bmp)
	assert.True(t, os.IsNotExist(statErr), "failed figure is removed")
}

func TestRun_ConfigErrors(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"curve", "--cells", "0"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run(&out, &errOut, []string{"curve", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "pvmodule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cells: 72\nverbose: true\ncell:\n  points: 10\n"), 0o600))
	out.Reset()
	errOut.Reset()
	require.NoError(t, run(&out, &errOut, []string{"curve", "--config", path}))
	assert.Contains(t, out.String(), "substrings  [24 24 24]")
	assert.Contains(t, errOut.String(), "module curve recomputed", "verbose enables debug logs")
}
