// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/pvmod/ivplot"
)

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render module and cell figures",
		Long: "plot writes the module I-V / P-V figure to --out and, with --cells-out, the\n" +
			"per-cell reverse and forward characteristics. The format follows the file\n" +
			"extension, falling back to plot.format from the configuration.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.module(cmd)
			if err != nil {
				return err
			}
			size := ivplot.WithSize(vg.Length(a.cfg.Plot.Width)*vg.Inch, vg.Length(a.cfg.Plot.Height)*vg.Inch)

			out, _ := cmd.Flags().GetString("out")
			if err = a.writeFigure(out, func(f *os.File, format string) error {
				return ivplot.WriteModule(f, m.Curve(), m.Constants(), format, size)
			}); err != nil {
				return err
			}

			if cells, _ := cmd.Flags().GetString("cells-out"); cells != "" {
				return a.writeFigure(cells, func(f *os.File, format string) error {
					return ivplot.WriteCells(f, m.CellCurves(), m.Constants(), format, size)
				})
			}
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "module.png", "module figure path")
	cmd.Flags().String("cells-out", "", "cell figure path")
	return cmd
}

func (a *app) writeFigure(path string, draw func(*os.File, string) error) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = a.cfg.Plot.Format
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = draw(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.log.Info("figure written", "path", path, "format", format)
	return nil
}
