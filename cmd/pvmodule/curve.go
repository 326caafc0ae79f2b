// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pvmod/module"
)

func newCurveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the module operating points or the full curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.module(cmd)
			if err != nil {
				return err
			}
			if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
				return writeCSV(a.out, m.Curve())
			}
			return writeSummary(a.out, m)
		},
	}
	cmd.Flags().Bool("csv", false, "write I, V, P and substring voltages as CSV")
	return cmd
}

func writeSummary(w io.Writer, m *module.Module) error {
	c := m.Curve()
	pmp, vmp, imp := c.MaxPower()

	_, err := fmt.Fprintf(w,
		"cells       %d\nsubstrings  %v\nVoc         %.3f V\nIsc         %.3f A\nPmp         %.2f W\nVmp         %.3f V\nImp         %.3f A\n",
		m.NumberCells(), m.Partition(), c.OpenCircuitVoltage(), c.ShortCircuitCurrent(), pmp, vmp, imp)
	return err
}

// writeCSV emits one row per axis sample: I, V, P, then each substring.
func writeCSV(w io.Writer, c module.Curve) error {
	cw := csv.NewWriter(w)

	header := []string{"I", "V", "P"}
	for s := 0; s < c.Substrings(); s++ {
		header = append(header, "V"+strconv.Itoa(s))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for j := range c.I {
		row[0] = formatFloat(c.I[j])
		row[1] = formatFloat(c.V[j])
		row[2] = formatFloat(c.P[j])
		for s := 0; s < c.Substrings(); s++ {
			row[3+s] = formatFloat(c.Vsubstr.At(j, s))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', 10, 64) }
