/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/fvgrid/grid2D"
	"github.com/notargets/fvgrid/readfiles"
)

// MetricsCmd represents the metrics command
var MetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Report cell volume and face area statistics for a grid",
	Long: `
Extends the grid with ghost nodes, computes the cell metrics and prints the
volume range, the interior volume, the worst face closure residual and the
length of each boundary of the original grid.

fvgrid metrics -F ramp.dat`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g, gg    *grid2D.Grid
			m        *grid2D.Metrics
			ordering readfiles.GridOrdering
			w        = cmd.OutOrStdout()
		)
		gridFile, _ := cmd.Flags().GetString("gridFile")
		ord, _ := cmd.Flags().GetString("ordering")
		if len(gridFile) == 0 {
			return fmt.Errorf("must supply a grid file (-F, --gridFile)")
		}
		if ordering, err = readfiles.NewGridOrdering(ord); err != nil {
			return
		}
		if g, err = readfiles.ReadStructuredGrid(gridFile, ordering); err != nil {
			return
		}
		if gg, err = grid2D.Extend(g); err != nil {
			return
		}
		if m, err = grid2D.ComputeMetrics(gg); err != nil {
			return
		}
		xiMag := grid2D.FaceAreaMagnitude(m.XiAreaX, m.XiAreaY)
		etaMag := grid2D.FaceAreaMagnitude(m.EtaAreaX, m.EtaAreaY)
		imin, jmin := m.Volume.ArgMin()
		fmt.Fprintf(w, "[%d x %d]\t\t= Cells (with ghost ring)\n", m.Ncx, m.Ncy)
		fmt.Fprintf(w, "%12.6e\t= Min Cell Volume at (%d,%d)\n", m.Volume.Min(), imin, jmin)
		fmt.Fprintf(w, "%12.6e\t= Max Cell Volume\n", m.Volume.Max())
		fmt.Fprintf(w, "%12.6e\t= Interior Volume\n", m.TotalInteriorVolume())
		fmt.Fprintf(w, "%12.6e\t= Min Xi Face Area\n", xiMag.Min())
		fmt.Fprintf(w, "%12.6e\t= Min Eta Face Area\n", etaMag.Min())
		fmt.Fprintf(w, "%12.6e\t= Max Closure Residual\n", m.MaxClosureResidual())
		rows, cols := g.PolyLines()
		fmt.Fprintf(w, "%12.6e\t= IMin Boundary Length\n", cols[0].Length())
		fmt.Fprintf(w, "%12.6e\t= IMax Boundary Length\n", cols[len(cols)-1].Length())
		fmt.Fprintf(w, "%12.6e\t= JMin Boundary Length\n", rows[0].Length())
		fmt.Fprintf(w, "%12.6e\t= JMax Boundary Length\n", rows[len(rows)-1].Length())
		return
	},
}

func init() {
	rootCmd.AddCommand(MetricsCmd)
	MetricsCmd.Flags().StringP("gridFile", "F", "", "structured grid file")
	MetricsCmd.Flags().String("ordering", "i_fastest", "node ordering of the grid file: i_fastest or j_fastest")
}
