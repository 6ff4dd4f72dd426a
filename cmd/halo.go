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

// HaloCmd represents the halo command
var HaloCmd = &cobra.Command{
	Use:   "halo",
	Short: "Write the grid extended by one layer of ghost nodes",
	Long: `
Reads a structured grid and writes it back with one extrapolated ghost node
layer on every side, in the same file format.

fvgrid halo -F ramp.dat -o ramp_halo.dat`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g, gg    *grid2D.Grid
			ordering readfiles.GridOrdering
		)
		gridFile, _ := cmd.Flags().GetString("gridFile")
		outFile, _ := cmd.Flags().GetString("output")
		ord, _ := cmd.Flags().GetString("ordering")
		if len(gridFile) == 0 || len(outFile) == 0 {
			return fmt.Errorf("must supply a grid file (-F, --gridFile) and an output file (-o, --output)")
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
		if err = readfiles.WriteStructuredGridFile(outFile, gg, ordering); err != nil {
			return
		}
		logger.Info("halo written", "in", gridFile, "out", outFile,
			"nodes", fmt.Sprintf("%dx%d", gg.Nx, gg.Ny))
		fmt.Fprintln(cmd.OutOrStdout(), gg)
		return
	},
}

func init() {
	rootCmd.AddCommand(HaloCmd)
	HaloCmd.Flags().StringP("gridFile", "F", "", "structured grid file to extend")
	HaloCmd.Flags().StringP("output", "o", "", "file to write the extended grid to")
	HaloCmd.Flags().String("ordering", "i_fastest", "node ordering of both files: i_fastest or j_fastest")
}
