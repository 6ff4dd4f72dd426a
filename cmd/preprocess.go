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

	"github.com/notargets/fvgrid/InputParameters"
	"github.com/notargets/fvgrid/model_problems/FV2D"
)

const exampleConditions = `
########################################
Title: "Mach 3 Ramp"
Gamma: 1.4
R: 287.
Cp: 1005.
Pinf: 11664.  # Pa
Tinf: 216.7   # K
Minf: 3.
InflowMode: zero_gradient  # or fixed_freestream
GridOrdering: i_fastest    # or j_fastest
BCs:
  JMax: SlipWall  # Inflow, Outflow, SlipWall, Farfield
########################################
`

type Preprocess struct {
	GridFile string
	ICFile   string
	Ordering string
}

// PreprocessCmd represents the preprocess command
var PreprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Run the full chain from grid file to a boundary consistent initial state",
	Long: `
Reads the grid, extends it with ghost nodes, computes the cell metrics and
initializes the conserved state from the input conditions file.

fvgrid preprocess -F ramp.dat -I conditions.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pp := &Preprocess{}
		pp.GridFile, _ = cmd.Flags().GetString("gridFile")
		pp.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		pp.Ordering, _ = cmd.Flags().GetString("ordering")
		return RunPreprocess(cmd, pp)
	},
}

func init() {
	rootCmd.AddCommand(PreprocessCmd)
	PreprocessCmd.Flags().StringP("gridFile", "F", "", "structured grid file, \"ZONE i=Nx, j=Ny\" header followed by x,y pairs")
	PreprocessCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Pinf, Tinf, Minf\n\t- BCs per edge")
	PreprocessCmd.Flags().String("ordering", "", "override the GridOrdering of the conditions file: i_fastest or j_fastest")
}

func RunPreprocess(cmd *cobra.Command, pp *Preprocess) (err error) {
	var (
		ip *InputParameters.InputParametersFV
		c  *FV2D.FV2D
		w  = cmd.OutOrStdout()
	)
	if len(pp.GridFile) == 0 {
		return fmt.Errorf("must supply a grid file (-F, --gridFile)")
	}
	if len(pp.ICFile) == 0 {
		fmt.Fprintf(w, "Example File:%s\n", exampleConditions)
		return fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
	}
	if ip, err = InputParameters.ReadInputParametersFV(pp.ICFile); err != nil {
		return
	}
	if len(pp.Ordering) != 0 {
		ip.GridOrdering = pp.Ordering
	}
	ip.Fprint(w)
	if c, err = FV2D.NewFV2D(ip, pp.GridFile, logger); err != nil {
		logger.Error("preprocessing failed", "gridFile", pp.GridFile, "err", err)
		return
	}
	c.Summary(w)
	return
}
