package FV2D

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/notargets/fvgrid/InputParameters"
	"github.com/notargets/fvgrid/grid2D"
	"github.com/notargets/fvgrid/readfiles"
	"github.com/notargets/fvgrid/types"
	"github.com/notargets/fvgrid/utils"
)

/*
FV2D carries a structured mesh from the grid file to a boundary
consistent initial state:

	read grid -> halo extension -> cell metrics -> freestream fill -> ghost ring

Any error aborts the chain, a solver must never start on the result of a
failed NewFV2D.
*/
type FV2D struct {
	Title    string
	GridFile string
	Original *grid2D.Grid // as read
	Grid     *grid2D.Grid // with one halo layer
	Metrics  *grid2D.Metrics
	State    *ConservedState
	logger   *slog.Logger
}

// NewFV2D reads gridFile and runs the whole preprocessing chain with the
// conditions in ip.
func NewFV2D(ip *InputParameters.InputParametersFV, gridFile string, logger *slog.Logger) (c *FV2D, err error) {
	var (
		ordering readfiles.GridOrdering
		g        *grid2D.Grid
	)
	if logger == nil {
		logger = utils.DiscardLogger()
	}
	if ordering, err = readfiles.NewGridOrdering(ip.GridOrdering); err != nil {
		return
	}
	logger.Info("reading grid", "file", gridFile, "ordering", ordering)
	if g, err = readfiles.ReadStructuredGrid(gridFile, ordering); err != nil {
		return
	}
	if c, err = NewFV2DFromGrid(ip, g, logger); err != nil {
		return
	}
	c.GridFile = gridFile
	return
}

// NewFV2DFromGrid runs the chain on a grid that is already in memory.
func NewFV2DFromGrid(ip *InputParameters.InputParametersFV, g *grid2D.Grid, logger *slog.Logger) (c *FV2D, err error) {
	var (
		gas = GasProperties{Gamma: ip.Gamma, R: ip.R, Cp: ip.Cp}
		bcs *BoundaryEnforcer
	)
	if logger == nil {
		logger = utils.DiscardLogger()
	}
	if err = ip.Validate(); err != nil {
		return
	}
	if bcs, err = newBoundaryEnforcer(ip); err != nil {
		return
	}
	if ideal := gas.IdealCp(); ip.Cp > 0 && utils.RelDiff(ip.Cp, ideal) > 0.01 {
		logger.Warn("Cp is inconsistent with gamma and R", "Cp", ip.Cp, "gammaR/(gamma-1)", ideal)
	}
	c = &FV2D{
		Title:    ip.Title,
		Original: g,
		logger:   logger,
	}
	logger.Debug("grid loaded", "nx", g.Nx, "ny", g.Ny)
	if c.Grid, err = grid2D.Extend(g); err != nil {
		return nil, fmt.Errorf("halo extension: %w", err)
	}
	logger.Debug("halo extended", "nx", c.Grid.Nx, "ny", c.Grid.Ny)
	if c.Metrics, err = grid2D.ComputeMetrics(c.Grid); err != nil {
		return nil, fmt.Errorf("cell metrics: %w", err)
	}
	logger.Debug("metrics computed", "ncx", c.Metrics.Ncx, "ncy", c.Metrics.Ncy,
		"minVolume", c.Metrics.Volume.Min(), "maxVolume", c.Metrics.Volume.Max())
	if c.State, err = NewConservedStateFromMetrics(c.Metrics, gas, bcs); err != nil {
		return nil, err
	}
	if err = c.State.SetInitialConditions(ip.Pinf, ip.Tinf, ip.Minf); err != nil {
		return nil, fmt.Errorf("initial conditions: %w", err)
	}
	logger.Debug("interior filled", "freestream", c.State.FS.String())
	if err = c.State.ApplyBoundaryConditions(); err != nil {
		return nil, fmt.Errorf("boundary conditions: %w", err)
	}
	if err = c.State.ValidateInterior(); err != nil {
		return nil, err
	}
	logger.Info("preprocessing complete", "cells", c.Metrics.Ncx*c.Metrics.Ncy,
		"bcs", bcs.BCs.String(), "inflow", bcs.Inflow)
	logger.Debug("memory", "usage", utils.GetMemUsage())
	return
}

func newBoundaryEnforcer(ip *InputParameters.InputParametersFV) (bcs *BoundaryEnforcer, err error) {
	var (
		ebcs   types.EdgeBCs
		inflow InflowMode
	)
	if ebcs, err = types.NewEdgeBCs(ip.BCs); err != nil {
		return
	}
	if inflow, err = NewInflowMode(ip.InflowMode); err != nil {
		return
	}
	return NewBoundaryEnforcer(ebcs, inflow), nil
}

// Step is the hook a time marching solver calls before computing fluxes.
func (c *FV2D) Step() error {
	return c.State.ApplyBoundaryConditions()
}

func (c *FV2D) Summary(w io.Writer) {
	var (
		m  = c.Metrics
		fs = c.State.FS
	)
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", c.Title)
	fmt.Fprintf(w, "[%d x %d]\t\t= Grid Nodes (original)\n", c.Original.Nx, c.Original.Ny)
	fmt.Fprintf(w, "[%d x %d]\t\t= Grid Nodes (with halo)\n", c.Grid.Nx, c.Grid.Ny)
	fmt.Fprintf(w, "[%d x %d]\t\t= Cells (with ghost ring)\n", m.Ncx, m.Ncy)
	fmt.Fprintf(w, "%12.6e\t= Min Cell Volume\n", m.Volume.Min())
	fmt.Fprintf(w, "%12.6e\t= Max Cell Volume\n", m.Volume.Max())
	fmt.Fprintf(w, "%12.6e\t= Interior Volume\n", m.TotalInteriorVolume())
	fmt.Fprintf(w, "%12.6e\t= Max Closure Residual\n", c.MaxClosureResidual())
	fmt.Fprintf(w, "%12.6f\t= Density\n", fs.Rhoinf)
	fmt.Fprintf(w, "%12.6f\t= X Momentum\n", fs.Qinf[1])
	fmt.Fprintf(w, "%12.6f\t= Energy\n", fs.Einf)
	fmt.Fprintf(w, "%12.6f\t= Sound Speed\n", fs.Cinf)
	fmt.Fprintf(w, "[%s]\t= BCs, inflow %s\n", c.State.bcs.BCs, c.State.bcs.Inflow)
	fmt.Fprintf(w, "[%s]\t= State\n", c.State.Status())
	ranges := []struct {
		label   string
		compute func(Region) (utils.Matrix, error)
	}{
		{"Pressure", c.State.ComputePressure},
		{"Temperature", c.State.ComputeTemperature},
		{"U Velocity", c.State.ComputeUVelocity},
		{"V Velocity", c.State.ComputeVVelocity},
		{"Mach", c.State.ComputeMach},
	}
	for _, r := range ranges {
		// Zero density cells have no flow functions, skip the line
		if R, err := r.compute(AllCells); err == nil {
			fmt.Fprintf(w, "[%12.6e, %12.6e]\t= %s Range\n", R.Min(), R.Max(), r.label)
		}
	}
}

// MaxClosureResidual is the largest face vector imbalance over interior
// cells, a check on the metric arrays.
func (c *FV2D) MaxClosureResidual() float64 {
	return c.Metrics.MaxClosureResidual()
}
