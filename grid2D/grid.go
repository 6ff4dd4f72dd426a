package grid2D

import (
	"fmt"

	"github.com/notargets/fvgrid/geometry2D"
	"github.com/notargets/fvgrid/utils"
)

/*
Grid is a structured node lattice. X and Y are Nx x Ny, row index i runs
along the xi direction and column index j along eta. Halo counts the ghost
layers wrapped around the original nodes, the original data lives in
[Halo, Nx-Halo) x [Halo, Ny-Halo).

The coordinate arrays are read only, any transformation returns a new Grid.
*/
type Grid struct {
	Nx, Ny int
	Halo   int
	X, Y   utils.Matrix
}

// NewGrid copies X and Y into a new read only Grid. Both arrays must have
// the same shape with at least two nodes in each direction.
func NewGrid(X, Y utils.Matrix) (g *Grid, err error) {
	var (
		nx, ny = X.Dims()
	)
	if err = utils.CheckDims(Y, nx, ny, "Y"); err != nil {
		return nil, &InvalidGridError{Nx: nx, Ny: ny, Reason: err.Error()}
	}
	if nx < 2 || ny < 2 {
		return nil, &InvalidGridError{Nx: nx, Ny: ny, Reason: "need at least 2 nodes per direction"}
	}
	g = newGrid(X.Copy(), Y.Copy(), 0)
	return
}

func newGrid(X, Y utils.Matrix, halo int) (g *Grid) {
	nx, ny := X.Dims()
	g = &Grid{Nx: nx, Ny: ny, Halo: halo}
	g.X = X.SetReadOnly("X")
	g.Y = Y.SetReadOnly("Y")
	return
}

func (g *Grid) Node(i, j int) geometry2D.Point {
	return geometry2D.NewPoint(g.X.At(i, j), g.Y.At(i, j))
}

// Quad returns the cell bounded by nodes (i,j) and (i+1,j+1).
func (g *Grid) Quad(i, j int) geometry2D.Quad {
	return geometry2D.Quad{
		P00: g.Node(i, j), P10: g.Node(i+1, j),
		P01: g.Node(i, j+1), P11: g.Node(i+1, j+1),
	}
}

// CellDims is the shape of every cell-indexed array built on this grid.
func (g *Grid) CellDims() (ncx, ncy int) {
	return g.Nx - 1, g.Ny - 1
}

func (g *Grid) BoundingBox() (bb *geometry2D.BoundingBox) {
	bb = geometry2D.NewBoundingBox([]geometry2D.Point{g.Node(0, 0)})
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			bb.Add(g.Node(i, j))
		}
	}
	return
}

// PolyLines returns the grid lines of the lattice: rows[j] runs along i at
// fixed j, cols[i] runs along j at fixed i. rows[0] and rows[Ny-1] are the
// JMin and JMax boundaries, cols[0] and cols[Nx-1] the IMin and IMax ones.
func (g *Grid) PolyLines() (rows, cols []geometry2D.PolyLine) {
	rows = make([]geometry2D.PolyLine, g.Ny)
	for j := range rows {
		pts := make([]geometry2D.Point, g.Nx)
		for i := range pts {
			pts[i] = g.Node(i, j)
		}
		rows[j] = geometry2D.NewPolyLine(pts)
	}
	cols = make([]geometry2D.PolyLine, g.Nx)
	for i := range cols {
		pts := make([]geometry2D.Point, g.Ny)
		for j := range pts {
			pts[j] = g.Node(i, j)
		}
		cols[i] = geometry2D.NewPolyLine(pts)
	}
	return
}

func (g *Grid) String() string {
	bb := g.BoundingBox()
	return fmt.Sprintf("Grid %dx%d (halo %d), x in [%g, %g], y in [%g, %g]",
		g.Nx, g.Ny, g.Halo, bb.XMin[0], bb.XMax[0], bb.XMin[1], bb.XMax[1])
}
