package grid2D

import (
	"github.com/notargets/fvgrid/utils"
)

/*
Extend returns a copy of g wrapped in one layer of ghost nodes, two more
nodes in each direction. The input is not modified.

Ghost nodes continue the grid lines linearly, ghost = 2*edge - next_interior.
The j = 0 and j = Ny'-1 ghost columns are filled first along the original
rows, then the i = 0 and i = Nx'-1 ghost rows are filled across the full
extended width, so the four corners extrapolate the ghost columns.
*/
func Extend(g *Grid) (gg *Grid, err error) {
	var (
		nx, ny = g.Nx, g.Ny
	)
	if nx < 3 || ny < 3 {
		return nil, &InvalidGridError{Nx: nx, Ny: ny,
			Reason: "halo extension needs at least 3 nodes per direction"}
	}
	X, Y := extendCoordinate(g.X), extendCoordinate(g.Y)
	gg = newGrid(X, Y, g.Halo+1)
	return
}

func extendCoordinate(A utils.Matrix) (R utils.Matrix) {
	var (
		nx, ny = A.Dims()
		ex     = utils.Extrapolate
	)
	R = utils.NewMatrix(nx+2, ny+2)
	R.SetBlock(1, 1, A)
	// Edges along j, original rows only
	for i := 0; i < nx; i++ {
		R.Set(i+1, 0, ex(A.At(i, 0), A.At(i, 1)))
		R.Set(i+1, ny+1, ex(A.At(i, ny-1), A.At(i, ny-2)))
	}
	// Edges along i, full extended width including the corners
	for j := 0; j < ny+2; j++ {
		R.Set(0, j, ex(R.At(1, j), R.At(2, j)))
		R.Set(nx+1, j, ex(R.At(nx, j), R.At(nx-1, j)))
	}
	return
}
