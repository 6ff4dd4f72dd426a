package grid2D

import (
	"math"

	"github.com/notargets/fvgrid/geometry2D"
	"github.com/notargets/fvgrid/utils"
)

/*
Metrics holds the cell geometry of a (halo extended) node lattice of
Nx x Ny nodes. Cell (i,j) is bounded by nodes (i,j), (i+1,j), (i,j+1) and
(i+1,j+1), giving Ncx x Ncy = (Nx-1) x (Ny-1) cells.

Face area vectors are stored for the faces whose two neighbour cells exist
and whose cell strip lies inside the one-cell inset band:

	Xi faces, constant i node line between cells (i-1,j) and (i,j):
		XiAreaX, XiAreaY are (Ncx-1) x (Ncy-2), entry (a,b) is node line
		i = a+1 on cell row j = b+1. The vector is the edge (i,j)->(i,j+1)
		turned clockwise, (dy, -dx), pointing toward increasing i.
	Eta faces, constant j node line between cells (i,j-1) and (i,j):
		EtaAreaX, EtaAreaY are (Ncx-2) x (Ncy-1), entry (a,b) is cell
		column i = a+1 on node line j = b+1. The vector is (-dy, dx) of the
		edge (i,j)->(i+1,j), pointing toward increasing j.
*/
type Metrics struct {
	Ncx, Ncy           int
	XCenter, YCenter   utils.Matrix
	Volume             utils.Matrix
	XiAreaX, XiAreaY   utils.Matrix
	EtaAreaX, EtaAreaY utils.Matrix
}

// ComputeMetrics derives cell centers, volumes and face area vectors from
// g. Every array is freshly allocated, nothing is cached between calls. A
// non-positive volume anywhere returns a *DegenerateCellError.
func ComputeMetrics(g *Grid) (m *Metrics, err error) {
	if g.Halo < 1 {
		return nil, &InvalidGridError{Nx: g.Nx, Ny: g.Ny,
			Reason: "metrics need a halo extended grid, extend the grid first"}
	}
	if g.Nx < 4 || g.Ny < 4 {
		return nil, &InvalidGridError{Nx: g.Nx, Ny: g.Ny,
			Reason: "metrics need at least 4 nodes per direction, extend the grid first"}
	}
	ncx, ncy := g.CellDims()
	m = &Metrics{
		Ncx:      ncx,
		Ncy:      ncy,
		XCenter:  utils.NewMatrix(ncx, ncy),
		YCenter:  utils.NewMatrix(ncx, ncy),
		Volume:   utils.NewMatrix(ncx, ncy),
		XiAreaX:  utils.NewMatrix(ncx-1, ncy-2),
		XiAreaY:  utils.NewMatrix(ncx-1, ncy-2),
		EtaAreaX: utils.NewMatrix(ncx-2, ncy-1),
		EtaAreaY: utils.NewMatrix(ncx-2, ncy-1),
	}
	if err = m.cellPass(g, utils.NewPartitionMap(0, ncx)); err != nil {
		return nil, err
	}
	for a := 0; a < ncx-1; a++ {
		for b := 0; b < ncy-2; b++ {
			i, j := a+1, b+1
			s := geometry2D.EdgeNormal(g.Node(i, j), g.Node(i, j+1))
			m.XiAreaX.Set(a, b, s.X[0])
			m.XiAreaY.Set(a, b, s.X[1])
		}
	}
	for a := 0; a < ncx-2; a++ {
		for b := 0; b < ncy-1; b++ {
			i, j := a+1, b+1
			s := geometry2D.EdgeNormal(g.Node(i+1, j), g.Node(i, j))
			m.EtaAreaX.Set(a, b, s.X[0])
			m.EtaAreaY.Set(a, b, s.X[1])
		}
	}
	for _, A := range []*utils.Matrix{&m.XCenter, &m.YCenter, &m.Volume,
		&m.XiAreaX, &m.XiAreaY, &m.EtaAreaX, &m.EtaAreaY} {
		A.SetReadOnly()
	}
	return
}

// cellPass fills centers and volumes with the i range split across
// buckets. The degenerate cell reported is the first in (i, j) order
// whatever the bucket scheduling.
func (m *Metrics) cellPass(g *Grid, pm *utils.PartitionMap) error {
	bad := make([]*DegenerateCellError, pm.ParallelDegree)
	pm.ForEachBucket(func(bn, iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < m.Ncy; j++ {
				q := g.Quad(i, j)
				c := q.Center()
				m.XCenter.Set(i, j, c.X[0])
				m.YCenter.Set(i, j, c.X[1])
				vol := q.Area()
				if !(vol > 0) {
					bad[bn] = &DegenerateCellError{I: i, J: j, Volume: vol}
					return
				}
				m.Volume.Set(i, j, vol)
			}
		}
	})
	for _, e := range bad {
		if e != nil {
			return e
		}
	}
	return nil
}

// XiArea is the area vector of the xi face on node line i, cell row j,
// for 1 <= i <= Ncx-1 and 1 <= j <= Ncy-2.
func (m *Metrics) XiArea(i, j int) geometry2D.Point {
	return geometry2D.NewPoint(m.XiAreaX.At(i-1, j-1), m.XiAreaY.At(i-1, j-1))
}

// EtaArea is the area vector of the eta face on cell column i, node line
// j, for 1 <= i <= Ncx-2 and 1 <= j <= Ncy-1.
func (m *Metrics) EtaArea(i, j int) geometry2D.Point {
	return geometry2D.NewPoint(m.EtaAreaX.At(i-1, j-1), m.EtaAreaY.At(i-1, j-1))
}

// ClosureResidual sums the outward face vectors of interior cell (i,j).
// It vanishes for any closed quadrilateral.
func (m *Metrics) ClosureResidual(i, j int) geometry2D.Point {
	return m.XiArea(i+1, j).Minus(m.XiArea(i, j)).
		Plus(m.EtaArea(i, j+1)).Minus(m.EtaArea(i, j))
}

// MaxClosureResidual is the largest closure residual magnitude over the
// interior cells.
func (m *Metrics) MaxClosureResidual() (maxRes float64) {
	for i := 1; i < m.Ncx-1; i++ {
		for j := 1; j < m.Ncy-1; j++ {
			maxRes = math.Max(maxRes, m.ClosureResidual(i, j).Norm())
		}
	}
	return
}

// TotalInteriorVolume sums the volume of every cell outside the ghost ring.
func (m *Metrics) TotalInteriorVolume() (vol float64) {
	for i := 1; i < m.Ncx-1; i++ {
		for j := 1; j < m.Ncy-1; j++ {
			vol += m.Volume.At(i, j)
		}
	}
	return
}

// FaceAreaMagnitude returns |S| for a pair of face component arrays.
func FaceAreaMagnitude(SX, SY utils.Matrix) (R utils.Matrix) {
	var (
		nr, nc = SX.Dims()
	)
	R = utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.Set(i, j, math.Hypot(SX.At(i, j), SY.At(i, j)))
		}
	}
	return
}
