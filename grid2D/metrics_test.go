package grid2D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fvgrid/utils"
)

func TestMetricsUnitSquares(t *testing.T) {
	g, err := Extend(makeGrid(t, 4, 3, cartesian(1, 1)))
	require.NoError(t, err)
	m, err := ComputeMetrics(g)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Ncx)
	assert.Equal(t, 4, m.Ncy)
	{ // Shapes
		nr, nc := m.Volume.Dims()
		assert.Equal(t, [2]int{5, 4}, [2]int{nr, nc})
		nr, nc = m.XCenter.Dims()
		assert.Equal(t, [2]int{5, 4}, [2]int{nr, nc})
		nr, nc = m.XiAreaX.Dims()
		assert.Equal(t, [2]int{g.Nx - 2, g.Ny - 3}, [2]int{nr, nc})
		nr, nc = m.EtaAreaY.Dims()
		assert.Equal(t, [2]int{g.Nx - 3, g.Ny - 2}, [2]int{nr, nc})
	}
	{ // Every cell is a unit square, the volume is exact
		for i := 0; i < m.Ncx; i++ {
			for j := 0; j < m.Ncy; j++ {
				assert.Equal(t, 1.0, m.Volume.At(i, j))
				assert.Equal(t, float64(i)-0.5, m.XCenter.At(i, j))
				assert.Equal(t, float64(j)-0.5, m.YCenter.At(i, j))
			}
		}
		// Original lattice has 3x2 cells
		assert.Equal(t, 6., m.TotalInteriorVolume())
	}
	{ // Xi faces point along +x, eta faces along +y
		for i := 1; i <= m.Ncx-1; i++ {
			for j := 1; j <= m.Ncy-2; j++ {
				s := m.XiArea(i, j)
				assert.Equal(t, [2]float64{1, 0}, s.X)
			}
		}
		for i := 1; i <= m.Ncx-2; i++ {
			for j := 1; j <= m.Ncy-1; j++ {
				s := m.EtaArea(i, j)
				assert.Equal(t, [2]float64{0, 1}, s.X)
			}
		}
		mag := FaceAreaMagnitude(m.XiAreaX, m.XiAreaY)
		assert.Equal(t, 1., mag.Min())
		assert.Equal(t, 1., mag.Max())
	}
	{ // Derived arrays are read only
		assert.Panics(t, func() { m.Volume.Set(0, 0, 2) })
	}
}

func TestMetricsStretched(t *testing.T) {
	g, err := Extend(makeGrid(t, 3, 3, cartesian(2, 0.5)))
	require.NoError(t, err)
	m, err := ComputeMetrics(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Volume.At(1, 1))
	// Xi face length is the eta spacing and vice versa
	assert.Equal(t, [2]float64{0.5, 0}, m.XiArea(1, 1).X)
	assert.Equal(t, [2]float64{0, 2}, m.EtaArea(1, 1).X)
}

func TestMetricsClosure(t *testing.T) {
	g, err := Extend(makeGrid(t, 9, 5, ramp))
	require.NoError(t, err)
	m, err := ComputeMetrics(g)
	require.NoError(t, err)
	for i := 1; i < m.Ncx-1; i++ {
		for j := 1; j < m.Ncy-1; j++ {
			r := m.ClosureResidual(i, j)
			assert.InDelta(t, 0, r.X[0], 1e-14)
			assert.InDelta(t, 0, r.X[1], 1e-14)
			assert.Greater(t, m.Volume.At(i, j), 0.)
		}
	}
	assert.Less(t, m.MaxClosureResidual(), 1e-13)
	// The ramp lattice covers x in [0,4], the lower wall is straight from x=1.5
	// to x=4 rising 0.2 per unit, the top is flat at y=2.
	expected := 4*2. - 0.5*2.5*0.5
	assert.InDelta(t, expected, m.TotalInteriorVolume(), 1e-12)
}

func TestMetricsRecompute(t *testing.T) {
	g, err := Extend(makeGrid(t, 4, 4, ramp))
	require.NoError(t, err)
	m1, err := ComputeMetrics(g)
	require.NoError(t, err)
	m2, err := ComputeMetrics(g)
	require.NoError(t, err)
	assert.Equal(t, m1.Volume.DataP(), m2.Volume.DataP())
	assert.NotSame(t, m1.Volume.M, m2.Volume.M)
}

func TestMetricsDegenerate(t *testing.T) {
	{ // Left handed lattice, every cell is inverted
		g, err := Extend(makeGrid(t, 3, 3, cartesian(-1, 1)))
		require.NoError(t, err)
		_, err = ComputeMetrics(g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDegenerateCell))
		var dce *DegenerateCellError
		require.True(t, errors.As(err, &dce))
		assert.Equal(t, 0, dce.I)
		assert.Equal(t, 0, dce.J)
		assert.Equal(t, -1., dce.Volume)
	}
	{ // One collapsed interior cell
		g, err := Extend(makeGrid(t, 4, 4, func(i, j int) (float64, float64) {
			x, y := float64(i), float64(j)
			if i == 2 && j == 2 {
				x, y = 1, 1 // folds onto node (1,1)
			}
			return x, y
		}))
		require.NoError(t, err)
		_, err = ComputeMetrics(g)
		var dce *DegenerateCellError
		require.True(t, errors.As(err, &dce))
		assert.LessOrEqual(t, dce.Volume, 0.)
	}
	{ // Not extended enough
		_, err := ComputeMetrics(makeGrid(t, 3, 5, cartesian(1, 1)))
		assert.True(t, errors.Is(err, ErrInvalidGrid))
	}
	{ // Large enough but without a ghost layer
		_, err := ComputeMetrics(makeGrid(t, 4, 4, cartesian(1, 1)))
		var ige *InvalidGridError
		require.True(t, errors.As(err, &ige))
		assert.Contains(t, ige.Reason, "halo")
	}
}

func TestMetricsCellPassPartitions(t *testing.T) {
	g, err := Extend(makeGrid(t, 13, 6, ramp))
	require.NoError(t, err)
	ref, err := ComputeMetrics(g)
	require.NoError(t, err)
	for _, np := range []int{1, 2, 5, 14, 40} {
		m := &Metrics{Ncx: ref.Ncx, Ncy: ref.Ncy,
			XCenter: utils.NewMatrix(ref.Ncx, ref.Ncy),
			YCenter: utils.NewMatrix(ref.Ncx, ref.Ncy),
			Volume:  utils.NewMatrix(ref.Ncx, ref.Ncy),
		}
		require.NoError(t, m.cellPass(g, utils.NewPartitionMap(np, ref.Ncx)))
		assert.Equal(t, ref.Volume.DataP(), m.Volume.DataP())
		assert.Equal(t, ref.XCenter.DataP(), m.XCenter.DataP())
		assert.Equal(t, ref.YCenter.DataP(), m.YCenter.DataP())
	}
}
