package geometry2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuad(t *testing.T) {
	{ // Unit square, counter-clockwise
		q := Quad{
			P00: NewPoint(0, 0), P10: NewPoint(1, 0),
			P01: NewPoint(0, 1), P11: NewPoint(1, 1),
		}
		assert.Equal(t, 1.0, q.Area())
		assert.Equal(t, NewPoint(0.5, 0.5), q.Center())
	}
	{ // Mirrored square has negative area
		q := Quad{
			P00: NewPoint(0, 0), P10: NewPoint(-1, 0),
			P01: NewPoint(0, 1), P11: NewPoint(-1, 1),
		}
		assert.Equal(t, -1.0, q.Area())
	}
	{ // Trapezoid
		q := Quad{
			P00: NewPoint(0, 0), P10: NewPoint(4, 0),
			P01: NewPoint(1, 2), P11: NewPoint(3, 2),
		}
		assert.InDelta(t, 6.0, q.Area(), 1e-14)
	}
}

func TestEdgeNormal(t *testing.T) {
	// Travelling +y, the right hand side is +x
	assert.Equal(t, NewPoint(1, 0), EdgeNormal(NewPoint(0, 0), NewPoint(0, 1)))
	// Travelling +x, the right hand side is -y
	assert.Equal(t, NewPoint(0, -2), EdgeNormal(NewPoint(0, 0), NewPoint(2, 0)))
	assert.Equal(t, 5., EdgeNormal(NewPoint(0, 0), NewPoint(3, 4)).Norm())
}

func TestBoundingBox(t *testing.T) {
	assert.Nil(t, NewBoundingBox(nil))
	bb := NewBoundingBox([]Point{NewPoint(1, 2), NewPoint(-1, 5), NewPoint(3, 0)})
	assert.Equal(t, [2]float64{-1, 0}, bb.XMin)
	assert.Equal(t, [2]float64{3, 5}, bb.XMax)
	bb.Add(NewPoint(-10, 10))
	bb.Add(NewPoint(0, 1))
	assert.Equal(t, [2]float64{-10, 0}, bb.XMin)
	assert.Equal(t, [2]float64{3, 10}, bb.XMax)
}

func TestPolyLine(t *testing.T) {
	pl := NewPolyLine([]Point{NewPoint(0, 0), NewPoint(3, 4), NewPoint(3, 5)})
	assert.Equal(t, 6., pl.Length())
	assert.Equal(t, 0., NewPolyLine(nil).Length())
}
