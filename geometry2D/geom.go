package geometry2D

import (
	"math"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] - rhs.X[0], pt.X[1] - rhs.X[1]}}
}

func (pt Point) Plus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] + rhs.X[0], pt.X[1] + rhs.X[1]}}
}

func (pt Point) Scale(s float64) Point {
	return Point{X: [2]float64{s * pt.X[0], s * pt.X[1]}}
}

// Cross is the z component of pt x rhs.
func (pt Point) Cross(rhs Point) float64 {
	return pt.X[0]*rhs.X[1] - pt.X[1]*rhs.X[0]
}

func (pt Point) Norm() float64 {
	return math.Hypot(pt.X[0], pt.X[1])
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin, Box.XMax = Geometry[0].X, Geometry[0].X
	for _, point := range Geometry {
		Box.Add(point)
	}
	return Box
}

func (bb *BoundingBox) Add(point Point) {
	for i := 0; i < 2; i++ {
		if point.X[i] < bb.XMin[i] {
			bb.XMin[i] = point.X[i]
		}
		if point.X[i] > bb.XMax[i] {
			bb.XMax[i] = point.X[i]
		}
	}
}

/*
Quad is a logically structured quadrilateral:

	P01 ---- P11
	 |        |
	P00 ---- P10

The first index runs along xi, the second along eta.
*/
type Quad struct {
	P00, P10, P01, P11 Point
}

// Area is half the cross product of the two diagonals. It is positive when
// P00, P10, P11, P01 run counter-clockwise.
func (q Quad) Area() float64 {
	return 0.5 * q.P11.Minus(q.P00).Cross(q.P01.Minus(q.P10))
}

// Center is the bilinear average of the four corners.
func (q Quad) Center() Point {
	return q.P00.Plus(q.P10).Plus(q.P01).Plus(q.P11).Scale(0.25)
}

// EdgeNormal returns the edge vector from a to b rotated clockwise by 90
// degrees, so its length equals the edge length and it points to the right
// of the direction of travel.
func EdgeNormal(a, b Point) Point {
	d := b.Minus(a)
	return Point{X: [2]float64{d.X[1], -d.X[0]}}
}

type PolyLine struct {
	Geometry []Point
}

func NewPolyLine(geom []Point) PolyLine {
	return PolyLine{Geometry: geom}
}

func (pl PolyLine) Length() (length float64) {
	for i := 1; i < len(pl.Geometry); i++ {
		length += pl.Geometry[i].Minus(pl.Geometry[i-1]).Norm()
	}
	return
}
