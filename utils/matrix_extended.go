package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major array of float64 used for every node, cell,
// face and state field. Index (i, j) addresses row i, column j.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) DataP() []float64    { return m.M.RawMatrix().Data }
func (m Matrix) IsReadOnly() bool    { return m.readOnly }
func (m Matrix) Name() string        { return m.name }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP())
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	i, j = lim(i, nr), lim(j, nc)
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// SetRange fills rows [i1, i2] and columns [j1, j2] inclusive, negative
// indices count back from the end (-1 is the last row or column).
func (m Matrix) SetRange(i1, i2, j1, j2 int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	m.checkWritable()
	i1, i2, j1, j2 = limRange(i1, i2, j1, j2, nr, nc)
	for i := i1; i < i2; i++ {
		row := m.M.RawRowView(i)
		for j := j1; j < j2; j++ {
			row[j] = val
		}
	}
	return m
}

// SetBlock copies A into the receiver with A's (0,0) placed at (i0, j0).
func (m Matrix) SetBlock(i0, j0 int, A Matrix) Matrix { // Changes receiver
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	m.checkWritable()
	if i0 < 0 || j0 < 0 || i0+nrA > nr || j0+ncA > nc {
		err := fmt.Errorf("block of size %dx%d at (%d,%d) does not fit in %dx%d", nrA, ncA, i0, j0, nr, nc)
		panic(err)
	}
	for i := 0; i < nrA; i++ {
		copy(m.M.RawRowView(i0 + i)[j0:j0+ncA], A.M.RawRowView(i))
	}
	return m
}

func (m Matrix) Min() float64 { return floats.Min(m.DataP()) }
func (m Matrix) Max() float64 { return floats.Max(m.DataP()) }

// ArgMin returns the location of the smallest entry, ties resolve to the
// lowest row-major position.
func (m Matrix) ArgMin() (i, j int) {
	var (
		_, nc = m.Dims()
		ind   = floats.MinIdx(m.DataP())
	)
	return ind / nc, ind % nc
}

func (m Matrix) String() string {
	return fmt.Sprintf("%s = \n%v", m.Name(), mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.IsReadOnly() {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.Name())
		panic(err)
	}
}

func lim(i, imax int) int {
	if i < 0 {
		return imax + i // Support indexing from end, -1 is imax
	}
	return i
}

func limLoop(ib, ie, imax int) (ibeg, iend int) {
	if ib < 0 {
		ibeg = imax + ib
	} else {
		ibeg = ib
	}
	if ie < 0 {
		iend = imax + ie + 1 // Support indexing from end, -1 is imax
	} else {
		iend = ie + 1
	}
	return
}

func limRange(i1, i2, j1, j2, nr, nc int) (ii1, ii2, jj1, jj2 int) {
	ii1, ii2 = limLoop(i1, i2, nr)
	jj1, jj2 = limLoop(j1, j2, nc)
	return ii1, ii2, jj1, jj2
}
