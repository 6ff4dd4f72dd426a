package grid2D

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned for a node lattice that is too small or
	// not rectangular.
	ErrInvalidGrid = errors.New("grid2D: invalid grid")
	// ErrDegenerateCell is returned when a cell has non-positive volume.
	ErrDegenerateCell = errors.New("grid2D: degenerate cell")
)

type InvalidGridError struct {
	Nx, Ny int
	Reason string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("grid2D: invalid grid %dx%d: %s", e.Nx, e.Ny, e.Reason)
}

func (e *InvalidGridError) Is(target error) bool { return target == ErrInvalidGrid }

// DegenerateCellError carries the first inverted or collapsed cell found,
// indexed on the lattice the metrics were computed on.
type DegenerateCellError struct {
	I, J   int
	Volume float64
}

func (e *DegenerateCellError) Error() string {
	return fmt.Sprintf("grid2D: degenerate cell (%d,%d) with volume %g", e.I, e.J, e.Volume)
}

func (e *DegenerateCellError) Is(target error) bool { return target == ErrDegenerateCell }
