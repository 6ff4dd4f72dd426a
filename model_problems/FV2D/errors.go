package FV2D

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero    = errors.New("FV2D: division by zero density")
	ErrNonPhysicalState  = errors.New("FV2D: non-physical state")
	ErrInvalidTransition = errors.New("FV2D: invalid state transition")
	ErrNoFreeStream      = errors.New("FV2D: boundary condition needs freestream conditions")
	ErrInvalidGas        = errors.New("FV2D: invalid gas properties")
)

type CellIndex struct {
	I, J int
}

// DivisionByZeroError lists every cell where a primitive could not be
// extracted because the density is zero. Those cells hold NaN in the
// returned field, all other cells are valid.
type DivisionByZeroError struct {
	Function FlowFunction
	Cells    []CellIndex
}

func (e *DivisionByZeroError) Error() string {
	first := e.Cells[0]
	return fmt.Sprintf("FV2D: zero density in %d cell(s) computing %s, first at (%d,%d)",
		len(e.Cells), e.Function, first.I, first.J)
}

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

type NonPhysicalStateError struct {
	CellIndex
	Rho, P float64
}

func (e *NonPhysicalStateError) Error() string {
	return fmt.Sprintf("FV2D: non-physical state in cell (%d,%d): rho = %g, p = %g",
		e.I, e.J, e.Rho, e.P)
}

func (e *NonPhysicalStateError) Is(target error) bool { return target == ErrNonPhysicalState }
