package utils

import (
	"errors"
	"fmt"
)

var ErrShapeMismatch = errors.New("utils: array shape mismatch")

// ShapeError reports an array whose dimensions differ from the ones a
// component requires.
type ShapeError struct {
	Name               string
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("utils: array %q has shape %dx%d, expected %dx%d",
		e.Name, e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

// CheckDims returns a *ShapeError if M is not nr x nc.
func CheckDims(M Matrix, nr, nc int, name string) error {
	if M.M == nil {
		return &ShapeError{Name: name, WantRows: nr, WantCols: nc}
	}
	r, c := M.Dims()
	if r != nr || c != nc {
		return &ShapeError{Name: name, WantRows: nr, WantCols: nc, GotRows: r, GotCols: c}
	}
	return nil
}

// CheckSameDims verifies that every matrix has the shape of the first.
func CheckSameDims(names []string, Ms ...Matrix) error {
	if len(Ms) == 0 {
		return nil
	}
	nr, nc := Ms[0].Dims()
	for n := 1; n < len(Ms); n++ {
		name := fmt.Sprintf("#%d", n)
		if n < len(names) {
			name = names[n]
		}
		if err := CheckDims(Ms[n], nr, nc, name); err != nil {
			return err
		}
	}
	return nil
}
