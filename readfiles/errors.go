package readfiles

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader  = errors.New("readfiles: malformed grid header")
	ErrDataSizeMismatch = errors.New("readfiles: grid data size mismatch")
	ErrMalformedData    = errors.New("readfiles: malformed grid data")
)

type MalformedHeaderError struct {
	Header string
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("readfiles: malformed grid header [%s]: %s", e.Header, e.Reason)
}

func (e *MalformedHeaderError) Is(target error) bool { return target == ErrMalformedHeader }

// DataSizeMismatchError reports a coordinate count that disagrees with the
// header. Dangling is set when an x value had no matching y.
type DataSizeMismatchError struct {
	Nx, Ny   int
	Expected int
	Actual   int
	Dangling bool
}

func (e *DataSizeMismatchError) Error() string {
	msg := fmt.Sprintf("readfiles: read %d coordinate pairs, header i=%d, j=%d expects %d",
		e.Actual, e.Nx, e.Ny, e.Expected)
	if e.Dangling {
		msg += " (trailing unpaired value)"
	}
	return msg
}

func (e *DataSizeMismatchError) Is(target error) bool { return target == ErrDataSizeMismatch }
