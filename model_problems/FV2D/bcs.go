package FV2D

import (
	"fmt"
	"strings"

	"github.com/notargets/fvgrid/types"
	"github.com/notargets/fvgrid/utils"
)

// InflowMode selects how an inflow ghost layer is filled.
type InflowMode uint8

const (
	// ZeroGradient copies the adjacent interior cells.
	ZeroGradient InflowMode = iota
	// FixedFreestream pins the ghost cells to the freestream state.
	FixedFreestream
)

var InflowModeNames = map[string]InflowMode{
	"":                 ZeroGradient,
	"zero_gradient":    ZeroGradient,
	"fixed_freestream": FixedFreestream,
}

func NewInflowMode(label string) (im InflowMode, err error) {
	var ok bool
	if im, ok = InflowModeNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown inflow mode [%s], must be zero_gradient or fixed_freestream", label)
	}
	return
}

func (im InflowMode) String() string {
	if im == FixedFreestream {
		return "fixed_freestream"
	}
	return "zero_gradient"
}

/*
BoundaryEnforcer overwrites the ghost ring of a cell-indexed conserved
field. The i edges are filled first across every j, then the j edges across
every i, so the j edges own the four corner cells.

	Inflow:   zero gradient copy, or freestream when Inflow is FixedFreestream
	Outflow:  zero gradient copy
	SlipWall: copy with the edge-normal momentum negated
	Farfield: freestream
*/
type BoundaryEnforcer struct {
	BCs    types.EdgeBCs
	Inflow InflowMode
}

func NewBoundaryEnforcer(bcs types.EdgeBCs, inflow InflowMode) *BoundaryEnforcer {
	return &BoundaryEnforcer{BCs: bcs, Inflow: inflow}
}

func DefaultBoundaryEnforcer() *BoundaryEnforcer {
	return NewBoundaryEnforcer(types.DefaultEdgeBCs, ZeroGradient)
}

// NeedsFreeStream reports whether any edge pins values to the freestream.
func (be *BoundaryEnforcer) NeedsFreeStream() bool {
	for _, bf := range be.BCs {
		if bf == types.BC_Far || (bf == types.BC_In && be.Inflow == FixedFreestream) {
			return true
		}
	}
	return false
}

// Apply fills the ghost ring of Q in place. fs may be nil unless
// NeedsFreeStream is true.
func (be *BoundaryEnforcer) Apply(Q [4]utils.Matrix, fs *FreeStream) (err error) {
	if be.NeedsFreeStream() && fs == nil {
		return ErrNoFreeStream
	}
	for _, e := range types.Edges {
		be.applyEdge(Q, e, fs)
	}
	return
}

func (be *BoundaryEnforcer) applyEdge(Q [4]utils.Matrix, e types.Edge, fs *FreeStream) {
	var (
		ncx, ncy = Q[0].Dims()
		bf       = be.BCs[e]
		nLine    = ncy
	)
	if e.Normal() == 1 {
		nLine = ncx
	}
	ghost, interior := ghostAndInterior(e, ncx, ncy)
	for k := 0; k < nLine; k++ {
		gi, gj, ii, ij := ghost, k, interior, k
		if e.Normal() == 1 {
			gi, gj, ii, ij = k, ghost, k, interior
		}
		switch {
		case bf == types.BC_Far, bf == types.BC_In && be.Inflow == FixedFreestream:
			for n := 0; n < 4; n++ {
				Q[n].Set(gi, gj, fs.Qinf[n])
			}
		case bf == types.BC_In, bf == types.BC_Out:
			for n := 0; n < 4; n++ {
				Q[n].Set(gi, gj, Q[n].At(ii, ij))
			}
		case bf == types.BC_Slip:
			normalMomentum := 1 + e.Normal()
			for n := 0; n < 4; n++ {
				val := Q[n].At(ii, ij)
				if n == normalMomentum {
					val = -val
				}
				Q[n].Set(gi, gj, val)
			}
		}
	}
}

// ghostAndInterior returns the ghost index on the edge's normal axis and
// the interior index next to it.
func ghostAndInterior(e types.Edge, ncx, ncy int) (ghost, interior int) {
	switch e {
	case types.IMin, types.JMin:
		return 0, 1
	case types.IMax:
		return ncx - 1, ncx - 2
	default:
		return ncy - 1, ncy - 2
	}
}
