package FV2D

import (
	"fmt"
	"math"

	"github.com/notargets/fvgrid/grid2D"
	"github.com/notargets/fvgrid/utils"
)

type Status uint8

const (
	Uninitialized Status = iota
	InteriorFilled
	BoundaryApplied
)

func (s Status) String() string {
	return [...]string{"Uninitialized", "InteriorFilled", "BoundaryApplied"}[s]
}

type Region uint8

const (
	AllCells Region = iota
	InteriorCells
)

/*
ConservedState is the cell-indexed field Q = (rho, rhoU, rhoV, E) on a
halo extended lattice of Ncx x Ncy cells. Cells with index 0 or the last
index on either axis form the ghost ring, the rest are interior.

Lifecycle: Uninitialized -> InteriorFilled (SetInitialConditions or
PackToQ) -> BoundaryApplied (ApplyBoundaryConditions, repeatable).
*/
type ConservedState struct {
	Ncx, Ncy int
	Gas      GasProperties
	FS       *FreeStream
	Q        [4]utils.Matrix
	bcs      *BoundaryEnforcer
	status   Status
}

// NewConservedState allocates a zero field. A nil enforcer selects the
// default channel boundaries with zero gradient inflow.
func NewConservedState(ncx, ncy int, gas GasProperties, bcs *BoundaryEnforcer) (cs *ConservedState, err error) {
	if ncx < 3 || ncy < 3 {
		return nil, fmt.Errorf("%w: need at least 3x3 cells for a ghost ring around an interior, have %dx%d",
			utils.ErrShapeMismatch, ncx, ncy)
	}
	if err = gas.Validate(); err != nil {
		return
	}
	if bcs == nil {
		bcs = DefaultBoundaryEnforcer()
	}
	cs = &ConservedState{
		Ncx: ncx, Ncy: ncy,
		Gas: gas,
		bcs: bcs,
	}
	for n := 0; n < 4; n++ {
		cs.Q[n] = utils.NewMatrix(ncx, ncy)
	}
	return
}

// NewConservedStateFromMetrics sizes the field to the cells of m.
func NewConservedStateFromMetrics(m *grid2D.Metrics, gas GasProperties, bcs *BoundaryEnforcer) (*ConservedState, error) {
	return NewConservedState(m.Ncx, m.Ncy, gas, bcs)
}

func (cs *ConservedState) Status() Status { return cs.status }

func (cs *ConservedState) BoundaryEnforcer() *BoundaryEnforcer { return cs.bcs }

// SetInitialConditions writes the freestream built from P0, T0 and M0 into
// every interior cell and zeroes the ghost ring.
func (cs *ConservedState) SetInitialConditions(P0, T0, M0 float64) (err error) {
	var fs *FreeStream
	if fs, err = NewFreeStream(cs.Gas, P0, T0, M0); err != nil {
		return
	}
	cs.FS = fs
	for n := 0; n < 4; n++ {
		cs.Q[n].SetRange(0, -1, 0, -1, 0)
		cs.Q[n].SetRange(1, -2, 1, -2, fs.Qinf[n])
	}
	cs.status = InteriorFilled
	return
}

// PackToQ converts cell-shaped primitive fields into the interior of Q.
// The ghost ring is zeroed and the freestream, if any, is kept.
func (cs *ConservedState) PackToQ(P, U, V, T utils.Matrix) (err error) {
	if err = utils.CheckDims(P, cs.Ncx, cs.Ncy, "P"); err != nil {
		return
	}
	if err = utils.CheckSameDims([]string{"P", "U", "V", "T"}, P, U, V, T); err != nil {
		return
	}
	var Qnew [4]utils.Matrix
	for n := 0; n < 4; n++ {
		Qnew[n] = utils.NewMatrix(cs.Ncx, cs.Ncy)
	}
	for i := 1; i < cs.Ncx-1; i++ {
		for j := 1; j < cs.Ncy-1; j++ {
			p, t := P.At(i, j), T.At(i, j)
			if !(p > 0) || !(t > 0) {
				return &NonPhysicalStateError{CellIndex: CellIndex{i, j}, P: p, Rho: math.NaN()}
			}
			q := cs.Gas.PrimitiveToConserved(p, U.At(i, j), V.At(i, j), t)
			for n := 0; n < 4; n++ {
				Qnew[n].Set(i, j, q[n])
			}
		}
	}
	cs.Q = Qnew
	cs.status = InteriorFilled
	return
}

// ApplyBoundaryConditions fills the ghost ring from the interior. Calling
// it again without touching the interior leaves the field unchanged.
func (cs *ConservedState) ApplyBoundaryConditions() (err error) {
	if cs.status == Uninitialized {
		return fmt.Errorf("%w: boundary conditions applied while %s", ErrInvalidTransition, cs.status)
	}
	if err = cs.bcs.Apply(cs.Q, cs.FS); err != nil {
		return
	}
	cs.status = BoundaryApplied
	return
}

// Fields returns read only copies of the four conserved components.
func (cs *ConservedState) Fields() (Q [4]utils.Matrix) {
	names := []string{"rho", "rhoU", "rhoV", "E"}
	for n := 0; n < 4; n++ {
		Q[n] = cs.Q[n].Copy()
		Q[n].SetReadOnly(names[n])
	}
	return
}

func (cs *ConservedState) regionBounds(region Region) (i0, i1, j0, j1 int) {
	if region == InteriorCells {
		return 1, cs.Ncx - 1, 1, cs.Ncy - 1
	}
	return 0, cs.Ncx, 0, cs.Ncy
}

// FlowField evaluates pf cell by cell over region, cells outside region
// are left at zero. Zero density cells become NaN and are listed in a
// *DivisionByZeroError, the rest of the field is still returned.
func (cs *ConservedState) FlowField(pf FlowFunction, region Region) (R utils.Matrix, err error) {
	var (
		i0, i1, j0, j1 = cs.regionBounds(region)
		zeroCells      []CellIndex
	)
	R = utils.NewMatrix(cs.Ncx, cs.Ncy)
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			f, ok := cs.Gas.GetFlowFunctionBase(
				cs.Q[0].At(i, j), cs.Q[1].At(i, j), cs.Q[2].At(i, j), cs.Q[3].At(i, j), pf)
			if !ok {
				zeroCells = append(zeroCells, CellIndex{i, j})
			}
			R.Set(i, j, f)
		}
	}
	if len(zeroCells) != 0 {
		err = &DivisionByZeroError{Function: pf, Cells: zeroCells}
	}
	return
}

func (cs *ConservedState) ComputePressure(region Region) (utils.Matrix, error) {
	return cs.FlowField(StaticPressure, region)
}

func (cs *ConservedState) ComputeTemperature(region Region) (utils.Matrix, error) {
	return cs.FlowField(Temperature, region)
}

func (cs *ConservedState) ComputeUVelocity(region Region) (utils.Matrix, error) {
	return cs.FlowField(XVelocity, region)
}

func (cs *ConservedState) ComputeVVelocity(region Region) (utils.Matrix, error) {
	return cs.FlowField(YVelocity, region)
}

func (cs *ConservedState) ComputeMach(region Region) (utils.Matrix, error) {
	return cs.FlowField(Mach, region)
}

// ValidateInterior checks rho > 0 and p > 0 on every interior cell.
func (cs *ConservedState) ValidateInterior() error {
	for i := 1; i < cs.Ncx-1; i++ {
		for j := 1; j < cs.Ncy-1; j++ {
			rho := cs.Q[0].At(i, j)
			p, _ := cs.Gas.GetFlowFunctionBase(rho, cs.Q[1].At(i, j), cs.Q[2].At(i, j), cs.Q[3].At(i, j), StaticPressure)
			if !(rho > 0) || !(p > 0) {
				return &NonPhysicalStateError{CellIndex: CellIndex{i, j}, Rho: rho, P: p}
			}
		}
	}
	return nil
}
