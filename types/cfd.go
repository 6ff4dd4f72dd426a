package types

import (
	"fmt"
	"strings"
)

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_In
	BC_Out
	BC_Slip
	BC_Far
)

func (bf BCFLAG) String() string {
	switch bf {
	case BC_In:
		return "Inflow"
	case BC_Out:
		return "Outflow"
	case BC_Slip:
		return "SlipWall"
	case BC_Far:
		return "Farfield"
	}
	return "None"
}

var BCNameMap = map[string]BCFLAG{
	"inflow":        BC_In,
	"in":            BC_In,
	"inlet":         BC_In,
	"out":           BC_Out,
	"outflow":       BC_Out,
	"outlet":        BC_Out,
	"exit":          BC_Out,
	"slip":          BC_Slip,
	"wall":          BC_Slip,
	"slip_wall":     BC_Slip,
	"inviscid_wall": BC_Slip,
	"far":           BC_Far,
	"farfield":      BC_Far,
	"freestream":    BC_Far,
}

// NewBCFLAG parses a boundary name, case and surrounding space are ignored.
func NewBCFLAG(name string) (bf BCFLAG, err error) {
	var ok bool
	if bf, ok = BCNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown boundary condition name: [%s]", name)
	}
	return
}

// Edge names one of the four logical boundaries of a structured lattice.
type Edge uint8

const (
	IMin Edge = iota // first ghost index along i
	IMax             // last ghost index along i
	JMin             // first ghost index along j
	JMax             // last ghost index along j
)

var Edges = [4]Edge{IMin, IMax, JMin, JMax}

var EdgeNameMap = map[string]Edge{
	"imin": IMin,
	"imax": IMax,
	"jmin": JMin,
	"jmax": JMax,
}

func NewEdge(name string) (e Edge, err error) {
	var ok bool
	if e, ok = EdgeNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown edge name: [%s], must be one of IMin, IMax, JMin, JMax", name)
	}
	return
}

// Normal is the logical axis crossing the edge, 0 for i and 1 for j.
func (e Edge) Normal() int {
	if e == JMin || e == JMax {
		return 1
	}
	return 0
}

func (e Edge) String() string {
	return [...]string{"IMin", "IMax", "JMin", "JMax"}[e]
}

// EdgeBCs assigns a boundary condition to each logical edge, in the order
// IMin, IMax, JMin, JMax.
type EdgeBCs [4]BCFLAG

// DefaultEdgeBCs is a supersonic channel: inflow at IMin, outflow at IMax,
// slip walls along j.
var DefaultEdgeBCs = EdgeBCs{BC_In, BC_Out, BC_Slip, BC_Slip}

// NewEdgeBCs overlays named assignments, e.g. {"JMax": "farfield"}, onto
// DefaultEdgeBCs.
func NewEdgeBCs(names map[string]string) (eb EdgeBCs, err error) {
	eb = DefaultEdgeBCs
	for edgeName, bcName := range names {
		var (
			e  Edge
			bf BCFLAG
		)
		if e, err = NewEdge(edgeName); err != nil {
			return
		}
		if bf, err = NewBCFLAG(bcName); err != nil {
			return
		}
		eb[e] = bf
	}
	return
}

func (eb EdgeBCs) String() string {
	var sb strings.Builder
	for _, e := range Edges {
		if e != IMin {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", e, eb[e])
	}
	return sb.String()
}
