package FV2D

import (
	"fmt"
	"math"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Mach",
		"Static Pressure",
		"Temperature",
		"Sound Speed",
		"XVelocity",
		"YVelocity",
		"Enthalpy",
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	Mach           // 4
	StaticPressure // 5
	Temperature    // 6
	SoundSpeed     // 7
	XVelocity      // 8
	YVelocity      // 9
	Enthalpy       // 10
)

// GasProperties describes a calorically perfect gas.
type GasProperties struct {
	Gamma float64
	R     float64 // [J/kg K]
	Cp    float64 // [J/kg K]
}

func (gp GasProperties) Validate() error {
	if !(gp.Gamma > 1) || !(gp.R > 0) {
		return fmt.Errorf("%w: Gamma = %g, R = %g", ErrInvalidGas, gp.Gamma, gp.R)
	}
	return nil
}

// IdealCp is gamma R / (gamma - 1).
func (gp GasProperties) IdealCp() float64 {
	return gp.Gamma * gp.R / (gp.Gamma - 1.)
}

func (gp GasProperties) SoundSpeed(T float64) float64 {
	return math.Sqrt(gp.Gamma * gp.R * T)
}

// PrimitiveToConserved packs pressure, velocity and temperature into
// (rho, rhoU, rhoV, E).
func (gp GasProperties) PrimitiveToConserved(P, U, V, T float64) (Q [4]float64) {
	rho := P / (gp.R * T)
	Q[0] = rho
	Q[1] = rho * U
	Q[2] = rho * V
	Q[3] = P/(gp.Gamma-1.) + 0.5*rho*(U*U+V*V)
	return
}

// GetFlowFunctionBase evaluates pf from a conserved state. ok is false when
// pf needs 1/rho and rho is zero.
func (gp GasProperties) GetFlowFunctionBase(rho, rhoU, rhoV, E float64, pf FlowFunction) (f float64, ok bool) {
	switch pf {
	case Density:
		return rho, true
	case XMomentum:
		return rhoU, true
	case YMomentum:
		return rhoV, true
	case Energy:
		return E, true
	}
	if rho == 0 {
		return math.NaN(), false
	}
	var (
		GM1   = gp.Gamma - 1.
		oorho = 1. / rho
		q     = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
		p     = GM1 * (E - q)
	)
	switch pf {
	case StaticPressure:
		f = p
	case Temperature:
		f = p * oorho / gp.R
	case SoundSpeed:
		f = math.Sqrt(math.Abs(gp.Gamma * p * oorho))
	case XVelocity:
		f = rhoU * oorho
	case YVelocity:
		f = rhoV * oorho
	case Mach:
		C := math.Sqrt(math.Abs(gp.Gamma * p * oorho))
		U := math.Sqrt(rhoU*rhoU+rhoV*rhoV) * oorho
		f = U / C
	case Enthalpy:
		f = (E + p) * oorho
	default:
		panic(fmt.Errorf("unknown flow function %d", pf))
	}
	return f, true
}

// FreeStream holds the uniform state derived from static pressure,
// temperature and Mach number, flow aligned with +x.
type FreeStream struct {
	Gas                GasProperties
	Pinf, Tinf, Minf   float64
	Rhoinf, Uinf, Vinf float64
	Cinf, Einf         float64
	Qinf               [4]float64
}

func NewFreeStream(gas GasProperties, P0, T0, M0 float64) (fs *FreeStream, err error) {
	if err = gas.Validate(); err != nil {
		return
	}
	if !(P0 > 0) || !(T0 > 0) || !(M0 >= 0) {
		return nil, fmt.Errorf("%w: freestream P0 = %g, T0 = %g, M0 = %g", ErrNonPhysicalState, P0, T0, M0)
	}
	var (
		a0 = gas.SoundSpeed(T0)
		u0 = M0 * a0
		v0 = 0.
	)
	fs = &FreeStream{
		Gas:  gas,
		Pinf: P0, Tinf: T0, Minf: M0,
		Uinf: u0, Vinf: v0,
		Cinf: a0,
		Qinf: gas.PrimitiveToConserved(P0, u0, v0, T0),
	}
	fs.Rhoinf, fs.Einf = fs.Qinf[0], fs.Qinf[3]
	return
}

func (fs *FreeStream) String() string {
	return fmt.Sprintf("Pinf = %g, Tinf = %g, Minf = %g: rho = %g, u = %g, a = %g, E = %g",
		fs.Pinf, fs.Tinf, fs.Minf, fs.Rhoinf, fs.Uinf, fs.Cinf, fs.Einf)
}
