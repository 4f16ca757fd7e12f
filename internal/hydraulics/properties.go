package hydraulics

import (
	"fmt"
	"math"
)

// Physical constants

const (
	// G is the gravitational acceleration (m/s²)
	G = 9.81

	// HPPerKW converts pump power from kW to mechanical horsepower
	HPPerKW = 0.7457
)

// Flow regime thresholds for the Reynolds number
const (
	ReLaminarLimit   = 2300.0
	ReTurbulentLimit = 4000.0
)

// Area calculates the circular cross-sectional area A = π·D²/4.
// D is the internal pipe diameter in meters.
func Area(d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("invalid diameter: D=%.4f m (must be positive)", d)
	}
	return math.Pi * d * d / 4, nil
}

// Velocity calculates the mean flow velocity v = Q/A.
// The caller guarantees A > 0 (see Area).
func Velocity(q, a float64) float64 {
	return q / a
}

// KineticHead calculates the velocity head hv = v²/(2g) in meters.
func KineticHead(v float64) float64 {
	return v * v / (2 * G)
}

// Reynolds calculates the Reynolds number Re = ρ·v·D/μ.
func Reynolds(rho, v, d, mu float64) (float64, error) {
	if mu <= 0 {
		return 0, fmt.Errorf("invalid dynamic viscosity: μ=%.6f Pa·s (must be positive)", mu)
	}
	return rho * v * d / mu, nil
}

// FrictionLoss calculates the Darcy-Weisbach head loss
// hf = f·(L/D)·v²/(2g) in meters.
func FrictionLoss(f, length, d, v float64) float64 {
	return f * (length / d) * v * v / (2 * G)
}

// MinorLoss calculates the fitting head loss hm = ΣK·v²/(2g) in meters.
func MinorLoss(kTotal, v float64) float64 {
	return kTotal * v * v / (2 * G)
}

// TotalHead calculates the head a station must supply: H = z + hf + hm.
func TotalHead(z, hf, hm float64) float64 {
	return z + hf + hm
}

// PumpPowerKW calculates the hydraulic pump power P = ρ·g·Q·H/1000 in kW.
func PumpPowerKW(rho, q, head float64) float64 {
	return rho * G * q * head / 1000.0
}

// KWToHP converts power from kilowatts to horsepower.
func KWToHP(kw float64) float64 {
	return kw / HPPerKW
}

// FlowRegime classifies a Reynolds number as laminar, transitional or
// turbulent flow.
func FlowRegime(re float64) string {
	switch {
	case re > ReTurbulentLimit:
		return "Turbulent"
	case re > ReLaminarLimit:
		return "Transitional"
	default:
		return "Laminar"
	}
}
