package hydraulics

import (
	"fmt"
	"math"

	"github.com/piezotools/gopiez/internal/solve"
)

// colebrookPenalty steers the root finder away from non-positive friction
// factors, where the residual logarithm is undefined.
const colebrookPenalty = 1e6

// Haaland calculates the Darcy friction factor with the explicit Haaland
// correlation:
//
//	1/√f = -1.8·log10[(ε/D/3.7)^1.11 + 6.9/Re]
//
// Re <= 0 returns the no-flow sentinel 0.0 (not an error): there is no
// meaningful friction factor without flow, and downstream losses collapse
// to zero with it.
func Haaland(re, epsilon, d float64) float64 {
	if re <= 0 {
		return 0.0
	}
	term := math.Pow(epsilon/d/3.7, 1.11) + 6.9/re
	invSqrtF := -1.8 * math.Log10(term)
	return 1.0 / (invSqrtF * invSqrtF)
}

// SwameeJain calculates the Darcy friction factor with the explicit
// Swamee-Jain correlation:
//
//	f = 0.25 / [log10(ε/(3.7·D) + 5.74/Re^0.9)]²
//
// Reported for comparison against Colebrook and Haaland. Re <= 0 returns
// the no-flow sentinel 0.0.
func SwameeJain(re, epsilon, d float64) float64 {
	if re <= 0 {
		return 0.0
	}
	term := epsilon/(3.7*d) + 5.74/math.Pow(re, 0.9)
	lg := math.Log10(term)
	return 0.25 / (lg * lg)
}

// ColebrookResidual is the implicit Colebrook-White equation rearranged to
// zero:
//
//	g(f) = 1/√f + 2·log10(ε/D/3.7 + 2.51/(Re·√f))
//
// g is strictly decreasing in f and has a single positive root. For f <= 0
// it returns a large finite penalty instead of evaluating the logarithm of
// a non-positive argument, so an overshooting solver is pushed back into
// the feasible region.
func ColebrookResidual(re, epsilon, d float64) func(f float64) float64 {
	return func(f float64) float64 {
		if f <= 0 {
			return colebrookPenalty
		}
		sqrtF := math.Sqrt(f)
		return 1.0/sqrtF + 2.0*math.Log10(epsilon/d/3.7+2.51/(re*sqrtF))
	}
}

// Colebrook calculates the Darcy friction factor from the implicit
// Colebrook-White equation, solved iteratively with the Haaland estimate as
// seed. Re <= 0 returns the no-flow sentinel 0.0. A failed solve is
// surfaced (wrapped solve.ErrNoConvergence), never papered over with the
// seed value: a silently wrong f would corrupt every downstream head,
// power and pressure figure.
func Colebrook(re, epsilon, d float64) (float64, error) {
	if re <= 0 {
		return 0.0, nil
	}

	seed := Haaland(re, epsilon, d)
	f, err := solve.Root(ColebrookResidual(re, epsilon, d), seed, solve.DefaultOptions)
	if err != nil {
		return 0, fmt.Errorf("colebrook solve (Re=%.0f, ε/D=%.2e): %w", re, epsilon/d, err)
	}
	return f, nil
}
