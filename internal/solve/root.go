// Package solve provides a small one-dimensional root finder for the
// implicit correlations used by the hydraulic engine.
package solve

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence is returned when the residual tolerance is not reached
// within the iteration cap.
var ErrNoConvergence = errors.New("root finder did not converge")

// Options controls the iteration of Root.
type Options struct {
	// Tol is the residual tolerance. |f(x)| <= Tol ends the search.
	Tol float64

	// MaxIter caps both the bracket expansion and the bisection phases.
	MaxIter int
}

// DefaultOptions are tight enough for all friction-factor solves over the
// physically realistic parameter range (Re up to ~1e6, ε/D down to ~1e-5).
var DefaultOptions = Options{
	Tol:     1e-10,
	MaxIter: 200,
}

// Root finds a root of fn near the strictly positive seed x0.
//
// fn must be monotonically decreasing across its root, which holds for the
// Colebrook-White residual in f. The search first expands a bracket
// [lo, hi] around the seed until fn changes sign, then bisects. The seed
// is expected to be a good estimate (e.g. the Haaland friction factor), so
// realistic inputs converge in a handful of halvings.
func Root(fn func(float64) float64, x0 float64, opt Options) (float64, error) {
	if opt.Tol <= 0 {
		opt.Tol = DefaultOptions.Tol
	}
	if opt.MaxIter <= 0 {
		opt.MaxIter = DefaultOptions.MaxIter
	}
	if x0 <= 0 || math.IsNaN(x0) || math.IsInf(x0, 0) {
		return 0, fmt.Errorf("invalid seed %v: must be finite and positive", x0)
	}

	if r := fn(x0); math.Abs(r) <= opt.Tol {
		return x0, nil
	}

	lo, hi := x0, x0
	var flo, fhi float64

	// fn decreases across the root: fn(lo) > 0 > fn(hi).
	for i := 0; ; i++ {
		if i >= opt.MaxIter {
			return 0, fmt.Errorf("bracketing below seed %v: %w", x0, ErrNoConvergence)
		}
		flo = fn(lo)
		if flo > 0 {
			break
		}
		lo /= 2
	}
	for i := 0; ; i++ {
		if i >= opt.MaxIter {
			return 0, fmt.Errorf("bracketing above seed %v: %w", x0, ErrNoConvergence)
		}
		fhi = fn(hi)
		if fhi < 0 {
			break
		}
		hi *= 2
	}

	for i := 0; i < opt.MaxIter; i++ {
		mid := (lo + hi) / 2
		fmid := fn(mid)

		if math.Abs(fmid) <= opt.Tol || (hi-lo)/2 < opt.Tol*mid {
			return mid, nil
		}
		if fmid > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0, fmt.Errorf("after %d iterations near %v: %w", opt.MaxIter, x0, ErrNoConvergence)
}
