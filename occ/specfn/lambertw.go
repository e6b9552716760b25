package specfn

import (
	"fmt"
	"math"
)

const (
	lambertMaxIter = 40
	lambertBranch  = -1.0 / math.E
)

// LambertW returns the principal branch W0 of the Lambert W function,
// the inverse of t·eᵗ on [-1, ∞). The argument must satisfy
// x >= -1/e; smaller arguments are outside the domain. The branch
// point x = -1/e maps to exactly -1.
//
// The starting guess is log(x/log x) for x > 2, a truncated branch
// expansion near -1/e, and x itself otherwise; Halley iteration
// refines it to a tolerance scaled by the working precision.
func LambertW(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return math.NaN(), fmt.Errorf("lambertw(NaN): %w", ErrDomain)
	case x < lambertBranch:
		return math.NaN(), fmt.Errorf("lambertw(%g): argument below -1/e: %w", x, ErrDomain)
	case x == lambertBranch:
		return -1, nil
	case x == 0:
		return 0, nil
	case math.IsInf(x, 1):
		return math.Inf(1), nil
	}

	var w float64

	switch {
	case x > 2:
		lx := math.Log(x)
		w = lx - math.Log(lx)
	case x < -0.25:
		// Branch-point expansion in p = sqrt(2(ex+1)).
		p := math.Sqrt(2 * (math.E*x + 1))
		w = -1 + p*(1+p*(-1.0/3.0+p*(11.0/72.0)))
	default:
		w = x
	}

	for i := 0; i < lambertMaxIter; i++ {
		ew := math.Exp(w)
		f := w*ew - x

		// Halley step.
		den := ew*(w+1) - (w+2)*f/(2*w+2)
		step := f / den
		w -= step

		if math.Abs(step) <= 4*math.SmallestNonzeroFloat64+8*machEps*(1+math.Abs(w)) {
			return w, nil
		}
	}

	return w, fmt.Errorf("lambertw(%g): %w", x, ErrNonConvergence)
}

const machEps = 2.220446049250313e-16
