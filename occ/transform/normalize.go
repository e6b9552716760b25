package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-occult/occ/core"
)

// normScale returns the coherent normalization factor of output sample
// i: the free-space kernel integral √2·F over the windowed kernel
// response. Dividing by the windowed response pins the free-space
// transmittance at unity.
//
// For the quadratic strategies the windowed response is the plain
// Riemann sum matching the transform accumulation; the Newton family
// integrates the tapered kernel by the trapezoid rule over the span.
func (d *driver) normScale(i, half int, win, psi []float64) (float64, error) {
	var den float64

	switch d.opts.Strategy {
	case core.StrategyNewton, core.StrategyPerturbedNewton, core.StrategyEllipticNewton:
		den = d.trapezoidResponse(i, half, win, psi)
	default:
		var sumRe, sumIm float64

		for j := range psi {
			sn, cs := math.Sincos(psi[j])
			sumRe += win[j] * cs
			sumIm += win[j] * sn
		}

		den = d.dr * math.Hypot(sumRe, sumIm)
	}

	if den == 0 {
		return 0, fmt.Errorf("transform: windowed kernel sum vanished at sample %d: %w", i, core.ErrDomain)
	}

	return math.Sqrt2 * d.prof.F[i] / den, nil
}

// trapezoidResponse integrates |∫ w e^{iψ} dρ| over the span.
func (d *driver) trapezoidResponse(i, half int, win, psi []float64) float64 {
	xs := make([]float64, len(psi))
	re := make([]float64, len(psi))
	im := make([]float64, len(psi))

	for j := range psi {
		xs[j] = d.prof.Rho[i-half+j]
		sn, cs := math.Sincos(psi[j])
		re[j] = win[j] * cs
		im[j] = win[j] * sn
	}

	return math.Hypot(integrate.Trapezoidal(xs, re), integrate.Trapezoidal(xs, im))
}
