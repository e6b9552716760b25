package transform

import (
	"github.com/cwbudde/algo-occult/occ/phase"
	"github.com/cwbudde/algo-occult/occ/specfn"
)

// interpPhases evaluates the stationary phase exactly at order+1 nodes
// spread across the span and fills the remaining samples from the
// interpolating polynomial through the nodes.
func (d *driver) interpPhases(k phase.Kernel, i, half int, psi []float64) error {
	order := d.opts.InterpOrder
	kd := d.prof.KD[i]
	rho0 := d.prof.Rho[i]

	xs := make([]float64, order+1)
	ys := make([]float64, order+1)

	guess := d.prof.Phi[i]

	for n := 0; n <= order; n++ {
		off := -half + (2*half*n)/order
		rho := d.prof.Rho[i+off]

		p, phiStar, err := phase.PsiStationary(k, rho, guess, kd)
		if err != nil {
			return err
		}

		xs[n] = rho - rho0
		ys[n] = p
		guess = phiStar
	}

	coeffs := newtonPoly(xs, ys)

	for j := range psi {
		psi[j] = specfn.PolyEval(coeffs, d.prof.Rho[i-half+j]-rho0)
	}

	return nil
}

// newtonPoly fits the interpolating polynomial through (xs, ys) by
// divided differences and expands it to ascending monomial
// coefficients.
func newtonPoly(xs, ys []float64) []float64 {
	n := len(xs)

	// Divided-difference table, kept as the leading column.
	dd := append([]float64(nil), ys...)
	lead := make([]float64, n)
	lead[0] = dd[0]

	for order := 1; order < n; order++ {
		for i := 0; i < n-order; i++ {
			dd[i] = (dd[i+1] - dd[i]) / (xs[i+order] - xs[i])
		}

		lead[order] = dd[0]
	}

	// Expand Newton form to monomials: accumulate the running product
	// Π (x − xs[m]).
	coeffs := make([]float64, n)
	prod := make([]float64, 1, n)
	prod[0] = 1

	for m := 0; m < n; m++ {
		for p, c := range prod {
			coeffs[p] += lead[m] * c
		}

		if m == n-1 {
			break
		}

		next := make([]float64, len(prod)+1)
		for p, c := range prod {
			next[p+1] += c
			next[p] -= xs[m] * c
		}

		prod = next
	}

	return coeffs
}
