package transform

import (
	"fmt"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/phase"
)

// kernelPhases fills psi with ψ(ρⱼ, ρᵢ) for the span j ∈ [i−half, i+half]
// according to the configured strategy.
func (d *driver) kernelPhases(i, half int, psi []float64) error {
	switch d.opts.Strategy {
	case core.StrategyFresnel, core.StrategyFFT:
		d.quadraticPhases(i, half, psi)
		return nil
	case core.StrategyLegendre:
		d.legendrePhases(i, half, psi)
		return nil
	case core.StrategyNewton, core.StrategyPerturbedNewton, core.StrategyEllipticNewton:
		return d.newtonPhases(i, half, psi)
	default:
		return fmt.Errorf("transform: strategy %v: %w", d.opts.Strategy, core.ErrInvalidOption)
	}
}

// quadraticPhases evaluates the quadratic Fresnel kernel, which
// depends on the separation only.
func (d *driver) quadraticPhases(i, half int, psi []float64) {
	rho0 := d.prof.Rho[i]
	f := d.prof.F[i]

	for j := range psi {
		psi[j] = phase.Quadratic(d.prof.Rho[i-half+j], rho0, f)
	}
}

// legendrePhases evaluates the Legendre polynomial expansion of the
// stationary phase. The coefficient table is rebuilt once per output
// sample; it depends on the opening angle and azimuth only.
func (d *driver) legendrePhases(i, half int, psi []float64) {
	coeffs := phase.NewLegendreCoeffs(d.prof.B[i], d.prof.Phi[i], d.opts.LegendreOrder)

	rho0 := d.prof.Rho[i]
	kd := d.prof.KD[i]
	dInv := 1 / d.prof.D[i]

	for j := range psi {
		w := (d.prof.Rho[i-half+j] - rho0) * dInv
		psi[j] = coeffs.Psi(kd, w)
	}
}

// kernel returns the phase kernel of the Newton-family strategies for
// output sample i.
func (d *driver) kernel(i int) phase.Kernel {
	g := phase.Geometry{
		KD:   d.prof.KD[i],
		Rho0: d.prof.Rho[i],
		Phi0: d.prof.Phi[i],
		B:    d.prof.B[i],
		D:    d.prof.D[i],
	}

	if d.opts.Strategy == core.StrategyEllipticNewton {
		return &phase.Elliptic{Geometry: g, Ecc: d.opts.Ecc, Peri: d.opts.Peri}
	}

	return &g
}

// newtonPhases solves the stationary azimuth across the span, either
// per sample (interpolation order 0) or at a few nodes with
// polynomial interpolation in between.
func (d *driver) newtonPhases(i, half int, psi []float64) error {
	k := d.kernel(i)
	kd := d.prof.KD[i]

	if d.opts.InterpOrder == 0 || 2*half < d.opts.InterpOrder {
		// Exact per-sample evaluation; the previous sample's solution
		// warm-starts the next Newton iteration.
		guess := d.prof.Phi[i]

		for j := range psi {
			p, phiStar, err := phase.PsiStationary(k, d.prof.Rho[i-half+j], guess, kd)
			if err != nil {
				return err
			}

			psi[j] = p
			guess = phiStar
		}
	} else if err := d.interpPhases(k, i, half, psi); err != nil {
		return err
	}

	if d.opts.Strategy == core.StrategyPerturbedNewton && d.opts.HasPerturbation() {
		d.addPerturbation(i, half, psi)
	}

	return nil
}

// addPerturbation adds the user phase polynomial
// kD Σₙ pₙ ((ρ−ρ₀)/D)ⁿ⁺¹ to the kernel phases.
func (d *driver) addPerturbation(i, half int, psi []float64) {
	rho0 := d.prof.Rho[i]
	kd := d.prof.KD[i]
	dInv := 1 / d.prof.D[i]

	for j := range psi {
		w := (d.prof.Rho[i-half+j] - rho0) * dInv

		v := 0.0
		for n := len(d.opts.Perturbation) - 1; n >= 0; n-- {
			v = (v + d.opts.Perturbation[n]) * w
		}

		psi[j] += kd * v
	}
}
