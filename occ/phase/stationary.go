package phase

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
)

const (
	// stationaryMaxIter bounds the Newton iteration per kernel sample.
	stationaryMaxIter = 20

	// stationaryEpsMult scales the machine epsilon into the
	// convergence tolerance on ∂ψ/∂φ, together with kD.
	stationaryEpsMult = 64.0

	machEps = 2.220446049250313e-16
)

// Stationary locates the azimuth φ* with ∂ψ/∂φ = 0 by Newton
// iteration from the guess phi. Callers chasing a radial scan pass the
// previous sample's solution as the warm start.
func Stationary(k Kernel, rho, phi, kd float64) (float64, error) {
	tol := stationaryEpsMult * machEps * math.Abs(kd)
	if tol == 0 {
		tol = stationaryEpsMult * machEps
	}

	for i := 0; i < stationaryMaxIter; i++ {
		d1 := k.DPhi(rho, phi)
		if math.Abs(d1) < tol {
			return phi, nil
		}

		d2 := k.D2Phi(rho, phi)
		if d2 == 0 || math.IsNaN(d2) {
			break
		}

		phi -= d1 / d2
	}

	if math.Abs(k.DPhi(rho, phi)) < tol {
		return phi, nil
	}

	return phi, fmt.Errorf("phase: stationary azimuth at rho %g: %w", rho, core.ErrNonConvergence)
}

// PsiStationary evaluates ψ at the stationary azimuth for the kernel,
// returning the phase and the converged azimuth.
func PsiStationary(k Kernel, rho, guess, kd float64) (psi, phiStar float64, err error) {
	phiStar, err = Stationary(k, rho, guess, kd)
	if err != nil {
		return 0, phiStar, err
	}

	return k.Psi(rho, phiStar), phiStar, nil
}
