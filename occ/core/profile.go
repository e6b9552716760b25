// Package core defines the data records exchanged with the Fresnel
// inversion engine: the calibrated input profile, the reconstruction
// options, and the reconstructed output profile.
//
// Per-sample geometry is stored as parallel arrays because the hot
// loop of the transform driver reads each field across a contiguous
// index span.
package core

import (
	"fmt"
	"math"
)

// spacingTol is the accepted relative variation of the radial sample
// spacing across the profile.
const spacingTol = 0.25

// CalibratedProfile is the calibrated diffraction profile produced by
// the upstream calibration stage. All slices have equal length and are
// ordered by strictly increasing radius. The profile is read-only
// during inversion.
type CalibratedProfile struct {
	// Rho is the ring-plane radial intercept in km.
	Rho []float64

	// THat is the calibrated diffracted complex amplitude.
	THat []complex128

	// F is the local Fresnel scale in km.
	F []float64

	// Phi is the ring azimuth at the intercept in rad.
	Phi []float64

	// KD is the wavenumber times the spacecraft distance, in rad. The
	// product is carried as one quantity to preserve conditioning.
	KD []float64

	// B is the ring opening angle in rad.
	B []float64

	// D is the spacecraft-to-intercept distance in km.
	D []float64

	// RhoDot is the intercept radial velocity in km/s. It is optional
	// and consulted only by the b-factor window planner.
	RhoDot []float64
}

// Len returns the number of samples.
func (p *CalibratedProfile) Len() int { return len(p.Rho) }

// Spacing returns the radial sample spacing in km.
func (p *CalibratedProfile) Spacing() float64 {
	if len(p.Rho) < 2 {
		return 0
	}

	return (p.Rho[len(p.Rho)-1] - p.Rho[0]) / float64(len(p.Rho)-1)
}

// Validate checks the structural invariants of the profile: equal
// array lengths, finite values, strictly increasing near-uniform
// radius, F > 0, D > 0 and |B| < π/2.
func (p *CalibratedProfile) Validate() error {
	n := len(p.Rho)
	if n < 2 {
		return fmt.Errorf("profile needs at least 2 samples, have %d: %w", n, ErrDomain)
	}

	if len(p.THat) != n || len(p.F) != n || len(p.Phi) != n ||
		len(p.KD) != n || len(p.B) != n || len(p.D) != n {
		return fmt.Errorf("profile arrays disagree in length: %w", ErrDomain)
	}

	if p.RhoDot != nil && len(p.RhoDot) != n {
		return fmt.Errorf("rho-dot length %d, want %d: %w", len(p.RhoDot), n, ErrDomain)
	}

	dr := p.Spacing()
	if dr <= 0 {
		return fmt.Errorf("radius not increasing: %w", ErrDomain)
	}

	for i := 0; i < n; i++ {
		if !isFinite(p.Rho[i]) || !isFinite(p.F[i]) || !isFinite(p.Phi[i]) ||
			!isFinite(p.KD[i]) || !isFinite(p.B[i]) || !isFinite(p.D[i]) {
			return fmt.Errorf("non-finite geometry at sample %d: %w", i, ErrDomain)
		}

		if p.F[i] <= 0 {
			return fmt.Errorf("fresnel scale %g at sample %d: %w", p.F[i], i, ErrDomain)
		}

		if p.D[i] <= 0 {
			return fmt.Errorf("distance %g at sample %d: %w", p.D[i], i, ErrDomain)
		}

		if math.Abs(p.B[i]) >= math.Pi/2 {
			return fmt.Errorf("opening angle %g at sample %d: %w", p.B[i], i, ErrDomain)
		}

		if i > 0 {
			step := p.Rho[i] - p.Rho[i-1]
			if step <= 0 {
				return fmt.Errorf("radius not strictly increasing at sample %d: %w", i, ErrDomain)
			}

			if math.Abs(step-dr) > spacingTol*dr {
				return fmt.Errorf("sample spacing varies beyond tolerance at sample %d: %w", i, ErrDomain)
			}
		}
	}

	return nil
}

// IndexRange returns the index interval [lo, hi] of samples whose
// radius lies in the closed interval [rhoLo, rhoHi]. ok is false when
// the interval misses the data entirely.
func (p *CalibratedProfile) IndexRange(rhoLo, rhoHi float64) (lo, hi int, ok bool) {
	n := len(p.Rho)
	lo = 0

	for lo < n && p.Rho[lo] < rhoLo {
		lo++
	}

	hi = n - 1
	for hi >= 0 && p.Rho[hi] > rhoHi {
		hi--
	}

	return lo, hi, lo < n && hi >= 0 && lo <= hi
}

// ReconstructedProfile is the output of the inversion: the
// diffraction-corrected transmittance and quantities derived from it,
// restricted to the requested radial range.
type ReconstructedProfile struct {
	// Rho is the output radius grid in km.
	Rho []float64

	// T is the reconstructed complex transmittance.
	T []complex128

	// W is the window width used at each output sample, in km.
	W []float64

	// Power is |T|², Phase is arg(T) in rad, and Tau is the normal
	// optical depth -sin|B|·ln(Power).
	Power []float64
	Phase []float64
	Tau   []float64

	// THatFwd is the forward-modeled diffracted amplitude. It is nil
	// unless the forward pass was requested; samples whose span leaves
	// the output range are zero.
	THatFwd []complex128

	// RawTauThreshold and TauThreshold estimate the optical-depth
	// noise floor before and after resolution correction.
	RawTauThreshold float64
	TauThreshold    float64
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
