package core

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/occ/window"
)

// Strategy selects the phase-kernel approximation used by the
// transform driver.
type Strategy int

const (
	// StrategyFresnel uses the quadratic phase kernel.
	StrategyFresnel Strategy = iota

	// StrategyLegendre expands the phase in a Legendre-polynomial
	// series of the configured order.
	StrategyLegendre

	// StrategyNewton solves the exact spherical stationary point per
	// kernel sample.
	StrategyNewton

	// StrategyPerturbedNewton is StrategyNewton with an additive
	// polynomial phase perturbation.
	StrategyPerturbedNewton

	// StrategyEllipticNewton is StrategyNewton on an eccentric ring.
	StrategyEllipticNewton

	// StrategyFFT evaluates the quadratic kernel as one FFT
	// convolution over a uniform grid.
	StrategyFFT
)

// String returns the conventional name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFresnel:
		return "fresnel"
	case StrategyLegendre:
		return "legendre"
	case StrategyNewton:
		return "newton"
	case StrategyPerturbedNewton:
		return "perturbed-newton"
	case StrategyEllipticNewton:
		return "elliptic-newton"
	case StrategyFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// RadialRange is a closed radial interval in km.
type RadialRange struct {
	Lo, Hi float64
}

// ReconstructionOptions configures one inversion call.
type ReconstructionOptions struct {
	// Res is the requested radial resolution in km. It must be at
	// least twice the sample spacing.
	Res float64

	// WindowType selects the taper; WindowAlpha feeds the free-alpha
	// Kaiser-Bessel types.
	WindowType  window.Type
	WindowAlpha float64

	// Strategy selects the kernel approximation; LegendreOrder (2..8)
	// applies to StrategyLegendre only.
	Strategy      Strategy
	LegendreOrder int

	// Normalize divides each output sample by the coherent free-space
	// response of the windowed kernel.
	Normalize bool

	// UseBFactor enables the finite-frequency-stability window-width
	// correction; Sigma is the Allen deviation of the reference
	// oscillator and Omega the angular frequency in rad/s.
	UseBFactor bool
	Sigma      float64
	Omega      float64

	// Range restricts the output to a closed radial interval. A zero
	// value selects every sample of the profile; the plan then fails
	// with a RangeError at the first sample whose span leaves the data.
	Range RadialRange

	// Perturbation adds a degree-five polynomial in (ρ-ρ₀)/D to the
	// phase; all zeros disable it.
	Perturbation [5]float64

	// Ecc and Peri describe an eccentric ring; both zero selects the
	// circular geometry.
	Ecc  float64
	Peri float64

	// InterpOrder is the stationary-phase interpolation order inside
	// the transform loop: 0 (exact per sample), 2, 3 or 4.
	InterpOrder int

	// RunForward forward-convolves the reconstruction into a
	// diffraction-remodeled amplitude for self-checking.
	RunForward bool

	// Progress, when non-nil, is invoked after each completed output
	// sample with the running and total counts.
	Progress func(done, total int)
}

// HasPerturbation reports whether any perturbation coefficient is set.
func (o *ReconstructionOptions) HasPerturbation() bool {
	for _, p := range o.Perturbation {
		if p != 0 {
			return true
		}
	}

	return false
}

// Validate checks the options against the profile sample spacing dr.
func (o *ReconstructionOptions) Validate(dr float64) error {
	if !isFinite(o.Res) || o.Res <= 0 {
		return fmt.Errorf("resolution must be > 0: %g: %w", o.Res, ErrDomain)
	}

	if dr > 0 && o.Res < 2*dr {
		return fmt.Errorf("resolution %g below Nyquist bound %g: %w", o.Res, 2*dr, ErrDomain)
	}

	switch o.InterpOrder {
	case 0, 2, 3, 4:
	default:
		return fmt.Errorf("interpolation order %d not in {0, 2, 3, 4}: %w", o.InterpOrder, ErrInvalidOption)
	}

	if o.Strategy < StrategyFresnel || o.Strategy > StrategyFFT {
		return fmt.Errorf("unknown strategy %d: %w", int(o.Strategy), ErrInvalidOption)
	}

	if o.Strategy == StrategyLegendre && (o.LegendreOrder < 2 || o.LegendreOrder > 8) {
		return fmt.Errorf("legendre order %d not in 2..8: %w", o.LegendreOrder, ErrInvalidOption)
	}

	if o.Strategy == StrategyEllipticNewton && o.Ecc == 0 && o.Peri == 0 {
		return fmt.Errorf("elliptic strategy without eccentricity: %w", ErrInvalidOption)
	}

	if o.UseBFactor {
		if !isFinite(o.Sigma) || o.Sigma <= 0 {
			return fmt.Errorf("b-factor requires Allen deviation > 0: %g: %w", o.Sigma, ErrDomain)
		}

		if !isFinite(o.Omega) || o.Omega <= 0 {
			return fmt.Errorf("b-factor requires angular frequency > 0: %g: %w", o.Omega, ErrDomain)
		}
	}

	if o.Ecc < 0 || o.Ecc >= 1 {
		return fmt.Errorf("eccentricity %g outside [0, 1): %w", o.Ecc, ErrDomain)
	}

	if math.IsNaN(o.Range.Lo) || math.IsNaN(o.Range.Hi) {
		return fmt.Errorf("radial range is NaN: %w", ErrDomain)
	}

	return nil
}
