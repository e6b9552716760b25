// Package forward provides closed-form Fresnel diffraction patterns of
// canonical apertures: ringlet, gap, straightedge, slits and square
// wave. The models validate the inversion engine and serve as quick
// forward checks against reconstructed profiles.
//
// All Fresnel-regime models express the diffracted amplitude through
// the Fresnel integrals with the scaled offset t = (x − ρ)/F, so a
// transparent strip [a, b] observed at radius ρ contributes
//
//	E = (1+i)/2 · [(C(t_b) − C(t_a)) − i (S(t_b) − S(t_a))].
package forward

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/specfn"
)

// strip returns the complex amplitude contributed by a transparent
// radial strip [a, b] observed at rho with Fresnel scale f.
func strip(rho, a, b, f float64) complex128 {
	ca, sa := specfn.Fresnel((a - rho) / f)
	cb, sb := specfn.Fresnel((b - rho) / f)

	dc := cb - ca
	ds := sb - sa

	// (1+i)/2 · (dc − i·ds)
	return complex(0.5*(dc+ds), 0.5*(dc-ds))
}

func validateStrip(a, b, f float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(f) {
		return fmt.Errorf("forward: NaN aperture parameter: %w", core.ErrDomain)
	}

	if f <= 0 {
		return fmt.Errorf("forward: fresnel scale must be > 0: %g: %w", f, core.ErrDomain)
	}

	if a >= b {
		return fmt.Errorf("forward: aperture needs a < b, have [%g, %g]: %w", a, b, core.ErrDomain)
	}

	return nil
}

// Ringlet returns the diffracted amplitude of an opaque ringlet
// spanning [a, b] at each radius of rho.
func Ringlet(rho []float64, a, b, f float64) ([]complex128, error) {
	if err := validateStrip(a, b, f); err != nil {
		return nil, err
	}

	out := make([]complex128, len(rho))
	for i, r := range rho {
		out[i] = 1 - strip(r, a, b, f)
	}

	return out, nil
}

// Gap returns the diffracted amplitude of a transparent gap [a, b] in
// an otherwise opaque screen.
func Gap(rho []float64, a, b, f float64) ([]complex128, error) {
	if err := validateStrip(a, b, f); err != nil {
		return nil, err
	}

	out := make([]complex128, len(rho))
	for i, r := range rho {
		out[i] = strip(r, a, b, f)
	}

	return out, nil
}

// Straightedge returns the diffracted amplitude of a half-plane edge
// at a, opaque below the edge.
func Straightedge(rho []float64, a, f float64) ([]complex128, error) {
	if math.IsNaN(a) || math.IsNaN(f) {
		return nil, fmt.Errorf("forward: NaN edge parameter: %w", core.ErrDomain)
	}

	if f <= 0 {
		return nil, fmt.Errorf("forward: fresnel scale must be > 0: %g: %w", f, core.ErrDomain)
	}

	out := make([]complex128, len(rho))
	for i, r := range rho {
		ca, sa := specfn.Fresnel((a - r) / f)

		dc := 0.5 - ca
		ds := 0.5 - sa

		out[i] = complex(0.5*(dc+ds), 0.5*(dc-ds))
	}

	return out, nil
}

// SquareWave returns the diffracted amplitude of a periodic opaque
// comb: nWells opaque strips of width well starting at x0, repeating
// with the given period.
func SquareWave(rho []float64, x0, well, period float64, nWells int, f float64) ([]complex128, error) {
	if err := validateStrip(x0, x0+well, f); err != nil {
		return nil, err
	}

	if period <= well {
		return nil, fmt.Errorf("forward: period %g not above well width %g: %w", period, well, core.ErrDomain)
	}

	if nWells <= 0 {
		return nil, fmt.Errorf("forward: need at least one well: %d: %w", nWells, core.ErrDomain)
	}

	out := make([]complex128, len(rho))
	for i, r := range rho {
		acc := complex(1, 0)
		for k := 0; k < nWells; k++ {
			lo := x0 + float64(k)*period
			acc -= strip(r, lo, lo+well, f)
		}

		out[i] = acc
	}

	return out, nil
}

// SingleSlit returns the Fraunhofer amplitude of a single slit of
// width a at distance z, sinc(a·x/z), sampled at each x.
func SingleSlit(x []float64, z, a float64) ([]float64, error) {
	if err := validateSlit(z, a); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = sinc(a * v / z)
	}

	return out, nil
}

// DoubleSlit returns the Fraunhofer amplitude of two slits of width a
// separated by d at distance z, sinc(a·x/z)·cos(π·d·x/z).
func DoubleSlit(x []float64, z, a, d float64) ([]float64, error) {
	if err := validateSlit(z, a); err != nil {
		return nil, err
	}

	if d <= 0 || math.IsNaN(d) {
		return nil, fmt.Errorf("forward: slit separation must be > 0: %g: %w", d, core.ErrDomain)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = sinc(a*v/z) * math.Cos(math.Pi*d*v/z)
	}

	return out, nil
}

func validateSlit(z, a float64) error {
	if math.IsNaN(z) || math.IsNaN(a) {
		return fmt.Errorf("forward: NaN slit parameter: %w", core.ErrDomain)
	}

	if z <= 0 {
		return fmt.Errorf("forward: observation distance must be > 0: %g: %w", z, core.ErrDomain)
	}

	if a <= 0 {
		return fmt.Errorf("forward: slit width must be > 0: %g: %w", a, core.ErrDomain)
	}

	return nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
