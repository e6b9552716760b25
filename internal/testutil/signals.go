package testutil

import (
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
)

// ProfileSpec describes a synthetic occultation geometry with constant
// Fresnel scale and uniform radial spacing.
type ProfileSpec struct {
	RhoStart float64 // first radius, km
	Spacing  float64 // radial step, km
	N        int     // sample count
	F        float64 // Fresnel scale, km
	B        float64 // ring opening angle, rad
	D        float64 // spacecraft distance, km
	Phi0     float64 // ring azimuth, rad
}

// SyntheticProfile builds a free-space calibrated profile (T̂ = 1
// everywhere) with self-consistent geometry: the wavenumber-distance
// product kD follows from the Fresnel scale through
// F² = λD (1 − cos²B cos²φ) / (2 sin²B).
func SyntheticProfile(spec ProfileSpec) *core.CalibratedProfile {
	sinB := math.Sin(spec.B)
	cosB := math.Cos(spec.B)
	cosPhi := math.Cos(spec.Phi0)

	lambda := spec.F * spec.F * 2 * sinB * sinB /
		(spec.D * (1 - cosB*cosB*cosPhi*cosPhi))
	kd := 2 * math.Pi / lambda * spec.D

	p := &core.CalibratedProfile{
		Rho:  make([]float64, spec.N),
		THat: make([]complex128, spec.N),
		F:    make([]float64, spec.N),
		Phi:  make([]float64, spec.N),
		KD:   make([]float64, spec.N),
		B:    make([]float64, spec.N),
		D:    make([]float64, spec.N),
	}

	for i := 0; i < spec.N; i++ {
		p.Rho[i] = spec.RhoStart + float64(i)*spec.Spacing
		p.THat[i] = 1
		p.F[i] = spec.F
		p.Phi[i] = spec.Phi0
		p.KD[i] = kd
		p.B[i] = spec.B
		p.D[i] = spec.D
	}

	return p
}
