// Package phase evaluates the Fresnel geometry phase ψ of the ring
// occultation kernel, its azimuthal derivatives, and the stationary
// azimuth that dominates the oscillatory inversion integral.
//
// The exact spherical form is
//
//	ψ = kD (√(1 − 2ξ + η) + ξ − 1)
//	ξ = cos(B) (ρ sin φ − ρ₀ sin φ₀) / D
//	η = (ρ² + ρ₀² − 2 ρ ρ₀ cos(φ − φ₀)) / D²
//
// which reduces near the stationary azimuth to the quadratic kernel
// (π/2)((ρ−ρ₀)/F)² with the Fresnel scale
// F = √(λD (1 − cos²B cos²φ₀) / (2 sin²B)).
package phase

import "math"

// Geometry holds the per-output-sample quantities fixed during one
// kernel evaluation.
type Geometry struct {
	KD   float64 // wavenumber times distance, rad
	Rho0 float64 // target radius, km
	Phi0 float64 // target azimuth, rad
	B    float64 // ring opening angle, rad
	D    float64 // spacecraft-to-intercept distance, km
}

// terms carries the shared intermediates of one (ρ, φ) evaluation.
type terms struct {
	xi, eta float64
	root    float64 // √(1 − 2ξ + η)
}

func (g *Geometry) eval(rho, phi float64) terms {
	cosB := math.Cos(g.B)
	xi := cosB * (rho*math.Sin(phi) - g.Rho0*math.Sin(g.Phi0)) / g.D
	eta := (rho*rho + g.Rho0*g.Rho0 - 2*rho*g.Rho0*math.Cos(phi-g.Phi0)) / (g.D * g.D)

	return terms{xi: xi, eta: eta, root: math.Sqrt(1 - 2*xi + eta)}
}

// Psi returns ψ(ρ, φ).
func (g *Geometry) Psi(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	return g.KD * (t.root + t.xi - 1)
}

// DPhi returns ∂ψ/∂φ.
func (g *Geometry) DPhi(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	xiP := math.Cos(g.B) * rho * math.Cos(phi) / g.D
	etaP := 2 * rho * g.Rho0 * math.Sin(phi-g.Phi0) / (g.D * g.D)

	return g.KD * ((etaP-2*xiP)/(2*t.root) + xiP)
}

// D2Phi returns ∂²ψ/∂φ².
func (g *Geometry) D2Phi(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	xiP := math.Cos(g.B) * rho * math.Cos(phi) / g.D
	etaP := 2 * rho * g.Rho0 * math.Sin(phi-g.Phi0) / (g.D * g.D)
	xiPP := -math.Cos(g.B) * rho * math.Sin(phi) / g.D
	etaPP := 2 * rho * g.Rho0 * math.Cos(phi-g.Phi0) / (g.D * g.D)

	num := etaP - 2*xiP

	return g.KD * ((etaPP-2*xiPP)/(2*t.root) -
		num*num/(4*t.root*t.root*t.root) + xiPP)
}

// DRho returns ∂ψ/∂ρ.
func (g *Geometry) DRho(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	xiR := math.Cos(g.B) * math.Sin(phi) / g.D
	etaR := 2 * (rho - g.Rho0*math.Cos(phi-g.Phi0)) / (g.D * g.D)

	return g.KD * ((etaR-2*xiR)/(2*t.root) + xiR)
}

// dRhoPhi returns ∂²ψ/∂ρ∂φ.
func (g *Geometry) dRhoPhi(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	xiP := math.Cos(g.B) * rho * math.Cos(phi) / g.D
	etaP := 2 * rho * g.Rho0 * math.Sin(phi-g.Phi0) / (g.D * g.D)
	xiR := math.Cos(g.B) * math.Sin(phi) / g.D
	etaR := 2 * (rho - g.Rho0*math.Cos(phi-g.Phi0)) / (g.D * g.D)
	xiRP := math.Cos(g.B) * math.Cos(phi) / g.D
	etaRP := 2 * g.Rho0 * math.Sin(phi-g.Phi0) / (g.D * g.D)

	return g.KD * ((etaRP-2*xiRP)/(2*t.root) -
		(etaR-2*xiR)*(etaP-2*xiP)/(4*t.root*t.root*t.root) + xiRP)
}

// dRhoRho returns ∂²ψ/∂ρ².
func (g *Geometry) dRhoRho(rho, phi float64) float64 {
	t := g.eval(rho, phi)
	xiR := math.Cos(g.B) * math.Sin(phi) / g.D
	etaR := 2 * (rho - g.Rho0*math.Cos(phi-g.Phi0)) / (g.D * g.D)
	etaRR := 2 / (g.D * g.D)

	num := etaR - 2*xiR

	return g.KD * (etaRR/(2*t.root) - num*num/(4*t.root*t.root*t.root))
}

// Quadratic returns the quadratic Fresnel phase
// (π/2)((ρ−ρ₀)/F)² with Fresnel scale f.
func Quadratic(rho, rho0, f float64) float64 {
	x := (rho - rho0) / f
	return 0.5 * math.Pi * x * x
}

// Elliptic augments a spherical geometry with the eccentricity of the
// ring. The stationary condition follows the ellipse, so the radial
// partials of ψ enter the azimuthal derivatives.
type Elliptic struct {
	Geometry

	Ecc  float64 // eccentricity, 0 <= e < 1
	Peri float64 // pericenter angle, rad
}

// rhoPrime returns dρ/dφ and d²ρ/dφ² along the ellipse at (ρ, φ).
func (e *Elliptic) rhoPrime(rho, phi float64) (d1, d2 float64) {
	u := phi - e.Peri
	sinU, cosU := math.Sincos(u)
	q := 1 + e.Ecc*cosU

	d1 = rho * e.Ecc * sinU / q
	d2 = rho * (2*e.Ecc*e.Ecc*sinU*sinU/(q*q) + e.Ecc*cosU/q)

	return d1, d2
}

// DPhi returns dψ/dφ along the ellipse.
func (e *Elliptic) DPhi(rho, phi float64) float64 {
	d1, _ := e.rhoPrime(rho, phi)
	return e.Geometry.DPhi(rho, phi) + e.Geometry.DRho(rho, phi)*d1
}

// D2Phi returns d²ψ/dφ² along the ellipse.
func (e *Elliptic) D2Phi(rho, phi float64) float64 {
	d1, d2 := e.rhoPrime(rho, phi)

	return e.Geometry.D2Phi(rho, phi) +
		2*e.Geometry.dRhoPhi(rho, phi)*d1 +
		e.Geometry.dRhoRho(rho, phi)*d1*d1 +
		e.Geometry.DRho(rho, phi)*d2
}

// Kernel is the derivative pair consumed by the stationary solver.
type Kernel interface {
	Psi(rho, phi float64) float64
	DPhi(rho, phi float64) float64
	D2Phi(rho, phi float64) float64
}
