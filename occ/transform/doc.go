// Package transform drives the Fresnel inversion: it walks the target
// radius range, assembles the tapered kernel around every output
// sample, and accumulates the stationary-phase quadrature sum
//
//	T(ρᵢ) ≈ (1−i)/(2Fᵢ) · Δρ · Σⱼ T̂(ρⱼ) w(ρⱼ−ρᵢ) e^{iψᵢⱼ}
//
// with the phase ψᵢⱼ supplied by the selected strategy: the quadratic
// Fresnel kernel, a Legendre polynomial expansion, the exact spherical
// stationary solution (plain, perturbed or elliptic), or a single FFT
// convolution for the quadratic kernel on a uniform grid.
//
// Output samples are independent of one another; the driver runs them
// sequentially, and every sample reads only its own scratch buffers
// and the shared read-only input arrays.
package transform
