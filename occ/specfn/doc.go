// Package specfn provides the scalar special functions used by the
// Fresnel inversion engine: Bessel J0/I0, the Fresnel cosine and sine
// integrals, the principal branch of the Lambert W function, and
// polynomial evaluation helpers.
//
// All functions operate on float64. Callers holding float32 or integer
// data convert at the boundary; the inner loops stay monomorphic.
package specfn
