package specfn

import "math"

// PolyEval evaluates a polynomial at x using Horner's method.
// Coefficients are in ascending power order:
// c[0] + c[1]*x + c[2]*x² + ...
func PolyEval(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}

	v := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		v = v*x + c[i]
	}

	return v
}

// PolyDerive returns the coefficients of the derivative of the
// polynomial c (ascending power order).
func PolyDerive(c []float64) []float64 {
	if len(c) < 2 {
		return nil
	}

	d := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		d[i-1] = float64(i) * c[i]
	}

	return d
}

// Erf returns the error function of x.
func Erf(x float64) float64 { return math.Erf(x) }

// Erfc returns the complementary error function of x.
func Erfc(x float64) float64 { return math.Erfc(x) }
