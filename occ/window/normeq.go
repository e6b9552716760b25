package window

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// Normalized equivalent widths of the fixed window types,
// W · ∫w² / (∫w)², evaluated on the continuous taper.
const (
	NormEqRect       = 1.0
	NormEqCosSquared = 1.5
	NormEqKB20       = 1.4963420
	NormEqKB25       = 1.6519205
	NormEqKB35       = 1.9284476
	NormEqKBMD20     = 1.5204838191
	NormEqKBMD25     = 1.6599444741
	NormEqKBMD35     = 1.9291330016
)

// NormEq returns the normalized equivalent width of the window type.
// The fixed types resolve to tabulated constants; the free-alpha types
// are integrated numerically.
func NormEq(t Type, opts ...Option) (float64, error) {
	switch t {
	case TypeRect:
		return NormEqRect, nil
	case TypeCosSquared:
		return NormEqCosSquared, nil
	case TypeKB20:
		return NormEqKB20, nil
	case TypeKB25:
		return NormEqKB25, nil
	case TypeKB35:
		return NormEqKB35, nil
	case TypeKBMD20:
		return NormEqKBMD20, nil
	case TypeKBMD25:
		return NormEqKBMD25, nil
	case TypeKBMD35:
		return NormEqKBMD35, nil
	case TypeKBAlpha, TypeKBMDAlpha:
		return normEqNumeric(t, opts...)
	default:
		return 0, errUnknownType
	}
}

// normEqNumeric integrates the continuous taper on a fine grid.
func normEqNumeric(t Type, opts ...Option) (float64, error) {
	const (
		width = 1.0
		n     = 8192
	)

	coeffs, err := Samples(t, width, width/n, opts...)
	if err != nil {
		return 0, err
	}

	return NormEqSampled(coeffs, width, width/n)
}

// NormEqSampled computes the normalized equivalent width from sampled
// window coefficients on a grid with spacing dx covering total width
// width: W · ∫w² / (∫w)² with Simpson-rule integrals.
func NormEqSampled(coeffs []float64, width, dx float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	if width <= 0 || dx <= 0 {
		return 0, fmt.Errorf("window: invalid grid: width %g, dx %g", width, dx)
	}

	if len(coeffs) < 3 {
		return 0, fmt.Errorf("window: need at least 3 samples, have %d", len(coeffs))
	}

	xs := make([]float64, len(coeffs))
	sq := make([]float64, len(coeffs))

	for i, w := range coeffs {
		xs[i] = float64(i) * dx
		sq[i] = w * w
	}

	sum := integrate.Simpsons(xs, coeffs)
	sumSq := integrate.Simpsons(xs, sq)

	if sum == 0 {
		return 0, fmt.Errorf("window: zero coherent gain")
	}

	return width * sumSq / (sum * sum), nil
}

// Enbw returns the equivalent noise bandwidth in bins of a sampled
// window, len(coeffs) · Σw² / (Σw)².
func Enbw(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return 0, fmt.Errorf("window: zero coherent gain")
	}

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// IsZeroEdged reports whether the window type vanishes at the exact
// support boundary x = ±W/2.
func IsZeroEdged(t Type) bool {
	switch t {
	case TypeCosSquared, TypeKBMD20, TypeKBMD25, TypeKBMD35, TypeKBMDAlpha:
		return true
	default:
		return false
	}
}
