// Package window provides the tapering functions used by the Fresnel
// inversion engine together with their normalized equivalent widths.
//
// A window w(x; W) is a real, even function with support [-W/2, W/2],
// w(0) = 1. The Kaiser-Bessel family is parameterized by alpha; the
// modified family (KBMD) subtracts the pedestal so the taper reaches
// zero at the edges.
package window

import (
	"math"

	"github.com/cwbudde/algo-occult/occ/specfn"
)

// Type identifies a window function.
type Type int

const (
	TypeRect Type = iota
	TypeCosSquared
	TypeKB20
	TypeKB25
	TypeKB35
	TypeKBMD20
	TypeKBMD25
	TypeKBMD35
	TypeKBAlpha
	TypeKBMDAlpha
)

// String returns the conventional short name of the window type.
func (t Type) String() string {
	switch t {
	case TypeRect:
		return "rect"
	case TypeCosSquared:
		return "coss"
	case TypeKB20:
		return "kb20"
	case TypeKB25:
		return "kb25"
	case TypeKB35:
		return "kb35"
	case TypeKBMD20:
		return "kbmd20"
	case TypeKBMD25:
		return "kbmd25"
	case TypeKBMD35:
		return "kbmd35"
	case TypeKBAlpha:
		return "kb"
	case TypeKBMDAlpha:
		return "kbmd"
	default:
		return "unknown"
	}
}

// Option configures window evaluation.
type Option func(*config)

type config struct {
	alpha float64
}

func defaultConfig() config {
	return config{alpha: 2.5}
}

// WithAlpha sets the shape parameter for the free-alpha Kaiser-Bessel
// types. It is ignored by the fixed-alpha types.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// FixedAlpha returns the built-in shape parameter of t and true when t
// is one of the fixed-alpha Kaiser-Bessel types.
func FixedAlpha(t Type) (float64, bool) {
	switch t {
	case TypeKB20, TypeKBMD20:
		return 2.0, true
	case TypeKB25, TypeKBMD25:
		return 2.5, true
	case TypeKB35, TypeKBMD35:
		return 3.5, true
	default:
		return 0, false
	}
}

func resolveAlpha(t Type, cfg config) float64 {
	if a, ok := FixedAlpha(t); ok {
		return a
	}

	return cfg.alpha
}

// At evaluates the window at offset x from the center for total width
// width. Offsets with |x| > width/2 evaluate to zero.
func At(t Type, x, width float64, opts ...Option) float64 {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return eval(t, x, width, resolveAlpha(t, cfg))
}

func eval(t Type, x, width, alpha float64) float64 {
	if width <= 0 || math.Abs(x) > width/2 {
		return 0
	}

	switch t {
	case TypeRect:
		return 1
	case TypeCosSquared:
		c := math.Cos(math.Pi * x / width)
		return c * c
	case TypeKB20, TypeKB25, TypeKB35, TypeKBAlpha:
		return kbAt(x, width, alpha)
	case TypeKBMD20, TypeKBMD25, TypeKBMD35, TypeKBMDAlpha:
		return kbmdAt(x, width, alpha)
	default:
		return 0
	}
}

func kbAt(x, width, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	r := 2 * x / width
	arg := alpha * math.Pi * math.Sqrt(math.Max(0, 1-r*r))

	return specfn.BesselI0(arg) / specfn.BesselI0(alpha*math.Pi)
}

func kbmdAt(x, width, alpha float64) float64 {
	r := 2 * x / width
	arg := alpha * math.Pi * math.Sqrt(math.Max(0, 1-r*r))

	return (specfn.BesselI0(arg) - 1) / (specfn.BesselI0(alpha*math.Pi) - 1)
}

// Samples returns the window sampled on an odd-length symmetric grid
// with spacing dx: positions j*dx for j in [-n, n], n = ⌊width/(2 dx)⌋.
func Samples(t Type, width, dx float64, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validate(t, width, dx, resolveAlpha(t, cfg)); err != nil {
		return nil, err
	}

	half := int(width / (2 * dx))
	out := make([]float64, 2*half+1)
	alpha := resolveAlpha(t, cfg)

	for j := range out {
		out[j] = eval(t, float64(j-half)*dx, width, alpha)
	}

	return out, nil
}
