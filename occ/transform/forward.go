package transform

import (
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
)

// forward convolves the reconstructed transmittance back through the
// diffraction kernel,
//
//	T̂(ρᵢ) ≈ (1+i)/(2Fᵢ) · Δρ · Σⱼ T(ρⱼ) w(ρⱼ−ρᵢ) e^{−iψᵢⱼ},
//
// as a self-check of the inversion. Samples whose span leaves the
// reconstructed range stay zero.
func (d *driver) forward(out *core.ReconstructedProfile) ([]complex128, error) {
	fwd := make([]complex128, d.pl.Count())

	for i := d.pl.Lo; i <= d.pl.Hi; i++ {
		half := d.pl.Half[i-d.pl.Lo]
		if i-half < d.pl.Lo || i+half > d.pl.Hi {
			continue
		}

		width := d.pl.W[i-d.pl.Lo]

		win, err := d.windowSamples(width, half)
		if err != nil {
			return nil, err
		}

		psi := d.psi[:2*half+1]
		if err := d.kernelPhases(i, half, psi); err != nil {
			return nil, err
		}

		var sumRe, sumIm float64

		for j := 0; j <= 2*half; j++ {
			sn, cs := math.Sincos(psi[j])
			t := out.T[i-half+j-d.pl.Lo]
			w := win[j]

			// T · w · e^{−iψ}
			sumRe += w * (real(t)*cs + imag(t)*sn)
			sumIm += w * (imag(t)*cs - real(t)*sn)
		}

		f := d.prof.F[i]
		pre := complex(d.dr/(2*f), d.dr/(2*f))
		t := pre * complex(sumRe, sumIm)

		if d.opts.Normalize {
			scale, err := d.normScale(i, half, win, psi)
			if err != nil {
				return nil, err
			}

			t *= complex(scale, 0)
		}

		fwd[i-d.pl.Lo] = t
	}

	return fwd, nil
}
