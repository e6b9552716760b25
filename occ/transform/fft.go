package transform

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/phase"
)

// fftSpacingTol is the accepted relative spacing deviation of a grid
// fed to the FFT strategy.
const fftSpacingTol = 1e-9

// runFFT evaluates the quadratic kernel for the whole output range as
// one circular convolution. The window and Fresnel scale are frozen at
// the center of the output range (the kernel becomes position
// invariant), so the strategy applies to uniform grids only; samples
// closer than the kernel half-width to either data edge are rejected
// rather than wrapped.
func (d *driver) runFFT(out *core.ReconstructedProfile) error {
	if err := d.checkUniform(); err != nil {
		return err
	}

	n := d.prof.Len()
	center := (d.pl.Lo + d.pl.Hi) / 2
	half := d.pl.Half[center-d.pl.Lo]
	width := d.pl.W[center-d.pl.Lo]
	f := d.prof.F[center]

	if d.pl.Lo < half {
		return &core.RangeError{Index: d.pl.Lo, Half: half, Size: n}
	}

	if d.pl.Hi+half >= n {
		return &core.RangeError{Index: d.pl.Hi, Half: half, Size: n}
	}

	win, err := d.windowSamples(width, half)
	if err != nil {
		return err
	}

	psi := d.psi[:2*half+1]
	rho0 := d.prof.Rho[center]
	for j := range psi {
		psi[j] = phase.Quadratic(d.prof.Rho[center-half+j], rho0, f)
	}

	fftSize := nextPowerOf2(n + 2*half + 1)

	fplan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("transform: failed to create FFT plan: %w", core.ErrAllocation)
	}

	// Signal spectrum.
	sig := make([]complex128, fftSize)
	copy(sig, d.prof.THat)

	sigFreq := make([]complex128, fftSize)
	if err := fplan.Forward(sigFreq, sig); err != nil {
		return fmt.Errorf("transform: forward FFT failed: %v: %w", err, core.ErrInvalidOption)
	}

	// Kernel spectrum: the even kernel is laid out circularly around
	// index zero.
	ker := make([]complex128, fftSize)
	for m := -half; m <= half; m++ {
		sn, cs := math.Sincos(psi[m+half])
		v := complex(win[m+half]*cs, win[m+half]*sn)

		idx := m
		if idx < 0 {
			idx += fftSize
		}

		ker[idx] = v
	}

	kerFreq := make([]complex128, fftSize)
	if err := fplan.Forward(kerFreq, ker); err != nil {
		return fmt.Errorf("transform: forward FFT failed: %v: %w", err, core.ErrInvalidOption)
	}

	for k := range sigFreq {
		sigFreq[k] *= kerFreq[k]
	}

	res := make([]complex128, fftSize)
	if err := fplan.Inverse(res, sigFreq); err != nil {
		return fmt.Errorf("transform: inverse FFT failed: %v: %w", err, core.ErrInvalidOption)
	}

	pre := complex(d.dr/(2*f), -d.dr/(2*f))

	scale := complex(1, 0)
	if d.opts.Normalize {
		s, err := d.fftNormScale(f, win, psi)
		if err != nil {
			return err
		}

		scale = complex(s, 0)
	}

	total := d.pl.Count()
	for i := d.pl.Lo; i <= d.pl.Hi; i++ {
		out.T[i-d.pl.Lo] = pre * res[i] * scale

		if d.opts.Progress != nil {
			d.opts.Progress(i-d.pl.Lo+1, total)
		}
	}

	return nil
}

// fftNormScale is the position-invariant coherent normalization of the
// frozen kernel.
func (d *driver) fftNormScale(f float64, win, psi []float64) (float64, error) {
	var sumRe, sumIm float64

	for j := range psi {
		sn, cs := math.Sincos(psi[j])
		sumRe += win[j] * cs
		sumIm += win[j] * sn
	}

	den := d.dr * math.Hypot(sumRe, sumIm)
	if den == 0 {
		return 0, fmt.Errorf("transform: windowed kernel sum vanished: %w", core.ErrDomain)
	}

	return math.Sqrt2 * f / den, nil
}

// checkUniform rejects grids whose spacing varies beyond the FFT
// tolerance.
func (d *driver) checkUniform() error {
	rho := d.prof.Rho
	dr := d.dr

	for i := 1; i < len(rho); i++ {
		if math.Abs((rho[i]-rho[i-1])-dr) > fftSpacingTol*dr {
			return fmt.Errorf("transform: fft strategy requires a uniform grid (sample %d): %w",
				i, core.ErrInvalidOption)
		}
	}

	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
