package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/plan"
	"github.com/cwbudde/algo-occult/occ/window"
)

// maxSpanSamples bounds the per-sample working set; a span beyond it
// indicates an absurd width request rather than a usable plan.
const maxSpanSamples = 1 << 28

// driver carries the state of one inversion call. The scratch buffers
// are sized to the largest span of the plan and reused across output
// samples.
type driver struct {
	prof *core.CalibratedProfile
	opts *core.ReconstructionOptions
	pl   *plan.Plan
	dr   float64

	win []float64 // window taper scratch
	psi []float64 // kernel phase scratch
}

// Reconstruct inverts the calibrated profile into the reconstructed
// transmittance over the requested radial range. The call either
// returns a complete profile or a single fatal error; no partial
// output escapes.
func Reconstruct(prof *core.CalibratedProfile, opts core.ReconstructionOptions) (*core.ReconstructedProfile, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	if err := opts.Validate(prof.Spacing()); err != nil {
		return nil, err
	}

	pl, err := plan.Build(prof, &opts)
	if err != nil {
		return nil, err
	}

	if span := 2*pl.MaxHalf + 1; span > maxSpanSamples {
		return nil, fmt.Errorf("transform: span of %d samples: %w", span, core.ErrAllocation)
	}

	d := &driver{
		prof: prof,
		opts: &opts,
		pl:   pl,
		dr:   pl.Spacing,
		win:  make([]float64, 2*pl.MaxHalf+1),
		psi:  make([]float64, 2*pl.MaxHalf+1),
	}

	out := &core.ReconstructedProfile{
		Rho:   append([]float64(nil), prof.Rho[pl.Lo:pl.Hi+1]...),
		T:     make([]complex128, pl.Count()),
		W:     append([]float64(nil), pl.W...),
		Power: make([]float64, pl.Count()),
		Phase: make([]float64, pl.Count()),
		Tau:   make([]float64, pl.Count()),
	}

	if opts.Strategy == core.StrategyFFT {
		err = d.runFFT(out)
	} else {
		err = d.run(out)
	}

	if err != nil {
		return nil, err
	}

	d.finalize(out)

	if opts.RunForward {
		out.THatFwd, err = d.forward(out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// run executes the per-sample strategies over the output range.
func (d *driver) run(out *core.ReconstructedProfile) error {
	total := d.pl.Count()

	for i := d.pl.Lo; i <= d.pl.Hi; i++ {
		t, err := d.invertSample(i)
		if err != nil {
			return err
		}

		out.T[i-d.pl.Lo] = t

		if d.opts.Progress != nil {
			d.opts.Progress(i-d.pl.Lo+1, total)
		}
	}

	return nil
}

// invertSample accumulates the quadrature sum for output sample i.
func (d *driver) invertSample(i int) (complex128, error) {
	half := d.pl.Half[i-d.pl.Lo]
	width := d.pl.W[i-d.pl.Lo]

	win, err := d.windowSamples(width, half)
	if err != nil {
		return 0, err
	}

	psi := d.psi[:2*half+1]
	if err := d.kernelPhases(i, half, psi); err != nil {
		return 0, err
	}

	var sumRe, sumIm float64

	for j := 0; j <= 2*half; j++ {
		sn, cs := math.Sincos(psi[j])
		th := d.prof.THat[i-half+j]
		w := win[j]

		// T̂ · w · e^{iψ}
		sumRe += w * (real(th)*cs - imag(th)*sn)
		sumIm += w * (real(th)*sn + imag(th)*cs)
	}

	f := d.prof.F[i]
	pre := complex(d.dr/(2*f), -d.dr/(2*f))
	t := pre * complex(sumRe, sumIm)

	if d.opts.Normalize {
		scale, err := d.normScale(i, half, win, psi)
		if err != nil {
			return 0, err
		}

		t *= complex(scale, 0)
	}

	return t, nil
}

// windowSamples fills the taper scratch for the given width and span.
func (d *driver) windowSamples(width float64, half int) ([]float64, error) {
	s, err := window.Samples(d.opts.WindowType, width, d.dr, window.WithAlpha(d.opts.WindowAlpha))
	if err != nil {
		return nil, fmt.Errorf("transform: %w: %v", core.ErrInvalidOption, err)
	}

	if len(s) != 2*half+1 {
		return nil, fmt.Errorf("transform: window grid of %d samples, span wants %d: %w",
			len(s), 2*half+1, core.ErrInvalidOption)
	}

	copy(d.win[:len(s)], s)

	return d.win[:len(s)], nil
}

// finalize derives power, phase and optical depth from the
// reconstructed transmittance and estimates the noise thresholds.
func (d *driver) finalize(out *core.ReconstructedProfile) {
	derive(out, d.prof, d.pl)
	d.thresholds(out)
}
