// Package plan derives the per-sample window widths and index spans of
// one inversion call from the requested resolution and the profile
// geometry.
package plan

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/specfn"
)

// Plan holds the resolved output index window and the kernel span of
// every output sample.
type Plan struct {
	// Lo and Hi bound the output sample indices (inclusive) within
	// the input profile.
	Lo, Hi int

	// W is the window width in km per output sample, indexed from Lo.
	W []float64

	// Half is the span half-width in samples per output sample,
	// indexed from Lo: sample i uses input span [i-Half, i+Half].
	Half []int

	// MaxHalf is the largest span half-width of the plan.
	MaxHalf int

	// Spacing is the radial sample spacing in km.
	Spacing float64
}

// Count returns the number of output samples.
func (p *Plan) Count() int { return p.Hi - p.Lo + 1 }

// Build validates the request and computes the window width and index
// span of every output sample. The first sample whose span leaves the
// data aborts the build with a core.RangeError.
func Build(prof *core.CalibratedProfile, opts *core.ReconstructionOptions) (*Plan, error) {
	dr := prof.Spacing()

	lo, hi := 0, prof.Len()-1
	if opts.Range != (core.RadialRange{}) {
		var ok bool

		lo, hi, ok = prof.IndexRange(opts.Range.Lo, opts.Range.Hi)
		if !ok {
			return nil, fmt.Errorf("plan: radial range [%g, %g] outside data: %w",
				opts.Range.Lo, opts.Range.Hi, core.ErrDomain)
		}
	}

	p := &Plan{
		Lo:      lo,
		Hi:      hi,
		W:       make([]float64, hi-lo+1),
		Half:    make([]int, hi-lo+1),
		Spacing: dr,
	}

	for i := lo; i <= hi; i++ {
		w, err := WindowWidth(prof, opts, i)
		if err != nil {
			return nil, err
		}

		half := int(w / (2 * dr))
		if i-half < 0 || i+half >= prof.Len() {
			return nil, &core.RangeError{Index: i, Half: half, Size: prof.Len()}
		}

		p.W[i-lo] = w
		p.Half[i-lo] = half

		if half > p.MaxHalf {
			p.MaxHalf = half
		}
	}

	return p, nil
}

// WindowWidth returns the kernel window width at input sample i. The
// standard form is W = 2F²/res; the b-factor form corrects for the
// finite frequency stability of the reference oscillator.
func WindowWidth(prof *core.CalibratedProfile, opts *core.ReconstructionOptions, i int) (float64, error) {
	f := prof.F[i]

	if !opts.UseBFactor {
		return 2 * f * f / opts.Res, nil
	}

	if prof.RhoDot == nil {
		return 0, fmt.Errorf("plan: b-factor requires the radial velocity record: %w", core.ErrDomain)
	}

	rhoDot := math.Abs(prof.RhoDot[i])
	if rhoDot == 0 {
		return 0, fmt.Errorf("plan: zero radial velocity at sample %d: %w", i, core.ErrDomain)
	}

	omegaSigma := opts.Omega * opts.Sigma
	bScale := omegaSigma * omegaSigma / (2 * rhoDot)

	if bScale == 0 {
		return 2 * f * f / opts.Res, nil
	}

	// With b = bScale·W the width relation reads
	// res·(e^(-b) + b − 1) = F²·bScale·b, so b solves
	// x/(e^(-x) + x − 1) = res/(F²·bScale).
	y := opts.Res / (f * f * bScale)

	b, err := resolutionInverse(y)
	if err != nil {
		return 0, fmt.Errorf("plan: b-factor at sample %d: %w", i, err)
	}

	return b / bScale, nil
}

// resolutionInverse inverts y = x/(e^(-x) + x − 1) on x > 0 through
// the principal Lambert W branch: with P = y/(1−y),
// x = W(P·e^P) − P. The map covers y > 1 only.
func resolutionInverse(y float64) (float64, error) {
	if math.IsNaN(y) || y <= 1 {
		return 0, fmt.Errorf("plan: resolution factor %g not above 1: %w", y, core.ErrDomain)
	}

	if math.IsInf(y, 1) {
		return 0, fmt.Errorf("plan: resolution factor diverges: %w", core.ErrDomain)
	}

	p := y / (1 - y)

	arg := p * math.Exp(p)
	w, err := specfn.LambertW(arg)
	if err != nil {
		if errors.Is(err, specfn.ErrDomain) {
			return 0, fmt.Errorf("plan: resolution inversion: %w", core.ErrDomain)
		}

		return 0, fmt.Errorf("plan: resolution inversion: %w", core.ErrNonConvergence)
	}

	return w - p, nil
}
