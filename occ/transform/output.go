package transform

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/plan"
	"github.com/cwbudde/algo-occult/occ/window"
)

// derive fills power, phase and normal optical depth from the
// reconstructed transmittance: power = |T|², phase = arg T and
// τ = −sin|B|·ln(power), with fully transparent regions at τ = 0.
func derive(out *core.ReconstructedProfile, prof *core.CalibratedProfile, pl *plan.Plan) {
	n := len(out.T)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, t := range out.T {
		re[i] = real(t)
		im[i] = imag(t)
	}

	vecmath.Power(out.Power, re, im)

	for i := range out.T {
		out.Phase[i] = math.Atan2(im[i], re[i])

		sinB := math.Abs(math.Sin(prof.B[pl.Lo+i]))
		if out.Power[i] > 0 {
			out.Tau[i] = -sinB * math.Log(out.Power[i])
		} else {
			out.Tau[i] = math.Inf(1)
		}
	}
}

// thresholds estimates the optical-depth noise floor. The raw noise
// power follows from half the mean squared difference of neighboring
// input samples inside the output range; the processed threshold
// credits the noise-bandwidth reduction of the resolution and the
// window shape.
func (d *driver) thresholds(out *core.ReconstructedProfile) {
	lo, hi := d.pl.Lo, d.pl.Hi
	if hi <= lo {
		return
	}

	var acc float64
	for i := lo + 1; i <= hi; i++ {
		diff := d.prof.THat[i] - d.prof.THat[i-1]
		acc += real(diff)*real(diff) + imag(diff)*imag(diff)
	}

	noise := acc / (2 * float64(hi-lo))
	if noise <= 0 {
		return
	}

	mid := (lo + hi) / 2
	sinB := math.Abs(math.Sin(d.prof.B[mid]))

	out.RawTauThreshold = -sinB * math.Log(noise)

	normEq, err := window.NormEq(d.opts.WindowType, window.WithAlpha(d.opts.WindowAlpha))
	if err != nil {
		normEq = 1
	}

	// Bandwidth shrinks from the Nyquist of the raw grid to the
	// effective resolution bandwidth normEq/res.
	gain := normEq * 2 * d.dr / d.opts.Res
	if gain > 0 && gain < 1 {
		out.TauThreshold = -sinB * math.Log(noise*gain)
	} else {
		out.TauThreshold = out.RawTauThreshold
	}
}
