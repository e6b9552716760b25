package plan

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-occult/internal/testutil"
	"github.com/cwbudde/algo-occult/occ/core"
)

func fixtureProfile(n int) *core.CalibratedProfile {
	return testutil.SyntheticProfile(testutil.ProfileSpec{
		RhoStart: 87450,
		Spacing:  0.25,
		N:        n,
		F:        1.0,
		B:        0.7,
		D:        2.5e5,
		Phi0:     1.2,
	})
}

func TestStandardWindowWidth(t *testing.T) {
	prof := fixtureProfile(1000)
	opts := core.ReconstructionOptions{Res: 0.75}

	w, err := WindowWidth(prof, &opts, 500)
	if err != nil {
		t.Fatalf("WindowWidth: %v", err)
	}

	want := 2 * prof.F[500] * prof.F[500] / opts.Res
	if w != want {
		t.Errorf("W = %v, want exactly %v", w, want)
	}
}

func TestBFactorRoundTrip(t *testing.T) {
	prof := fixtureProfile(1000)
	prof.RhoDot = make([]float64, prof.Len())

	for i := range prof.RhoDot {
		prof.RhoDot[i] = 1.4
	}

	opts := core.ReconstructionOptions{
		Res:        0.75,
		UseBFactor: true,
		Sigma:      1e-5,
		Omega:      2 * math.Pi * 8.4e3,
	}

	w, err := WindowWidth(prof, &opts, 500)
	if err != nil {
		t.Fatalf("WindowWidth: %v", err)
	}

	// Substituting the solved width back into the defining relation
	// must reproduce the requested resolution.
	f := prof.F[500]
	omegaSigma := opts.Omega * opts.Sigma
	b := omegaSigma * omegaSigma * w / (2 * prof.RhoDot[500])
	res := (2 * f * f / w) * (b * b / 2) / (math.Exp(-b) + b - 1)

	if rel := math.Abs(res-opts.Res) / opts.Res; rel > 1e-10 {
		t.Errorf("round-trip resolution %v, want %v (rel %v)", res, opts.Res, rel)
	}

	if w <= 2*f*f/opts.Res {
		t.Errorf("b-factor width %v must exceed the standard width %v", w, 2*f*f/opts.Res)
	}
}

func TestBFactorRequiresRhoDot(t *testing.T) {
	prof := fixtureProfile(100)
	opts := core.ReconstructionOptions{Res: 0.75, UseBFactor: true, Sigma: 1e-7, Omega: 1e4}

	if _, err := WindowWidth(prof, &opts, 50); !errors.Is(err, core.ErrDomain) {
		t.Errorf("err = %v, want ErrDomain", err)
	}
}

func TestResolutionInverseDomain(t *testing.T) {
	if _, err := resolutionInverse(0.5); !errors.Is(err, core.ErrDomain) {
		t.Errorf("y=0.5: err = %v, want ErrDomain", err)
	}

	if _, err := resolutionInverse(1.0); !errors.Is(err, core.ErrDomain) {
		t.Errorf("y=1: err = %v, want ErrDomain", err)
	}

	if _, err := resolutionInverse(math.Inf(1)); !errors.Is(err, core.ErrDomain) {
		t.Errorf("y=+Inf: err = %v, want ErrDomain", err)
	}
}

func TestBuildSpans(t *testing.T) {
	prof := fixtureProfile(1000)
	opts := core.ReconstructionOptions{
		Res:   0.75,
		Range: core.RadialRange{Lo: 87500, Hi: 87600},
	}

	p, err := Build(prof, &opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if p.Count() != len(p.W) || p.Count() != len(p.Half) {
		t.Fatalf("plan arrays disagree: count %d, W %d, Half %d", p.Count(), len(p.W), len(p.Half))
	}

	dr := prof.Spacing()
	for i, half := range p.Half {
		want := int(p.W[i] / (2 * dr))
		if half != want {
			t.Errorf("half[%d] = %d, want %d", i, half, want)
		}

		idx := p.Lo + i
		if idx-half < 0 || idx+half >= prof.Len() {
			t.Errorf("span of sample %d leaves the data", idx)
		}
	}
}

func TestBuildFullRangeFails(t *testing.T) {
	prof := fixtureProfile(1000)
	opts := core.ReconstructionOptions{Res: 0.75}

	_, err := Build(prof, &opts)
	if !errors.Is(err, core.ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}

	var re *core.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("err %T does not carry RangeError", err)
	}

	if re.Index != 0 {
		t.Errorf("first failing index = %d, want 0", re.Index)
	}

	if re.Size != prof.Len() {
		t.Errorf("reported size = %d, want %d", re.Size, prof.Len())
	}
}

func TestBuildRangeOutsideData(t *testing.T) {
	prof := fixtureProfile(100)
	opts := core.ReconstructionOptions{
		Res:   0.75,
		Range: core.RadialRange{Lo: 1000, Hi: 2000},
	}

	if _, err := Build(prof, &opts); !errors.Is(err, core.ErrDomain) {
		t.Errorf("err = %v, want ErrDomain", err)
	}
}
