package specfn

import (
	"errors"
	"math"
	"testing"
)

func TestBesselJ0KnownValues(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 0.7651976865579666},
		{2.404825557695773, 0}, // first zero
		{5, -0.17759677131433830},
		{10, -0.2459357644513483},
		{-10, -0.2459357644513483},
	}

	for _, tc := range cases {
		got := BesselJ0(tc.x)
		if math.Abs(got-tc.want) > 5e-8 {
			t.Errorf("BesselJ0(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestBesselI0KnownValues(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 1.2660658777520082},
		{3.75, 9.118945860844},
		{10, 2815.716628466254},
	}

	for _, tc := range cases {
		got := BesselI0(tc.x)
		if math.Abs(got-tc.want)/tc.want > 5e-7 {
			t.Errorf("BesselI0(%v) = %v, want %v", tc.x, got, tc.want)
		}

		if neg := BesselI0(-tc.x); neg != got {
			t.Errorf("BesselI0(-%v) = %v, want even symmetry %v", tc.x, neg, got)
		}
	}
}

func TestBesselNaN(t *testing.T) {
	if !math.IsNaN(BesselJ0(math.NaN())) {
		t.Error("BesselJ0(NaN) must be NaN")
	}

	if !math.IsNaN(BesselI0(math.NaN())) {
		t.Error("BesselI0(NaN) must be NaN")
	}
}

func TestFresnelKnownValues(t *testing.T) {
	cases := []struct {
		x, c, s float64
	}{
		{0.5, 0.49234422587145, 0.06473243285999},
		{1.0, 0.77989340037682, 0.43825914739035},
		{2.0, 0.48825340607534, 0.34341567836370},
		{5.0, 0.56363118870401, 0.49919138191712},
		{10.0, 0.49989869420551, 0.46816997858488},
	}

	for _, tc := range cases {
		c, s := Fresnel(tc.x)
		if math.Abs(c-tc.c) > 1e-10 || math.Abs(s-tc.s) > 1e-10 {
			t.Errorf("Fresnel(%v) = (%v, %v), want (%v, %v)", tc.x, c, s, tc.c, tc.s)
		}
	}
}

func TestFresnelLimitsAndSymmetry(t *testing.T) {
	if c, s := Fresnel(0); c != 0 || s != 0 {
		t.Errorf("Fresnel(0) = (%v, %v), want (0, 0)", c, s)
	}

	if c, s := Fresnel(math.Inf(1)); c != 0.5 || s != 0.5 {
		t.Errorf("Fresnel(+Inf) = (%v, %v), want (0.5, 0.5)", c, s)
	}

	if c, s := Fresnel(math.Inf(-1)); c != -0.5 || s != -0.5 {
		t.Errorf("Fresnel(-Inf) = (%v, %v), want (-0.5, -0.5)", c, s)
	}

	for _, x := range []float64{0.3, 1.7, 4.5, 7.2} {
		cp, sp := Fresnel(x)
		cn, sn := Fresnel(-x)

		if cn != -cp || sn != -sp {
			t.Errorf("Fresnel(-%v) = (%v, %v), want odd symmetry", x, cn, sn)
		}
	}

	if c, s := Fresnel(math.NaN()); !math.IsNaN(c) || !math.IsNaN(s) {
		t.Error("Fresnel(NaN) must be NaN")
	}
}

func TestFresnelRegionContinuity(t *testing.T) {
	// Adjacent evaluations across the region boundaries must agree closely.
	for _, x := range []float64{4.0, 6.0} {
		cl, sl := Fresnel(x - 1e-9)
		cr, sr := Fresnel(x + 1e-9)

		if math.Abs(cl-cr) > 1e-6 || math.Abs(sl-sr) > 1e-6 {
			t.Errorf("discontinuity at x=%v: C %v vs %v, S %v vs %v", x, cl, cr, sl, sr)
		}
	}
}

func TestLambertWKnownValue(t *testing.T) {
	w, err := LambertW(1.0)
	if err != nil {
		t.Fatalf("LambertW(1): %v", err)
	}

	if math.Abs(w-0.5671432904097838) > 1e-12 {
		t.Errorf("LambertW(1) = %.16f, want 0.5671432904097838", w)
	}
}

func TestLambertWRoundTrip(t *testing.T) {
	for x := -1.0; x <= 50.0; x += 0.25 {
		y := x * math.Exp(x)

		w, err := LambertW(y)
		if err != nil {
			t.Fatalf("LambertW(%v): %v", y, err)
		}

		if math.Abs(w-x) > 1e-12 {
			t.Errorf("LambertW(%v e^%v) = %v, want %v", x, x, w, x)
		}
	}
}

func TestLambertWDomain(t *testing.T) {
	if w, err := LambertW(-1 / math.E); err != nil || w != -1 {
		t.Errorf("LambertW(-1/e) = (%v, %v), want (-1, nil)", w, err)
	}

	if _, err := LambertW(-0.5); !errors.Is(err, ErrDomain) {
		t.Errorf("LambertW(-0.5) err = %v, want ErrDomain", err)
	}

	if _, err := LambertW(math.NaN()); !errors.Is(err, ErrDomain) {
		t.Errorf("LambertW(NaN) err = %v, want ErrDomain", err)
	}

	if w, err := LambertW(math.Inf(1)); err != nil || !math.IsInf(w, 1) {
		t.Errorf("LambertW(+Inf) = (%v, %v), want (+Inf, nil)", w, err)
	}
}

func TestPolyEval(t *testing.T) {
	// 2 - 3x + x^3 at x = 2: 2 - 6 + 8 = 4
	c := []float64{2, -3, 0, 1}
	if got := PolyEval(c, 2); got != 4 {
		t.Errorf("PolyEval = %v, want 4", got)
	}

	if got := PolyEval(nil, 3); got != 0 {
		t.Errorf("PolyEval(nil) = %v, want 0", got)
	}

	d := PolyDerive(c) // -3 + 3x^2
	want := []float64{-3, 0, 3}

	if len(d) != len(want) {
		t.Fatalf("PolyDerive len = %d, want %d", len(d), len(want))
	}

	for i := range d {
		if d[i] != want[i] {
			t.Errorf("PolyDerive[%d] = %v, want %v", i, d[i], want[i])
		}
	}
}
