package window

import (
	"math"
	"testing"
)

var allTypes = []Type{
	TypeRect, TypeCosSquared,
	TypeKB20, TypeKB25, TypeKB35,
	TypeKBMD20, TypeKBMD25, TypeKBMD35,
	TypeKBAlpha, TypeKBMDAlpha,
}

func TestWindowInvariants(t *testing.T) {
	const width = 12.0

	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			if got := At(typ, 0, width); math.Abs(got-1) > 1e-14 {
				t.Errorf("w(0) = %v, want 1", got)
			}

			for _, x := range []float64{width / 2 * 1.0001, width, 10 * width} {
				if got := At(typ, x, width); got != 0 {
					t.Errorf("w(%v) = %v, want 0 outside support", x, got)
				}

				if got := At(typ, -x, width); got != 0 {
					t.Errorf("w(-%v) = %v, want 0 outside support", x, got)
				}
			}

			for _, x := range []float64{0.3, 1.7, 4.4, 5.99} {
				wp := At(typ, x, width)
				wn := At(typ, -x, width)

				if wp != wn {
					t.Errorf("w(%v) = %v != w(-%v) = %v", x, wp, x, wn)
				}

				if wp < 0 || wp > 1 {
					t.Errorf("w(%v) = %v outside [0, 1]", x, wp)
				}
			}
		})
	}
}

func TestZeroEdgedTypes(t *testing.T) {
	const width = 8.0

	for _, typ := range allTypes {
		if !IsZeroEdged(typ) {
			continue
		}

		if got := At(typ, width/2, width); math.Abs(got) > 1e-12 {
			t.Errorf("%v: w(W/2) = %v, want 0", typ, got)
		}
	}
}

func TestSamplesGrid(t *testing.T) {
	s, err := Samples(TypeCosSquared, 10, 0.5)
	if err != nil {
		t.Fatalf("Samples: %v", err)
	}

	if len(s) != 21 {
		t.Fatalf("len = %d, want 21", len(s))
	}

	if s[10] != 1 {
		t.Errorf("center sample = %v, want 1", s[10])
	}

	for j := 0; j < len(s)/2; j++ {
		if s[j] != s[len(s)-1-j] {
			t.Errorf("sample %d = %v not symmetric with %v", j, s[j], s[len(s)-1-j])
		}
	}
}

func TestSamplesValidation(t *testing.T) {
	if _, err := Samples(TypeRect, 0, 0.1); err == nil {
		t.Error("zero width must fail")
	}

	if _, err := Samples(TypeRect, 10, 0); err == nil {
		t.Error("zero spacing must fail")
	}

	if _, err := Samples(TypeRect, 0.1, 0.25); err == nil {
		t.Error("width below two spacings must fail")
	}

	if _, err := Samples(TypeKBMDAlpha, 10, 0.1, WithAlpha(0)); err == nil {
		t.Error("kbmd with zero alpha must fail")
	}

	if _, err := Samples(Type(99), 10, 0.1); err == nil {
		t.Error("unknown type must fail")
	}
}

func TestNormEqAnalytic(t *testing.T) {
	if v, err := NormEq(TypeRect); err != nil || v != 1.0 {
		t.Errorf("NormEq(rect) = (%v, %v), want 1", v, err)
	}

	if v, err := NormEq(TypeCosSquared); err != nil || v != 1.5 {
		t.Errorf("NormEq(coss) = (%v, %v), want 1.5", v, err)
	}
}

func TestNormEqKB25Sampled(t *testing.T) {
	// kb25 on a 20 km window sampled every 0.1 km.
	s, err := Samples(TypeKB25, 20, 0.1)
	if err != nil {
		t.Fatalf("Samples: %v", err)
	}

	v, err := NormEqSampled(s, 20, 0.1)
	if err != nil {
		t.Fatalf("NormEqSampled: %v", err)
	}

	if math.Abs(v-1.6519208) > 1e-6 {
		t.Errorf("norm_eq(kb25) = %.7f, want 1.6519208", v)
	}
}

func TestNormEqTabulatedMatchesNumeric(t *testing.T) {
	cases := []struct {
		typ   Type
		alpha float64
	}{
		{TypeKB20, 2.0},
		{TypeKB25, 2.5},
		{TypeKB35, 3.5},
		{TypeKBMD20, 2.0},
		{TypeKBMD25, 2.5},
		{TypeKBMD35, 3.5},
	}

	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			tab, err := NormEq(tc.typ)
			if err != nil {
				t.Fatalf("NormEq: %v", err)
			}

			free := TypeKBAlpha
			if IsZeroEdged(tc.typ) {
				free = TypeKBMDAlpha
			}

			num, err := NormEq(free, WithAlpha(tc.alpha))
			if err != nil {
				t.Fatalf("NormEq numeric: %v", err)
			}

			if math.Abs(tab-num) > 2e-5 {
				t.Errorf("tabulated %v vs numeric %v", tab, num)
			}
		})
	}
}

func TestKBAlphaZeroReducesToRect(t *testing.T) {
	const width = 6.0

	for _, x := range []float64{0, 1, 2.5, 2.999} {
		if got := At(TypeKBAlpha, x, width, WithAlpha(0)); got != 1 {
			t.Errorf("kb(alpha=0) at %v = %v, want 1", x, got)
		}
	}
}

func TestEnbw(t *testing.T) {
	s, err := Samples(TypeRect, 10, 0.5)
	if err != nil {
		t.Fatalf("Samples: %v", err)
	}

	v, err := Enbw(s)
	if err != nil {
		t.Fatalf("Enbw: %v", err)
	}

	if math.Abs(v-1) > 1e-14 {
		t.Errorf("Enbw(rect) = %v, want 1", v)
	}
}
