package specfn

import "testing"

func BenchmarkFresnel(b *testing.B) {
	x := 0.0

	for i := 0; i < b.N; i++ {
		c, s := Fresnel(x)
		x += 1e-6

		_ = c
		_ = s
	}
}

func BenchmarkBesselI0(b *testing.B) {
	x := 0.0

	for i := 0; i < b.N; i++ {
		_ = BesselI0(x)
		x += 1e-6
	}
}

func BenchmarkLambertW(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := LambertW(1.5); err != nil {
			b.Fatal(err)
		}
	}
}
