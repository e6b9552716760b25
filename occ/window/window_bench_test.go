package window

import "testing"

func BenchmarkSamplesKB25(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Samples(TypeKB25, 20, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormEqNumeric(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NormEq(TypeKBAlpha, WithAlpha(3.1)); err != nil {
			b.Fatal(err)
		}
	}
}
