package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-occult/occ/window"
)

func ExampleNormEq() {
	rect, _ := window.NormEq(window.TypeRect)
	coss, _ := window.NormEq(window.TypeCosSquared)
	kb25, _ := window.NormEq(window.TypeKB25)

	fmt.Printf("rect: %.1f\n", rect)
	fmt.Printf("coss: %.1f\n", coss)
	fmt.Printf("kb25: %.4f\n", kb25)
	// Output:
	// rect: 1.0
	// coss: 1.5
	// kb25: 1.6519
}

func ExampleSamples() {
	s, err := window.Samples(window.TypeCosSquared, 4, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range s {
		fmt.Printf("%.2f ", v)
	}

	fmt.Println()
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}
