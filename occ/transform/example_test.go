package transform_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-occult/internal/testutil"
	"github.com/cwbudde/algo-occult/occ/core"
	"github.com/cwbudde/algo-occult/occ/transform"
	"github.com/cwbudde/algo-occult/occ/window"
)

// Reconstruct a free-space profile: the diffraction correction of a
// constant unit amplitude is again a constant unit amplitude.
func ExampleReconstruct() {
	prof := testutil.SyntheticProfile(testutil.ProfileSpec{
		RhoStart: 87450,
		Spacing:  0.05,
		N:        2001,
		F:        1.0,
		B:        0.7,
		D:        2.5e5,
		Phi0:     1.2,
	})

	out, err := transform.Reconstruct(prof, core.ReconstructionOptions{
		Res:        0.25,
		WindowType: window.TypeKB25,
		Strategy:   core.StrategyFresnel,
		Normalize:  true,
		Range:      core.RadialRange{Lo: 87495, Hi: 87505},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	mid := out.T[len(out.T)/2]

	fmt.Printf("samples: %d\n", len(out.T))
	fmt.Printf("|T| at center: %.6f\n", math.Hypot(real(mid), imag(mid)))
	// Output:
	// samples: 201
	// |T| at center: 1.000000
}
