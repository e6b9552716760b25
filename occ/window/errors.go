package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs = errors.New("window: coefficients must not be empty")
	errUnknownType = errors.New("window: unknown window type")
)

func validate(t Type, width, dx, alpha float64) error {
	if t < TypeRect || t > TypeKBMDAlpha {
		return errUnknownType
	}

	if width <= 0 {
		return fmt.Errorf("window: width must be > 0: %g", width)
	}

	if dx <= 0 {
		return fmt.Errorf("window: sample spacing must be > 0: %g", dx)
	}

	if width < 2*dx {
		return fmt.Errorf("window: width %g below two sample spacings %g", width, 2*dx)
	}

	if t == TypeKBMDAlpha && alpha <= 0 {
		return fmt.Errorf("window: modified Kaiser-Bessel requires alpha > 0: %g", alpha)
	}

	return nil
}
