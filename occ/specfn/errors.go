package specfn

import "errors"

// Errors returned by the special functions.
var (
	ErrDomain         = errors.New("specfn: argument outside domain")
	ErrNonConvergence = errors.New("specfn: iteration did not converge")
)
