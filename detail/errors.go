package detail

import (
	"errors"
	"fmt"
)

var (
	// ErrComposition indicates a composition vector of the wrong length or
	// with a negative or non-finite mole fraction.
	ErrComposition = errors.New("detail: invalid composition")

	// ErrDegenerateInput indicates a pressure too close to zero to define a
	// density. The density is set to 0 and no property is computed.
	ErrDegenerateInput = errors.New("detail: pressure magnitude below machine epsilon")

	// ErrConvergence indicates the density iteration left its window or ran
	// out of iterations. The density is reset to the ideal gas value.
	ErrConvergence = errors.New("detail: calculation failed to converge in DETAIL method, ideal gas density returned")

	// ErrNotConverged is returned by the property stage when it is called
	// without a converged density.
	ErrNotConverged = errors.New("detail: properties requested without a converged density")
)

// ConvergenceError wraps ErrConvergence with the state of the density
// iteration at the point it gave up.
type ConvergenceError struct {
	Pressure    float64 // kPa
	Temperature float64 // K
	Iterations  int
	LogVolume   float64 // log(1/D) when the iteration stopped
	Density     float64 // ideal gas density handed back, mol/l
	Wrapped     error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v (P=%g kPa, T=%g K, %d iterations, log(v)=%g)",
		e.Wrapped, e.Pressure, e.Temperature, e.Iterations, e.LogVolume)
}

func (e *ConvergenceError) Unwrap() error {
	return e.Wrapped
}
