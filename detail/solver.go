package detail

import (
	"fmt"
	"math"

	"github.com/notargets/aga8/params"
)

// State is the position of a density solve in its life cycle.
type State uint8

const (
	Estimating State = iota // picking the starting density
	Iterating               // Newton steps in log(v)
	Converged               // density consistent with the input pressure
	Diverged                // gave up; the density holds the fallback value
)

func (s State) String() string {
	switch s {
	case Estimating:
		return "estimating"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

const (
	maxIterations = 20
	tolerance     = 0.0000001

	// The iteration aborts when log(v) leaves [logVolumeMin, logVolumeMax].
	logVolumeMin = -7.
	logVolumeMax = 100.

	// Density held by a solver that has never run. Being positive, it makes
	// the first solve start from the ideal gas density.
	unsetDensity = 1e10
)

// Solver finds the molar density of a mixture at a given pressure and
// temperature by Newton iteration on log(v) = -log(D).
//
// The density left by one call seeds the next one only when it is negative
// (see WarmStart); any other value restarts from the ideal gas estimate.
type Solver struct {
	res *Residual

	D          float64 // molar density, mol/l
	Z          float64 // compressibility factor at the last density trial
	P          float64 // pressure at the last density trial, kPa
	DPdD       float64 // dP/dD at the last density trial, kPa l/mol
	State      State
	Iterations int
}

func NewSolver(res *Residual) *Solver {
	return &Solver{
		res:   res,
		D:     unsetDensity,
		Z:     Unset,
		P:     Unset,
		DPdD:  Unset,
		State: Estimating,
	}
}

// Residual returns the evaluator the solver iterates on.
func (s *Solver) Residual() *Residual { return s.res }

// WarmStart makes the next Solve start from density |d| instead of the
// ideal gas estimate.
func (s *Solver) WarmStart(d float64) {
	s.D = -math.Abs(d)
}

// Solve iterates for the density at pressure P (kPa) and temperature T (K).
// On success the solver is Converged and D, Z, P and DPdD are valid. On
// failure D holds the ideal gas density (or 0 for a zero pressure), Z and P
// are Unset and the returned error wraps ErrDegenerateInput or
// ErrConvergence.
func (s *Solver) Solve(P, T float64) error {
	s.State = Estimating
	s.Iterations = 0
	s.Z, s.P, s.DPdD = Unset, Unset, Unset

	if math.Abs(P) < params.Epsilon {
		s.D = 0
		s.State = Diverged
		return fmt.Errorf("%w: P=%g kPa", ErrDegenerateInput, P)
	}

	if s.D > -params.Epsilon {
		s.D = P / params.R / T
	} else {
		s.D = math.Abs(s.D)
	}

	plog := math.Log(P)
	vlog := -math.Log(s.D)
	s.State = Iterating
	for it := 1; it <= maxIterations; it++ {
		s.Iterations = it
		if vlog < logVolumeMin || vlog > logVolumeMax {
			return s.fail(P, T, vlog)
		}

		s.D = math.Exp(-vlog)
		s.P, s.Z, s.DPdD = s.res.Pressure(T, s.D)

		if s.DPdD < params.Epsilon || s.P < params.Epsilon {
			// Degenerate slope, step towards lower density and retry
			vlog += 0.1
			continue
		}

		// First order Newton step with log(P) as the known variable and
		// log(v) as the unknown.
		dpdlv := -s.D * s.DPdD
		vdiff := (math.Log(s.P) - plog) * s.P / dpdlv
		vlog = vlog - vdiff
		if math.Abs(vdiff) < tolerance {
			s.D = math.Exp(-vlog)
			s.State = Converged
			return nil
		}
	}
	return s.fail(P, T, vlog)
}

func (s *Solver) fail(P, T, vlog float64) error {
	s.Z, s.P, s.DPdD = Unset, Unset, Unset
	s.D = P / params.R / T
	s.State = Diverged
	return &ConvergenceError{
		Pressure:    P,
		Temperature: T,
		Iterations:  s.Iterations,
		LogVolume:   vlog,
		Density:     s.D,
		Wrapped:     ErrConvergence,
	}
}
