// Package detail implements the AGA8 DETAIL equation of state for natural
// gas mixtures of the 21 components in package params.
//
// An evaluation runs in four stages:
//
//	NewMixture  - composition mixing rules, once per composition
//	Residual    - residual Helmholtz energy derivatives at (T, D)
//	Solver      - molar density at (P, T) by Newton iteration
//	Synthesize  - Z, H, S, Cv, Cp, W, JT, kappa ... at the converged density
//
// Evaluate strings them together for one query. Pressures are in kPa,
// temperatures in K and densities in mol/l.
//
// All mutable state lives in a Context (mixture, temperature cache, solver
// state), so independent evaluations may run concurrently as long as each
// one owns its Context. The parameter tables are shared and read-only.
package detail

// Result is the outcome of one (P, T, composition) evaluation.
type Result struct {
	Properties

	// Z and pressure from the last density trial of the solver, kept apart
	// from the property stage values for comparison.
	SolverZ        float64
	SolverPressure float64 // kPa

	Converged  bool
	State      State
	Iterations int
	Message    string // empty on success
}

// Context carries the per-composition state of repeated evaluations.
// It is not safe for concurrent use.
type Context struct {
	Mixture  *Mixture
	Residual *Residual
	Solver   *Solver
}

// NewContext reduces composition x and prepares an evaluation context.
func NewContext(x []float64) (*Context, error) {
	mix, err := NewMixture(x)
	if err != nil {
		return nil, err
	}
	return NewMixtureContext(mix), nil
}

// NewMixtureContext prepares an evaluation context for an already reduced
// mixture. Several contexts may share one Mixture.
func NewMixtureContext(mix *Mixture) *Context {
	res := NewResidual(mix)
	return &Context{
		Mixture:  mix,
		Residual: res,
		Solver:   NewSolver(res),
	}
}

// Evaluate computes the properties of the context mixture at pressure P
// (kPa) and temperature T (K).
//
// On a solver failure the returned Result is still usable: D holds the
// fallback density (the ideal gas value, or 0 at zero pressure) and
// MolarMass is set, while every other property is Unset. The error is
// returned alongside it.
func (c *Context) Evaluate(P, T float64) (*Result, error) {
	r := &Result{
		Properties:     UnsetProperties(),
		SolverZ:        Unset,
		SolverPressure: Unset,
	}
	r.MolarMass = c.Mixture.MolarMass

	err := c.Solver.Solve(P, T)
	r.State = c.Solver.State
	r.Iterations = c.Solver.Iterations
	if err != nil {
		r.D = c.Solver.D
		r.Message = err.Error()
		return r, err
	}
	r.SolverZ = c.Solver.Z
	r.SolverPressure = c.Solver.P

	props, err := Synthesize(c.Solver, T)
	if err != nil {
		r.D = c.Solver.D
		r.Message = err.Error()
		return r, err
	}
	r.Properties = props
	r.Converged = true
	return r, nil
}

// Evaluate computes the properties of composition x (21 mole fractions in
// params.Component order) at pressure P (kPa) and temperature T (K) with a
// fresh Context.
func Evaluate(P, T float64, x []float64) (*Result, error) {
	c, err := NewContext(x)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(P, T)
}
