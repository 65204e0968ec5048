package detail

import (
	"fmt"
	"math"

	"github.com/notargets/aga8/params"
	"gonum.org/v1/gonum/floats"
)

// Mixture is the composition dependent state of the DETAIL equation. It is
// built once per composition and then only read by the Helmholtz
// evaluators, so one Mixture may back any number of concurrent Contexts.
type Mixture struct {
	X         []float64 // mole fractions, owned by the Mixture
	MolarMass float64   // g/mol

	K3 float64 // size parameter, K^3
	U  float64 // energy parameter
	G  float64 // orientation parameter
	Q  float64 // quadrupole parameter
	Q2 float64 // Q^2
	F  float64 // high temperature parameter

	Bs  [params.NumVirialTerms]float64 // second virial coefficient parts
	Csn [params.NumTerms]float64       // composition weighted term coefficients, exponential band only

	tables *params.Tables
}

// ValidateComposition checks that x has one finite, non-negative fraction
// per component. The fractions are not required to sum to one.
func ValidateComposition(x []float64) error {
	if len(x) != params.NumComponents {
		return fmt.Errorf("%w: got %d fractions, want %d", ErrComposition, len(x), params.NumComponents)
	}
	for i, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) || xi < 0 {
			return fmt.Errorf("%w: %v fraction is %g", ErrComposition, params.Component(i), xi)
		}
	}
	return nil
}

// NewMixture applies the DETAIL mixing rules to composition x.
func NewMixture(x []float64) (m *Mixture, err error) {
	if err = ValidateComposition(x); err != nil {
		return nil, err
	}
	t := params.Load()
	m = &Mixture{
		X:      append([]float64(nil), x...),
		tables: t,
	}
	x = m.X
	m.MolarMass = params.MolarMass(x)

	// Pure fluid contributions. K, U and G also receive a binary part below;
	// Q and F depend on the pure fluids only.
	for i := 0; i < params.NumComponents; i++ {
		if x[i] > 0 {
			xi2 := x[i] * x[i]
			m.K3 += x[i] * t.Ki25[i]
			m.U += x[i] * t.Ei25[i]
			m.G += x[i] * t.Fluids[i].G
			m.Q += x[i] * t.Fluids[i].Q
			m.F += xi2 * t.Fluids[i].F
			floats.AddScaled(m.Bs[:], xi2, t.Bsnij2[i][i][:])
		}
	}
	m.K3 = math.Pow(m.K3, 2)
	m.U = math.Pow(m.U, 2)

	// Binary pair contributions, upper triangle only
	for i := 0; i < params.NumComponents; i++ {
		if x[i] <= 0 {
			continue
		}
		for j := i + 1; j < params.NumComponents; j++ {
			if x[j] <= 0 {
				continue
			}
			xij := 2 * x[i] * x[j]
			m.K3 += xij * t.Kij5[i][j]
			m.U += xij * t.Uij5[i][j]
			m.G += xij * t.Gij5[i][j]
			floats.AddScaled(m.Bs[:], xij, t.Bsnij2[i][j][:])
		}
	}
	m.K3 = math.Pow(m.K3, 0.6)
	m.U = math.Pow(m.U, 0.2)

	// Third virial and higher coefficients
	m.Q2 = math.Pow(m.Q, 2)
	for n := params.FirstExpTerm; n < params.NumTerms; n++ {
		term := t.Terms[n]
		m.Csn[n] = term.A * math.Pow(m.U, term.U)
		if term.Has(params.Orientation) {
			m.Csn[n] = m.Csn[n] * m.G
		}
		if term.Has(params.Quadrupole) {
			m.Csn[n] = m.Csn[n] * m.Q2
		}
		if term.Has(params.HighTemperature) {
			m.Csn[n] = m.Csn[n] * m.F
		}
	}
	return m, nil
}
