package detail

import (
	"math"

	"github.com/notargets/aga8/params"
)

// Unset marks a property that has not been computed.
var Unset = math.NaN()

// jtUndefined is reported as the Joule-Thomson coefficient at zero density.
const jtUndefined = 1e20

// Properties holds the thermodynamic state of a mixture at one temperature
// and density.
type Properties struct {
	Z         float64 // compressibility factor
	P         float64 // pressure recomputed from Z, kPa
	D         float64 // molar density, mol/l
	MolarMass float64 // g/mol
	DPdD      float64 // dP/dD, kPa l/mol
	D2PdD2    float64 // d2P/dD2, kPa (l/mol)^2
	DPdT      float64 // dP/dT, kPa/K
	A         float64 // Helmholtz energy, J/mol
	U         float64 // internal energy, J/mol
	H         float64 // enthalpy, J/mol
	S         float64 // entropy, J/(mol K)
	Cv        float64 // isochoric heat capacity, J/(mol K)
	Cp        float64 // isobaric heat capacity, J/(mol K)
	W         float64 // speed of sound, m/s
	G         float64 // Gibbs energy, J/mol
	JT        float64 // Joule-Thomson coefficient, K/kPa
	Kappa     float64 // isentropic exponent
}

// UnsetProperties returns a record with every field set to Unset.
func UnsetProperties() Properties {
	return Properties{
		Z: Unset, P: Unset, D: Unset, MolarMass: Unset,
		DPdD: Unset, D2PdD2: Unset, DPdT: Unset,
		A: Unset, U: Unset, H: Unset, S: Unset, Cv: Unset, Cp: Unset,
		W: Unset, G: Unset, JT: Unset, Kappa: Unset,
	}
}

// IsSet reports whether the record has been filled in.
func (p Properties) IsSet() bool {
	return !math.IsNaN(p.Z)
}

// Synthesize derives the thermodynamic properties at temperature T (K) and
// the density found by s. The solver must be Converged; otherwise the
// record is left unset and ErrNotConverged is returned.
func Synthesize(s *Solver, T float64) (p Properties, err error) {
	p = UnsetProperties()
	if s.State != Converged {
		return p, ErrNotConverged
	}

	var (
		mix = s.Residual().Mixture()
		D   = s.D
		R   = params.R
	)
	a0 := IdealGas(mix.X, T, D)
	ar := s.Residual().Evaluate(T, D, Full)

	p.D = D
	p.MolarMass = mix.MolarMass
	p.Z = 1 + ar.At(0, 1)/(R*T)
	p.P = D * R * T * p.Z
	p.DPdD = (R * T) + 2*ar.At(0, 1) + ar.At(0, 2)
	p.DPdT = (D * R) + (D * ar.At(1, 1))
	p.A = a0[0] + ar.At(0, 0)
	p.S = -a0[1] - ar.At(1, 0)
	p.U = p.A + T*p.S
	p.Cv = -(a0[2] + ar.At(2, 0))

	if D > params.Epsilon {
		dpdtD := p.DPdT / D
		p.H = p.U + p.P/D
		p.G = p.A + p.P/D
		p.Cp = p.Cv + T*(dpdtD*dpdtD)/p.DPdD
		p.D2PdD2 = (2*ar.At(0, 1) + 4*ar.At(0, 2) + ar.At(0, 3)) / D
		p.JT = (T/D*p.DPdT/p.DPdD - 1) / p.Cp / D
	} else {
		p.H = p.U + (R * T)
		p.G = p.A + (R * T)
		p.Cp = p.Cv + R
		p.D2PdD2 = 0
		p.JT = jtUndefined
	}

	w2 := 1000 * p.Cp / p.Cv * p.DPdD / p.MolarMass
	if w2 < 0 {
		w2 = 0
	}
	p.W = math.Sqrt(w2)
	p.Kappa = p.W * p.W * p.MolarMass / ((R * T) * 1000 * p.Z)
	return p, nil
}
