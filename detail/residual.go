package detail

import (
	"math"

	"github.com/notargets/aga8/params"
	"gonum.org/v1/gonum/mat"
)

// Depth selects which derivatives the residual evaluator fills in.
type Depth uint8

const (
	// DensityOnly fills row 0 of the derivative tensor, enough for the
	// pressure and its density derivative.
	DensityOnly Depth = iota
	// Full additionally fills the temperature derivative rows 1 and 2.
	Full
)

const (
	tensorRows = 3 // order of the temperature derivative, 0..2
	tensorCols = 4 // order of the density derivative, 0..3

	// T^-u is recomputed only when T moves by more than this.
	temperatureCacheTol = 0.0000001
)

// Residual evaluates the residual Helmholtz energy a (J/mol) of a mixture
// and its derivatives. Column j of the tensor carries D^j d^j/dD^j, and the
// rows hold
//
//	row 0: a
//	row 1: da/dT
//	row 2: T d2a/dT2
//
// A Residual caches powers of the temperature between calls and is not safe
// for concurrent use.
type Residual struct {
	mix  *Mixture
	tun  [params.NumTerms]float64
	told float64
	ar   *mat.Dense
}

func NewResidual(mix *Mixture) *Residual {
	return &Residual{
		mix: mix,
		ar:  mat.NewDense(tensorRows, tensorCols, nil),
	}
}

// Mixture returns the mixture the evaluator was built for.
func (r *Residual) Mixture() *Mixture { return r.mix }

// Evaluate computes the derivative tensor at temperature T (K) and molar
// density D (mol/l). The returned matrix is owned by r and is overwritten by
// the next call. Entries outside the requested depth are zero.
func (r *Residual) Evaluate(T, D float64, depth Depth) mat.Matrix {
	var (
		m     = r.mix
		terms = &m.tables.Terms
		ar    [tensorRows][tensorCols]float64
		dknn  [10]float64
		expn  [5]float64
	)

	if math.Abs(T-r.told) > temperatureCacheTol {
		for n := range terms {
			r.tun[n] = math.Pow(T, -terms[n].U)
		}
	}
	r.told = T

	// Powers and exponentials of the reduced density
	dred := m.K3 * D
	dknn[0] = 1
	for n := 1; n < len(dknn); n++ {
		dknn[n] = dred * dknn[n-1]
	}
	expn[0] = 1
	for n := 1; n < len(expn); n++ {
		expn[n] = math.Exp(-dknn[n])
	}

	rt := params.R * T
	for n := range terms {
		var (
			term                   = terms[n]
			coefT1                 = params.R * (term.U - 1)
			coefT2                 = coefT1 * term.U
			sumB, sum0             float64
			coefD1, coefD2, coefD3 float64
		)
		if params.Virial(n) {
			sum := m.Bs[n] * D
			if params.Exponential(n) {
				sum += -m.Csn[n] * dred
			}
			sumB = sum * r.tun[n]
		}
		if params.Exponential(n) {
			sum0 = m.Csn[n] * dknn[term.B] * r.tun[n] * expn[term.K]

			kn := float64(term.K)
			bkd := float64(term.B) - kn*dknn[term.K]
			ckd := kn * kn * dknn[term.K]
			coefD1 = bkd
			coefD2 = bkd*(bkd-1) - ckd
			coefD3 = (bkd-2)*coefD2 + ckd*(1-kn-2*bkd)
		}

		s0 := sum0 + sumB
		s1 := sum0*coefD1 + sumB
		s2 := sum0 * coefD2
		s3 := sum0 * coefD3
		ar[0][0] = ar[0][0] + rt*s0
		ar[0][1] = ar[0][1] + rt*s1
		ar[0][2] = ar[0][2] + rt*s2
		ar[0][3] = ar[0][3] + rt*s3

		if depth == Full {
			ar[1][0] = ar[1][0] - coefT1*s0
			ar[1][1] = ar[1][1] - coefT1*s1
			ar[2][0] = ar[2][0] + coefT2*s0
			ar[1][2] = ar[1][2] - coefT1*s2
			ar[1][3] = ar[1][3] - coefT1*s3
			ar[2][1] = ar[2][1] + coefT2*s1
		}
	}

	// Sums stay in a plain array so each cell adds its terms in table order.
	for i := 0; i < tensorRows; i++ {
		for j := 0; j < tensorCols; j++ {
			r.ar.Set(i, j, ar[i][j])
		}
	}
	return r.ar
}

// Pressure returns the pressure (kPa), compressibility factor and dP/dD
// (kPa l/mol) at temperature T and density D.
func (r *Residual) Pressure(T, D float64) (P, Z, dPdD float64) {
	ar := r.Evaluate(T, D, DensityOnly)
	Z = 1 + ar.At(0, 1)/params.R/T
	P = D * params.R * T * Z
	dPdD = params.R*T + 2*ar.At(0, 1) + ar.At(0, 2)
	return
}
