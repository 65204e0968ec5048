package params

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Tables bundles the parameter tables together with every quantity that
// depends only on them. A Tables value is built once by Load and must be
// treated as read-only; it is shared by all evaluations.
type Tables struct {
	Fluids      [NumComponents]Fluid
	Terms       [NumTerms]Term
	MolarMasses [NumComponents]float64

	// Binary interaction parameters. Only the upper triangle (i < j) carries
	// published values; every other entry is 1.
	Eij, Uij, Kij, Gij [NumComponents][NumComponents]float64

	Ki25, Ei25 [NumComponents]float64 // K_i^2.5, E_i^2.5

	// Bsnij2[i][j][n] is the composition free part of the second virial
	// contribution of term n for the pair (i, j).
	Bsnij2 [NumComponents][NumComponents][NumVirialTerms]float64

	// Binary corrections to the K, U and G mixing sums.
	Kij5, Uij5, Gij5 [NumComponents][NumComponents]float64

	// N0 is the ideal gas coefficient table with the log(T) coefficient
	// reduced by one and the constant shifted to the 298.15 K, 101.325 kPa
	// reference density.
	N0 [NumComponents][7]float64
}

var (
	loadOnce sync.Once
	shared   *Tables
)

// Load returns the shared tables, building them on first use. It is safe to
// call from multiple goroutines.
func Load() *Tables {
	loadOnce.Do(func() {
		shared = newTables()
	})
	return shared
}

func newTables() (t *Tables) {
	t = &Tables{
		Fluids: fluids,
		Terms:  terms,
	}

	for i := 0; i < NumComponents; i++ {
		for j := 0; j < NumComponents; j++ {
			t.Eij[i][j] = 1
			t.Uij[i][j] = 1
			t.Kij[i][j] = 1
			t.Gij[i][j] = 1
		}
	}
	for _, p := range binaryPairs {
		if p.I >= p.J {
			panic(fmt.Sprintf("binary pair %v/%v is not in upper triangle order", p.I, p.J))
		}
		t.Eij[p.I][p.J] = p.E
		t.Uij[p.I][p.J] = p.U
		t.Kij[p.I][p.J] = p.K
		t.Gij[p.I][p.J] = p.G
	}

	for i := range t.Fluids {
		t.MolarMasses[i] = t.Fluids[i].MolarMass
		t.Ki25[i] = math.Pow(t.Fluids[i].K, 2.5)
		t.Ei25[i] = math.Pow(t.Fluids[i].E, 2.5)
	}

	for i := 0; i < NumComponents; i++ {
		fi := &t.Fluids[i]
		for j := 0; j < NumComponents; j++ {
			fj := &t.Fluids[j]
			for n := 0; n < NumVirialTerms; n++ {
				term := t.Terms[n]
				bsnij := 1.0
				if term.Has(Orientation) {
					bsnij = t.Gij[i][j] * (fi.G + fj.G) / 2
				}
				if term.Has(Quadrupole) {
					bsnij = bsnij * fi.Q * fj.Q
				}
				if term.Has(HighTemperature) {
					bsnij = bsnij * fi.F * fj.F
				}
				if term.Has(Dipole) {
					bsnij = bsnij * fi.S * fj.S
				}
				if term.Has(Association) {
					bsnij = bsnij * fi.W * fj.W
				}
				t.Bsnij2[i][j][n] = term.A *
					math.Pow(t.Eij[i][j]*math.Sqrt(fi.E*fj.E), term.U) *
					math.Pow(fi.K*fj.K, 1.5) *
					bsnij
			}
			t.Kij5[i][j] = (math.Pow(t.Kij[i][j], 5) - 1) * t.Ki25[i] * t.Ki25[j]
			t.Uij5[i][j] = (math.Pow(t.Uij[i][j], 5) - 1) * t.Ei25[i] * t.Ei25[j]
			t.Gij5[i][j] = (t.Gij[i][j] - 1) * (fi.G + fj.G) / 2
		}
	}

	d0 := 101.325 / R / 298.15
	for i := range t.Fluids {
		t.N0[i] = t.Fluids[i].N0
		t.N0[i][2] = t.N0[i][2] - 1
		t.N0[i][0] = t.N0[i][0] - math.Log(d0)
	}
	return
}

// MolarMass returns the molar mass (g/mol) of composition x, which must hold
// NumComponents fractions.
func MolarMass(x []float64) float64 {
	return floats.Dot(x, Load().MolarMasses[:])
}
