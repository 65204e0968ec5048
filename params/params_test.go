package params

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentByName(t *testing.T) {
	tests := []struct {
		name string
		want Component
	}{
		{"Methane", Methane},
		{"  methane ", Methane},
		{"CH4", Methane},
		{"c1", Methane},
		{"n2", Nitrogen},
		{"Carbon dioxide", CarbonDioxide},
		{"CO2", CarbonDioxide},
		{"nC4", NButane},
		{"n-Butane", NButane},
		{"iC5", Isopentane},
		{"H2S", HydrogenSulfide},
		{"Hydrogen sulfide", HydrogenSulfide},
		{"water", Water},
		{"Ar", Argon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ComponentByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}

	_, err := ComponentByName("unobtainium")
	assert.Error(t, err)
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "Methane", Methane.String())
	assert.Equal(t, "Argon", Argon.String())
	assert.Equal(t, "Component(21)", Component(NumComponents).String())
	for i := 0; i < NumComponents; i++ {
		c, err := ComponentByName(Component(i).String())
		require.NoError(t, err)
		assert.Equal(t, Component(i), c)
	}
}

func TestTermBands(t *testing.T) {
	var virial, exponential, both int
	for n := 0; n < NumTerms; n++ {
		if Virial(n) {
			virial++
		}
		if Exponential(n) {
			exponential++
		}
		if Virial(n) && Exponential(n) {
			both++
		}
	}
	assert.Equal(t, 18, virial)
	assert.Equal(t, 46, exponential)
	assert.Equal(t, 6, both)

	tables := Load()
	for n, term := range tables.Terms {
		if n < FirstExpTerm {
			assert.Zero(t, term.K, "term %d", n)
		}
		assert.Less(t, term.B, 10, "term %d", n)
		assert.Less(t, term.K, 5, "term %d", n)
	}
}

func TestLoadShared(t *testing.T) {
	var (
		wg     sync.WaitGroup
		loaded [8]*Tables
	)
	for i := range loaded {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loaded[i] = Load()
		}(i)
	}
	wg.Wait()
	for _, tb := range loaded {
		assert.Same(t, loaded[0], tb)
	}
}

func TestTablesBinaryDefaults(t *testing.T) {
	tables := Load()
	// Listed pair
	assert.Equal(t, 0.97164, tables.Eij[Methane][Nitrogen])
	assert.Equal(t, 1.00363, tables.Kij[Methane][Nitrogen])
	// Lower triangle and unlisted pairs default to 1
	assert.Equal(t, 1., tables.Eij[Nitrogen][Methane])
	assert.Equal(t, 1., tables.Gij[Methane][Ethane])
	for i := 0; i < NumComponents; i++ {
		assert.Equal(t, 1., tables.Eij[i][i])
		assert.Equal(t, 1., tables.Uij[i][i])
		assert.Equal(t, 1., tables.Kij[i][i])
		assert.Equal(t, 1., tables.Gij[i][i])
		// Unit interaction parameters give no binary correction
		assert.Zero(t, tables.Kij5[i][i])
		assert.Zero(t, tables.Uij5[i][i])
		assert.Zero(t, tables.Gij5[i][i])
	}
	for _, p := range binaryPairs {
		assert.Less(t, int(p.I), int(p.J))
	}
}

func TestTablesDerived(t *testing.T) {
	tables := Load()
	d0 := 101.325 / R / 298.15
	for i, f := range tables.Fluids {
		assert.Equal(t, f.MolarMass, tables.MolarMasses[i])
		assert.InEpsilon(t, f.K*f.K*math.Sqrt(f.K), tables.Ki25[i], 1e-14)
		assert.InEpsilon(t, f.E*f.E*math.Sqrt(f.E), tables.Ei25[i], 1e-14)
		assert.Equal(t, f.N0[2]-1, tables.N0[i][2])
		assert.InDelta(t, f.N0[0]-math.Log(d0), tables.N0[i][0], 1e-12)
		assert.Equal(t, f.N0[3:], tables.N0[i][3:])
	}

	// Bsnij2 of a plain term: a_n (E_i E_j)^(u_n/2) (K_i K_j)^1.5
	m, n := Methane, Nitrogen
	fm, fn := tables.Fluids[m], tables.Fluids[n]
	term := tables.Terms[1]
	want := term.A * math.Pow(tables.Eij[m][n]*math.Sqrt(fm.E*fn.E), term.U) *
		math.Pow(fm.K*fn.K, 1.5)
	assert.InEpsilon(t, want, tables.Bsnij2[m][n][1], 1e-14)

	// Dipole terms vanish unless both fluids carry a dipole
	assert.Zero(t, tables.Bsnij2[Methane][Water][7])
	assert.NotZero(t, tables.Bsnij2[Water][HydrogenSulfide][7])
}

func TestFluidParameters(t *testing.T) {
	f := Load().Fluids
	assert.Equal(t, 16.043, f[Methane].MolarMass)
	assert.Equal(t, 151.3183, f[Methane].E)
	assert.Equal(t, 0.4619255, f[Methane].K)
	assert.Equal(t, 0.3325, f[Water].G)
	for i := range f {
		assert.Greater(t, f[i].MolarMass, 0., Component(i).String())
		assert.Greater(t, f[i].K, 0., Component(i).String())
	}
}

func TestMolarMass(t *testing.T) {
	x := make([]float64, NumComponents)
	x[Methane] = 0.5
	x[Ethane] = 0.5
	assert.InDelta(t, (16.043+30.07)/2, MolarMass(x), 1e-12)
	assert.Equal(t, 0., MolarMass(make([]float64, NumComponents)))
}
