package detail

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/aga8/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pure(c params.Component) []float64 {
	x := make([]float64, params.NumComponents)
	x[c] = 1
	return x
}

func TestMixturePureComponentReduces(t *testing.T) {
	tables := params.Load()
	for _, c := range []params.Component{params.Methane, params.CarbonDioxide, params.Water, params.Argon} {
		t.Run(c.String(), func(t *testing.T) {
			m, err := NewMixture(pure(c))
			require.NoError(t, err)
			f := tables.Fluids[c]
			assert.InEpsilon(t, math.Pow(f.K, 3), m.K3, 1e-13)
			assert.InEpsilon(t, f.E, m.U, 1e-13)
			assert.Equal(t, f.G, m.G)
			assert.Equal(t, f.Q, m.Q)
			assert.InDelta(t, f.Q*f.Q, m.Q2, 1e-15)
			assert.Equal(t, f.F, m.F)
			assert.Equal(t, f.MolarMass, m.MolarMass)
			for n := 0; n < params.NumVirialTerms; n++ {
				assert.Equal(t, tables.Bsnij2[c][c][n], m.Bs[n], "term %d", n)
			}
		})
	}
}

func TestMixturePureMethaneDensity(t *testing.T) {
	r, err := Evaluate(5000, 300, pure(params.Methane))
	require.NoError(t, err)
	assert.InEpsilon(t, 2.1799294993664375, r.D, rtol)
	assert.InEpsilon(t, 0.9195379153496691, r.Z, 1e-8)
	assert.Equal(t, 16.043, r.MolarMass)
}

func TestMixtureZeroFractionsSkipped(t *testing.T) {
	// A vanishing fraction must not bring in the component's pair terms
	m1, err := NewMixture(pure(params.Methane))
	require.NoError(t, err)
	x := pure(params.Methane)
	x[params.Hexane] = 0
	x[params.Water] = 0
	m2, err := NewMixture(x)
	require.NoError(t, err)
	assert.Equal(t, m1.K3, m2.K3)
	assert.Equal(t, m1.U, m2.U)
	assert.Equal(t, m1.Bs, m2.Bs)
	assert.Equal(t, m1.Csn, m2.Csn)
}

func TestMixtureCoefficientBands(t *testing.T) {
	m, err := NewMixture(referenceGas())
	require.NoError(t, err)
	for n := 0; n < params.FirstExpTerm; n++ {
		assert.Zero(t, m.Csn[n], "term %d", n)
	}
	for n := params.FirstExpTerm; n < params.NumTerms; n++ {
		assert.False(t, math.IsNaN(m.Csn[n]), "term %d", n)
	}
	for n := 0; n < params.NumVirialTerms; n++ {
		assert.NotZero(t, m.Bs[n], "term %d", n)
	}
	assert.InEpsilon(t, 20.54333051, m.MolarMass, 1e-12)
}

func TestMixtureOwnsComposition(t *testing.T) {
	x := referenceGas()
	m, err := NewMixture(x)
	require.NoError(t, err)
	x[0] = 0.5
	assert.Equal(t, 0.77824, m.X[0])
}

func TestValidateComposition(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		ok   bool
	}{
		{"Reference", referenceGas(), true},
		{"Unnormalized", append([]float64{2}, make([]float64, params.NumComponents-1)...), true},
		{"AllZero", make([]float64, params.NumComponents), true},
		{"Empty", nil, false},
		{"Short", make([]float64, params.NumComponents-1), false},
		{"Long", make([]float64, params.NumComponents+1), false},
		{"Negative", append([]float64{-1}, make([]float64, params.NumComponents-1)...), false},
		{"NaN", append([]float64{math.NaN()}, make([]float64, params.NumComponents-1)...), false},
		{"Inf", append([]float64{math.Inf(1)}, make([]float64, params.NumComponents-1)...), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComposition(tt.x)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrComposition))
		})
	}
}
