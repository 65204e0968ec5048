package detail

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/aga8/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeRequiresConvergence(t *testing.T) {
	s := newReferenceSolver(t)
	p, err := Synthesize(s, refT)
	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.False(t, p.IsSet())

	_ = s.Solve(0, refT)
	_, err = Synthesize(s, refT)
	assert.True(t, errors.Is(err, ErrNotConverged))
}

func TestSynthesizeThermodynamicIdentities(t *testing.T) {
	s := newReferenceSolver(t)
	require.NoError(t, s.Solve(20000, 300))
	p, err := Synthesize(s, 300)
	require.NoError(t, err)
	require.True(t, p.IsSet())

	T := 300.
	assert.InEpsilon(t, p.U, p.A+T*p.S, 1e-12)
	assert.InEpsilon(t, p.H, p.U+p.P/p.D, 1e-12)
	assert.InEpsilon(t, p.G, p.A+p.P/p.D, 1e-12)
	assert.InEpsilon(t, p.G, p.H-T*p.S, 1e-9)
	assert.Greater(t, p.Cp, p.Cv)
	assert.Greater(t, p.W, 0.)
	assert.InEpsilon(t, p.P, p.D*params.R*T*p.Z, 1e-15)
	assert.InEpsilon(t, p.Kappa, p.W*p.W*p.MolarMass/(params.R*T*1000*p.Z), 1e-12)
	assert.InEpsilon(t, 20000., p.P, 1e-6)
}

func TestUnsetProperties(t *testing.T) {
	p := UnsetProperties()
	assert.False(t, p.IsSet())
	for _, v := range []float64{
		p.Z, p.P, p.D, p.MolarMass, p.DPdD, p.D2PdD2, p.DPdT,
		p.A, p.U, p.H, p.S, p.Cv, p.Cp, p.W, p.G, p.JT, p.Kappa,
	} {
		assert.True(t, math.IsNaN(v))
	}
}
