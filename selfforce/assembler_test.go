package selfforce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/trajectory"
)

func TestTestParticleSelfForceVanishes(t *testing.T) {
	// Zero mass ratio through the whole pipeline: moments, potentials,
	// coupling and projection must all come out exactly zero
	var (
		a, M = 0.9, 1.0
		mp   = &kerr.BoyerLindquist{A: a, M: M}
		buf  = trajectory.NewCircularOrbit(a, M, 10, 20, 0.5)
		sf   = NewAssembler(mp, a, M, 0, CoordinateTime, 2)
	)
	acc := sf.Evaluate(buf, 10)
	for mu := 0; mu < 4; mu++ {
		assert.Equal(t, 0., acc.Harmonic[mu])
		assert.Equal(t, 0., acc.BoyerLindquist[mu])
	}
}

func TestRRForceStructure(t *testing.T) {
	var (
		ps PotentialSet
		v  = [3]float64{0.1, -0.2, 0.05}
	)
	// Pure gradient potential: F_i = -DV_i + v_i (4 v.DV), and the time
	// component is the rate of work
	ps.DV = [3]float64{0.3, -0.1, 0.2}
	F := rrForce(ps, v)
	vDV := v[0]*ps.DV[0] + v[1]*ps.DV[1] + v[2]*ps.DV[2]
	for i := 0; i < 3; i++ {
		assert.True(t, near(F[i+1], -ps.DV[i]+4.*v[i]*vDV, 1.e-14))
	}
	var work float64
	for i := 0; i < 3; i++ {
		work += v[i] * F[i+1]
	}
	assert.True(t, near(F[0], work, 1.e-14))

	// Antisymmetric induction: a symmetric DVi contributes nothing
	ps = PotentialSet{}
	for i := 0; i < 3; i++ {
		for m := 0; m < 3; m++ {
			ps.DVi[i][m] = float64(i + m)
		}
	}
	F = rrForce(ps, v)
	for mu := 0; mu < 4; mu++ {
		assert.True(t, near(F[mu], 0, 1.e-14))
	}
}

func TestSelfAccelerationOrthogonality(t *testing.T) {
	// The projected self-acceleration must be orthogonal to the
	// 4-velocity in the harmonic metric
	var (
		a, M = 0.9, 1.0
		mp   = &kerr.BoyerLindquist{A: a, M: M}
		buf  = trajectory.NewCircularOrbit(a, M, 10, 20, 0.5)
		sf   = NewAssembler(mp, a, M, 1.e-4, CoordinateTime, 2)
		i    = 10
	)
	acc := sf.Evaluate(buf, i)

	var (
		s     = &buf.Samples[i]
		pos   = kerr.BL{R: s.R, Theta: s.Theta, Phi: s.Phi}
		g     = kerr.HarmonicMetric(mp, a, M, pos)
		Gamma = sf.lorentzGamma(pos, s)
		u     = [4]float64{Gamma, Gamma * s.V[0], Gamma * s.V[1], Gamma * s.V[2]}
		dot   float64
		scale float64
	)
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			dot += g[mu][nu] * u[mu] * acc.Harmonic[nu]
		}
		scale += math.Abs(acc.Harmonic[mu])
	}
	assert.True(t, scale > 0)
	assert.True(t, near(dot/scale, 0, 1.e-8))
}

func TestEvaluateAllInterior(t *testing.T) {
	var (
		a, M = 0.5, 1.0
		mp   = &kerr.BoyerLindquist{A: a, M: M}
		buf  = trajectory.NewCircularOrbit(a, M, 9, 20, 0.5)
		sf   = NewAssembler(mp, a, M, 1.e-4, CoordinateTime, 2)
		pad  = 2 * stencil.MaxPad
	)
	accs := sf.EvaluateAll(buf)
	assert.Equal(t, buf.Len(), len(accs))
	for i := 0; i < buf.Len(); i++ {
		interior := i >= pad && i < buf.Len()-pad
		var norm float64
		for mu := 0; mu < 4; mu++ {
			norm += math.Abs(accs[i].Harmonic[mu])
			assert.False(t, math.IsNaN(accs[i].Harmonic[mu]))
		}
		if !interior {
			assert.Equal(t, 0., norm)
		}
	}
	// EvaluateAll must agree with single-sample Evaluate
	acc := sf.Evaluate(buf, 10)
	for mu := 0; mu < 4; mu++ {
		assert.Equal(t, acc.Harmonic[mu], accs[10].Harmonic[mu])
	}
}

func TestCouplingTermsFlatSpace(t *testing.T) {
	// A Minkowski background has no metric deviation and no coupling
	var (
		grad DeviationGradient
		v    = [3]float64{0.2, 0.1, -0.3}
		ct   = AssembleCouplingTerms(grad, v)
	)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0., ct.B[i])
		assert.Equal(t, 0., ct.C[i])
		assert.Equal(t, 0., ct.D[i])
	}
}

func TestDeviationFarField(t *testing.T) {
	// Far from the hole the harmonic metric approaches Minkowski and the
	// deviation scalar approaches 2M/r
	var (
		a, M = 0.9, 1.0
		mp   = &kerr.BoyerLindquist{A: a, M: M}
		pos  = kerr.BL{R: 1.e4, Theta: 1.1, Phi: 0.5}
		dev  = DeviationAt(mp, a, M, pos)
	)
	assert.True(t, near(dev.K, 2.*M/pos.R, 1.e-3))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, near(dev.Kij[i][j], 0, 1.e-3))
		}
	}
}
