package selfforce

import (
	"math"

	"github.com/notargets/gokludge/chain"
	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/trajectory"
)

/*
	Assembler orchestrates one self-force evaluation in three strict
	phases with a full barrier between them:

	  1. coordinate conversion of every trajectory sample (parallel over
	     samples, trajectory.Buffer.Convert)
	  2. moment evaluation and derivative chains (parallel over samples,
	     then over independent index tuples), followed by symmetrization
	  3. serial assembly of the two acceleration pieces, projection
	     orthogonal to the 4-velocity, and the pull back to
	     Boyer-Lindquist components

	There is no caching: each Evaluate call rebuilds the moment series
	from the buffer it is handed.
*/
type Assembler struct {
	Metric    kerr.MetricProvider
	A, M      float64
	MassRatio float64
	Param     Parameterization
	ProcLimit int
}

// SelfAcceleration is the terminal output of one evaluation: the
// 4-acceleration in harmonic components and its Boyer-Lindquist
// counterpart, index order (t, x1, x2, x3).
type SelfAcceleration struct {
	Harmonic       [4]float64
	BoyerLindquist [4]float64
}

func NewAssembler(mp kerr.MetricProvider, a, M, massRatio float64, param Parameterization, procLimit int) (sf *Assembler) {
	sf = &Assembler{
		Metric:    mp,
		A:         a,
		M:         M,
		MassRatio: massRatio,
		Param:     param,
		ProcLimit: procLimit,
	}
	return
}

// Evaluate runs the full pipeline for the sample at index i. The caller
// must leave at least stencil.MaxPad samples on each side of i; shapes
// are not validated here.
func (sf *Assembler) Evaluate(buf *trajectory.Buffer, i int) (acc SelfAcceleration) {
	// Phase 1: coordinate conversion, parallel over samples
	buf.Convert(sf.Metric, sf.A, sf.M, sf.ProcLimit)

	// Phase 2: moments, derivative chains, symmetrization
	eta := Eta(sf.MassRatio)
	ms := ComputeMomentSeries(buf, eta, sf.ProcLimit)
	var lam chain.Set
	if sf.Param == MinoTime {
		u := kerr.InverseSigmaSeries(sf.A, buf.RSeries(), buf.ThetaSeries())
		lam = kerr.MinoChain(u, i, buf.H)
	}
	md := ms.DerivativesAt(i, sf.Param, lam, sf.ProcLimit)

	// Phase 3: assembly
	acc = sf.assemble(buf, i, md)
	return
}

// EvaluateAll runs phases 1 and 2 once over the buffer and assembles the
// self-acceleration at every interior sample. A single invocation, so
// the shared series are legitimate intermediate state.
func (sf *Assembler) EvaluateAll(buf *trajectory.Buffer) (accs []SelfAcceleration) {
	buf.Convert(sf.Metric, sf.A, sf.M, sf.ProcLimit)
	var (
		eta = Eta(sf.MassRatio)
		ms  = ComputeMomentSeries(buf, eta, sf.ProcLimit)
		pad = stencil.MaxPad
		u   []float64
	)
	if sf.Param == MinoTime {
		u = kerr.InverseSigmaSeries(sf.A, buf.RSeries(), buf.ThetaSeries())
	}
	accs = make([]SelfAcceleration, buf.Len())
	// The stencil of the derivative chain reaches MaxPad samples past the
	// moment series, which itself needs no padding; only the outermost
	// 2*MaxPad indices are unusable.
	for i := 2 * pad; i < buf.Len()-2*pad; i++ {
		var lam chain.Set
		if sf.Param == MinoTime {
			lam = kerr.MinoChain(u, i, buf.H)
		}
		md := ms.DerivativesAt(i, sf.Param, lam, sf.ProcLimit)
		accs[i] = sf.assemble(buf, i, md)
	}
	return
}

// rrForce is the flat-contraction radiation-reaction force density at
// the particle: the gradient and induction terms of the scalar and
// vector potentials plus the velocity back-coupling.
func rrForce(ps PotentialSet, v [3]float64) (F [4]float64) {
	var vDV float64
	for k := 0; k < 3; k++ {
		vDV += v[k] * ps.DV[k]
	}
	for i := 0; i < 3; i++ {
		var induction float64
		for k := 0; k < 3; k++ {
			// v^k (dV_k/dx^i - dV_i/dx^k)
			induction += v[k] * (ps.DVi[k][i] - ps.DVi[i][k])
		}
		F[i+1] = -ps.DV[i] - 4.*ps.Vit[i] - 4.*induction +
			v[i]*(3.*ps.Vt+4.*vDV)
	}
	// Time component: rate of work done on the orbit
	for i := 0; i < 3; i++ {
		F[0] += v[i] * F[i+1]
	}
	return
}

func (sf *Assembler) assemble(buf *trajectory.Buffer, i int, md *MomentDerivatives) (acc SelfAcceleration) {
	var (
		s   = &buf.Samples[i]
		pos = kerr.BL{R: s.R, Theta: s.Theta, Phi: s.Phi}
		ps  = AssemblePotentials(s.X, md)
		dev = DeviationAt(sf.Metric, sf.A, sf.M, pos)
		grd = DeviationGradientAt(sf.Metric, sf.A, sf.M, s.X)
		ct  = AssembleCouplingTerms(grd, s.V)
		F   = rrForce(ps, s.V)
		A1, A2, A [4]float64
	)
	A1 = F

	// Metric-coupling correction: deviation contraction of the force
	// plus the potential times the B/C/D velocity-curvature terms
	for i := 0; i < 3; i++ {
		A2[i+1] = dev.Qi[i] * F[0]
		for j := 0; j < 3; j++ {
			A2[i+1] += dev.Qij[i][j] * F[j+1]
		}
		A2[i+1] += ps.V * (ct.B[i] + ct.C[i] + ct.D[i])
	}
	for i := 0; i < 3; i++ {
		A2[0] += s.V[i] * A2[i+1]
	}

	// Orthogonal projection onto the worldline, scaled by -Gamma^2. The
	// spatial covariant 4-velocity is Gamma times the lowered coordinate
	// velocity carried by the sample; u_mu u^mu = -1 fixes the time
	// component.
	var (
		Gamma  = sf.lorentzGamma(pos, s)
		u, uLo [4]float64
		vvLo   float64
	)
	u[0] = Gamma
	for i := 0; i < 3; i++ {
		u[i+1] = Gamma * s.V[i]
		uLo[i+1] = Gamma * s.VLo[i]
		vvLo += s.VLo[i] * s.V[i]
	}
	uLo[0] = -(1. + Gamma*Gamma*vvLo) / Gamma
	for al := 0; al < 4; al++ {
		for be := 0; be < 4; be++ {
			P := u[al] * uLo[be]
			if al == be {
				P += 1.
			}
			A[al] += P * (A1[be] + A2[be])
		}
		A[al] *= -Gamma * Gamma
	}

	acc.Harmonic = A
	blSpatial := kerr.FromHarmonicAcceleration(sf.A, sf.M, pos,
		[3]float64{A[1], A[2], A[3]})
	acc.BoyerLindquist = [4]float64{A[0], blSpatial[0], blSpatial[1], blSpatial[2]}
	return
}

// lorentzGamma is dt/dtau along the orbit from the Boyer-Lindquist
// metric and coordinate velocities.
func (sf *Assembler) lorentzGamma(pos kerr.BL, s *trajectory.Sample) float64 {
	var (
		mp    = sf.Metric
		denom = -(mp.Metric(0, 0, pos) +
			2.*mp.Metric(0, 3, pos)*s.PhiDot +
			mp.Metric(1, 1, pos)*s.RDot*s.RDot +
			mp.Metric(2, 2, pos)*s.ThetaDot*s.ThetaDot +
			mp.Metric(3, 3, pos)*s.PhiDot*s.PhiDot)
	)
	return 1. / math.Sqrt(denom)
}
