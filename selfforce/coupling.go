package selfforce

import (
	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/tensor"
)

/*
	Deviation of the harmonic-coordinate background metric from
	Minkowski, and its spatial gradient at the particle position. These
	feed the coupling terms that correct the flat-space contraction of
	the radiation-reaction force.

	Sign convention: K = -(g_00 + 1), so K ~ 2M/r > 0 outside the hole;
	K_i = g_0i; K_ij = g_ij - delta_ij. The contravariant set Q, Q^i,
	Q^ij follows the same pattern from the inverse metric.
*/

type Deviation struct {
	K   float64
	Ki  [3]float64
	Kij [3][3]float64
	Q   float64
	Qi  [3]float64
	Qij [3][3]float64
}

type DeviationGradient struct {
	DK   [3]float64
	DKi  [3][3]float64    // DKi[i][k] = d K_i / d x^k
	DKij [3][3][3]float64 // DKij[i][j][k] = d K_ij / d x^k
}

func DeviationAt(mp kerr.MetricProvider, a, M float64, pos kerr.BL) (dev Deviation) {
	var (
		g  = kerr.HarmonicMetric(mp, a, M, pos)
		gi = kerr.HarmonicInverseMetric(mp, a, M, pos)
	)
	dev.K = -(g[0][0] + 1.)
	dev.Q = -(gi[0][0] + 1.)
	for i := 0; i < 3; i++ {
		dev.Ki[i] = g[0][i+1]
		dev.Qi[i] = gi[0][i+1]
		for j := 0; j < 3; j++ {
			dev.Kij[i][j] = g[i+1][j+1] - tensor.Delta(i, j)
			dev.Qij[i][j] = gi[i+1][j+1] - tensor.Delta(i, j)
		}
	}
	return
}

// DeviationGradientAt differences the covariant deviation along the
// harmonic axes. The step is relative to the field-point radius; the
// inverse harmonic map supplies the Boyer-Lindquist evaluation points.
func DeviationGradientAt(mp kerr.MetricProvider, a, M float64, x [3]float64) (grad DeviationGradient) {
	var (
		eps = 1.e-6 * (1. + tensor.Norm(x))
	)
	for k := 0; k < 3; k++ {
		xp, xm := x, x
		xp[k] += eps
		xm[k] -= eps
		devP := DeviationAt(mp, a, M, kerr.FromHarmonicPosition(a, M, xp))
		devM := DeviationAt(mp, a, M, kerr.FromHarmonicPosition(a, M, xm))
		grad.DK[k] = (devP.K - devM.K) / (2. * eps)
		for i := 0; i < 3; i++ {
			grad.DKi[i][k] = (devP.Ki[i] - devM.Ki[i]) / (2. * eps)
			for j := 0; j < 3; j++ {
				grad.DKij[i][j][k] = (devP.Kij[i][j] - devM.Kij[i][j]) / (2. * eps)
			}
		}
	}
	return
}

/*
	CouplingTerms are the velocity-curvature contractions that multiply
	the radiation-reaction potential in the metric-coupling correction:

		B_i = (1/2) v^j v^k dK_jk/dx^i   (tensor deviation)
		C_i = v^j (dK_j/dx^i - dK_i/dx^j) (gravitomagnetic deviation)
		D_i = (1/2) dK/dx^i               (scalar deviation)
*/
type CouplingTerms struct {
	B, C, D [3]float64
}

func AssembleCouplingTerms(grad DeviationGradient, v [3]float64) (ct CouplingTerms) {
	for i := 0; i < 3; i++ {
		ct.D[i] = 0.5 * grad.DK[i]
		for j := 0; j < 3; j++ {
			ct.C[i] += v[j] * (grad.DKi[j][i] - grad.DKi[i][j])
			for k := 0; k < 3; k++ {
				ct.B[i] += 0.5 * v[j] * v[k] * grad.DKij[j][k][i]
			}
		}
	}
	return
}
