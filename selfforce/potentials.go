package selfforce

import (
	"github.com/notargets/gokludge/tensor"
)

/*
	Radiation-reaction potentials at the particle position, assembled
	from high-order moment derivatives:

		V   = -(1/5) x.M5.x + (1/189) xxx:M7o - (1/70) r^2 x.M7.x
		V_i = (1/21) [xxx]^STF_ijk M6_jk - (4/45) eps_ijk x_j (S5.x)_k

	with Mn the n-th coordinate-time derivative of the mass quadrupole,
	M7o of the mass octupole and S5 of the current quadrupole. Time
	derivatives of the potentials are the same polynomials one moment
	order higher. Position derivatives substitute a Kronecker delta into
	the polynomial factors while holding the moment derivatives fixed at
	the evaluation point; the moments are functionals of the whole
	trajectory, not of the field point.

	Every term corresponds one-to-one to a term of the underlying
	expansion; nothing is collected or reordered.
*/

// PotentialSet carries V_RR, Vi_RR and their first time and position
// derivatives. Recomputed for every evaluation; the moment derivatives
// underneath change with the trajectory window.
type PotentialSet struct {
	V   float64
	Vt  float64
	DV  [3]float64
	Vi  [3]float64
	Vit [3]float64
	DVi [3][3]float64 // DVi[i][m] = d V_i / d x^m
}

func contract2(T [3][3]float64, x [3]float64) (y [3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			y[i] += T[i][j] * x[j]
		}
	}
	return
}

func contract3(T [3][3][3]float64, x [3]float64) (Y [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				Y[i][j] += T[i][j][k] * x[k]
			}
		}
	}
	return
}

// AssemblePotentials builds the potential set at harmonic position x
// from the moment derivative collection.
func AssemblePotentials(x [3]float64, md *MomentDerivatives) (ps PotentialSet) {
	var (
		r2 = tensor.Dot(x, x)

		M5x = contract2(md.Mq[5], x)
		M6x = contract2(md.Mq[6], x)
		M7x = contract2(md.Mq[7], x)
		M8x = contract2(md.Mq[8], x)

		xM5x = tensor.Dot(x, M5x)
		xM6x = tensor.Dot(x, M6x)
		xM7x = tensor.Dot(x, M7x)
		xM8x = tensor.Dot(x, M8x)

		O7x = contract3(md.Mo[7], x) // O7x[i][j] = M7o_ijk x_k
		O8x = contract3(md.Mo[8], x)

		w5 = contract2(md.Sq[5], x)
		w6 = contract2(md.Sq[6], x)
	)
	var xxO7, xxO8 float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			xxO7 += x[i] * O7x[i][j] * x[j]
			xxO8 += x[i] * O8x[i][j] * x[j]
		}
	}

	ps.V = -(1./5.)*xM5x + (1./189.)*xxO7 - (1./70.)*r2*xM7x
	ps.Vt = -(1./5.)*xM6x + (1./189.)*xxO8 - (1./70.)*r2*xM8x

	for k := 0; k < 3; k++ {
		// delta substitution into each position factor of V
		var o7k float64
		for i := 0; i < 3; i++ {
			o7k += x[i] * O7x[i][k]
		}
		ps.DV[k] = -(2./5.)*M5x[k] +
			(3./189.)*o7k -
			(1./70.)*(2.*x[k]*xM7x+2.*r2*M7x[k])
	}

	var (
		xw5 = tensor.Cross(x, w5)
		xw6 = tensor.Cross(x, w6)
	)
	for i := 0; i < 3; i++ {
		// [xxx]^STF contracted on a traceless M6 leaves two terms
		ps.Vi[i] = (1./21.)*(x[i]*xM6x-(2./5.)*r2*M6x[i]) -
			(4./45.)*xw5[i]
		ps.Vit[i] = (1./21.)*(x[i]*xM7x-(2./5.)*r2*M7x[i]) -
			(4./45.)*xw6[i]
	}

	for i := 0; i < 3; i++ {
		for m := 0; m < 3; m++ {
			var epsS float64
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					epsS += tensor.Eps[i][j][k] * x[j] * md.Sq[5][k][m]
				}
			}
			ps.DVi[i][m] = (1./21.)*(tensor.Delta(i, m)*xM6x+
				2.*x[i]*M6x[m]-
				(2./5.)*(2.*x[m]*M6x[i]+r2*md.Mq[6][i][m])) -
				(4./45.)*(epsMatVec(i, m, w5)+epsS)
		}
	}
	return
}

// epsMatVec is eps_imk w_k, the delta-substitution derivative of the
// cross product factor.
func epsMatVec(i, m int, w [3]float64) (s float64) {
	for k := 0; k < 3; k++ {
		s += tensor.Eps[i][m][k] * w[k]
	}
	return
}
