package kerr

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gokludge/utils"
)

/*
	Harmonic Cartesian coordinates for Kerr:

		x + iy = (r - M + ia) sin(theta) exp(i phi)
		z      = (r - M) cos(theta)

	The map is time independent, so velocity and acceleration transforms
	reduce to contractions with the spatial Jacobian and Hessian of the
	map. All transforms take the spin a and hole mass M explicitly.
*/

func ToHarmonicPosition(a, M float64, pos BL) (x [3]float64) {
	var (
		w        = pos.R - M
		sth, cth = math.Sin(pos.Theta), math.Cos(pos.Theta)
		sph, cph = math.Sin(pos.Phi), math.Cos(pos.Phi)
	)
	x[0] = w*sth*cph - a*sth*sph
	x[1] = w*sth*sph + a*sth*cph
	x[2] = w * cth
	return
}

// FromHarmonicPosition inverts the harmonic map. The quartic for
// (r-M)^2 has a single positive root away from the ring singularity.
func FromHarmonicPosition(a, M float64, x [3]float64) (pos BL) {
	var (
		rho2 = x[0]*x[0] + x[1]*x[1]
		b    = rho2 + x[2]*x[2] - a*a
		w2   = 0.5 * (b + math.Sqrt(b*b+4.*a*a*x[2]*x[2]))
		w    = math.Sqrt(w2)
		cth  = x[2] / w
	)
	// on the axis roundoff can push |cth| past 1 and poison Acos
	if cth > 1. && cth < 1.+utils.NODETOL {
		cth = 1.
	}
	if cth < -1. && cth > -1.-utils.NODETOL {
		cth = -1.
	}
	pos.R = M + w
	pos.Theta = math.Acos(cth)
	pos.Phi = math.Atan2(x[1], x[0]) - math.Atan2(a, w)
	return
}

// Jacobian is d(x,y,z)/d(r,theta,phi) at the given position.
func Jacobian(a, M float64, pos BL) (J [3][3]float64) {
	var (
		w        = pos.R - M
		sth, cth = math.Sin(pos.Theta), math.Cos(pos.Theta)
		sph, cph = math.Sin(pos.Phi), math.Cos(pos.Phi)
	)
	J[0][0] = sth * cph
	J[0][1] = w*cth*cph - a*cth*sph
	J[0][2] = -w*sth*sph - a*sth*cph
	J[1][0] = sth * sph
	J[1][1] = w*cth*sph + a*cth*cph
	J[1][2] = w*sth*cph - a*sth*sph
	J[2][0] = cth
	J[2][1] = -w * sth
	J[2][2] = 0
	return
}

// Hessian is d^2(x,y,z)/d(r,theta,phi)^2; H[i] is the symmetric second
// derivative matrix of harmonic component i.
func Hessian(a, M float64, pos BL) (H [3][3][3]float64) {
	var (
		w        = pos.R - M
		sth, cth = math.Sin(pos.Theta), math.Cos(pos.Theta)
		sph, cph = math.Sin(pos.Phi), math.Cos(pos.Phi)
		x        = w*sth*cph - a*sth*sph
		y        = w*sth*sph + a*sth*cph
		z        = w * cth
	)
	H[0][0][1], H[0][1][0] = cth*cph, cth*cph
	H[0][0][2], H[0][2][0] = -sth*sph, -sth*sph
	H[0][1][1] = -x
	H[0][1][2], H[0][2][1] = -w*cth*sph-a*cth*cph, -w*cth*sph-a*cth*cph
	H[0][2][2] = -x

	H[1][0][1], H[1][1][0] = cth*sph, cth*sph
	H[1][0][2], H[1][2][0] = sth*cph, sth*cph
	H[1][1][1] = -y
	H[1][1][2], H[1][2][1] = w*cth*cph-a*cth*sph, w*cth*cph-a*cth*sph
	H[1][2][2] = -y

	H[2][0][1], H[2][1][0] = -sth, -sth
	H[2][1][1] = -z
	return
}

func ToHarmonicVelocity(a, M float64, pos BL, qdot [3]float64) (v [3]float64) {
	var (
		J = Jacobian(a, M, pos)
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i] += J[i][j] * qdot[j]
		}
	}
	return
}

func ToHarmonicAcceleration(a, M float64, pos BL, qdot, qddot [3]float64) (acc [3]float64) {
	var (
		J = Jacobian(a, M, pos)
		H = Hessian(a, M, pos)
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			acc[i] += J[i][j] * qddot[j]
			for k := 0; k < 3; k++ {
				acc[i] += H[i][j][k] * qdot[j] * qdot[k]
			}
		}
	}
	return
}

// ToHarmonicVector pushes a spatial vector at pos forward through the
// Jacobian alone. Self-force components transform this way: they are
// vectors at the evaluation point, not second derivatives of a curve.
func ToHarmonicVector(a, M float64, pos BL, vec [3]float64) (v [3]float64) {
	var (
		J = Jacobian(a, M, pos)
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i] += J[i][j] * vec[j]
		}
	}
	return
}

// FromHarmonicAcceleration pulls the spatial part of a harmonic-frame
// acceleration (or any vector at pos) back to Boyer-Lindquist components
// through the inverse Jacobian.
func FromHarmonicAcceleration(a, M float64, pos BL, acc [3]float64) (q [3]float64) {
	var (
		J    = Jacobian(a, M, pos)
		Jm   = mat.NewDense(3, 3, nil)
		rhs  = mat.NewVecDense(3, []float64{acc[0], acc[1], acc[2]})
		sol  mat.VecDense
		Jinv mat.Dense
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Jm.Set(i, j, J[i][j])
		}
	}
	if err := Jinv.Inverse(Jm); err != nil {
		panic(err)
	}
	sol.MulVec(&Jinv, rhs)
	q[0], q[1], q[2] = sol.AtVec(0), sol.AtVec(1), sol.AtVec(2)
	return
}

// HarmonicMetric transforms the Boyer-Lindquist metric at pos into
// harmonic components g'_{mu nu} = B^-T g B^-1 with B the 4x4 Jacobian
// of the (time-preserving) harmonic map.
func HarmonicMetric(mp MetricProvider, a, M float64, pos BL) (g [4][4]float64) {
	var (
		J         = Jacobian(a, M, pos)
		B         = mat.NewDense(4, 4, nil)
		G         = mat.NewDense(4, 4, nil)
		Binv, tmp mat.Dense
		out       mat.Dense
	)
	B.Set(0, 0, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B.Set(i+1, j+1, J[i][j])
		}
	}
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			G.Set(mu, nu, mp.Metric(mu, nu, pos))
		}
	}
	if err := Binv.Inverse(B); err != nil {
		panic(err)
	}
	tmp.Mul(G, &Binv)
	out.Mul(Binv.T(), &tmp)
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			g[mu][nu] = out.At(mu, nu)
		}
	}
	return
}

// HarmonicInverseMetric is the contravariant counterpart,
// g'^{mu nu} = B g^-1 B^T.
func HarmonicInverseMetric(mp MetricProvider, a, M float64, pos BL) (g [4][4]float64) {
	var (
		J        = Jacobian(a, M, pos)
		B        = mat.NewDense(4, 4, nil)
		Gi       = mat.NewDense(4, 4, nil)
		tmp, out mat.Dense
	)
	B.Set(0, 0, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B.Set(i+1, j+1, J[i][j])
		}
	}
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			Gi.Set(mu, nu, mp.InverseMetric(mu, nu, pos))
		}
	}
	tmp.Mul(Gi, B.T())
	out.Mul(B, &tmp)
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			g[mu][nu] = out.At(mu, nu)
		}
	}
	return
}
