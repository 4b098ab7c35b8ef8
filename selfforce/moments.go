package selfforce

import (
	"github.com/notargets/gokludge/tensor"
)

/*
	Closed-form mass and current multipole moments of a point particle at
	harmonic position x with velocity v and acceleration a, weighted by
	the symmetric mass ratio Eta = q/(1+q)^2. Time derivatives through
	second order are analytic; higher orders come from the derivative
	chain applied to these series.

	Every function fills only the non-decreasing index tuples (see
	tensor.Pairs / Triples / Quads) and then symmetrizes. q = 0 is a valid
	input: all moments vanish identically in the test-particle limit.

	The trace-removal weights (1/3, 1/5, 1/7, 1/35) are the STF
	projection coefficients for ranks 2 through 4. The second-derivative
	expressions are straight product-rule expansions of the STF
	polynomials; they are transcribed term by term and deliberately not
	simplified, so each term can be matched against the expansion it came
	from.
*/

// Eta is the symmetric mass ratio of a binary with small mass ratio q.
func Eta(q float64) float64 {
	return q / ((1. + q) * (1. + q))
}

// radiativeL is the specific angular momentum x cross v with its
// component along the spin axis (z in harmonic coordinates) removed.
// Steady rotation about the symmetry axis is non-radiative; the part
// that sources the current moments is driven by the polar velocity, so
// S_ij and S_ijk vanish identically on equatorial orbits.
func radiativeL(x, v [3]float64) (L [3]float64) {
	L = tensor.Cross(x, v)
	L[2] = 0
	return
}

func MassQuadrupole(eta float64, x [3]float64) (M [3][3]float64) {
	r2 := tensor.Dot(x, x)
	for _, p := range tensor.Pairs {
		i, j := p[0], p[1]
		M[i][j] = eta * (x[i]*x[j] - tensor.Delta(i, j)*r2/3.)
	}
	tensor.Symmetrize2(&M)
	return
}

func MassQuadrupoleDDot(eta float64, x, v, a [3]float64) (M [3][3]float64) {
	var (
		v2 = tensor.Dot(v, v)
		xa = tensor.Dot(x, a)
	)
	for _, p := range tensor.Pairs {
		i, j := p[0], p[1]
		M[i][j] = eta * (a[i]*x[j] + 2.*v[i]*v[j] + x[i]*a[j] -
			(2./3.)*tensor.Delta(i, j)*(v2+xa))
	}
	tensor.Symmetrize2(&M)
	return
}

func MassOctupole(eta float64, x [3]float64) (M [3][3][3]float64) {
	r2 := tensor.Dot(x, x)
	for _, p := range tensor.Triples {
		i, j, k := p[0], p[1], p[2]
		M[i][j][k] = eta * (x[i]*x[j]*x[k] -
			(r2/5.)*(tensor.Delta(i, j)*x[k]+
				tensor.Delta(i, k)*x[j]+
				tensor.Delta(j, k)*x[i]))
	}
	tensor.Symmetrize3(&M)
	return
}

func MassOctupoleDDot(eta float64, x, v, a [3]float64) (M [3][3][3]float64) {
	var (
		r2 = tensor.Dot(x, x)
		v2 = tensor.Dot(v, v)
		xv = tensor.Dot(x, v)
		xa = tensor.Dot(x, a)
		W  [3]float64 // W_k = d^2/dt^2 (r^2 x_k)
	)
	for k := 0; k < 3; k++ {
		W[k] = (2.*v2+2.*xa)*x[k] + 4.*xv*v[k] + r2*a[k]
	}
	for _, p := range tensor.Triples {
		i, j, k := p[0], p[1], p[2]
		M[i][j][k] = eta * (a[i]*x[j]*x[k] + x[i]*a[j]*x[k] + x[i]*x[j]*a[k] +
			2.*(v[i]*v[j]*x[k]+v[i]*x[j]*v[k]+x[i]*v[j]*v[k]) -
			(1./5.)*(tensor.Delta(i, j)*W[k]+
				tensor.Delta(i, k)*W[j]+
				tensor.Delta(j, k)*W[i]))
	}
	tensor.Symmetrize3(&M)
	return
}

// MassHexadecapoleDDot is the second time derivative of the STF mass
// hexadecapole. This is the largest single expression in the system: the
// monomial block, the six r^2-pair trace terms and the three delta-delta
// terms are each differentiated twice by the product rule and kept
// separate.
func MassHexadecapoleDDot(eta float64, x, v, a [3]float64) (M [3][3][3][3]float64) {
	var (
		r2  = tensor.Dot(x, x)
		v2  = tensor.Dot(v, v)
		xv  = tensor.Dot(x, v)
		xa  = tensor.Dot(x, a)
		dd4 = 8.*xv*xv + 4.*r2*(v2+xa) // d^2/dt^2 r^4
		W   [3][3]float64              // W_kl = d^2/dt^2 (r^2 x_k x_l)
		dl  = tensor.Delta
	)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			W[k][l] = (2.*v2+2.*xa)*x[k]*x[l] +
				4.*xv*(v[k]*x[l]+x[k]*v[l]) +
				r2*(a[k]*x[l]+2.*v[k]*v[l]+x[k]*a[l])
		}
	}
	for _, p := range tensor.Quads {
		i, j, k, l := p[0], p[1], p[2], p[3]
		mono := a[i]*x[j]*x[k]*x[l] + x[i]*a[j]*x[k]*x[l] +
			x[i]*x[j]*a[k]*x[l] + x[i]*x[j]*x[k]*a[l] +
			2.*(v[i]*v[j]*x[k]*x[l]+v[i]*x[j]*v[k]*x[l]+
				v[i]*x[j]*x[k]*v[l]+x[i]*v[j]*v[k]*x[l]+
				x[i]*v[j]*x[k]*v[l]+x[i]*x[j]*v[k]*v[l])
		trace := dl(i, j)*W[k][l] + dl(i, k)*W[j][l] + dl(i, l)*W[j][k] +
			dl(j, k)*W[i][l] + dl(j, l)*W[i][k] + dl(k, l)*W[i][j]
		dbl := dl(i, j)*dl(k, l) + dl(i, k)*dl(j, l) + dl(i, l)*dl(j, k)
		M[i][j][k][l] = eta * (mono - trace/7. + dbl*dd4/35.)
	}
	tensor.Symmetrize4(&M)
	return
}

func CurrentQuadrupole(eta float64, x, v [3]float64) (S [3][3]float64) {
	var (
		L  = radiativeL(x, v)
		xL = tensor.Dot(x, L)
	)
	for _, p := range tensor.Pairs {
		i, j := p[0], p[1]
		S[i][j] = eta * (0.5*(x[i]*L[j]+x[j]*L[i]) -
			tensor.Delta(i, j)*xL/3.)
	}
	tensor.Symmetrize2(&S)
	return
}

func CurrentQuadrupoleDot(eta float64, x, v, a [3]float64) (S [3][3]float64) {
	var (
		L  = radiativeL(x, v)
		Ld = radiativeL(x, a)
		tr = (tensor.Dot(v, L) + tensor.Dot(x, Ld)) / 3.
	)
	for _, p := range tensor.Pairs {
		i, j := p[0], p[1]
		S[i][j] = eta * (0.5*(v[i]*L[j]+x[i]*Ld[j]+v[j]*L[i]+x[j]*Ld[i]) -
			tensor.Delta(i, j)*tr)
	}
	tensor.Symmetrize2(&S)
	return
}

func CurrentOctupole(eta float64, x, v [3]float64) (S [3][3][3]float64) {
	var (
		L  = radiativeL(x, v)
		r2 = tensor.Dot(x, x)
		xL = tensor.Dot(x, L)
		t  [3]float64 // trace vector of the symmetric part
	)
	for k := 0; k < 3; k++ {
		t[k] = (r2*L[k] + 2.*xL*x[k]) / 3.
	}
	for _, p := range tensor.Triples {
		i, j, k := p[0], p[1], p[2]
		B := (x[i]*x[j]*L[k] + x[j]*x[k]*L[i] + x[k]*x[i]*L[j]) / 3.
		S[i][j][k] = eta * (B - (1./5.)*(tensor.Delta(i, j)*t[k]+
			tensor.Delta(j, k)*t[i]+
			tensor.Delta(i, k)*t[j]))
	}
	tensor.Symmetrize3(&S)
	return
}

func CurrentOctupoleDot(eta float64, x, v, a [3]float64) (S [3][3][3]float64) {
	var (
		L   = radiativeL(x, v)
		Ld  = radiativeL(x, a)
		r2  = tensor.Dot(x, x)
		xv  = tensor.Dot(x, v)
		xL  = tensor.Dot(x, L)
		vL  = tensor.Dot(v, L)
		xLd = tensor.Dot(x, Ld)
		td  [3]float64
	)
	for k := 0; k < 3; k++ {
		td[k] = (2.*xv*L[k] + r2*Ld[k] +
			2.*(vL+xLd)*x[k] + 2.*xL*v[k]) / 3.
	}
	for _, p := range tensor.Triples {
		i, j, k := p[0], p[1], p[2]
		Bd := ((v[i]*x[j]+x[i]*v[j])*L[k] + x[i]*x[j]*Ld[k] +
			(v[j]*x[k]+x[j]*v[k])*L[i] + x[j]*x[k]*Ld[i] +
			(v[k]*x[i]+x[k]*v[i])*L[j] + x[k]*x[i]*Ld[j]) / 3.
		S[i][j][k] = eta * (Bd - (1./5.)*(tensor.Delta(i, j)*td[k]+
			tensor.Delta(j, k)*td[i]+
			tensor.Delta(i, k)*td[j]))
	}
	tensor.Symmetrize3(&S)
	return
}
