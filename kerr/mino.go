package kerr

import (
	"math"

	"github.com/notargets/gokludge/chain"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/utils"
)

// Sigma is the Mino time factor: d(lambda)/dt = 1/Sigma along the orbit.
func Sigma(a, r, theta float64) float64 {
	c := math.Cos(theta)
	return r*r + a*a*c*c
}

// InverseSigmaSeries tabulates 1/Sigma along a sampled trajectory. When
// the trajectory is sampled uniformly in Mino time this series is the
// raw material for the lambda-to-t derivative chain.
func InverseSigmaSeries(a float64, rs, thetas []float64) (u []float64) {
	u = make([]float64, len(rs))
	for i := range rs {
		u[i] = 1. / Sigma(a, rs[i], thetas[i])
	}
	return
}

/*
	MinoChain produces d^k lambda / dt^k for k = 1..6 at sample i of a
	trajectory sampled uniformly (spacing h) in Mino time, from the series
	u = 1/Sigma = dlambda/dt.

	With ' denoting d/dlambda and u_k = d^k u/dlambda^k (numerical, from
	the stencil tables), repeated application of d/dt = u d/dlambda gives

		L1 = u
		L2 = u u1
		L3 = u (u1^2 + u u2)
		L4 = u (u1^3 + 4 u u1 u2 + u^2 u3)
		L5 = u (u1^4 + 11 u u1^2 u2 + 4 u^2 u2^2 + 7 u^2 u1 u3 + u^3 u4)
		L6 = u (u1^5 + 26 u u1^3 u2 + 34 u^2 u1 u2^2 + 32 u^2 u1^2 u3
		        + 15 u^3 u2 u3 + 11 u^3 u1 u4 + u^4 u5)

	Each order is the derivative of the previous expression, expanded and
	collected by hand; the integer weights fall out of the product rule.
*/
func MinoChain(u []float64, i int, h float64) (lam chain.Set) {
	var (
		u0                 = u[i]
		u1, u2, u3, u4, u5 float64
	)
	u1 = stencil.Deriv(u, i, 1, h)
	u2 = stencil.Deriv(u, i, 2, h)
	u3 = stencil.Deriv(u, i, 3, h)
	u4 = stencil.Deriv(u, i, 4, h)
	u5 = stencil.Deriv(u, i, 5, h)

	lam.D[1] = u0
	lam.D[2] = u0 * u1
	lam.D[3] = u0 * (u1*u1 + u0*u2)
	lam.D[4] = u0 * (utils.POW(u1, 3) + 4.*u0*u1*u2 + u0*u0*u3)
	lam.D[5] = u0 * (utils.POW(u1, 4) + 11.*u0*u1*u1*u2 +
		4.*u0*u0*u2*u2 + 7.*u0*u0*u1*u3 + utils.POW(u0, 3)*u4)
	lam.D[6] = u0 * (utils.POW(u1, 5) + 26.*u0*utils.POW(u1, 3)*u2 +
		34.*u0*u0*u1*u2*u2 + 32.*u0*u0*u1*u1*u3 +
		15.*utils.POW(u0, 3)*u2*u3 + 11.*utils.POW(u0, 3)*u1*u4 +
		utils.POW(u0, 4)*u5)
	return
}
