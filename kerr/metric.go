package kerr

import (
	"math"

	"github.com/notargets/gokludge/utils"
)

// BL is a spatial Boyer-Lindquist position. The metric is stationary and
// axisymmetric so no time coordinate is carried.
type BL struct {
	R, Theta, Phi float64
}

// MetricProvider abstracts the background geometry. Indices run 0..3 for
// (t, r, theta, phi). Implementations must be safe for concurrent use.
type MetricProvider interface {
	Metric(mu, nu int, pos BL) float64
	InverseMetric(mu, nu int, pos BL) float64
	Christoffel(up, lo1, lo2 int, pos BL) float64
}

// BoyerLindquist is the Kerr metric in Boyer-Lindquist coordinates for a
// hole of mass M and spin parameter A (0 <= A < M). Metric components are
// closed form; Christoffel symbols are built by central differencing of
// the metric, which keeps the provider substitutable for an analytic or
// mocked variant behind the same interface.
type BoyerLindquist struct {
	A, M float64
}

func (bl BoyerLindquist) sigmaDelta(pos BL) (Sigma, Delta float64) {
	var (
		a, r = bl.A, pos.R
		cth  = utils.POW(math.Cos(pos.Theta), 2)
	)
	Sigma = r*r + a*a*cth
	Delta = r*r - 2*bl.M*r + a*a
	return
}

func (bl BoyerLindquist) Metric(mu, nu int, pos BL) (g float64) {
	var (
		a, M         = bl.A, bl.M
		r            = pos.R
		sth          = math.Sin(pos.Theta)
		s2           = sth * sth
		Sigma, Delta = bl.sigmaDelta(pos)
	)
	if mu > nu {
		mu, nu = nu, mu
	}
	switch {
	case mu == 0 && nu == 0:
		g = -(1. - 2.*M*r/Sigma)
	case mu == 0 && nu == 3:
		g = -2. * M * a * r * s2 / Sigma
	case mu == 1 && nu == 1:
		g = Sigma / Delta
	case mu == 2 && nu == 2:
		g = Sigma
	case mu == 3 && nu == 3:
		g = (r*r + a*a + 2.*M*a*a*r*s2/Sigma) * s2
	}
	return
}

func (bl BoyerLindquist) InverseMetric(mu, nu int, pos BL) (g float64) {
	var (
		a, M         = bl.A, bl.M
		r            = pos.R
		sth          = math.Sin(pos.Theta)
		s2           = sth * sth
		Sigma, Delta = bl.sigmaDelta(pos)
		rr           = r*r + a*a
		AA           = rr*rr - a*a*Delta*s2
	)
	if mu > nu {
		mu, nu = nu, mu
	}
	switch {
	case mu == 0 && nu == 0:
		g = -AA / (Sigma * Delta)
	case mu == 0 && nu == 3:
		g = -2. * M * a * r / (Sigma * Delta)
	case mu == 1 && nu == 1:
		g = Delta / Sigma
	case mu == 2 && nu == 2:
		g = 1. / Sigma
	case mu == 3 && nu == 3:
		g = (Delta - a*a*s2) / (Sigma * Delta * s2)
	}
	return
}

// metricDeriv is the partial of g_{mu nu} with respect to coordinate lo
// (1=r, 2=theta; t and phi derivatives vanish by stationarity and
// axisymmetry), by central differencing.
func (bl BoyerLindquist) metricDeriv(mu, nu, lo int, pos BL) (dg float64) {
	var (
		pp, pm = pos, pos
		eps    float64
	)
	switch lo {
	case 0, 3:
		return 0
	case 1:
		eps = 1.e-6 * (1. + pos.R)
		pp.R += eps
		pm.R -= eps
	case 2:
		eps = 1.e-6
		pp.Theta += eps
		pm.Theta -= eps
	}
	dg = (bl.Metric(mu, nu, pp) - bl.Metric(mu, nu, pm)) / (2. * eps)
	return
}

func (bl BoyerLindquist) Christoffel(up, lo1, lo2 int, pos BL) (G float64) {
	for del := 0; del < 4; del++ {
		gud := bl.InverseMetric(up, del, pos)
		if gud == 0 {
			continue
		}
		G += 0.5 * gud * (bl.metricDeriv(del, lo2, lo1, pos) +
			bl.metricDeriv(del, lo1, lo2, pos) -
			bl.metricDeriv(lo1, lo2, del, pos))
	}
	return
}
