package kerr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchwarzschildLimit(t *testing.T) {
	var (
		bl  = BoyerLindquist{A: 0, M: 1}
		pos = BL{R: 10, Theta: 1.1, Phi: 0.4}
		f   = 1. - 2./pos.R
		s2  = math.Sin(pos.Theta) * math.Sin(pos.Theta)
	)
	assert.True(t, near(bl.Metric(0, 0, pos), -f))
	assert.True(t, near(bl.Metric(1, 1, pos), 1./f))
	assert.True(t, near(bl.Metric(2, 2, pos), pos.R*pos.R))
	assert.True(t, near(bl.Metric(3, 3, pos), pos.R*pos.R*s2))
	assert.True(t, near(bl.Metric(0, 3, pos), 0, 1.e-14))
	assert.True(t, near(bl.Metric(0, 3, pos), bl.Metric(3, 0, pos), 1.e-14))
}

func TestInverseMetric(t *testing.T) {
	// g g^-1 = identity, componentwise, at generic spin
	var (
		bl  = BoyerLindquist{A: 0.9, M: 1}
		pos = BL{R: 6.5, Theta: 0.9, Phi: 2.2}
	)
	for mu := 0; mu < 4; mu++ {
		for sig := 0; sig < 4; sig++ {
			var s float64
			for nu := 0; nu < 4; nu++ {
				s += bl.Metric(mu, nu, pos) * bl.InverseMetric(nu, sig, pos)
			}
			want := 0.
			if mu == sig {
				want = 1.
			}
			assert.True(t, near(s, want, 1.e-12))
		}
	}
}

func TestChristoffelSchwarzschild(t *testing.T) {
	var (
		bl  = BoyerLindquist{A: 0, M: 1}
		r   = 8.0
		pos = BL{R: r, Theta: math.Pi / 3., Phi: 0}
		M   = 1.0
		f   = 1. - 2.*M/r
	)
	assert.True(t, near(bl.Christoffel(1, 0, 0, pos), M/(r*r)*f, 1.e-5))
	assert.True(t, near(bl.Christoffel(1, 1, 1, pos), -M/(r*r*f), 1.e-5))
	assert.True(t, near(bl.Christoffel(0, 0, 1, pos), M/(r*r*f), 1.e-5))
	assert.True(t, near(bl.Christoffel(1, 2, 2, pos), -(r - 2.*M), 1.e-5))
	assert.True(t, near(bl.Christoffel(2, 1, 2, pos), 1./r, 1.e-5))
	assert.True(t, near(bl.Christoffel(3, 1, 3, pos), 1./r, 1.e-5))
	assert.True(t, near(bl.Christoffel(2, 3, 3, pos),
		-math.Sin(pos.Theta)*math.Cos(pos.Theta), 1.e-5))
}

func TestChristoffelSymmetry(t *testing.T) {
	var (
		bl  = BoyerLindquist{A: 0.7, M: 1}
		pos = BL{R: 7.3, Theta: 1.2, Phi: 0.8}
	)
	for up := 0; up < 4; up++ {
		for lo1 := 0; lo1 < 4; lo1++ {
			for lo2 := lo1 + 1; lo2 < 4; lo2++ {
				assert.True(t, near(bl.Christoffel(up, lo1, lo2, pos),
					bl.Christoffel(up, lo2, lo1, pos), 1.e-12))
			}
		}
	}
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
