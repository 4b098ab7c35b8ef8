package trajectory

import (
	"math"

	"github.com/notargets/gokludge/utils"
)

// NewCircularOrbit builds a buffer of n samples, spacing h in coordinate
// time, for a prograde circular equatorial Kerr orbit of Boyer-Lindquist
// radius r0. The orbital frequency is the exact geodesic value
// Omega = sqrt(M) / (r^{3/2} + a sqrt(M)); all derivatives are closed
// form, so the buffer is free of integration error.
func NewCircularOrbit(a, M, r0 float64, n int, h float64) (b *Buffer) {
	var (
		Omega = math.Sqrt(M) / (math.Pow(r0, 1.5) + a*math.Sqrt(M))
		ts    = utils.Linspace(0, float64(n-1)*h, n)
	)
	b = &Buffer{
		H:       h,
		Samples: make([]Sample, n),
	}
	for i := 0; i < n; i++ {
		t := ts[i]
		b.Samples[i] = Sample{
			T:      t,
			R:      r0,
			Theta:  math.Pi / 2.,
			Phi:    Omega * t,
			PhiDot: Omega,
		}
	}
	return
}

// CircularOrbitOmega exposes the geodesic frequency for reporting.
func CircularOrbitOmega(a, M, r0 float64) float64 {
	return math.Sqrt(M) / (math.Pow(r0, 1.5) + a*math.Sqrt(M))
}
