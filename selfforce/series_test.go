package selfforce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gokludge/chain"
	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/trajectory"
)

func TestComputeMomentSeries(t *testing.T) {
	var (
		a, M = 0.9, 1.0
		mp   = kerr.BoyerLindquist{A: a, M: M}
		buf  = trajectory.NewCircularOrbit(a, M, 10, 24, 0.5)
		eta  = Eta(1.e-4)
	)
	buf.Convert(mp, a, M, 4)
	ms := ComputeMomentSeries(buf, eta, 4)
	assert.Equal(t, buf.Len(), ms.N)
	assert.Equal(t, buf.H, ms.H)
	// spot check against direct evaluation
	for _, i := range []int{0, 7, 23} {
		s := &buf.Samples[i]
		want := MassQuadrupoleDDot(eta, s.X, s.V, s.A)
		for _, p := range []int{0, 1, 2} {
			assert.Equal(t, want[p][p], ms.Mq2[i][p][p])
		}
		assert.Equal(t, want[0][1], ms.Mq2[i][0][1])
	}
}

// analytic moment series: every family oscillates with its own phase so
// each derivative order has a closed form
func sinusoidSeries(N int, h, omega float64) (ms *MomentSeries) {
	ms = &MomentSeries{
		N:   N,
		H:   h,
		Mq2: make([][3][3]float64, N),
		Mo2: make([][3][3][3]float64, N),
		Mh2: make([][3][3][3][3]float64, N),
		Sq1: make([][3][3]float64, N),
		So1: make([][3][3][3]float64, N),
	}
	for n := 0; n < N; n++ {
		tn := float64(n) * h
		s := math.Sin(omega * tn)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				ms.Mq2[n][i][j] = float64(i+j+1) * s
				ms.Sq1[n][i][j] = float64(i-j) * s
				for k := 0; k < 3; k++ {
					ms.Mo2[n][i][j][k] = float64(i+j+k+1) * s
					ms.So1[n][i][j][k] = float64(i*j + k) * s
					for l := 0; l < 3; l++ {
						ms.Mh2[n][i][j][k][l] = float64(i+j+k+l+1) * s
					}
				}
			}
		}
	}
	return
}

func TestDerivativesAtCoordinateTime(t *testing.T) {
	var (
		N     = 31
		h     = 0.05
		omega = 0.7
		i     = N / 2
		ms    = sinusoidSeries(N, h, omega)
		ti    = float64(i) * h
	)
	md := ms.DerivativesAt(i, CoordinateTime, chain.Set{}, 4)
	for k := 0; k <= 6; k++ {
		// d^k sin(omega t) = omega^k sin(omega t + k pi/2)
		want := math.Pow(omega, float64(k)) * math.Sin(omega*ti+float64(k)*math.Pi/2.)
		assert.True(t, near(md.Mq[k+2][1][2], 4.*want, 1.e-2))
		assert.True(t, near(md.Mq[k+2][2][1], 4.*want, 1.e-2))
		assert.True(t, near(md.Mo[k+2][0][1][2], 4.*want, 1.e-2))
		assert.True(t, near(md.Mh[k+2][0][1][2][2], 6.*want, 1.e-2))
		assert.True(t, near(md.Sq[k+1][0][1], -1.*want, 1.e-2))
		assert.True(t, near(md.So[k+1][1][2][0], 2.*want, 1.e-2))
	}
}

func TestDerivativesAtMinoTime(t *testing.T) {
	// Sampling parameter lam = c t: composing with the linear chain must
	// scale each order by c^k relative to the lam derivatives
	var (
		N     = 31
		h     = 0.05 // spacing in lam
		omega = 0.7  // frequency in lam
		i     = N / 2
		c     = 2.5
		ms    = sinusoidSeries(N, h, omega)
		lami  = float64(i) * h
		lam   = chain.Set{D: [7]float64{lami, c, 0, 0, 0, 0, 0}}
	)
	md := ms.DerivativesAt(i, MinoTime, lam, 4)
	for k := 0; k <= 6; k++ {
		dLam := math.Pow(omega, float64(k)) * math.Sin(omega*lami+float64(k)*math.Pi/2.)
		want := math.Pow(c, float64(k)) * dLam
		assert.True(t, near(md.Mq[k+2][1][2], 4.*want, 1.e-2))
		assert.True(t, near(md.Sq[k+1][0][1], -1.*want, 1.e-2))
	}
}

func TestDerivativesAtSymmetrized(t *testing.T) {
	var (
		ms = sinusoidSeries(31, 0.02, 0.7)
		md = ms.DerivativesAt(15, CoordinateTime, chain.Set{}, 2)
	)
	for k := 2; k <= 8; k++ {
		assert.Equal(t, md.Mo[k][2][1][0], md.Mo[k][0][1][2])
		assert.Equal(t, md.Mh[k][2][1][0][0], md.Mh[k][0][0][1][2])
	}
	for k := 1; k <= 7; k++ {
		assert.Equal(t, md.Sq[k][1][0], md.Sq[k][0][1])
		assert.Equal(t, md.So[k][2][0][1], md.So[k][0][1][2])
	}
}
