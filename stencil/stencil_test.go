package stencil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gokludge/utils"
)

func TestDerivMonomial(t *testing.T) {
	// The order-k central stencil is exact on t^k: all lower moments of
	// the coefficients vanish, the k-th moment is k!
	var (
		N    = 11
		h    = 0.5
		i    = N / 2
		fact = []float64{1, 1, 2, 6, 24, 120, 720}
	)
	for order := 1; order <= 6; order++ {
		f := make([]float64, N)
		for n := 0; n < N; n++ {
			tn := float64(n-i) * h
			f[n] = utils.POW(tn, order)
		}
		assert.True(t, near(Deriv(f, i, order, h), fact[order], 1.e-9))
	}
}

func TestDerivSin(t *testing.T) {
	var (
		N  = 21
		h  = 0.05
		i  = N / 2
		t0 = 0.3
	)
	f := make([]float64, N)
	for n := 0; n < N; n++ {
		f[n] = math.Sin(t0 + float64(n-i)*h)
	}
	for order := 1; order <= 6; order++ {
		exact := math.Sin(t0 + float64(order)*math.Pi/2.)
		assert.True(t, near(Deriv(f, i, order, h), exact, 1.e-2))
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, 1, Pad(1))
	assert.Equal(t, 1, Pad(2))
	assert.Equal(t, 2, Pad(3))
	assert.Equal(t, 2, Pad(4))
	assert.Equal(t, 3, Pad(5))
	assert.Equal(t, 3, Pad(6))
	assert.Equal(t, 3, MaxPad)
}

func TestOperator(t *testing.T) {
	// Applying the sparse operator must reproduce Deriv at every interior
	// sample and leave the edge rows zero
	var (
		N = 32
		h = 0.05
	)
	f := make([]float64, N)
	for n := 0; n < N; n++ {
		f[n] = math.Sin(0.2 + float64(n)*h)
	}
	for order := 1; order <= 6; order++ {
		var (
			D   = Operator(N, order, h)
			df  = Apply(D, f)
			pad = Pad(order)
		)
		for n := 0; n < N; n++ {
			if n < pad || n >= N-pad {
				assert.Equal(t, 0., df[n])
			} else {
				assert.True(t, near(df[n], Deriv(f, n, order, h), 1.e-12))
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
