package chain

import (
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/utils"
)

// Set holds a sampled quantity and its derivatives through order 6 with
// respect to a single affine parameter. D[0] is the value itself.
type Set struct {
	D [7]float64
}

// FromSeries evaluates the value and derivative orders 1-6 of a uniformly
// sampled series at index i, with respect to the sampling parameter.
// The caller must guarantee stencil.MaxPad samples on both sides of i;
// there is no boundary handling here.
func FromSeries(f []float64, i int, h float64) (s Set) {
	s.D[0] = f[i]
	for k := 1; k <= 6; k++ {
		s.D[k] = stencil.Deriv(f, i, k, h)
	}
	return
}

/*
	Compose converts the derivative set of f with respect to lam into the
	derivative set of f with respect to t, given the derivative set of
	lam(t). Each order is the explicit partition expansion of the chain
	rule for f(lam(t)):

		order 1:  f1 L1
		order 2:  f2 L1^2 + f1 L2
		order 3:  f3 L1^3 + 3 f2 L1 L2 + f1 L3
		order 4:  f4 L1^4 + 6 f3 L1^2 L2 + f2 (3 L2^2 + 4 L1 L3) + f1 L4
		order 5:  f5 L1^5 + 10 f4 L1^3 L2
		          + f3 (15 L1 L2^2 + 10 L1^2 L3)
		          + f2 (10 L2 L3 + 5 L1 L4) + f1 L5
		order 6:  f6 L1^6 + 15 f5 L1^4 L2
		          + f4 (45 L1^2 L2^2 + 20 L1^3 L3)
		          + f3 (15 L2^3 + 60 L1 L2 L3 + 15 L1^2 L4)
		          + f2 (10 L3^2 + 15 L2 L4 + 6 L1 L5) + f1 L6

	where fk = d^k f/dlam^k and Lk = d^k lam/dt^k. The integer weights are
	the multinomial counts over the partitions of each order; they are
	written out per order rather than generated, so each term can be
	checked against the expansion it came from.
*/
func Compose(f, lam Set) (g Set) {
	var (
		f1, f2, f3, f4, f5, f6 = f.D[1], f.D[2], f.D[3], f.D[4], f.D[5], f.D[6]
		L1, L2, L3, L4, L5, L6 = lam.D[1], lam.D[2], lam.D[3], lam.D[4], lam.D[5], lam.D[6]
	)
	g.D[0] = f.D[0]
	g.D[1] = f1 * L1
	g.D[2] = f2*L1*L1 + f1*L2
	g.D[3] = f3*utils.POW(L1, 3) + 3*f2*L1*L2 + f1*L3
	g.D[4] = f4*utils.POW(L1, 4) + 6*f3*L1*L1*L2 +
		f2*(3*L2*L2+4*L1*L3) + f1*L4
	g.D[5] = f5*utils.POW(L1, 5) + 10*f4*utils.POW(L1, 3)*L2 +
		f3*(15*L1*L2*L2+10*L1*L1*L3) +
		f2*(10*L2*L3+5*L1*L4) + f1*L5
	g.D[6] = f6*utils.POW(L1, 6) + 15*f5*utils.POW(L1, 4)*L2 +
		f4*(45*L1*L1*L2*L2+20*utils.POW(L1, 3)*L3) +
		f3*(15*utils.POW(L2, 3)+60*L1*L2*L3+15*L1*L1*L4) +
		f2*(10*L3*L3+15*L2*L4+6*L1*L5) + f1*L6
	return
}
