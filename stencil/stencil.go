package stencil

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gokludge/utils"
)

/*
	Central finite difference stencils for derivative orders 1-6 on a
	uniformly sampled series. The tables are the classical second-order
	accurate central coefficients; width grows with derivative order.

	No step-size control is performed here. Too small a step loses digits to
	cancellation, too large a step to truncation - the caller owns h.
*/
type centralStencil struct {
	width  int
	coeffs []float64
}

var central = [6]centralStencil{
	{3, []float64{-0.5, 0, 0.5}},
	{3, []float64{1, -2, 1}},
	{5, []float64{-0.5, 1, 0, -1, 0.5}},
	{5, []float64{1, -4, 6, -4, 1}},
	{7, []float64{-0.5, 2, -2.5, 0, 2.5, -2, 0.5}},
	{7, []float64{1, -6, 15, -20, 15, -6, 1}},
}

// Pad returns the number of samples needed on each side of the evaluation
// index for the given derivative order. Callers must guarantee at least
// this much padding; the evaluation itself does not check.
func Pad(order int) int {
	return central[order-1].width / 2
}

// MaxPad is the padding required by the widest stencil (order 6)
const MaxPad = 3

// Deriv computes the order-th derivative of the sampled series f at index i
// with uniform spacing h, with respect to the sampling parameter.
func Deriv(f []float64, i, order int, h float64) (d float64) {
	var (
		st   = central[order-1]
		half = st.width / 2
	)
	for m, c := range st.coeffs {
		d += c * f[i+m-half]
	}
	d /= utils.POW(h, order)
	return
}

// DiffOp is an n x n sparse differentiation operator: the raw stencil
// coefficient matrix plus the h^order grid factor it divides by.
type DiffOp struct {
	D    *sparse.CSR
	HPow float64
}

// Operator builds the differentiation operator for the given derivative
// order and spacing. Rows within Pad(order) of either end are left zero;
// applying the operator to a series differentiates every interior sample
// at once.
func Operator(n, order int, h float64) (op DiffOp) {
	var (
		st   = central[order-1]
		half = st.width / 2
		dok  = sparse.NewDOK(n, n)
	)
	for i := half; i < n-half; i++ {
		for m, c := range st.coeffs {
			if c != 0 {
				dok.Set(i, i+m-half, c)
			}
		}
	}
	op.D = dok.ToCSR()
	op.HPow = utils.POW(h, order)
	return
}

// Apply multiplies the differentiation operator into a series, returning
// the differentiated series. The matvec accumulates the unscaled stencil
// coefficients and the h^order factor divides once per sample, the same
// summation Deriv performs. Edge samples inside the stencil padding are
// zero.
func Apply(op DiffOp, f []float64) (df []float64) {
	var (
		n = len(f)
	)
	out := mat.NewVecDense(n, nil)
	out.MulVec(op.D, mat.NewVecDense(n, f))
	df = out.RawVector().Data
	for i := range df {
		df[i] /= op.HPow
	}
	return
}
