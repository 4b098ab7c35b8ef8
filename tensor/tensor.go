package tensor

import "math"

// Spatial indices run 0..2 throughout. The tables below are immutable
// configuration data, built once at package load and read concurrently by
// every parallel stage.
var (
	// Eps is the Levi-Civita permutation symbol
	Eps = buildEps()
	// Pairs enumerates the independent (non-decreasing) index pairs of a
	// symmetric rank-2 tensor, Triples/Quads likewise for rank-3/4
	Pairs   = buildPairs()
	Triples = buildTriples()
	Quads   = buildQuads()
)

func buildEps() (e [3][3][3]float64) {
	e[0][1][2], e[1][2][0], e[2][0][1] = 1, 1, 1
	e[0][2][1], e[2][1][0], e[1][0][2] = -1, -1, -1
	return
}

func buildPairs() (p [][2]int) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			p = append(p, [2]int{i, j})
		}
	}
	return
}

func buildTriples() (p [][3]int) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			for k := j; k < 3; k++ {
				p = append(p, [3]int{i, j, k})
			}
		}
	}
	return
}

func buildQuads() (p [][4]int) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			for k := j; k < 3; k++ {
				for l := k; l < 3; l++ {
					p = append(p, [4]int{i, j, k, l})
				}
			}
		}
	}
	return
}

func Delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

func Dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Cross(a, b [3]float64) (c [3]float64) {
	c[0] = a[1]*b[2] - a[2]*b[1]
	c[1] = a[2]*b[0] - a[0]*b[2]
	c[2] = a[0]*b[1] - a[1]*b[0]
	return
}

func Norm(a [3]float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Dot4 contracts two 4-vectors with a general metric g, indices 0..3
func Dot4(g [4][4]float64, a, b [4]float64) (s float64) {
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			s += g[mu][nu] * a[mu] * b[nu]
		}
	}
	return
}

// RemoveTrace2 subtracts the trace part of a symmetric rank-2 tensor in
// place, leaving the STF projection
func RemoveTrace2(T *[3][3]float64) {
	tr := (T[0][0] + T[1][1] + T[2][2]) / 3.
	T[0][0] -= tr
	T[1][1] -= tr
	T[2][2] -= tr
}
