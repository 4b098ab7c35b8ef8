package tensor

/*
	Moment tensors are filled only at non-decreasing index tuples (see
	Pairs/Triples/Quads) to avoid recomputing algebraically identical
	entries. The Symmetrize routines copy the canonical entries into every
	other permutation, in place. Post-call, T[perm(i,j,...)] == T[i,j,...]
	for all permutations.
*/

func Symmetrize2(T *[3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			T[j][i] = T[i][j]
		}
	}
}

func Symmetrize3(T *[3][3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				a, b, c := sort3(i, j, k)
				T[i][j][k] = T[a][b][c]
			}
		}
	}
}

func Symmetrize4(T *[3][3][3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					a, b, c, d := sort4(i, j, k, l)
					T[i][j][k][l] = T[a][b][c][d]
				}
			}
		}
	}
}

func sort3(i, j, k int) (a, b, c int) {
	a, b, c = i, j, k
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return
}

func sort4(i, j, k, l int) (a, b, c, d int) {
	a, b, c = sort3(i, j, k)
	d = l
	if c > d {
		c, d = d, c
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return
}
