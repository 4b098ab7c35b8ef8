package waveform

import (
	"math"
	"runtime"
	"sync"

	"github.com/notargets/gokludge/selfforce"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/tensor"
	"github.com/notargets/gokludge/utils"
)

/*
	Transverse-traceless strain from the multipole moment derivatives:

		h_ij = (2/R) [ M2_ij + (1/3) n_k M3_ijk + (1/12) n_k n_l M4_ijkl
		               - (4/3) eps_kl(i S2_j)k n_l
		               - (1/2) eps_pm(i S3_j)pk n_m n_k ]

	with n the unit line of sight, M2/M3/M4 the 2nd/3rd/4th time
	derivatives of the mass quadrupole/octupole/hexadecapole and S2/S3
	the 2nd/3rd derivatives of the current quadrupole/octupole: each
	multipole enters at the derivative order equal to its rank. The
	polarizations follow from the spherical-polar basis of the observer
	direction.

	Sample assembly is independent per time index and runs on a fork-join
	pool. The moment series must be sampled in coordinate time.
*/

// Projector holds the observer geometry. Distance R scales the strain;
// Theta, Phi fix the line of sight in harmonic coordinates.
type Projector struct {
	Distance   float64
	Theta, Phi float64
	ProcLimit  int
}

// StrainSeries is the rank-2 strain at each sample plus the scalar
// polarizations. At samples inside the stencil padding at either end
// the operator-differentiated contributions are zero; only the
// analytic quadrupole term survives there, so edge samples are not
// physical strain.
type StrainSeries struct {
	H      [][3][3]float64
	HPlus  []float64
	HCross []float64
}

// Strain assembles the strain tensor and polarizations for every sample
// of a moment series.
func (wp *Projector) Strain(ms *selfforce.MomentSeries) (out *StrainSeries) {
	var (
		N  = ms.N
		NP = wp.ProcLimit
		wg = sync.WaitGroup{}
		// Differentiation operators for the missing orders
		D1 = stencil.Operator(N, 1, ms.H)
		D2 = stencil.Operator(N, 2, ms.H)
	)
	out = &StrainSeries{
		H:      make([][3][3]float64, N),
		HPlus:  make([]float64, N),
		HCross: make([]float64, N),
	}

	// Build the missing derivative orders by applying the sparse
	// operators to each independent component series: one more order for
	// the octupole and current quadrupole, two more for the hexadecapole
	// and current octupole.
	var (
		Mo3 = make([][3][3][3]float64, N)
		Mh4 = make([][3][3][3][3]float64, N)
		Sq2 = make([][3][3]float64, N)
		So3 = make([][3][3][3]float64, N)
		f   = make([]float64, N)
	)
	for _, p := range tensor.Pairs {
		i, j := p[0], p[1]
		for n := 0; n < N; n++ {
			f[n] = ms.Sq1[n][i][j]
		}
		df := stencil.Apply(D1, f)
		for n := 0; n < N; n++ {
			Sq2[n][i][j] = df[n]
		}
	}
	for _, p := range tensor.Triples {
		i, j, k := p[0], p[1], p[2]
		for n := 0; n < N; n++ {
			f[n] = ms.Mo2[n][i][j][k]
		}
		df := stencil.Apply(D1, f)
		for n := 0; n < N; n++ {
			Mo3[n][i][j][k] = df[n]
		}
		for n := 0; n < N; n++ {
			f[n] = ms.So1[n][i][j][k]
		}
		df = stencil.Apply(D2, f)
		for n := 0; n < N; n++ {
			So3[n][i][j][k] = df[n]
		}
	}
	for _, p := range tensor.Quads {
		i, j, k, l := p[0], p[1], p[2], p[3]
		for n := 0; n < N; n++ {
			f[n] = ms.Mh2[n][i][j][k][l]
		}
		df := stencil.Apply(D2, f)
		for n := 0; n < N; n++ {
			Mh4[n][i][j][k][l] = df[n]
		}
	}
	for n := 0; n < N; n++ {
		tensor.Symmetrize2(&Sq2[n])
		tensor.Symmetrize3(&Mo3[n])
		tensor.Symmetrize3(&So3[n])
		tensor.Symmetrize4(&Mh4[n])
	}

	if NP == 0 {
		NP = runtime.NumCPU()
	}
	if NP > N {
		NP = 1
	}
	pm := utils.NewPartitionMap(NP, N)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			nMin, nMax := pm.GetBucketRange(np)
			for n := nMin; n < nMax; n++ {
				out.H[n] = wp.assembleSample(ms.Mq2[n], Mo3[n], Mh4[n],
					Sq2[n], So3[n])
				out.HPlus[n], out.HCross[n] = wp.Polarize(out.H[n])
			}
		}(np)
	}
	wg.Wait()
	return
}

// LineOfSight is the unit observer direction.
func (wp *Projector) LineOfSight() (n [3]float64) {
	var (
		sth, cth = math.Sin(wp.Theta), math.Cos(wp.Theta)
		sph, cph = math.Sin(wp.Phi), math.Cos(wp.Phi)
	)
	n = [3]float64{sth * cph, sth * sph, cth}
	return
}

func (wp *Projector) assembleSample(M2 [3][3]float64, M3 [3][3][3]float64,
	M4 [3][3][3][3]float64, S2 [3][3]float64, S3 [3][3][3]float64) (h [3][3]float64) {
	var (
		n     = wp.LineOfSight()
		scale = 2. / wp.Distance
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := M2[i][j]
			for k := 0; k < 3; k++ {
				v += (1. / 3.) * n[k] * M3[i][j][k]
				for l := 0; l < 3; l++ {
					v += (1. / 12.) * n[k] * n[l] * M4[i][j][k][l]
					// current quadrupole, symmetrized over (i,j)
					v -= (4. / 3.) * 0.5 * n[l] *
						(tensor.Eps[k][l][i]*S2[j][k] +
							tensor.Eps[k][l][j]*S2[i][k])
					for m := 0; m < 3; m++ {
						// current octupole, symmetrized over (i,j)
						v -= (1. / 2.) * 0.5 * n[m] * n[k] *
							(tensor.Eps[l][m][i]*S3[j][l][k] +
								tensor.Eps[l][m][j]*S3[i][l][k])
					}
				}
			}
			h[i][j] = scale * v
		}
	}
	return
}

// Polarize projects a strain tensor onto the plus and cross
// polarizations of the observer's spherical-polar basis.
func (wp *Projector) Polarize(h [3][3]float64) (hplus, hcross float64) {
	var (
		sth, cth      = math.Sin(wp.Theta), math.Cos(wp.Theta)
		sph, cph      = math.Sin(wp.Phi), math.Cos(wp.Phi)
		eTh           = [3]float64{cth * cph, cth * sph, -sth}
		ePh           = [3]float64{-sph, cph, 0}
		hTT, hPP, hTP float64
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			hTT += eTh[i] * h[i][j] * eTh[j]
			hPP += ePh[i] * h[i][j] * ePh[j]
			hTP += eTh[i] * h[i][j] * ePh[j]
		}
	}
	hplus = 0.5 * (hTT - hPP)
	hcross = hTP
	return
}
