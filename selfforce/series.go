package selfforce

import (
	"runtime"
	"sync"

	"github.com/notargets/gokludge/chain"
	"github.com/notargets/gokludge/tensor"
	"github.com/notargets/gokludge/trajectory"
	"github.com/notargets/gokludge/utils"
)

// Parameterization selects the affine parameter the trajectory buffer was
// sampled in. Finite differences act in the sampling parameter; when that
// is Mino time the results are chained back to coordinate time.
type Parameterization uint8

const (
	CoordinateTime Parameterization = iota
	MinoTime
)

// MomentSeries holds the analytic moment derivatives tabulated at every
// trajectory sample. These are the series the derivative chain
// differentiates to reach orders 3 through 8. Transient: rebuilt for each
// evaluation, never cached across invocations.
type MomentSeries struct {
	N   int
	H   float64
	Mq2 [][3][3]float64       // d^2 M_ij / dt^2
	Mo2 [][3][3][3]float64    // d^2 M_ijk / dt^2
	Mh2 [][3][3][3][3]float64 // d^2 M_ijkl / dt^2
	Sq1 [][3][3]float64       // d S_ij / dt
	So1 [][3][3][3]float64    // d S_ijk / dt
}

// ComputeMomentSeries evaluates the closed-form moment derivatives at
// every sample of a converted buffer. Samples are independent; the loop
// is forked across a worker pool with disjoint output slots.
func ComputeMomentSeries(buf *trajectory.Buffer, eta float64, ProcLimit int) (ms *MomentSeries) {
	var (
		N  = buf.Len()
		NP = ProcLimit
		wg = sync.WaitGroup{}
	)
	ms = &MomentSeries{
		N:   N,
		H:   buf.H,
		Mq2: make([][3][3]float64, N),
		Mo2: make([][3][3][3]float64, N),
		Mh2: make([][3][3][3][3]float64, N),
		Sq1: make([][3][3]float64, N),
		So1: make([][3][3][3]float64, N),
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
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				s := &buf.Samples[i]
				ms.Mq2[i] = MassQuadrupoleDDot(eta, s.X, s.V, s.A)
				ms.Mo2[i] = MassOctupoleDDot(eta, s.X, s.V, s.A)
				ms.Mh2[i] = MassHexadecapoleDDot(eta, s.X, s.V, s.A)
				ms.Sq1[i] = CurrentQuadrupoleDot(eta, s.X, s.V, s.A)
				ms.So1[i] = CurrentOctupoleDot(eta, s.X, s.V, s.A)
			}
		}(np)
	}
	wg.Wait()
	return
}

// MomentDerivatives collects the coordinate-time derivatives of every
// moment at one evaluation index, indexed by derivative order. Mass
// moments carry orders 2..8, current moments orders 1..7.
type MomentDerivatives struct {
	Mq [9][3][3]float64
	Mo [9][3][3][3]float64
	Mh [9][3][3][3][3]float64
	Sq [8][3][3]float64
	So [8][3][3][3]float64
}

// family/tuple job table for the parallel derivative pass. Each job owns
// one independent tensor component, so workers never share output slots.
const (
	famMq = iota
	famMo
	famMh
	famSq
	famSo
)

type derivJob struct {
	family int
	tuple  int
}

func buildJobs() (jobs []derivJob) {
	for t := range tensor.Pairs {
		jobs = append(jobs, derivJob{famMq, t})
	}
	for t := range tensor.Triples {
		jobs = append(jobs, derivJob{famMo, t})
	}
	for t := range tensor.Quads {
		jobs = append(jobs, derivJob{famMh, t})
	}
	for t := range tensor.Pairs {
		jobs = append(jobs, derivJob{famSq, t})
	}
	for t := range tensor.Triples {
		jobs = append(jobs, derivJob{famSo, t})
	}
	return
}

/*
	DerivativesAt runs the derivative chain for every independent moment
	component at sample i and symmetrizes the resulting order tensors.

	In the CoordinateTime branch the finite differences of the analytic
	series are already coordinate-time derivatives. In the MinoTime
	branch the differences are Mino-time derivatives of the same series
	and are composed with lam (d^k lambda/dt^k from kerr.MinoChain) to
	produce coordinate-time orders.

	The caller guarantees stencil padding around i; there is no boundary
	handling below.
*/
func (ms *MomentSeries) DerivativesAt(i int, param Parameterization, lam chain.Set, ProcLimit int) (md *MomentDerivatives) {
	var (
		jobs = buildJobs()
		NP   = ProcLimit
		wg   = sync.WaitGroup{}
	)
	md = &MomentDerivatives{}
	if NP == 0 {
		NP = runtime.NumCPU()
	}
	if NP > len(jobs) {
		NP = len(jobs)
	}
	pm := utils.NewPartitionMap(NP, len(jobs))
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			var (
				f          = make([]float64, ms.N)
				jMin, jMax = pm.GetBucketRange(np)
			)
			for j := jMin; j < jMax; j++ {
				ms.runJob(jobs[j], f, i, param, lam, md)
			}
		}(np)
	}
	wg.Wait()

	for k := 2; k <= 8; k++ {
		tensor.Symmetrize2(&md.Mq[k])
		tensor.Symmetrize3(&md.Mo[k])
		tensor.Symmetrize4(&md.Mh[k])
	}
	for k := 1; k <= 7; k++ {
		tensor.Symmetrize2(&md.Sq[k])
		tensor.Symmetrize3(&md.So[k])
	}
	return
}

func (ms *MomentSeries) runJob(job derivJob, f []float64, i int, param Parameterization, lam chain.Set, md *MomentDerivatives) {
	var set chain.Set
	gather := func(get func(n int) float64) chain.Set {
		for n := 0; n < ms.N; n++ {
			f[n] = get(n)
		}
		s := chain.FromSeries(f, i, ms.H)
		if param == MinoTime {
			s = chain.Compose(s, lam)
		}
		return s
	}
	switch job.family {
	case famMq:
		p := tensor.Pairs[job.tuple]
		set = gather(func(n int) float64 { return ms.Mq2[n][p[0]][p[1]] })
		for k := 0; k <= 6; k++ {
			md.Mq[k+2][p[0]][p[1]] = set.D[k]
		}
	case famMo:
		p := tensor.Triples[job.tuple]
		set = gather(func(n int) float64 { return ms.Mo2[n][p[0]][p[1]][p[2]] })
		for k := 0; k <= 6; k++ {
			md.Mo[k+2][p[0]][p[1]][p[2]] = set.D[k]
		}
	case famMh:
		p := tensor.Quads[job.tuple]
		set = gather(func(n int) float64 { return ms.Mh2[n][p[0]][p[1]][p[2]][p[3]] })
		for k := 0; k <= 6; k++ {
			md.Mh[k+2][p[0]][p[1]][p[2]][p[3]] = set.D[k]
		}
	case famSq:
		p := tensor.Pairs[job.tuple]
		set = gather(func(n int) float64 { return ms.Sq1[n][p[0]][p[1]] })
		for k := 0; k <= 6; k++ {
			md.Sq[k+1][p[0]][p[1]] = set.D[k]
		}
	case famSo:
		p := tensor.Triples[job.tuple]
		set = gather(func(n int) float64 { return ms.So1[n][p[0]][p[1]][p[2]] })
		for k := 0; k <= 6; k++ {
			md.So[k+1][p[0]][p[1]][p[2]] = set.D[k]
		}
	}
}
