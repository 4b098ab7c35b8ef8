package trajectory

import (
	"runtime"
	"sync"

	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/tensor"
	"github.com/notargets/gokludge/utils"
)

// Sample is one time-indexed snapshot of the orbit. Boyer-Lindquist
// fields come from the trajectory source; the harmonic fields are filled
// by Buffer.Convert and immutable afterwards.
type Sample struct {
	T float64
	// Boyer-Lindquist position and its first/second time derivatives
	R, Theta, Phi          float64
	RDot, ThetaDot, PhiDot float64
	RDD, ThetaDD, PhiDD    float64
	// Harmonic Cartesian forms, contravariant
	X, V, A [3]float64
	// Covariant coordinate velocity, lowered with the harmonic metric.
	// The worldline projection builds u_i from this.
	VLo [3]float64
	// Derived scalars
	Speed, Radius float64
}

// Buffer owns the uniformly sampled trajectory. H is the grid spacing in
// the sampling parameter - coordinate time or Mino time, whichever the
// source integrated in. Downstream stages read samples, never write.
type Buffer struct {
	H       float64
	Samples []Sample
}

func (b *Buffer) Len() int { return len(b.Samples) }

// RSeries and ThetaSeries expose the radial and polar histories for the
// Mino time machinery.
func (b *Buffer) RSeries() (r []float64) {
	r = make([]float64, len(b.Samples))
	for i := range b.Samples {
		r[i] = b.Samples[i].R
	}
	return
}

func (b *Buffer) ThetaSeries() (th []float64) {
	th = make([]float64, len(b.Samples))
	for i := range b.Samples {
		th[i] = b.Samples[i].Theta
	}
	return
}

// Convert fills the harmonic-coordinate fields of every sample from the
// Boyer-Lindquist fields. Samples are independent, so the work is split
// across a fork-join worker pool; each worker writes only the samples in
// its own bucket.
func (b *Buffer) Convert(mp kerr.MetricProvider, a, M float64, ProcLimit int) {
	var (
		NP = ProcLimit
		wg = sync.WaitGroup{}
	)
	if NP == 0 {
		NP = runtime.NumCPU()
	}
	if NP > b.Len() {
		NP = 1
	}
	pm := utils.NewPartitionMap(NP, b.Len())
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				b.Samples[i].convert(mp, a, M)
			}
		}(np)
	}
	wg.Wait()
}

func (s *Sample) convert(mp kerr.MetricProvider, a, M float64) {
	var (
		pos   = kerr.BL{R: s.R, Theta: s.Theta, Phi: s.Phi}
		qdot  = [3]float64{s.RDot, s.ThetaDot, s.PhiDot}
		qddot = [3]float64{s.RDD, s.ThetaDD, s.PhiDD}
	)
	s.X = kerr.ToHarmonicPosition(a, M, pos)
	s.V = kerr.ToHarmonicVelocity(a, M, pos, qdot)
	s.A = kerr.ToHarmonicAcceleration(a, M, pos, qdot, qddot)
	s.Radius = tensor.Norm(s.X)
	s.Speed = tensor.Norm(s.V)
	// Lower the spatial velocity with the harmonic metric. The g_{0i}
	// part contributes with unit coordinate velocity of time.
	g := kerr.HarmonicMetric(mp, a, M, pos)
	for i := 0; i < 3; i++ {
		s.VLo[i] = g[i+1][0]
		for j := 0; j < 3; j++ {
			s.VLo[i] += g[i+1][j+1] * s.V[j]
		}
	}
}
