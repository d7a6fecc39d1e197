package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin.
//
// The square root runs through algo-vecmath's SIMD dispatch (AVX2, SSE2,
// NEON or generic).
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Energy returns the sum of |X[k]|^2 over all bins.
func Energy(in []complex128) float64 {
	sum := 0.0
	for _, p := range Power(in) {
		sum += p
	}
	return sum
}

// EnergyRatio returns the share of the total energy held by bins[from:to].
// A silent spectrum reports 0.
func EnergyRatio(bins []complex128, from, to int) (float64, error) {
	if from < 0 || to > len(bins) || from > to {
		return 0, fmt.Errorf("spectrum: band [%d, %d) out of range for %d bins", from, to, len(bins))
	}

	pow := Power(bins)

	total := 0.0
	band := 0.0
	for i, p := range pow {
		total += p
		if i >= from && i < to {
			band += p
		}
	}

	if total == 0 {
		return 0, nil
	}
	return band / total, nil
}
