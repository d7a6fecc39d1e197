package fft

import (
	"math"
	"slices"
	"sync"

	"github.com/cwbudde/algo-wavfft/dsp/core"
)

// Real is the set of sample types accepted by [Lift] and [Forward].
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lift converts real samples to complex values with zero imaginary part.
func Lift[T Real](data []T) []complex128 {
	out := make([]complex128, len(data))
	for i, v := range data {
		out[i] = complex(float64(v), 0)
	}
	return out
}

// Pad returns seq extended with zeros to the next power of two.
//
// If len(seq) is already a power of two, or shorter than one element, seq
// itself is returned. Otherwise the result is a new slice.
func Pad(seq []complex128) []complex128 {
	n := len(seq)
	if n == 0 || core.IsPowerOfTwo(n) {
		return seq
	}
	out := make([]complex128, core.NextPowerOfTwo(n))
	copy(out, seq)
	return out
}

// Split returns the even- and odd-indexed elements of seq as two newly
// allocated slices. For odd lengths the odd half is one element shorter.
func Split(seq []complex128) (evens, odds []complex128) {
	evens = make([]complex128, 0, (len(seq)+1)/2)
	odds = make([]complex128, 0, len(seq)/2)
	for i := 0; i < len(seq); i += 2 {
		evens = append(evens, seq[i])
		if i+1 < len(seq) {
			odds = append(odds, seq[i+1])
		}
	}
	return evens, odds
}

// Transform computes the unnormalised e^{+iθ} DFT of seq with the recursive
// even/odd decomposition. The input is never modified. Sequences shorter than
// two elements are returned as a copy; longer ones are padded to a power of
// two and the padded-length spectrum is returned.
func Transform(seq []complex128) []complex128 {
	if len(seq) < 2 {
		return slices.Clone(seq)
	}
	return transform(seq, 0)
}

// Compute is the convenience form of [Transform]. With inverse set, the
// spectrum is divided by its length and elements 1..N-1 are reversed.
func Compute(seq []complex128, inverse bool) []complex128 {
	out := Transform(seq)
	if inverse {
		invert(out)
	}
	return out
}

// Forward lifts real samples to complex and transforms them.
func Forward[T Real](data []T) []complex128 {
	return transform(Lift(data), 0)
}

// Inverse applies the reversal-based inverse transform to bins.
func Inverse(bins []complex128) []complex128 {
	return Compute(bins, true)
}

func invert(out []complex128) {
	core.ScaleComplex(out, len(out))
	core.ReverseTail(out)
}

// transform runs the recursion. The top parallel levels fan evens and odds
// out to separate goroutines; the arithmetic per branch is unchanged.
func transform(data []complex128, parallel int) []complex128 {
	if len(data) < 2 {
		return data
	}

	data = Pad(data)
	sz := len(data)
	evens, odds := Split(data)

	if parallel > 0 {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			evens = transform(evens, parallel-1)
		}()
		odds = transform(odds, parallel-1)
		wg.Wait()
	} else {
		evens = transform(evens, 0)
		odds = transform(odds, 0)
	}

	out := make([]complex128, sz)
	combine(out, evens, odds)
	return out
}

// combine evaluates out[i] = evens[i mod h] + w^i·odds[i mod h] over the
// full output range, with w = exp(+2πi/len(out)) and h = len(out)/2.
func combine(out, evens, odds []complex128) {
	sz := len(out)
	half := sz / 2
	ang := 2 * math.Pi / float64(sz)
	for i := range sz {
		theta := ang * float64(i)
		w := complex(math.Cos(theta), math.Sin(theta))
		out[i] = evens[i%half] + w*odds[i%half]
	}
}
