// Package fft implements a recursive radix-2 discrete Fourier transform and
// the reversal-based inverse used by the WAV low-pass pipeline.
//
// The transform uses the e^{+iθ} twiddle convention and is unnormalised:
//
//	X[k] = Σ x[n]·exp(+2πi·k·n/N)
//
// Inputs of any length are accepted. Sequences shorter than two elements are
// returned unchanged; everything else is zero-padded to the next power of two,
// and the padded length is what callers get back.
//
// # Inverse
//
// [Inverse] does not conjugate twiddle factors. It runs the same forward
// transform, divides every bin by the padded length and then reverses
// elements 1..N-1, keeping element 0 in place. Since applying the transform
// twice yields N·x[-n mod N], this recovers x exactly up to rounding.
//
// # Backends
//
// The package-level functions always use the recursive algorithm. An [Engine]
// can instead run the same transform on an algo-fft plan ([BackendPlan]) or a
// gonum FFT ([BackendGonum]); both compute conj(DFT(conj(x))), which equals the
// e^{+iθ} transform regardless of the library's own sign convention.
//
//	eng, err := fft.New(fft.WithBackend(fft.BackendPlan))
//	bins, err := eng.Compute(fft.Lift(samples), false)
//	back, err := eng.Inverse(bins)
package fft
