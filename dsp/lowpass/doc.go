// Package lowpass removes high-frequency content from 8-bit PCM payloads by
// truncating their spectrum.
//
// The payload is treated as one flat sample sequence, one sample per byte,
// regardless of channel layout. [Filter.Process] runs:
//
//  1. forward transform of the samples (zero-padded to a power of two)
//  2. zeroing of every bin at or beyond floor(N·retain)
//  3. reversal-based inverse transform
//  4. floor(x+0.5) rounding of the first len(samples) real parts, saturated
//     to the byte range
//
// The zeroed suffix is not mirrored around the Nyquist bin, so the filtered
// time signal is generally complex; only its real part is kept.
package lowpass
