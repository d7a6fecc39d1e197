// Package pcm computes level statistics of unsigned 8-bit PCM payloads.
//
// Samples are measured relative to the 128 midpoint, so a full-scale
// excursion is 128 and 0 dBFS corresponds to an RMS of 128.
package pcm
