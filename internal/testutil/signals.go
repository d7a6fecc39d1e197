package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicComplex generates a complex sequence with uniformly
// distributed parts in [-amplitude, amplitude] from a fixed seed.
func DeterministicComplex(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// PCM8Sine renders a sine as unsigned 8-bit PCM centred on 128.
func PCM8Sine(freqHz, sampleRate, amplitude float64, length int) []byte {
	s := DeterministicSine(freqHz, sampleRate, amplitude, length)
	out := make([]byte, length)
	for i, v := range s {
		out[i] = byte(math.Max(0, math.Min(255, math.Floor(128+v+0.5))))
	}
	return out
}

// PCM8Noise generates unsigned 8-bit noise bytes from a fixed seed.
func PCM8Noise(seed int64, length int) []byte {
	out := make([]byte, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
