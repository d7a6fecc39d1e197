package pcm

import "math"

// Midpoint is the silence level of unsigned 8-bit PCM.
const Midpoint = 128

// FullScale is the largest excursion from [Midpoint].
const FullScale = 128.0

// Stats holds level statistics of an 8-bit payload.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean offset from Midpoint
	RMS           float64
	RMS_dBFS      float64
	Min           byte
	Max           byte
	Peak          float64 // largest |sample - Midpoint|
	Peak_dBFS     float64
	CrestFactor   float64 // peak / RMS
	ZeroCrossings int     // crossings of Midpoint
}

func toDBFS(level float64) float64 {
	if level == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(level/FullScale)
}

// Calculate measures samples in a single pass.
func Calculate(samples []byte) Stats {
	if len(samples) == 0 {
		return Stats{RMS_dBFS: math.Inf(-1), Peak_dBFS: math.Inf(-1)}
	}

	s := Stats{Length: len(samples), Min: samples[0], Max: samples[0]}

	var sum, sumSq float64
	prev := 0
	for _, b := range samples {
		s.Min = min(s.Min, b)
		s.Max = max(s.Max, b)

		x := int(b) - Midpoint
		fx := float64(x)
		sum += fx
		sumSq += fx * fx
		s.Peak = max(s.Peak, math.Abs(fx))

		if x != 0 {
			if prev != 0 && (x > 0) != (prev > 0) {
				s.ZeroCrossings++
			}
			prev = x
		}
	}

	n := float64(len(samples))
	s.DC = sum / n
	s.RMS = math.Sqrt(sumSq / n)
	s.RMS_dBFS = toDBFS(s.RMS)
	s.Peak_dBFS = toDBFS(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	return s
}

// RMS returns the root-mean-square excursion from Midpoint.
func RMS(samples []byte) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSq float64
	for _, b := range samples {
		x := float64(int(b) - Midpoint)
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(samples)))
}

// Centered maps samples to float64 excursions around Midpoint.
func Centered(samples []byte) []float64 {
	out := make([]float64, len(samples))
	for i, b := range samples {
		out[i] = float64(int(b) - Midpoint)
	}
	return out
}
