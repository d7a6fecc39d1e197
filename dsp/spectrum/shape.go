package spectrum

// Shape descriptors operate on a full N-bin spectrum of a real signal and
// look only at bins 1..N/2, so the DC offset of unsigned PCM does not pull
// them towards 0 Hz. Bin i sits at i·sampleRate/N.
//
// Non-DC energy at or below negligibleEnergy times the energy of the whole
// spectrum is rounding noise of the transform and counts as none.
const negligibleEnergy = 1e-24

func binFreq(i, n int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(n)
}

// positiveHalf returns |X[k]| for k in 1..N/2, or nil when those bins carry
// no energy beyond rounding noise.
func positiveHalf(bins []complex128) []float64 {
	n := len(bins)
	if n < 2 {
		return nil
	}

	mag := Magnitude(bins[1 : n/2+1])

	half := 0.0
	for _, v := range mag {
		half += v * v
	}
	if half <= negligibleEnergy*Energy(bins) {
		return nil
	}

	return mag
}

// Centroid returns the spectral centroid in Hz:
//
//	centroid = sum(f_k * |X_k|) / sum(|X_k|)
//
// A spectrum with no energy outside DC yields 0.
func Centroid(bins []complex128, sampleRate float64) float64 {
	mag := positiveHalf(bins)

	var sum, weighted float64
	for i, v := range mag {
		sum += v
		weighted += binFreq(i+1, len(bins), sampleRate) * v
	}

	if sum == 0 {
		return 0
	}
	return weighted / sum
}

// Rolloff returns the frequency below which percent (0..1) of the non-DC
// energy lies. 0.85 is the usual choice. A spectrum with no energy outside
// DC yields 0.
func Rolloff(bins []complex128, sampleRate, percent float64) float64 {
	mag := positiveHalf(bins)

	total := 0.0
	for _, v := range mag {
		total += v * v
	}
	if total == 0 {
		return 0
	}

	threshold := percent * total
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			return binFreq(i+1, len(bins), sampleRate)
		}
	}

	return binFreq(len(mag), len(bins), sampleRate)
}
