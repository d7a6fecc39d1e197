package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavfft/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleEnergyRatio() {
	bins := []complex128{3, 1, 0, 0}
	r, _ := spectrum.EnergyRatio(bins, 0, 1)
	fmt.Printf("%.2f\n", r)
	// Output:
	// 0.90
}
