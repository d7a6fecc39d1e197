package fft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavfft/dsp/fft"
)

func ExamplePad() {
	padded := fft.Pad([]complex128{1, 2, 3})
	fmt.Println(len(padded), real(padded[3]))
	// Output:
	// 4 0
}

func ExampleForward() {
	bins := fft.Forward([]float64{1, 0, 0, 0})
	for _, b := range bins {
		fmt.Printf("(%.0f,%.0f) ", real(b), imag(b))
	}
	fmt.Println()
	// Output:
	// (1,0) (1,0) (1,0) (1,0)
}

func ExampleInverse() {
	back := fft.Inverse([]complex128{1, 1, 1, 1})
	for _, v := range back {
		fmt.Printf("%.0f ", math.Floor(real(v)+0.5))
	}
	fmt.Println()
	// Output:
	// 1 0 0 0
}
