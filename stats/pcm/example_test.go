package pcm_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavfft/stats/pcm"
)

func ExampleCalculate() {
	s := pcm.Calculate([]byte{192, 64, 192, 64})
	fmt.Printf("rms=%.0f dbfs=%.2f zc=%d\n", s.RMS, s.RMS_dBFS, s.ZeroCrossings)

	// Output:
	// rms=64 dbfs=-6.02 zc=3
}
