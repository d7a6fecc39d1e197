package wav_test

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/algo-wavfft/wav"
)

func ExampleComputeDuration() {
	d, err := wav.ComputeDuration(wav.Header{
		NumChannels:   1,
		SampleRate:    8000,
		BitsPerSample: 8,
		Subchunk2Size: 8000,
	})
	fmt.Println(d, err)
	// Output:
	// 0:00:01 <nil>
}

func ExampleFile_UpdateSamples() {
	f := wav.New(wav.Header{NumChannels: 1, SampleRate: 8000, BitsPerSample: 8}, []byte{1, 2, 3})

	fmt.Println(f.UpdateSamples([]byte{4, 5, 6}), f.ExtractSamples())
	fmt.Println(f.UpdateSamples([]byte{7}) != nil)
	// Output:
	// <nil> [4 5 6]
	// true
}

func ExampleLoadFrom() {
	src := wav.New(wav.Header{NumChannels: 1, SampleRate: 8000, BitsPerSample: 8}, make([]byte, 16000))

	f, err := wav.LoadFrom(bytes.NewReader(src.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}
	h := f.Header()
	fmt.Println(h.ChunkID, h.Format, h.Subchunk2Size, f.Duration())
	// Output:
	// RIFF WAVE 16000 0:00:02
}
