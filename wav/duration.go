package wav

import "fmt"

// Duration is the playing time derived from the header.
type Duration struct {
	Hours   uint32
	Minutes uint8
	Seconds uint8
}

// String formats d as H:MM:SS.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// TotalSeconds returns the duration in whole seconds.
func (d Duration) TotalSeconds() uint64 {
	return uint64(d.Hours)*3600 + uint64(d.Minutes)*60 + uint64(d.Seconds)
}

// ComputeDuration derives the duration from the data size and format
// fields, truncating to whole seconds:
//
//	seconds = Subchunk2Size / (BitsPerSample/8) / NumChannels / SampleRate
//
// A zero channel count, sample rate or bit depth makes the quotient
// undefined and yields [ErrMalformedHeader].
func ComputeDuration(h Header) (Duration, error) {
	if h.NumChannels == 0 || h.SampleRate == 0 || h.BitsPerSample == 0 {
		return Duration{}, fmt.Errorf("%w: channels=%d sampleRate=%d bitsPerSample=%d",
			ErrMalformedHeader, h.NumChannels, h.SampleRate, h.BitsPerSample)
	}

	total := uint64(float64(h.Subchunk2Size) / (float64(h.BitsPerSample) / 8) /
		float64(h.NumChannels) / float64(h.SampleRate))

	return Duration{
		Hours:   uint32(total / 3600),
		Minutes: uint8(total / 60 % 60),
		Seconds: uint8(total % 60),
	}, nil
}
