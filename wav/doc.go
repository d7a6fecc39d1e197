// Package wav models the canonical 44-byte RIFF/WAVE container: a fixed
// header followed by raw PCM sample bytes.
//
// A [File] owns the complete byte buffer. The [Header] and [Duration] are
// read-only projections derived once when the file is loaded; replacing the
// payload with [File.UpdateSamples] leaves them untouched, which is why the
// replacement must keep the payload length.
//
// Only the RIFF chunk, the "fmt " chunk and the data chunk at their canonical
// offsets are understood. Extra chunks, metadata and compressed formats are
// not modelled; their bytes are simply part of the payload.
//
// # Errors
//
// Failures are reported with wrapped sentinels, so callers test them with
// errors.Is:
//
//	f, err := wav.Load("speech.wav")
//	switch {
//	case errors.Is(err, wav.ErrNotFound):
//	case errors.Is(err, wav.ErrMalformedHeader):
//	}
package wav
