package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-wavfft/dsp/core"
	"github.com/cwbudde/algo-wavfft/dsp/fft"
	"github.com/cwbudde/algo-wavfft/dsp/spectrum"
	"github.com/cwbudde/algo-wavfft/wav"
)

// Result describes one filtering run.
type Result struct {
	// Samples is the filtered payload, same length as the input.
	Samples []byte
	// Bins is the padded transform length.
	Bins int
	// Cutoff is the first zeroed bin.
	Cutoff int
	// RetainedEnergy is the share of spectral energy in bins [0, Cutoff).
	RetainedEnergy float64
}

// Filter applies spectral truncation to 8-bit sample payloads.
type Filter struct {
	retain float64
	engine *fft.Engine
}

// New creates a Filter retaining [DefaultRetain] of the bins unless
// configured otherwise.
func New(opts ...Option) (*Filter, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.engine == nil {
		eng, err := fft.New()
		if err != nil {
			return nil, err
		}
		cfg.engine = eng
	}

	return &Filter{retain: cfg.retain, engine: cfg.engine}, nil
}

// Retain returns the configured retain fraction.
func (f *Filter) Retain() float64 {
	return f.retain
}

// Process filters samples and returns the re-quantized payload.
func (f *Filter) Process(samples []byte) (Result, error) {
	bins, err := f.engine.Compute(fft.Lift(samples), false)
	if err != nil {
		return Result{}, fmt.Errorf("lowpass: forward transform: %w", err)
	}

	cutoff := CutoffIndex(len(bins), f.retain)

	kept, err := spectrum.EnergyRatio(bins, 0, cutoff)
	if err != nil {
		return Result{}, fmt.Errorf("lowpass: %w", err)
	}

	Truncate(bins, f.retain)

	timeDomain, err := f.engine.Compute(bins, true)
	if err != nil {
		return Result{}, fmt.Errorf("lowpass: inverse transform: %w", err)
	}

	return Result{
		Samples:        Quantize(timeDomain, len(samples)),
		Bins:           len(bins),
		Cutoff:         cutoff,
		RetainedEnergy: kept,
	}, nil
}

// ProcessFile filters the payload of file in place.
func (f *Filter) ProcessFile(file *wav.File) (Result, error) {
	res, err := f.Process(file.ExtractSamples())
	if err != nil {
		return Result{}, err
	}

	if err := file.UpdateSamples(res.Samples); err != nil {
		return Result{}, fmt.Errorf("lowpass: %w", err)
	}

	return res, nil
}

// CutoffIndex returns floor(n·retain) clamped to [0, n].
func CutoffIndex(n int, retain float64) int {
	c := int(float64(n) * retain)
	return max(0, min(n, c))
}

// Truncate zeroes bins[CutoffIndex(len(bins), retain):] and returns the
// cutoff.
func Truncate(bins []complex128, retain float64) int {
	cutoff := CutoffIndex(len(bins), retain)
	core.ZeroComplex(bins[cutoff:])
	return cutoff
}

// Quantize rounds the real parts of values[:n] half-up and narrows them to
// bytes, saturating at 0 and 255.
func Quantize(values []complex128, n int) []byte {
	n = max(0, min(n, len(values)))
	out := make([]byte, n)
	for i := range out {
		out[i] = core.ClampByte(real(values[i]))
	}
	return out
}
