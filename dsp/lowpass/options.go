package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavfft/dsp/fft"
)

// DefaultRetain keeps the lower 80% of the bins.
const DefaultRetain = 0.8

type config struct {
	retain float64
	engine *fft.Engine
}

func defaultConfig() config {
	return config{
		retain: DefaultRetain,
	}
}

// Option configures a [Filter].
type Option func(*config) error

// WithRetain sets the fraction of leading bins kept (0-1, default 0.8).
func WithRetain(fraction float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
			return fmt.Errorf("lowpass: retain fraction must be in [0,1]: %f", fraction)
		}

		cfg.retain = fraction

		return nil
	}
}

// WithEngine sets the transform engine. By default a sequential recursive
// engine is used.
func WithEngine(eng *fft.Engine) Option {
	return func(cfg *config) error {
		if eng == nil {
			return fmt.Errorf("lowpass: engine must not be nil")
		}

		cfg.engine = eng

		return nil
	}
}
