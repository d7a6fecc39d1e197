package wav

type loadConfig struct {
	lenient bool
}

// LoadOption configures [Load] and [LoadFrom].
type LoadOption func(*loadConfig)

// WithLenientHeader accepts headers whose duration is undefined (zero
// channels, sample rate or bit depth). The file loads with a zero
// [Duration] instead of failing with [ErrMalformedHeader]. Truncated
// headers are still rejected.
func WithLenientHeader() LoadOption {
	return func(cfg *loadConfig) {
		cfg.lenient = true
	}
}

func applyLoadOptions(opts []LoadOption) loadConfig {
	var cfg loadConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
