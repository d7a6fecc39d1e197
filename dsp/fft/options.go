package fft

import "fmt"

const (
	defaultBackend   = BackendRecursive
	defaultParallel  = 0
	maxParallelDepth = 8
)

type config struct {
	backend       Backend
	parallelDepth int
}

func defaultConfig() config {
	return config{
		backend:       defaultBackend,
		parallelDepth: defaultParallel,
	}
}

// Option configures an [Engine].
type Option func(*config) error

// WithBackend selects the transform backend (default [BackendRecursive]).
func WithBackend(b Backend) Option {
	return func(cfg *config) error {
		if !b.Valid() {
			return fmt.Errorf("fft: invalid backend: %d", b)
		}

		cfg.backend = b

		return nil
	}
}

// WithParallelDepth lets the recursive backend fan out the top depth levels
// of the recursion onto goroutines (0-8, default 0). Results are
// bit-identical to the sequential run.
func WithParallelDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 0 || depth > maxParallelDepth {
			return fmt.Errorf("fft: parallel depth must be in [0, %d]: %d", maxParallelDepth, depth)
		}

		cfg.parallelDepth = depth

		return nil
	}
}
