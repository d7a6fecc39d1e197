package fft

import (
	"fmt"
	"slices"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-wavfft/dsp/core"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Engine runs the transform on a configurable backend. Plans for the library
// backends are cached per size. An Engine is safe for concurrent use.
type Engine struct {
	backend       Backend
	parallelDepth int

	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]
	gonum map[int]*fourier.CmplxFFT
}

// New creates an Engine. The default is the sequential recursive backend.
func New(opts ...Option) (*Engine, error) {
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

	return &Engine{
		backend:       cfg.backend,
		parallelDepth: cfg.parallelDepth,
		plans:         make(map[int]*algofft.Plan[complex128]),
		gonum:         make(map[int]*fourier.CmplxFFT),
	}, nil
}

// Backend returns the configured backend.
func (e *Engine) Backend() Backend {
	return e.backend
}

// Transform computes the same spectrum as the package-level [Transform] on
// the configured backend.
func (e *Engine) Transform(seq []complex128) ([]complex128, error) {
	if len(seq) < 2 {
		return slices.Clone(seq), nil
	}

	switch e.backend {
	case BackendRecursive:
		return transform(seq, e.parallelDepth), nil
	case BackendPlan, BackendGonum:
		return e.conjugateTransform(seq)
	default:
		return nil, fmt.Errorf("fft: invalid backend: %d", e.backend)
	}
}

// Compute is the engine counterpart of [Compute].
func (e *Engine) Compute(seq []complex128, inverse bool) ([]complex128, error) {
	out, err := e.Transform(seq)
	if err != nil {
		return nil, err
	}
	if inverse {
		invert(out)
	}
	return out, nil
}

// Inverse is the engine counterpart of [Inverse].
func (e *Engine) Inverse(bins []complex128) ([]complex128, error) {
	return e.Compute(bins, true)
}

// conjugateTransform evaluates the e^{+iθ} transform as conj(DFT(conj(x)))
// on a library FFT.
func (e *Engine) conjugateTransform(seq []complex128) ([]complex128, error) {
	n := core.NextPowerOfTwo(len(seq))

	in := make([]complex128, n)
	copy(in, seq)
	core.Conjugate(in)

	out := make([]complex128, n)

	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.backend {
	case BackendPlan:
		plan, err := e.planLocked(n)
		if err != nil {
			return nil, err
		}

		err = plan.Forward(out, in)
		if err != nil {
			return nil, fmt.Errorf("fft: plan forward (n=%d): %w", n, err)
		}
	case BackendGonum:
		e.gonumLocked(n).Coefficients(out, in)
	}

	core.Conjugate(out)

	return out, nil
}

func (e *Engine) planLocked(n int) (*algofft.Plan[complex128], error) {
	if plan, ok := e.plans[n]; ok {
		return plan, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: create plan (n=%d): %w", n, err)
	}

	e.plans[n] = plan

	return plan, nil
}

func (e *Engine) gonumLocked(n int) *fourier.CmplxFFT {
	f, ok := e.gonum[n]
	if !ok {
		f = fourier.NewCmplxFFT(n)
		e.gonum[n] = f
	}
	return f
}
