package fft

import (
	"fmt"
	"strings"
)

// Backend selects the algorithm an [Engine] uses.
type Backend int

const (
	// BackendRecursive is the reference recursive transform.
	BackendRecursive Backend = iota
	// BackendPlan runs cached github.com/cwbudde/algo-fft plans.
	BackendPlan
	// BackendGonum runs gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
)

var backendNames = map[Backend]string{
	BackendRecursive: "recursive",
	BackendPlan:      "plan",
	BackendGonum:     "gonum",
}

// String returns the backend name accepted by [ParseBackend].
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Valid reports whether b is a known backend.
func (b Backend) Valid() bool {
	_, ok := backendNames[b]
	return ok
}

// ParseBackend resolves a backend by name, case-insensitively.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("fft: unknown backend %q", name)
}
