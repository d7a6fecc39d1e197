package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2 + 1i, 3}
	b := []complex128{1, 2 + 1.5i, 3}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.5) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]complex128{1}, []complex128{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireComplexNearlyEqualPasses(t *testing.T) {
	RequireComplexNearlyEqual(t, []complex128{1 + 1e-13i}, []complex128{1}, 1e-12)
	RequireFinite(t, []complex128{0, 1i, -3})
}
