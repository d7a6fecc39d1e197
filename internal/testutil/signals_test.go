package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicComplexReproducible(t *testing.T) {
	a := DeterministicComplex(42, 1.0, 64)
	b := DeterministicComplex(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not deterministic at index %d", i)
		}
		if math.Abs(real(a[i])) > 1 || math.Abs(imag(a[i])) > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestPCM8Sine(t *testing.T) {
	s := PCM8Sine(100, 8000, 100, 80)
	if s[0] != 128 {
		t.Fatalf("s[0] = %d, want 128", s[0])
	}
	if s[20] != 228 {
		t.Fatalf("s[20] = %d, want 228 (peak)", s[20])
	}
}

func TestPCM8NoiseDifferentSeeds(t *testing.T) {
	a := PCM8Noise(1, 32)
	b := PCM8Noise(2, 32)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := complex128(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	for i, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}
