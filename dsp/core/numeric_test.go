package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 20} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{-4, 0, 3, 6, 12, 1000} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{1000, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{-0.5, 0},
		{-1.5, -1},
		{-1.51, -2},
		{127.9999999, 128},
	}

	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Fatalf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-3, 0},
		{-0.4, 0},
		{12.5, 13},
		{254.6, 255},
		{300, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := ClampByte(tt.in); got != tt.want {
			t.Fatalf("ClampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
