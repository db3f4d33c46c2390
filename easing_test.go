package marquee

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestEaseOutExpoEndpoints(t *testing.T) {
	if got := EaseOutExpo(0); got != 0 {
		t.Errorf("EaseOutExpo(0) = %v, want 0", got)
	}
	if got := EaseOutExpo(1); got != 1 {
		t.Errorf("EaseOutExpo(1) = %v, want exactly 1", got)
	}
}

func TestEaseOutExpoClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{-0.001, 0},
		{1.5, 1},
		{100, 1},
	}
	for _, tt := range tests {
		if got := EaseOutExpo(tt.in); got != tt.want {
			t.Errorf("EaseOutExpo(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEaseOutExpoKnownValues(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.5},
		{0.5, 1 - 1.0/32},
		{0.2, 0.75},
	}
	for _, tt := range tests {
		if got := EaseOutExpo(tt.in); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("EaseOutExpo(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEaseOutExpoMonotonic(t *testing.T) {
	prev := EaseOutExpo(0)
	for i := 1; i <= 1000; i++ {
		v := EaseOutExpo(float64(i) / 1000)
		if v < prev {
			t.Fatalf("EaseOutExpo decreased at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}
