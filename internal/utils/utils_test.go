package utils

import (
	"math"
	"testing"
)

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
			t.Fatalf("Generators with the same seed diverged at step %d", i)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := rng.IntRange(3, 8); v < 3 || v >= 8 {
			t.Fatalf("IntRange(3, 8) = %d out of range", v)
		}
		if v := rng.FloatRange(0.05, 0.95); v < 0.05 || v >= 0.95 {
			t.Fatalf("FloatRange(0.05, 0.95) = %f out of range", v)
		}
	}
	if v := rng.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange on empty range = %d, want 5", v)
	}
}

func TestAngleBetween(t *testing.T) {
	testCases := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"Same direction", 0, -1, 0, -2, 0},
		{"Right angle", 0, -1, 1, 0, math.Pi / 2},
		{"Opposite", 0, -1, 0, 1, math.Pi},
		{"Zero vector", 0, 0, 1, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AngleBetween(tc.ax, tc.ay, tc.bx, tc.by)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("AngleBetween = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestPingPong(t *testing.T) {
	testCases := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{250, 0.5},
		{500, 1},
		{750, 0.5},
		{1250, 0.5},
	}
	for _, tc := range testCases {
		if got := PingPong(tc.elapsed, 1000); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("PingPong(%v) = %v, want %v", tc.elapsed, got, tc.want)
		}
	}
}
