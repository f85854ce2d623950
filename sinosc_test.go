package sinosc

import (
	"math"
	"testing"
)

func assert[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Fatalf("assertion failed: got = %v want %v", got, want)
	}
}

func assertApprox(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("assertion failed: got = %v want %v (±%v)", got, want, tol)
	}
}

func configWithRate(rate int) Config {
	cfg := DefaultConfig()
	cfg.SampleRate = rate
	return cfg
}
