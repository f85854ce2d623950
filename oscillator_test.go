package sinosc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPhaseIncrement(t *testing.T) {
	for _, tt := range []struct {
		freq float64
		rate int
	}{
		{440, 44100},
		{1000, 48000},
		{20, 8000},
		{15000, 96000},
		{-440, 44100},
	} {
		osc := NewOscillator(configWithRate(tt.rate), tt.freq, 1)
		want := 2 * math.Pi * tt.freq / float64(tt.rate)
		assert(t, osc.PhaseIncrement(), want)

		for k := 1; k <= 1000; k++ {
			osc.Process()
			assert(t, osc.Steps(), uint64(k))
			assert(t, osc.AccumulatedPhase(), float64(k)*want)
		}
	}
}

func TestProcessStartsAtZero(t *testing.T) {
	for _, amp := range []float64{0, 0.5, 1, 3} {
		osc := NewOscillator(DefaultConfig(), 440, amp)
		assert(t, osc.Process(), 0.0)
	}
}

func TestQuarterPeriod(t *testing.T) {
	cfg := DefaultConfig()
	osc := NewOscillator(cfg, float64(cfg.SampleRate)/4, 1)

	got := make([]float64, 4)
	for i := range got {
		got[i] = osc.Process()
	}

	want := []float64{0, 1, 0, -1}
	if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("samples mismatch (-got +want):\n%s", diff)
	}
}

func TestReference440(t *testing.T) {
	const rate = 44100
	freq, amp := 440.0, 0.5

	osc := NewOscillator(configWithRate(rate), freq, amp)
	assert(t, osc.Process(), 0.0)

	inc := 2 * math.Pi * freq / rate
	assert(t, osc.Process(), amp*math.Sin(inc))
}

func TestPhaseStaysReduced(t *testing.T) {
	const steps = 1_000_000

	for _, freq := range []float64{440, 12345.6, -440} {
		osc := NewOscillator(DefaultConfig(), freq, 1)
		for range steps {
			osc.Process()
			if p := osc.Phase(); p < 0 || p >= 2*math.Pi {
				t.Fatalf("freq=%v: phase %v out of [0, 2π)", freq, p)
			}
		}

		want := math.Mod(osc.AccumulatedPhase(), 2*math.Pi)
		if want < 0 {
			want += 2 * math.Pi
		}
		// Compare samples, the angles differ by accumulated rounding.
		assertApprox(t, math.Sin(osc.Phase()), math.Sin(want), 1e-6)
	}
}

func TestNegativeFrequencyMirrors(t *testing.T) {
	pos := NewOscillator(DefaultConfig(), 440, 1)
	neg := NewOscillator(DefaultConfig(), -440, 1)

	for range 500 {
		assertApprox(t, neg.Process(), -pos.Process(), 1e-9)
	}
}

func TestReset(t *testing.T) {
	osc := NewOscillator(DefaultConfig(), 440, 0.5)
	first := make([]float64, 10)
	for i := range first {
		first[i] = osc.Process()
	}

	osc.Reset()
	assert(t, osc.Steps(), uint64(0))
	assert(t, osc.Phase(), 0.0)

	second := make([]float64, 10)
	for i := range second {
		second[i] = osc.Process()
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("samples after Reset mismatch (-first +second):\n%s", diff)
	}
}

func BenchmarkOscillator(b *testing.B) {
	osc := NewOscillator(DefaultConfig(), 440, 0.5)
	for i := 0; i < b.N; i++ {
		osc.Process()
	}
}
