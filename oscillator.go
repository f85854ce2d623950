package sinosc

import "math"

const twoPi = 2 * math.Pi

// A Source produces one real-valued sample per call.
type Source interface {
	Process() float64
}

// An Oscillator generates a sine wave by phase accumulation.
type Oscillator struct {
	frequency float64
	amplitude float64
	increment float64 // radians per sample
	phase     float64 // in [0, 2π)
	steps     uint64
}

// NewOscillator returns an oscillator at zero phase. frequency and amplitude
// are not range checked; out of range samples are clamped at quantization.
func NewOscillator(cfg Config, frequency, amplitude float64) *Oscillator {
	return &Oscillator{
		frequency: frequency,
		amplitude: amplitude,
		increment: twoPi * frequency / float64(cfg.SampleRate),
	}
}

// Process returns the sample at the current phase, then advances the phase
// by one increment.
func (o *Oscillator) Process() float64 {
	sample := o.amplitude * math.Sin(o.phase)
	o.phase = wrapPhase(o.phase + o.increment)
	o.steps++
	return sample
}

// wrapPhase reduces p to [0, 2π).
func wrapPhase(p float64) float64 {
	if p >= 0 && p < twoPi {
		return p
	}
	p = math.Mod(p, twoPi)
	if p < 0 {
		p += twoPi
	}
	if p >= twoPi {
		// -ε + 2π can round up to 2π.
		p = 0
	}
	return p
}

func (o *Oscillator) Frequency() float64      { return o.frequency }
func (o *Oscillator) Amplitude() float64      { return o.amplitude }
func (o *Oscillator) PhaseIncrement() float64 { return o.increment }

// Phase returns the current phase, reduced to [0, 2π).
func (o *Oscillator) Phase() float64 { return o.phase }

// Steps returns how many times Process has been called since construction
// or the last Reset.
func (o *Oscillator) Steps() uint64 { return o.steps }

// AccumulatedPhase returns the phase the oscillator would have without
// reduction, that is Steps() * PhaseIncrement().
func (o *Oscillator) AccumulatedPhase() float64 {
	return float64(o.steps) * o.increment
}

// Reset rewinds the oscillator to zero phase.
func (o *Oscillator) Reset() {
	o.phase = 0
	o.steps = 0
}
