package sinosc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arl/sinosc/wave"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the rendering parameters shared by oscillators and the
// renderer.
type Config struct {
	SampleRate int           // samples per second
	Duration   time.Duration // length of the rendered waveform
	BitDepth   int           // bits per quantized sample
}

// DefaultConfig returns 2 seconds of 16-bit audio at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Duration:   2 * time.Second,
		BitDepth:   16,
	}
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, c.Duration)
	}
	if err := c.Format().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FrameCount returns the number of samples in a full render.
func (c Config) FrameCount() int {
	return int(math.Round(float64(c.SampleRate) * c.Duration.Seconds()))
}

// MaxAmplitude returns the largest positive sample value at c.BitDepth.
// Signed 16 bits goes from -32768 to 32767, so 2^15 - 1.
func (c Config) MaxAmplitude() int {
	return 1<<(c.BitDepth-1) - 1
}

// Format returns the mono wave format described by c.
func (c Config) Format() wave.Format {
	return wave.Format{
		Channels:   1,
		SampleRate: c.SampleRate,
		BitDepth:   c.BitDepth,
	}
}
