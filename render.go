package sinosc

import (
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/arl/sinosc/wave"
)

// Quantize scales sample by maxAmplitude, rounds half away from zero and
// clamps the result to [-maxAmplitude-1, maxAmplitude]. clipped reports
// whether clamping occurred. NaN quantizes to 0 and is reported as clipped.
//
// Full scale is symmetric: Quantize(-1, 32767) is -32767, not -32768.
func Quantize(sample float64, maxAmplitude int) (q int, clipped bool) {
	if math.IsNaN(sample) {
		return 0, true
	}
	v := math.Round(sample * float64(maxAmplitude))
	switch lo := -float64(maxAmplitude) - 1; {
	case v > float64(maxAmplitude):
		return maxAmplitude, true
	case v < lo:
		return -maxAmplitude - 1, true
	}
	return int(v), false
}

// A Buffer holds rendered samples along with the format they were rendered
// for.
type Buffer struct {
	Samples []int
	Format  wave.Format
	Clipped int // number of samples clamped during quantization
}

// WriteFile writes b as a wave file at path.
func (b *Buffer) WriteFile(path string) error {
	return wave.WriteFile(path, b.Format, b.Samples)
}

// Encode writes b as a wave stream to w, which need not be seekable.
func (b *Buffer) Encode(w io.Writer) error {
	ww, err := wave.NewWriter(w, b.Format)
	if err != nil {
		return err
	}
	if _, err := ww.Write(b.Samples); err != nil {
		return err
	}
	return ww.Close()
}

// A Renderer pulls a fixed number of samples from a Source and quantizes
// them.
type Renderer struct {
	cfg    Config
	logger *zap.Logger
}

// NewRenderer validates cfg and returns a Renderer. logger may be nil.
func NewRenderer(cfg Config, logger *zap.Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{cfg: cfg, logger: logger}, nil
}

func (r *Renderer) Config() Config { return r.cfg }

// Render calls src.Process once per frame and returns the quantized
// samples. It performs no I/O and cannot fail.
func (r *Renderer) Render(src Source) *Buffer {
	n := r.cfg.FrameCount()
	maxAmp := r.cfg.MaxAmplitude()

	buf := &Buffer{
		Samples: make([]int, 0, n),
		Format:  r.cfg.Format(),
	}
	for range n {
		q, clipped := Quantize(src.Process(), maxAmp)
		if clipped {
			buf.Clipped++
		}
		buf.Samples = append(buf.Samples, q)
	}

	r.logger.Debug("render complete",
		zap.Int("frames", n),
		zap.Int("sampleRate", r.cfg.SampleRate),
		zap.Int("bitDepth", r.cfg.BitDepth),
	)
	if buf.Clipped > 0 {
		r.logger.Warn("samples clipped during quantization",
			zap.Int("clipped", buf.Clipped),
			zap.Int("frames", n),
		)
	}
	return buf
}
