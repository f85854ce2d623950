// Command sinosc renders a sine waveform, from a single oscillator or from a
// random pool of oscillators, and writes it as a wave file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arl/sinosc"
)

const (
	modeSingle = "single"
	modePool   = "pool"
)

type options struct {
	output  string
	mode    string
	freq    float64
	freqs   string
	amp     float64
	seed    uint64
	verbose bool
	cfg     sinosc.Config
}

func parseFlags(args []string) (*options, error) {
	def := sinosc.DefaultConfig()
	opts := &options{}

	fs := flag.NewFlagSet("sinosc", flag.ContinueOnError)
	fs.StringVar(&opts.output, "o", getEnv("SINOSC_OUTPUT", "waveform.wav"), "output `path`, - for stdout")
	fs.StringVar(&opts.mode, "mode", getEnv("SINOSC_MODE", modeSingle), "oscillator mode: single or pool")
	fs.Float64Var(&opts.freq, "freq", 440, "frequency in Hz (single mode)")
	fs.StringVar(&opts.freqs, "freqs", "261.63,329.63,392", "comma-separated frequencies in Hz (pool mode)")
	fs.Float64Var(&opts.amp, "amp", 0.5, "oscillator amplitude, nominally in [0, 1]")
	fs.Uint64Var(&opts.seed, "seed", 0, "pool selection seed, 0 seeds from the clock")
	fs.IntVar(&opts.cfg.SampleRate, "rate", def.SampleRate, "sample rate in Hz")
	fs.DurationVar(&opts.cfg.Duration, "duration", def.Duration, "waveform duration")
	fs.IntVar(&opts.cfg.BitDepth, "bits", def.BitDepth, "bits per sample: 16, 24 or 32")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFreqs(s string) ([]float64, error) {
	var freqs []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", f, err)
		}
		freqs = append(freqs, v)
	}
	return freqs, nil
}

// newSource builds the oscillator source described by opts.
func newSource(opts *options, logger *zap.Logger) (sinosc.Source, error) {
	switch opts.mode {
	case modeSingle:
		logger.Info("single oscillator",
			zap.Float64("frequency", opts.freq),
			zap.Float64("amplitude", opts.amp),
		)
		return sinosc.NewOscillator(opts.cfg, opts.freq, opts.amp), nil

	case modePool:
		freqs, err := parseFreqs(opts.freqs)
		if err != nil {
			return nil, err
		}
		oscs := make([]*sinosc.Oscillator, len(freqs))
		for i, f := range freqs {
			oscs[i] = sinosc.NewOscillator(opts.cfg, f, opts.amp)
		}

		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Info("oscillator pool",
			zap.Float64s("frequencies", freqs),
			zap.Float64("amplitude", opts.amp),
			zap.Uint64("seed", seed),
		)
		return sinosc.NewSeededPool(seed, oscs...)
	}
	return nil, fmt.Errorf("unknown mode %q", opts.mode)
}

func run(opts *options, stdout io.Writer, logger *zap.Logger) error {
	r, err := sinosc.NewRenderer(opts.cfg, logger)
	if err != nil {
		return err
	}
	src, err := newSource(opts, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	buf := r.Render(src)

	if opts.output == "-" {
		err = buf.Encode(stdout)
	} else {
		err = buf.WriteFile(opts.output)
	}
	if err != nil {
		return err
	}

	logger.Info("waveform written",
		zap.String("output", opts.output),
		zap.Int("samples", len(buf.Samples)),
		zap.Int("clipped", buf.Clipped),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("sinosc failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
