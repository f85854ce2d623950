// Package wave writes PCM samples as RIFF/WAVE audio.
package wave

import (
	"errors"
	"fmt"
)

var (
	ErrCreate = errors.New("cannot create output")
	ErrWrite  = errors.New("write failed")
	ErrFormat = errors.New("unsupported format")
)

// Op identifies the step at which writing a wave file failed.
type Op string

const (
	OpCreate Op = "create"
	OpWrite  Op = "write"
)

// An Error records a failed output operation. It matches ErrCreate or
// ErrWrite with errors.Is, depending on Op.
type Error struct {
	Op   Op
	Path string // empty for stream writers
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("wave: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("wave: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrCreate:
		return e.Op == OpCreate
	case ErrWrite:
		return e.Op == OpWrite
	}
	return false
}

// Format describes integer PCM samples.
type Format struct {
	Channels   int
	SampleRate int
	BitDepth   int
}

func (f Format) Validate() error {
	switch {
	case f.Channels != 1 && f.Channels != 2:
		return fmt.Errorf("%w: %d channels", ErrFormat, f.Channels)
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrFormat, f.SampleRate)
	}
	switch f.BitDepth {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d-bit samples", ErrFormat, f.BitDepth)
}

// SampleSize returns the size of one sample of one channel, in bytes.
func (f Format) SampleSize() int { return f.BitDepth / 8 }

// BlockAlign returns the size of one sample frame, in bytes.
func (f Format) BlockAlign() int { return f.SampleSize() * f.Channels }

// ByteRate returns the number of bytes per second of audio.
func (f Format) ByteRate() int { return f.BlockAlign() * f.SampleRate }
