package wave

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/multierr"
)

// wavFormatPCM is the WAVE format tag for integer PCM.
const wavFormatPCM = 1

// A File writes samples to a wave file on disk.
type File struct {
	path   string
	f      *os.File
	enc    *wav.Encoder
	format *audio.Format
	depth  int
}

// NewFile creates a new wave file at the given path with the given format.
// Close must be called when done writing samples to finalize the wave file.
func NewFile(path string, f Format) (*File, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	fd, err := os.Create(path)
	if err != nil {
		return nil, &Error{Op: OpCreate, Path: path, Err: err}
	}
	return &File{
		path:  path,
		f:     fd,
		enc:   wav.NewEncoder(fd, f.SampleRate, f.BitDepth, f.Channels, wavFormatPCM),
		depth: f.BitDepth,
		format: &audio.Format{
			NumChannels: f.Channels,
			SampleRate:  f.SampleRate,
		},
	}, nil
}

func (w *File) Write(p []int) (int, error) {
	buf := &audio.IntBuffer{
		Format:         w.format,
		Data:           p,
		SourceBitDepth: w.depth,
	}
	if err := w.enc.Write(buf); err != nil {
		return 0, &Error{Op: OpWrite, Path: w.path, Err: err}
	}
	return len(p), nil
}

// Close updates the header sizes and closes the file.
func (w *File) Close() error {
	err := w.enc.Close()
	err = multierr.Append(err, w.f.Close())
	if err != nil {
		return &Error{Op: OpWrite, Path: w.path, Err: err}
	}
	return nil
}

// WriteFile creates path and writes samples to it as a wave file.
func WriteFile(path string, f Format, samples []int) (err error) {
	w, err := NewFile(path, f)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = w.Write(samples)
	return err
}
