package wave

import (
	"bytes"
	"encoding/binary"
	"io"
)

// A Writer writes samples to a wave stream. Since the RIFF header carries
// the payload size, samples are buffered until Close, so the destination
// does not need to be seekable.
type Writer struct {
	w           io.Writer
	format      Format
	sampleCount int
	bb          bytes.Buffer
}

// NewWriter creates a new Writer with the given format, onto which samples
// can be written with Write. Close must be called when done writing samples
// to emit the wave data.
func NewWriter(w io.Writer, f Format) (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Writer{w: w, format: f}, nil
}

const headerSize = 0x2C

func (w *Writer) header() [headerSize]byte {
	dataSize := w.format.SampleSize() * w.sampleCount
	h := [headerSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0, //  length of rest of file
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0, // size of fmt chunk
		1, 0, //        uncompressed format
		0, 0, //        channel count
		0, 0, 0, 0, //  sample rate
		0, 0, 0, 0, //  bytes per second
		0, 0, //        bytes per sample frame
		0, 0, //        bits per sample
		'd', 'a', 't', 'a',
		0, 0, 0, 0, //  size of sample data
		// ...          sample data
	}

	binary.LittleEndian.PutUint32(h[0x04:], uint32(len(h)-8+dataSize))
	binary.LittleEndian.PutUint16(h[0x16:], uint16(w.format.Channels))
	binary.LittleEndian.PutUint32(h[0x18:], uint32(w.format.SampleRate))
	binary.LittleEndian.PutUint32(h[0x1C:], uint32(w.format.ByteRate()))
	binary.LittleEndian.PutUint16(h[0x20:], uint16(w.format.BlockAlign()))
	binary.LittleEndian.PutUint16(h[0x22:], uint16(w.format.BitDepth))
	binary.LittleEndian.PutUint32(h[0x28:], uint32(dataSize))
	return h
}

func (w *Writer) SampleCount() int {
	return w.sampleCount
}

// Write buffers p, interleaved if the format has more than one channel.
// Values are truncated to the format's bit depth.
func (w *Writer) Write(p []int) (n int, err error) {
	size := w.format.SampleSize()
	var buf [4096]byte

	for remain := p; len(remain) != 0; {
		chunk := len(buf) / size
		if chunk > len(remain) {
			chunk = len(remain)
		}
		for i, s := range remain[:chunk] {
			putSample(buf[i*size:], s, size)
		}
		w.bb.Write(buf[:chunk*size])
		remain = remain[chunk:]
	}

	w.sampleCount += len(p)
	return len(p), nil
}

func putSample(b []byte, s, size int) {
	switch size {
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(s))
	case 3:
		b[0] = byte(s)
		b[1] = byte(s >> 8)
		b[2] = byte(s >> 16)
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(s))
	}
}

// Close emits the header and the buffered samples. It must be called when
// done writing samples. Close does not close the underlying writer.
func (w *Writer) Close() error {
	hdr := w.header()
	if _, err := w.w.Write(hdr[:]); err != nil {
		return &Error{Op: OpWrite, Err: err}
	}
	if _, err := w.w.Write(w.bb.Bytes()); err != nil {
		return &Error{Op: OpWrite, Err: err}
	}

	w.bb.Reset()
	w.sampleCount = 0
	return nil
}
