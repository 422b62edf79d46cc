package pcmwav

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/go-audio/riff"
)

// ErrEncoderClosed is returned when writing to an encoder after Close.
var ErrEncoderClosed = errors.New("encoder already closed")

// FileDesc describes the file an Encoder is about to produce. The
// element type parameter fixes the sample representation at compile
// time; the descriptor itself carries no byte layout.
type FileDesc[T Sample] struct {
	NumChans   uint16
	SampleRate uint32
	// NumSamples is the declared total sample count. It may be zero
	// when the length is not known up front; it only seeds the
	// provisional file size field, which Close overwrites anyway.
	NumSamples uint32
}

func (d FileDesc[T]) header(width int, bitsPerSample uint16) Header {
	blockAlign := uint16(int(d.NumChans) * width)

	return Header{
		FileSize:       d.NumSamples*uint32(width) + headerSize - 4,
		Format:         formatFor[T](),
		NumChans:       d.NumChans,
		SampleRate:     d.SampleRate,
		AvgBytesPerSec: d.SampleRate * uint32(blockAlign),
		BlockAlign:     blockAlign,
		BitsPerSample:  bitsPerSample,
	}
}

// Encoder encodes samples of type T into a canonical wav container.
// It writes a provisional header up front and rewrites the two size
// fields when Close is called, so the sink must support seeking.
// Always defer Close: the container is not valid until the sizes have
// been backpatched. Not safe for concurrent use; the encoder
// exclusively owns its sink until Close.
type Encoder[T Sample] struct {
	w        io.WriteSeeker
	buf      []byte
	encode   func(io.Writer, []byte, T) error
	width    int
	dataSize uint32
	closed   bool
}

// NewEncoder writes the provisional header for desc to w and returns
// an encoder ready to accept samples.
func NewEncoder[T Sample](w io.WriteSeeker, desc FileDesc[T]) (*Encoder[T], error) {
	width := sampleWidth[T]()

	return newEncoder(w, desc.header(width, uint16(8*width)), width, encodeSample[T])
}

// NewInt24Encoder returns an encoder storing int32 samples as packed
// little-endian 24-bit integers.
func NewInt24Encoder(w io.WriteSeeker, desc FileDesc[int32]) (*Encoder[int32], error) {
	return newEncoder(w, desc.header(widthInt24, 8*widthInt24), widthInt24, encodeInt24)
}

// NewInt48Encoder returns an encoder storing int64 samples as packed
// little-endian 48-bit integers.
func NewInt48Encoder(w io.WriteSeeker, desc FileDesc[int64]) (*Encoder[int64], error) {
	return newEncoder(w, desc.header(widthInt48, 8*widthInt48), widthInt48, encodeInt48)
}

func newEncoder[T Sample](w io.WriteSeeker, h Header, width int, encode func(io.Writer, []byte, T) error) (*Encoder[T], error) {
	err := h.Write(w)
	if err != nil {
		return nil, err
	}

	err = writeLE(w, riff.DataFormatID, "data tag")
	if err != nil {
		return nil, err
	}

	// provisional data size, backpatched on Close
	err = writeLE(w, uint32(0), "data size")
	if err != nil {
		return nil, err
	}

	return &Encoder[T]{
		w:      w,
		buf:    make([]byte, 8),
		encode: encode,
		width:  width,
	}, nil
}

// WriteSample encodes and writes a single sample.
func (e *Encoder[T]) WriteSample(v T) error {
	if e.closed {
		return ErrEncoderClosed
	}

	err := e.encode(e.w, e.buf, v)
	if err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}

	e.dataSize += uint32(e.width)

	return nil
}

// WriteSamples writes the passed samples in order, stopping at the
// first failure. The running payload size reflects only the samples
// written successfully.
func (e *Encoder[T]) WriteSamples(vs []T) error {
	for _, v := range vs {
		err := e.WriteSample(v)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteSeq drains the passed iterator through WriteSample, stopping at
// the first failure.
func (e *Encoder[T]) WriteSeq(seq iter.Seq[T]) error {
	for v := range seq {
		err := e.WriteSample(v)
		if err != nil {
			return err
		}
	}

	return nil
}

// DataSize returns the payload byte count written so far.
func (e *Encoder[T]) DataSize() uint32 {
	return e.dataSize
}

// Close seeks back and rewrites the file size and data size fields,
// then returns the sink to the end of the stream. It runs the patch at
// most once; further calls are no-ops and further writes fail with
// ErrEncoderClosed. The underlying writer is NOT being closed.
func (e *Encoder[T]) Close() error {
	if e == nil || e.w == nil || e.closed {
		return nil
	}

	e.closed = true

	_, err := e.w.Seek(fileSizePos, io.SeekStart)
	if err != nil {
		return fmt.Errorf("failed to seek to file size position: %w", err)
	}

	err = writeLE(e.w, e.dataSize+headerSize-4, "file size")
	if err != nil {
		return err
	}

	_, err = e.w.Seek(dataSizePos, io.SeekStart)
	if err != nil {
		return fmt.Errorf("failed to seek to data size position: %w", err)
	}

	err = writeLE(e.w, e.dataSize, "data size")
	if err != nil {
		return err
	}

	// jump back to the end of the file.
	_, err = e.w.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to seek to end of file: %w", err)
	}

	if f, ok := e.w.(*os.File); ok {
		return f.Sync()
	}

	return nil
}
