package pcmwav

import (
	"errors"
	"io"
	"iter"
	"math"
	"time"
)

// ErrDurationNilPointer is returned when calculating duration on a nil decoder.
var ErrDurationNilPointer = errors.New("can't calculate the duration of a nil pointer")

// Decoder handles the decoding of canonical wav streams: a 44-byte
// RIFF/fmt/data header followed by interleaved little-endian samples.
// A Decoder exclusively owns its reader for its whole lifetime and is
// not safe for concurrent use.
type Decoder struct {
	r io.Reader

	// Header is the parsed canonical header.
	Header Header
}

// Decode parses the canonical header from r and returns a decoder
// whose reader is positioned at the first data byte.
func Decode(r io.Reader) (*Decoder, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return &Decoder{r: r, Header: h}, nil
}

// SampleBitDepth returns the bit depth encoding of each sample.
func (d *Decoder) SampleBitDepth() int32 {
	if d == nil {
		return 0
	}

	return int32(d.Header.BitsPerSample)
}

// PCMLen returns the total number of bytes in the data payload.
func (d *Decoder) PCMLen() int64 {
	if d == nil {
		return 0
	}

	return int64(d.Header.DataSize)
}

// Duration returns the time duration of the decoded audio content.
func (d *Decoder) Duration() (time.Duration, error) {
	if d == nil {
		return 0, ErrDurationNilPointer
	}

	if d.Header.BlockAlign == 0 {
		return 0, nil
	}

	frames := int(d.Header.DataSize) / int(d.Header.BlockAlign)

	return time.Duration(frames) * sampleDuration(int(d.Header.SampleRate)), nil
}

func sampleDuration(sampleRate int) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Second / time.Duration(math.Abs(float64(sampleRate)))
}

// Samples is a forward-only, single-pass stream of decoded elements of
// type T, bound to the data region of one decoder. Re-reading requires
// re-opening a decoder on a fresh source.
type Samples[T Sample] struct {
	r         io.Reader
	decode    func(io.Reader, []byte) (T, error)
	buf       []byte
	width     int
	remaining int
}

func newSamples[T Sample](d *Decoder, width int, decode func(io.Reader, []byte) (T, error)) *Samples[T] {
	frames := int(d.Header.DataSize) / int(d.Header.BlockAlign)

	return &Samples[T]{
		r:         d.r,
		decode:    decode,
		buf:       make([]byte, 8),
		width:     width,
		remaining: frames * int(d.Header.NumChans),
	}
}

// Next decodes and returns the next sample. It reports false once the
// data region is exhausted; a trailing partial sample counts as end of
// stream, not as an error.
func (s *Samples[T]) Next() (T, bool) {
	v, err := s.decode(s.r, s.buf)
	if err != nil {
		var zero T
		return zero, false
	}

	if s.remaining > 0 {
		s.remaining--
	}

	return v, true
}

// Len returns the exact number of samples remaining, derived from the
// header byte counts when the stream was opened.
func (s *Samples[T]) Len() int {
	return s.remaining
}

// Width returns the on-disk byte width of one sample. It differs from
// the native size of T for the packed 24-bit and 48-bit variants.
func (s *Samples[T]) Width() int {
	return s.width
}

// All returns an iterator over the remaining samples.
func (s *Samples[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s *Samples[T]) sampleStream() {}
