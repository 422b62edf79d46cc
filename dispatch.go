package pcmwav

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSampleFormat is returned when a header's byte width and
// format tag pair does not map to a known sample representation.
var ErrUnsupportedSampleFormat = errors.New("unsupported sample format")

const (
	widthInt24 = 3
	widthInt48 = 6
)

// SampleStream is the typed view over a decoder's data region. It is
// implemented only by *Samples[T] for the supported element types;
// callers switch on the concrete type to reach the stream:
//
//	switch s := stream.(type) {
//	case *Samples[int16]:
//		for v := range s.All() { ... }
//	...
//	}
type SampleStream interface {
	// Len returns the exact number of samples remaining.
	Len() int

	sampleStream()
}

// Samples selects the decoding path matching the header's per-sample
// byte width and format tag, per the canonical table:
//
//	width 1, PCM        -> *Samples[uint8]
//	width 2, PCM        -> *Samples[int16]
//	width 3, PCM        -> *Samples[int32]  (packed 24-bit)
//	width 4, PCM        -> *Samples[int32]
//	width 4, IEEE float -> *Samples[float32]
//	width 6, PCM        -> *Samples[int64]  (packed 48-bit)
//	width 8, PCM        -> *Samples[int64]
//	width 8, IEEE float -> *Samples[float64]
//
// Every other pairing, including unknown format tags, fails with
// ErrUnsupportedSampleFormat.
func (d *Decoder) Samples() (SampleStream, error) {
	h := d.Header
	if h.NumChans == 0 || h.BlockAlign == 0 {
		return nil, fmt.Errorf("%w: %d channels, block align %d",
			ErrUnsupportedSampleFormat, h.NumChans, h.BlockAlign)
	}

	width := int(h.BlockAlign) / int(h.NumChans)

	switch {
	case width == 1 && h.Format == FormatPCM:
		return newSamples(d, width, decodeSample[uint8]), nil
	case width == 2 && h.Format == FormatPCM:
		return newSamples(d, width, decodeSample[int16]), nil
	case width == widthInt24 && h.Format == FormatPCM:
		return newSamples(d, width, decodeInt24), nil
	case width == 4 && h.Format == FormatPCM:
		return newSamples(d, width, decodeSample[int32]), nil
	case width == 4 && h.Format == FormatIEEEFloat:
		return newSamples(d, width, decodeSample[float32]), nil
	case width == widthInt48 && h.Format == FormatPCM:
		return newSamples(d, width, decodeInt48), nil
	case width == 8 && h.Format == FormatPCM:
		return newSamples(d, width, decodeSample[int64]), nil
	case width == 8 && h.Format == FormatIEEEFloat:
		return newSamples(d, width, decodeSample[float64]), nil
	default:
		return nil, fmt.Errorf("%w: %d bytes per sample as %s",
			ErrUnsupportedSampleFormat, width, h.Format)
	}
}
