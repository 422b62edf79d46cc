package pcmwav

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-audio/audio"
)

// Sample is the set of element types a canonical PCM payload decodes
// to. 24-bit and 48-bit packed integers are carried as int32 and int64
// respectively; see the widthInt24/widthInt48 dispatch entries.
type Sample interface {
	uint8 | int16 | int32 | int64 | float32 | float64
}

// NOTE: WAV PCM data is stored using little-endian. All bit patterns
// are valid sample values, so the codec performs no validation beyond
// the byte width.

func decodeSample[T Sample](r io.Reader, buf []byte) (T, error) {
	var v T

	switch p := any(&v).(type) {
	case *uint8:
		_, err := io.ReadFull(r, buf[:1])
		if err != nil {
			return v, err
		}

		*p = buf[0]
	case *int16:
		_, err := io.ReadFull(r, buf[:2])
		if err != nil {
			return v, err
		}

		*p = int16(binary.LittleEndian.Uint16(buf[:2]))
	case *int32:
		_, err := io.ReadFull(r, buf[:4])
		if err != nil {
			return v, err
		}

		*p = int32(binary.LittleEndian.Uint32(buf[:4]))
	case *int64:
		_, err := io.ReadFull(r, buf[:8])
		if err != nil {
			return v, err
		}

		*p = int64(binary.LittleEndian.Uint64(buf[:8]))
	case *float32:
		_, err := io.ReadFull(r, buf[:4])
		if err != nil {
			return v, err
		}

		*p = math.Float32frombits(binary.LittleEndian.Uint32(buf[:4]))
	case *float64:
		_, err := io.ReadFull(r, buf[:8])
		if err != nil {
			return v, err
		}

		*p = math.Float64frombits(binary.LittleEndian.Uint64(buf[:8]))
	}

	return v, nil
}

func encodeSample[T Sample](w io.Writer, buf []byte, v T) error {
	var err error

	switch s := any(v).(type) {
	case uint8:
		buf[0] = s
		_, err = w.Write(buf[:1])
	case int16:
		binary.LittleEndian.PutUint16(buf[:2], uint16(s))
		_, err = w.Write(buf[:2])
	case int32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(s))
		_, err = w.Write(buf[:4])
	case int64:
		binary.LittleEndian.PutUint64(buf[:8], uint64(s))
		_, err = w.Write(buf[:8])
	case float32:
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(s))
		_, err = w.Write(buf[:4])
	case float64:
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(s))
		_, err = w.Write(buf[:8])
	}

	return err
}

// decodeInt24 reads a packed little-endian 24-bit signed integer and
// sign-extends it into an int32.
func decodeInt24(r io.Reader, buf []byte) (int32, error) {
	_, err := io.ReadFull(r, buf[:3])
	if err != nil {
		return 0, err
	}

	return audio.Int24LETo32(buf[:3]), nil
}

func encodeInt24(w io.Writer, _ []byte, v int32) error {
	_, err := w.Write(audio.Int32toInt24LEBytes(v))
	return err
}

// decodeInt48 reads a packed little-endian 48-bit signed integer and
// sign-extends it into an int64. go-audio has no 48-bit helper, so the
// packing is done by hand.
func decodeInt48(r io.Reader, buf []byte) (int64, error) {
	_, err := io.ReadFull(r, buf[:6])
	if err != nil {
		return 0, err
	}

	var u uint64
	for i := 5; i >= 0; i-- {
		u = u<<8 | uint64(buf[i])
	}

	// sign-extend from bit 47
	return int64(u<<16) >> 16, nil
}

func encodeInt48(w io.Writer, buf []byte, v int64) error {
	u := uint64(v)
	for i := range 6 {
		buf[i] = byte(u >> (8 * i))
	}

	_, err := w.Write(buf[:6])

	return err
}

// sampleWidth returns the native byte width of T.
func sampleWidth[T Sample]() int {
	var v T
	return binary.Size(v)
}

// formatFor maps an element type to its WAVE format category.
func formatFor[T Sample]() AudioFormat {
	var v T
	switch any(v).(type) {
	case float32, float64:
		return FormatIEEEFloat
	default:
		return FormatPCM
	}
}
