package pcmwav

import "fmt"

// AudioFormat is the WAVE format tag from the fmt chunk. Only linear
// PCM and IEEE float are decodable; any other registered code is kept
// verbatim so a header can round-trip without loss.
type AudioFormat uint16

const (
	// FormatPCM is linear-quantized integer PCM.
	FormatPCM AudioFormat = 1
	// FormatIEEEFloat is IEEE 754 float PCM.
	FormatIEEEFloat AudioFormat = 3
)

// Known reports whether the format tag maps to a decodable sample
// representation.
func (f AudioFormat) Known() bool {
	return f == FormatPCM || f == FormatIEEEFloat
}

// String implements the Stringer interface.
func (f AudioFormat) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	default:
		return fmt.Sprintf("unknown (format tag %d)", uint16(f))
	}
}
