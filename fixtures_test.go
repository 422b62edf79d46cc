package pcmwav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// makeFile builds the canonical bytes of a wav file: 44-byte header
// followed by the raw payload. Built by hand so header and encoder
// bugs can't cancel each other out.
func makeFile(t *testing.T, format AudioFormat, numChans uint16, sampleRate uint32, bitsPerSample uint16, payload []byte) []byte {
	t.Helper()

	blockAlign := numChans * bitsPerSample / 8

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	putLE(t, buf, uint32(len(payload))+36)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	putLE(t, buf, uint32(16))
	putLE(t, buf, uint16(format))
	putLE(t, buf, numChans)
	putLE(t, buf, sampleRate)
	putLE(t, buf, sampleRate*uint32(blockAlign))
	putLE(t, buf, blockAlign)
	putLE(t, buf, bitsPerSample)
	buf.WriteString("data")
	putLE(t, buf, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}

// singleSampleI16 is the minimal fixture: mono, 44100 Hz, 16-bit, one
// zero-valued sample.
func singleSampleI16(t *testing.T) []byte {
	t.Helper()

	return makeFile(t, FormatPCM, 1, 44100, 16, []byte{0, 0})
}

func putLE(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()

	err := binary.Write(buf, binary.LittleEndian, v)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
}

func streamKind(s SampleStream) string {
	switch s.(type) {
	case *Samples[uint8]:
		return "uint8"
	case *Samples[int16]:
		return "int16"
	case *Samples[int32]:
		return "int32"
	case *Samples[int64]:
		return "int64"
	case *Samples[float32]:
		return "float32"
	case *Samples[float64]:
		return "float64"
	default:
		return "unknown"
	}
}
