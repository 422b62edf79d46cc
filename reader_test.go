package pcmwav

import (
	"bytes"
	"testing"
	"time"
)

func TestDecodeSingleSample(t *testing.T) {
	dec, err := Decode(bytes.NewReader(singleSampleI16(t)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	stream, err := dec.Samples()
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}

	s, ok := stream.(*Samples[int16])
	if !ok {
		t.Fatalf("dispatched to %s, want int16", streamKind(stream))
	}

	if s.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", s.Len())
	}

	v, ok := s.Next()
	if !ok {
		t.Fatalf("expected one sample")
	}

	if v != 0 {
		t.Errorf("sample=%d, want 0", v)
	}

	if s.Len() != 0 {
		t.Errorf("Len() after consuming=%d, want 0", s.Len())
	}

	if _, ok := s.Next(); ok {
		t.Errorf("expected end of stream after one sample")
	}
}

func TestLengthConsistency(t *testing.T) {
	tests := []struct {
		name     string
		format   AudioFormat
		numChans uint16
		bitDepth uint16
		payload  int
		want     int
	}{
		{name: "mono 8-bit", format: FormatPCM, numChans: 1, bitDepth: 8, payload: 7, want: 7},
		{name: "stereo 16-bit", format: FormatPCM, numChans: 2, bitDepth: 16, payload: 40, want: 20},
		{name: "mono 24-bit", format: FormatPCM, numChans: 1, bitDepth: 24, payload: 9, want: 3},
		{name: "stereo 32-bit float", format: FormatIEEEFloat, numChans: 2, bitDepth: 32, payload: 64, want: 16},
		{name: "mono 64-bit", format: FormatPCM, numChans: 1, bitDepth: 64, payload: 24, want: 3},
		{name: "empty", format: FormatPCM, numChans: 1, bitDepth: 16, payload: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := makeFile(t, tt.format, tt.numChans, 44100, tt.bitDepth, make([]byte, tt.payload))

			dec, err := Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			stream, err := dec.Samples()
			if err != nil {
				t.Fatalf("Samples failed: %v", err)
			}

			if stream.Len() != tt.want {
				t.Fatalf("Len()=%d, want %d", stream.Len(), tt.want)
			}

			count := countSamples(stream)
			if count != tt.want {
				t.Errorf("decoded %d samples, Len() promised %d", count, tt.want)
			}
		})
	}
}

func countSamples(stream SampleStream) int {
	count := 0

	switch s := stream.(type) {
	case *Samples[uint8]:
		for range s.All() {
			count++
		}
	case *Samples[int16]:
		for range s.All() {
			count++
		}
	case *Samples[int32]:
		for range s.All() {
			count++
		}
	case *Samples[int64]:
		for range s.All() {
			count++
		}
	case *Samples[float32]:
		for range s.All() {
			count++
		}
	case *Samples[float64]:
		for range s.All() {
			count++
		}
	}

	return count
}

// A truncated payload ends the stream without surfacing an error; a
// trailing partial sample counts as end of data.
func TestTruncatedPayloadEndsStream(t *testing.T) {
	data := makeFile(t, FormatPCM, 1, 44100, 16, make([]byte, 8))
	// claim 4 samples but deliver 2 and a half
	data = data[:len(data)-3]

	dec, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	stream, err := dec.Samples()
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}

	if stream.Len() != 4 {
		t.Fatalf("Len()=%d, want the declared 4", stream.Len())
	}

	if got := countSamples(stream); got != 2 {
		t.Errorf("decoded %d samples from the truncated payload, want 2", got)
	}
}

func TestSamplesAllStopsEarly(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	data := makeFile(t, FormatPCM, 1, 8000, 8, payload)

	dec, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	stream, err := dec.Samples()
	if err != nil {
		t.Fatalf("Samples failed: %v", err)
	}

	s := stream.(*Samples[uint8])

	var got []uint8
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v, want the first two payload bytes", got)
	}

	// the stream stays usable after an early break
	v, ok := s.Next()
	if !ok || v != 3 {
		t.Errorf("Next after break=(%d,%t), want (3,true)", v, ok)
	}
}

func TestDecoderAccessors(t *testing.T) {
	data := makeFile(t, FormatPCM, 1, 44100, 16, make([]byte, 88200))

	dec, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if dec.SampleBitDepth() != 16 {
		t.Errorf("SampleBitDepth()=%d, want 16", dec.SampleBitDepth())
	}

	if dec.PCMLen() != 88200 {
		t.Errorf("PCMLen()=%d, want 88200", dec.PCMLen())
	}

	dur, err := dec.Duration()
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}

	// per-sample duration is truncated to whole nanoseconds, so allow
	// up to a millisecond of drift over one second of audio
	if diff := (time.Second - dur).Abs(); diff > time.Millisecond {
		t.Errorf("Duration()=%s, want ~1s", dur)
	}

	var nilDec *Decoder
	if _, err := nilDec.Duration(); err == nil {
		t.Errorf("expected an error for a nil decoder")
	}
}
