package pcmwav

import "github.com/go-audio/audio"

// FullPCMBuffer decodes the entire remaining payload into a normalized
// float32 buffer, widening whichever element type the dispatch table
// selected. The whole payload is held in memory; use Samples directly
// for streaming access.
func (d *Decoder) FullPCMBuffer() (*audio.Float32Buffer, error) {
	stream, err := d.Samples()
	if err != nil {
		return nil, err
	}

	buf := &audio.Float32Buffer{
		Format:         d.Format(),
		SourceBitDepth: int(d.Header.BitsPerSample),
	}

	switch s := stream.(type) {
	case *Samples[uint8]:
		buf.Data = collectFloat32(s, func(v uint8) float32 {
			return normalizePCMInt(int64(v), 8)
		})
	case *Samples[int16]:
		buf.Data = collectFloat32(s, func(v int16) float32 {
			return normalizePCMInt(int64(v), 16)
		})
	case *Samples[int32]:
		bitDepth := 8 * s.Width()
		buf.Data = collectFloat32(s, func(v int32) float32 {
			return normalizePCMInt(int64(v), bitDepth)
		})
	case *Samples[int64]:
		bitDepth := 8 * s.Width()
		buf.Data = collectFloat32(s, func(v int64) float32 {
			return normalizePCMInt(v, bitDepth)
		})
	case *Samples[float32]:
		buf.Data = collectFloat32(s, func(v float32) float32 {
			return clampFloat32(v, -1, 1)
		})
	case *Samples[float64]:
		buf.Data = collectFloat32(s, func(v float64) float32 {
			return clampFloat32(float32(v), -1, 1)
		})
	}

	return buf, nil
}

// FullIntBuffer decodes the entire remaining payload into an integer
// buffer, scaling float payloads to 32-bit PCM range. Useful for
// feeding encoders that only accept integer buffers, such as aiff.
func (d *Decoder) FullIntBuffer() (*audio.IntBuffer, error) {
	stream, err := d.Samples()
	if err != nil {
		return nil, err
	}

	buf := &audio.IntBuffer{
		Format:         d.Format(),
		SourceBitDepth: int(d.Header.BitsPerSample),
	}

	switch s := stream.(type) {
	case *Samples[uint8]:
		buf.Data = collectInt(s, func(v uint8) int { return int(v) })
	case *Samples[int16]:
		buf.Data = collectInt(s, func(v int16) int { return int(v) })
	case *Samples[int32]:
		buf.Data = collectInt(s, func(v int32) int { return int(v) })
	case *Samples[int64]:
		buf.Data = collectInt(s, func(v int64) int { return int(v) })
	case *Samples[float32]:
		buf.SourceBitDepth = 32
		buf.Data = collectInt(s, func(v float32) int {
			return int(float32ToPCMInt32(v, 32))
		})
	case *Samples[float64]:
		buf.SourceBitDepth = 32
		buf.Data = collectInt(s, func(v float64) int {
			return int(float32ToPCMInt32(float32(v), 32))
		})
	}

	return buf, nil
}

// Format returns the audio format of the decoded content.
func (d *Decoder) Format() *audio.Format {
	if d == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(d.Header.NumChans),
		SampleRate:  int(d.Header.SampleRate),
	}
}

func collectFloat32[T Sample](s *Samples[T], conv func(T) float32) []float32 {
	data := make([]float32, 0, s.Len())
	for v := range s.All() {
		data = append(data, conv(v))
	}

	return data
}

func collectInt[T Sample](s *Samples[T], conv func(T) int) []int {
	data := make([]int, 0, s.Len())
	for v := range s.All() {
		data = append(data, conv(v))
	}

	return data
}
