// Package pcmwav is a codec for the canonical-PCM WAV container: a
// fixed 44-byte RIFF/fmt/data header followed by interleaved
// little-endian samples.
//
// Decoding parses the header eagerly and exposes the payload as a
// lazily decoded, exactly sized stream typed by the header's declared
// encoding (8-bit unsigned, 16/24/32/48/64-bit signed integer, or
// 32/64-bit IEEE float):
//
//	dec, err := pcmwav.Decode(r)
//	stream, err := dec.Samples()
//	switch s := stream.(type) {
//	case *pcmwav.Samples[int16]:
//		for v := range s.All() { ... }
//	}
//
// Encoding is streaming: NewEncoder writes a provisional header, the
// caller feeds samples, and Close backpatches the two size fields once
// the payload length is known. The sink therefore has to support
// seeking.
//
// The package is deliberately not a general RIFF parser: extended
// chunks (fact, LIST, extensible format GUIDs) and out-of-order chunk
// streams are out of scope.
package pcmwav
