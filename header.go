package pcmwav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	// headerSize is the full canonical header length, including the
	// data chunk ID and size.
	headerSize = 44
	// fmtChunkSize is the fixed fmt sub-chunk size of a canonical
	// header (no extension block).
	fmtChunkSize = 16
	// fileSizePos and dataSizePos are the byte offsets of the two
	// size fields the encoder backpatches on Close.
	fileSizePos = 4
	dataSizePos = 40
)

// Header is the parsed canonical 44-byte WAV header. It only describes
// RIFF/WAVE files laid out as RIFF, fmt, data in that exact order; use
// a full RIFF parser for anything richer.
type Header struct {
	// FileSize is the RIFF chunk size: total file length minus 8.
	FileSize uint32
	Format   AudioFormat
	NumChans uint16
	// SampleRate in frames per second.
	SampleRate uint32
	// AvgBytesPerSec is the informational playback throughput.
	AvgBytesPerSec uint32
	// BlockAlign is NumChans times the per-sample byte width.
	BlockAlign    uint16
	BitsPerSample uint16
	// DataSize is the payload byte length.
	DataSize uint32
}

// TagError is returned when one of the four canonical magic tags does
// not match. Got holds the four bytes actually observed.
type TagError struct {
	Want [4]byte
	Got  [4]byte
}

func (e *TagError) Error() string {
	return fmt.Sprintf("unexpected %q, expecting magic number %q", e.Got[:], e.Want[:])
}

// ReadHeader parses a canonical WAV header from r, leaving r positioned
// at the first byte of the data payload.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	err := expectTag(r, riff.RiffID)
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.FileSize, "file size")
	if err != nil {
		return h, err
	}

	err = expectTag(r, riff.WavFormatID)
	if err != nil {
		return h, err
	}

	err = expectTag(r, riff.FmtID)
	if err != nil {
		return h, err
	}

	// fmt sub-chunk size, always 16 for the canonical layout. Consumed
	// but not kept.
	var fmtSize uint32

	err = readLE(r, &fmtSize, "fmt chunk size")
	if err != nil {
		return h, err
	}

	var formatTag uint16

	err = readLE(r, &formatTag, "format tag")
	if err != nil {
		return h, err
	}

	h.Format = AudioFormat(formatTag)

	err = readLE(r, &h.NumChans, "channel count")
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.SampleRate, "sample rate")
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.AvgBytesPerSec, "avg bytes/sec")
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.BlockAlign, "block align")
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.BitsPerSample, "bit depth")
	if err != nil {
		return h, err
	}

	err = expectTag(r, riff.DataFormatID)
	if err != nil {
		return h, err
	}

	err = readLE(r, &h.DataSize, "data size")
	if err != nil {
		return h, err
	}

	return h, nil
}

// Write serializes the header up to and excluding the data chunk ID.
// The data tag and size field are written by the encoder, which only
// knows the final payload length at Close time.
func (h Header) Write(w io.Writer) error {
	err := writeLE(w, riff.RiffID, "RIFF tag")
	if err != nil {
		return err
	}

	err = writeLE(w, h.FileSize, "file size")
	if err != nil {
		return err
	}

	err = writeLE(w, riff.WavFormatID, "WAVE tag")
	if err != nil {
		return err
	}

	err = writeLE(w, riff.FmtID, "fmt tag")
	if err != nil {
		return err
	}

	err = writeLE(w, uint32(fmtChunkSize), "fmt chunk size")
	if err != nil {
		return err
	}

	err = writeLE(w, uint16(h.Format), "format tag")
	if err != nil {
		return err
	}

	err = writeLE(w, h.NumChans, "channel count")
	if err != nil {
		return err
	}

	err = writeLE(w, h.SampleRate, "sample rate")
	if err != nil {
		return err
	}

	err = writeLE(w, h.AvgBytesPerSec, "avg bytes/sec")
	if err != nil {
		return err
	}

	err = writeLE(w, h.BlockAlign, "block align")
	if err != nil {
		return err
	}

	return writeLE(w, h.BitsPerSample, "bit depth")
}

func expectTag(r io.Reader, want [4]byte) error {
	var got [4]byte

	_, err := io.ReadFull(r, got[:])
	if err != nil {
		return fmt.Errorf("failed to read %q tag: %w", want[:], err)
	}

	if got != want {
		return &TagError{Want: want, Got: got}
	}

	return nil
}

func readLE(r io.Reader, dst any, field string) error {
	err := binary.Read(r, binary.LittleEndian, dst)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", field, err)
	}

	return nil
}

func writeLE(w io.Writer, src any, field string) error {
	err := binary.Write(w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", field, err)
	}

	return nil
}
