package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/pcmwav"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	fi, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	if fi.Size() <= 44 {
		t.Fatalf("unexpected small wav file size: %d", fi.Size())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	dec, err := pcmwav.Decode(f)
	if err != nil {
		t.Fatalf("generated file does not decode: %v", err)
	}

	if dec.Header.SampleRate != 44100 {
		t.Fatalf("sample rate=%d, want 44100", dec.Header.SampleRate)
	}

	if dec.Header.BitsPerSample != 16 {
		t.Fatalf("bit depth=%d, want 16", dec.Header.BitsPerSample)
	}

	if dec.Header.NumChans != 1 {
		t.Fatalf("channels=%d, want 1", dec.Header.NumChans)
	}

	stream, err := dec.Samples()
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if stream.Len() != 441 {
		t.Fatalf("sample count=%d, want 441", stream.Len())
	}
}

func TestRunEightBit(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine8.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-bits", "8"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	dec, err := pcmwav.Decode(f)
	if err != nil {
		t.Fatalf("generated file does not decode: %v", err)
	}

	if dec.Header.BitsPerSample != 8 {
		t.Fatalf("bit depth=%d, want 8", dec.Header.BitsPerSample)
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"})
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunUnsupportedBitDepth(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "bad.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-bits", "12"})
	if err == nil {
		t.Fatalf("expected failure for unsupported bit depth")
	}
}
