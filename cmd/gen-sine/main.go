// This tool generates a sine wave and writes it out as a canonical wav
// file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/pcmwav"
)

const sampleRate = 44100

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	bits := flagSet.Int("bits", 16, "sample bit depth, 8 or 16")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	numSamples := int(sampleRate * *length)

	switch *bits {
	case 8:
		return writeSine(file, numSamples, *frequency, func(v float64) uint8 {
			return uint8(math.Round((v + 1) * 127.5))
		})
	case 16:
		return writeSine(file, numSamples, *frequency, func(v float64) int16 {
			return int16(math.Round(v * 32767))
		})
	default:
		return fmt.Errorf("unsupported bit depth %d", *bits)
	}
}

func writeSine[T pcmwav.Sample](w io.WriteSeeker, numSamples int, frequency float64, conv func(float64) T) error {
	enc, err := pcmwav.NewEncoder(w, pcmwav.FileDesc[T]{
		NumChans:   1,
		SampleRate: sampleRate,
		NumSamples: uint32(numSamples),
	})
	if err != nil {
		return err
	}
	defer enc.Close()

	for i := range numSamples {
		fv := math.Sin(float64(i) / sampleRate * frequency * 2 * math.Pi)

		err := enc.WriteSample(conv(fv))
		if err != nil {
			return err
		}
	}

	return enc.Close()
}
