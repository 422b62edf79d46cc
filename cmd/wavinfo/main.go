// This tool prints the parsed header of the passed canonical wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	dec, err := pcmwav.Decode(file)
	if err != nil {
		return err
	}

	h := dec.Header
	fmt.Fprintf(out, "Format: %s\n", h.Format)
	fmt.Fprintf(out, "Channels: %d\n", h.NumChans)
	fmt.Fprintf(out, "Sample rate: %d Hz\n", h.SampleRate)
	fmt.Fprintf(out, "Bit depth: %d\n", h.BitsPerSample)
	fmt.Fprintf(out, "Avg bytes/sec: %d\n", h.AvgBytesPerSec)
	fmt.Fprintf(out, "Block align: %d\n", h.BlockAlign)
	fmt.Fprintf(out, "Data size: %d bytes\n", h.DataSize)

	dur, err := dec.Duration()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Duration: %s\n", dur)

	return nil
}
