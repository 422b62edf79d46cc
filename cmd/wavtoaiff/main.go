// This tool converts a canonical wav file into an aiff file stored in
// the same folder as the source.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/pcmwav"
	"github.com/go-audio/aiff"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("You must pass the path of the wav file to convert")
		os.Exit(1)
	}

	err := convert(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
}

func convert(sourcePath string) error {
	file, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}
	defer file.Close()

	dec, err := pcmwav.Decode(file)
	if err != nil {
		return err
	}

	buf, err := dec.FullIntBuffer()
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	enc := aiff.NewEncoder(outFile, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write aiff data: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)

	return nil
}
