// ABOUTME: Deck TUI entry point
// ABOUTME: Loads a track and drives it from an interactive terminal UI
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/trackdeck/nativeaudio/internal/ui"
	"github.com/trackdeck/nativeaudio/pkg/audio/output"
	"github.com/trackdeck/nativeaudio/pkg/player"
	"github.com/trackdeck/nativeaudio/pkg/waveform"
)

func main() {
	buckets := flag.Int("buckets", 512, "waveform bucket count (clamped to 8..4096)")
	volume := flag.Float64("volume", 1.0, "initial volume (0..1)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <audio file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	// The TUI owns the terminal, so route logs to a file
	logFile, err := os.CreateTemp("", "trackdeck-play-*.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	device, err := output.NewOto()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio device: %v\n", err)
		os.Exit(1)
	}
	defer device.Close()

	p := player.New(device)
	if _, err := p.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}
	defer p.Stop()

	result, err := waveform.Extract(path, *buckets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "waveform: %v\n", err)
		os.Exit(1)
	}

	if err := p.SetVolume(*volume); err != nil {
		fmt.Fprintf(os.Stderr, "volume: %v\n", err)
		os.Exit(1)
	}

	if err := ui.Run(p, filepath.Base(path), result.Peaks); err != nil {
		fmt.Fprintf(os.Stderr, "ui: %v\n", err)
		os.Exit(1)
	}
}
