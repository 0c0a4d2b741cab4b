// ABOUTME: Ogg Opus file decoder
// ABOUTME: Decodes Opus streams to 48kHz stereo int16 via hraban/opus
package decode

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/hraban/opus.v2"
)

// Opus streams always decode at 48kHz; ReadStereo upmixes mono for us.
const (
	opusSampleRate = 48000
	opusChannels   = 2
)

// opusSource adapts an opus.Stream to the Source interface.
//
// The Ogg Opus container carries no total length in its headers, so
// Duration reports 0 and callers fall back to their duration-less paths.
type opusSource struct {
	f      *os.File
	stream *opus.Stream
}

func newOpusSource(f *os.File) (Source, error) {
	stream, err := opus.NewStream(f)
	if err != nil {
		return nil, fmt.Errorf("opus stream: %v", err)
	}
	return &opusSource{f: f, stream: stream}, nil
}

func (s *opusSource) SampleRate() int         { return opusSampleRate }
func (s *opusSource) Channels() int           { return opusChannels }
func (s *opusSource) Duration() time.Duration { return 0 }

func (s *opusSource) Close() error {
	s.stream.Close()
	return s.f.Close()
}

func (s *opusSource) ReadSamples(dst []int16) (int, error) {
	// ReadStereo wants room for whole stereo frames.
	usable := len(dst) - len(dst)%opusChannels
	n, err := s.stream.ReadStereo(dst[:usable])
	if err != nil {
		return 0, err
	}
	return n * opusChannels, nil
}
