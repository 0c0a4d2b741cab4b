// ABOUTME: WAV file decoder
// ABOUTME: Decodes PCM WAV files via go-audio/wav
package decode

import (
	"fmt"
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// wavSource adapts a go-audio/wav decoder to the Source interface.
type wavSource struct {
	f        *os.File
	dec      *wav.Decoder
	duration time.Duration
	buf      *goaudio.IntBuffer
}

func newWAVSource(f *os.File) (Source, error) {
	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	switch dec.BitDepth {
	case 16, 24:
	default:
		return nil, fmt.Errorf("unsupported WAV bit depth %d", dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("no PCM data chunk: %v", err)
	}

	// Duration is derived from the data chunk size, so it is only known
	// once FwdToPCM has located that chunk.
	duration, err := dec.Duration()
	if err != nil {
		duration = 0
	}

	return &wavSource{
		f:        f,
		dec:      dec,
		duration: duration,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: int(dec.NumChans),
				SampleRate:  int(dec.SampleRate),
			},
		},
	}, nil
}

func (s *wavSource) SampleRate() int         { return int(s.dec.SampleRate) }
func (s *wavSource) Channels() int           { return int(s.dec.NumChans) }
func (s *wavSource) Duration() time.Duration { return s.duration }
func (s *wavSource) Close() error            { return s.f.Close() }

func (s *wavSource) ReadSamples(dst []int16) (int, error) {
	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("wav read: %v", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		if s.dec.BitDepth == 24 {
			dst[i] = audio.SampleFromInt24(int32(s.buf.Data[i]))
		} else {
			dst[i] = int16(s.buf.Data[i])
		}
	}
	return n, nil
}
