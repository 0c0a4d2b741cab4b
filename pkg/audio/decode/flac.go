// ABOUTME: FLAC file decoder
// ABOUTME: Decodes FLAC frames to interleaved int16 via mewkiz/flac
package decode

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// flacSource adapts a mewkiz/flac stream to the Source interface.
type flacSource struct {
	f       *os.File
	stream  *flac.Stream
	pending []int16 // interleaved leftovers from the last parsed frame
}

func newFLACSource(f *os.File) (Source, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("flac stream: %v", err)
	}

	switch stream.Info.BitsPerSample {
	case 8, 16, 24:
	default:
		return nil, fmt.Errorf("unsupported FLAC bit depth %d", stream.Info.BitsPerSample)
	}

	return &flacSource{f: f, stream: stream}, nil
}

func (s *flacSource) SampleRate() int { return int(s.stream.Info.SampleRate) }
func (s *flacSource) Channels() int   { return int(s.stream.Info.NChannels) }
func (s *flacSource) Close() error    { return s.f.Close() }

func (s *flacSource) Duration() time.Duration {
	info := s.stream.Info
	if info.NSamples == 0 {
		return 0
	}
	return time.Duration(info.NSamples) * time.Second / time.Duration(info.SampleRate)
}

func (s *flacSource) ReadSamples(dst []int16) (int, error) {
	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			fr, err := s.stream.ParseNext()
			if err == io.EOF {
				if written == 0 {
					return 0, io.EOF
				}
				return written, nil
			}
			if err != nil {
				return written, fmt.Errorf("flac frame: %v", err)
			}
			s.interleave(fr.Subframes, int(fr.BlockSize))
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}
	return written, nil
}

// interleave flattens per-channel subframes into the pending sample queue,
// scaling to the int16 range.
func (s *flacSource) interleave(subframes []*frame.Subframe, blockSize int) {
	channels := len(subframes)
	out := make([]int16, 0, blockSize*channels)
	for i := 0; i < blockSize; i++ {
		for ch := 0; ch < channels; ch++ {
			v := subframes[ch].Samples[i]
			switch s.stream.Info.BitsPerSample {
			case 8:
				out = append(out, int16(v)<<8)
			case 24:
				out = append(out, audio.SampleFromInt24(v))
			default:
				out = append(out, int16(v))
			}
		}
	}
	s.pending = out
}
