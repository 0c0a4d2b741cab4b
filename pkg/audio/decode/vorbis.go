// ABOUTME: Ogg Vorbis file decoder
// ABOUTME: Decodes Vorbis float samples to int16 via jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"os"
	"time"

	"github.com/jfreymuth/oggvorbis"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// vorbisSource adapts an oggvorbis reader to the Source interface.
type vorbisSource struct {
	f   *os.File
	dec *oggvorbis.Reader
	buf []float32
}

func newVorbisSource(f *os.File) (Source, error) {
	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("vorbis reader: %v", err)
	}
	return &vorbisSource{f: f, dec: dec}, nil
}

func (s *vorbisSource) SampleRate() int { return s.dec.SampleRate() }
func (s *vorbisSource) Channels() int   { return s.dec.Channels() }
func (s *vorbisSource) Close() error    { return s.f.Close() }

func (s *vorbisSource) Duration() time.Duration {
	// Length is frames per channel, known only for seekable inputs.
	frames := s.dec.Length()
	if frames <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(s.dec.SampleRate())
}

func (s *vorbisSource) ReadSamples(dst []int16) (int, error) {
	if cap(s.buf) < len(dst) {
		s.buf = make([]float32, len(dst))
	}
	s.buf = s.buf[:len(dst)]

	// Read returns float32 values, always a multiple of Channels.
	n, err := s.dec.Read(s.buf)
	for i := 0; i < n; i++ {
		dst[i] = audio.SampleFromFloat32(s.buf[i])
	}
	if err != nil {
		return n, err
	}
	return n, nil
}
