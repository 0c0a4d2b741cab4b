// ABOUTME: MP3 file decoder
// ABOUTME: Decodes MP3 audio to int16 samples via go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Channels is fixed by go-mp3, which always emits stereo 16-bit PCM.
const mp3Channels = 2

// mp3Source adapts a go-mp3 decoder to the Source interface.
type mp3Source struct {
	f   *os.File
	dec *mp3.Decoder
	buf []byte
}

func newMP3Source(f *os.File) (Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("mp3 decoder: %v", err)
	}
	return &mp3Source{f: f, dec: dec}, nil
}

func (s *mp3Source) SampleRate() int { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int   { return mp3Channels }
func (s *mp3Source) Close() error    { return s.f.Close() }

func (s *mp3Source) Duration() time.Duration {
	// Length reports the decoded stream size in bytes when the source is
	// seekable: 2 bytes per sample, 2 channels.
	length := s.dec.Length()
	if length <= 0 {
		return 0
	}
	frames := length / (2 * mp3Channels)
	return time.Duration(frames) * time.Second / time.Duration(s.dec.SampleRate())
}

func (s *mp3Source) ReadSamples(dst []int16) (int, error) {
	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(dst)*2]

	n, err := s.dec.Read(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("mp3 read: %v", err)
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[i*2:]))
	}
	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}
