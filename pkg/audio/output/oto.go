// ABOUTME: Oto-based output device implementation
// ABOUTME: One process-wide oto context; each sink is a buffered oto player
package output

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// The oto context allows one instance per process, so the device runs at a
// fixed format and every stream is converted to it on sink creation.
var deviceFormat = audio.Format{SampleRate: 48000, Channels: 2}

var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

// Oto is a Device backed by the ebitengine/oto library.
type Oto struct{}

// NewOto opens the default output device.
func NewOto() (Device, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   deviceFormat.SampleRate,
			ChannelCount: deviceFormat.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			otoErr = err
			return
		}
		<-readyChan
		otoCtx = ctx

		log.Printf("Audio output initialized: %dHz, %d channels",
			deviceFormat.SampleRate, deviceFormat.Channels)
	})

	if otoErr != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrDevice, otoErr)
	}
	return &Oto{}, nil
}

// NewSink converts the stream to the device format and binds it to a
// fresh oto player, left paused.
func (o *Oto) NewSink(pcm []int16, format audio.Format) (Sink, error) {
	if otoCtx == nil {
		return nil, fmt.Errorf("%w: context not initialized", audio.ErrDevice)
	}

	converted := toDeviceFormat(pcm, format, deviceFormat)
	reader := bytes.NewReader(pcmBytes(converted))

	return &otoSink{
		player: otoCtx.NewPlayer(reader),
		reader: reader,
	}, nil
}

// Close suspends the device context. The context itself stays allocated
// because oto cannot recreate it within the same process.
func (o *Oto) Close() error {
	if otoCtx != nil {
		return otoCtx.Suspend()
	}
	return nil
}

// otoSink is one queued stream on the oto context.
type otoSink struct {
	mu      sync.Mutex
	player  *oto.Player
	reader  *bytes.Reader
	started bool
	paused  bool
}

func (s *otoSink) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return
	}
	s.player.Play()
	s.started = true
	s.paused = false
}

func (s *otoSink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return
	}
	s.player.Pause()
	s.paused = true
}

func (s *otoSink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return
	}
	if err := s.player.Close(); err != nil {
		log.Printf("Sink close error: %v", err)
	}
	s.player = nil
	s.started = false
	s.paused = false
}

func (s *otoSink) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return
	}
	s.player.SetVolume(volume)
}

func (s *otoSink) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && s.paused
}

func (s *otoSink) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && s.started && !s.paused && s.queued()
}

func (s *otoSink) HasQueued() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && s.queued()
}

// queued must be called with mu held.
func (s *otoSink) queued() bool {
	return s.reader.Len() > 0 || s.player.BufferedSize() > 0
}
