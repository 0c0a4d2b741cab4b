// ABOUTME: Playback controller state machine
// ABOUTME: Owns the active sink, duration cache and position clock for one deck
package player

import (
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/trackdeck/nativeaudio/pkg/audio"
	"github.com/trackdeck/nativeaudio/pkg/audio/decode"
	"github.com/trackdeck/nativeaudio/pkg/audio/output"
)

// Player plays a single audio file at a time on an output device.
//
// Load replaces the whole session: any prior sink is stopped and released
// before the new one is installed. All operations are synchronous; Load and
// Seek block for a full decode of the file (seek cost grows with the target
// offset, since seeking re-decodes and discards up to it).
//
// Each field is guarded independently; there is no cross-field atomicity,
// so a query racing a concurrent Load may pair values from old and new
// sessions for one call.
type Player struct {
	device output.Device
	open   func(path string) (decode.Source, error)

	sinkMu sync.Mutex
	sink   output.Sink

	pathMu sync.Mutex
	path   string

	durMu    sync.Mutex
	duration time.Duration

	clock positionClock
}

// New creates a player bound to an output device.
func New(device output.Device) *Player {
	return &Player{
		device: device,
		open:   decode.Open,
	}
}

// Load loads an audio file and returns its duration in seconds. Any
// current playback is stopped first. The new sink is left paused at the
// start of the file; call Play to start audible output. Files that carry
// no duration metadata report 0.
func (p *Player) Load(path string) (float64, error) {
	p.Stop()

	// First pass: open only to read the total duration.
	src, err := p.open(path)
	if err != nil {
		return 0, err
	}
	duration := src.Duration()
	src.Close()

	// Second pass: decode the full stream and bind it to a fresh sink.
	src, err = p.open(path)
	if err != nil {
		return 0, err
	}
	pcm, err := decode.ReadAll(src)
	format := audio.Format{SampleRate: src.SampleRate(), Channels: src.Channels()}
	src.Close()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
	}

	sink, err := p.device.NewSink(pcm, format)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", audio.ErrDevice, path, err)
	}

	p.setSink(sink)
	p.setPath(path)
	p.setDuration(duration)
	p.clock.reset()

	log.Printf("Loaded %s: %.2fs, %dHz, %d channels",
		path, duration.Seconds(), format.SampleRate, format.Channels)

	return duration.Seconds(), nil
}

// Seek moves playback to the given position in seconds, clamped to
// [0, duration]. The file is re-decoded from the start and samples up to
// the target are discarded, so the cost is proportional to the position.
// Like Load, the new sink is left paused; call Play to resume audible
// output. A position query before that reports the seek target already.
func (p *Player) Seek(positionSecs float64) error {
	path := p.currentPath()
	if path == "" {
		return fmt.Errorf("%w: cannot seek", audio.ErrNotLoaded)
	}
	if positionSecs < 0 || math.IsNaN(positionSecs) {
		positionSecs = 0
	}

	p.Stop()

	src, err := p.open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	duration := src.Duration()
	rate := src.SampleRate()
	channels := src.Channels()

	target := math.Min(positionSecs, duration.Seconds())
	targetFrames := int64(math.Round(target * float64(rate)))
	if err := skipSamples(src, targetFrames*int64(channels)); err != nil {
		return fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
	}

	pcm, err := decode.ReadAll(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
	}

	sink, err := p.device.NewSink(pcm, audio.Format{SampleRate: rate, Channels: channels})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", audio.ErrDevice, path, err)
	}

	p.setSink(sink)
	p.setDuration(duration)

	// Anchor so position reports the seek target before Play is called.
	p.clock.startAt(time.Duration(target * float64(time.Second)))

	log.Printf("Seek %s to %.2fs", path, target)

	return nil
}

// Play starts or resumes playback.
func (p *Player) Play() error {
	p.sinkMu.Lock()
	defer p.sinkMu.Unlock()
	if p.sink == nil {
		return fmt.Errorf("%w: call Load first", audio.ErrNotLoaded)
	}
	p.sink.Play()
	p.clock.start()
	return nil
}

// Pause suspends playback. The position clock keeps its anchor, so a
// position query during a long pause drifts past the pause point; this
// mirrors the sink-side behavior and is intentional.
func (p *Player) Pause() error {
	p.sinkMu.Lock()
	defer p.sinkMu.Unlock()
	if p.sink == nil {
		return fmt.Errorf("%w: nothing to pause", audio.ErrNotLoaded)
	}
	p.sink.Pause()
	return nil
}

// Stop halts playback and releases the sink. Calling it with nothing
// loaded is a no-op; the loaded path is kept so Seek still works.
func (p *Player) Stop() {
	p.sinkMu.Lock()
	if p.sink != nil {
		p.sink.Stop()
		p.sink = nil
	}
	p.sinkMu.Unlock()
	p.clock.reset()
}

// SetVolume sets the playback volume, clamped to [0,1].
func (p *Player) SetVolume(volume float64) error {
	if volume < 0 || math.IsNaN(volume) {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	p.sinkMu.Lock()
	defer p.sinkMu.Unlock()
	if p.sink == nil {
		return fmt.Errorf("%w: cannot set volume", audio.ErrNotLoaded)
	}
	p.sink.SetVolume(volume)
	return nil
}

// Duration returns the cached duration of the loaded file in seconds,
// or 0 when nothing is loaded.
func (p *Player) Duration() float64 {
	p.durMu.Lock()
	defer p.durMu.Unlock()
	return p.duration.Seconds()
}

// Position returns the playback position in seconds, derived from the
// wall-clock anchor. It does not account for device latency or the pause
// gap described on Pause. Returns 0 when no anchor is set.
func (p *Player) Position() float64 {
	return p.clock.elapsed().Seconds()
}

// IsPlaying reports whether a sink exists, was started, is not paused
// and still has queued audio.
func (p *Player) IsPlaying() bool {
	p.sinkMu.Lock()
	defer p.sinkMu.Unlock()
	return p.sink != nil && p.sink.IsPlaying()
}

// IsPaused reports whether a sink exists and is paused.
func (p *Player) IsPaused() bool {
	p.sinkMu.Lock()
	defer p.sinkMu.Unlock()
	return p.sink != nil && p.sink.IsPaused()
}

func (p *Player) setSink(sink output.Sink) {
	p.sinkMu.Lock()
	p.sink = sink
	p.sinkMu.Unlock()
}

func (p *Player) setPath(path string) {
	p.pathMu.Lock()
	p.path = path
	p.pathMu.Unlock()
}

func (p *Player) currentPath() string {
	p.pathMu.Lock()
	defer p.pathMu.Unlock()
	return p.path
}

func (p *Player) setDuration(d time.Duration) {
	p.durMu.Lock()
	p.duration = d
	p.durMu.Unlock()
}

// skipSamples reads and discards count samples from src. Running out of
// stream early is not an error; the remaining tail is simply empty.
func skipSamples(src decode.Source, count int64) error {
	buf := make([]int16, 8192)
	for count > 0 {
		want := len(buf)
		if int64(want) > count {
			want = int(count)
		}
		n, err := src.ReadSamples(buf[:want])
		count -= int64(n)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}
