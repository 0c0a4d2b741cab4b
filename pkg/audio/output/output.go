// ABOUTME: Audio output interface definitions
// ABOUTME: Device creates sinks; a Sink renders one queued PCM stream
package output

import "github.com/trackdeck/nativeaudio/pkg/audio"

// Device represents an audio output device that can render PCM streams.
type Device interface {
	// NewSink queues a full interleaved sample stream on the device and
	// returns a sink controlling it. The sink starts paused.
	NewSink(pcm []int16, format audio.Format) (Sink, error)

	// Close releases the device
	Close() error
}

// Sink controls one queued audio stream on a device.
type Sink interface {
	// Play starts or resumes rendering
	Play()

	// Pause suspends rendering; Play resumes from the same spot
	Pause()

	// Stop halts rendering and releases the stream; the sink is dead after
	Stop()

	// SetVolume sets the sink volume in [0,1]
	SetVolume(volume float64)

	// IsPaused reports whether the sink was paused via Pause
	IsPaused() bool

	// IsPlaying reports whether the sink was started, is not paused, and
	// still has undrained audio
	IsPlaying() bool

	// HasQueued reports whether undrained audio remains on the sink
	HasQueued() bool
}
