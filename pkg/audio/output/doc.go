// ABOUTME: Audio output package documentation
// ABOUTME: Describes the Device/Sink model over oto
// Package output renders decoded PCM streams to the system audio device.
//
// A Device hands out Sinks; each sink owns one fully queued stream and
// supports play/pause/stop/volume, mirroring a single deck of playback.
// The oto backend keeps one process-wide context at 48kHz stereo and
// converts each queued stream to that format.
//
// Example:
//
//	dev, err := output.NewOto()
//	sink, err := dev.NewSink(pcm, audio.Format{SampleRate: 44100, Channels: 2})
//	sink.Play()
package output
