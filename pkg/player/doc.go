// ABOUTME: Player package documentation
// ABOUTME: Describes the single-track playback controller
// Package player implements a single-track playback controller.
//
// A Player owns at most one active sink at a time. Load decodes a file
// and queues it paused; Play, Pause, Stop, Seek and SetVolume drive the
// session, and Position/Duration/IsPlaying/IsPaused query it. Position
// is a wall-clock approximation derived from an anchor timestamp, not a
// decoded-sample counter.
//
// Example:
//
//	dev, err := output.NewOto()
//	p := player.New(dev)
//	secs, err := p.Load("track.mp3")
//	err = p.Play()
package player
