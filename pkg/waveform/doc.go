// ABOUTME: Waveform package documentation
// ABOUTME: Describes the bucketed amplitude envelope extraction
// Package waveform reduces audio files to fixed-size amplitude envelopes
// suitable for compact waveform displays.
//
// Each bucket covers a contiguous span of frames and reports the RMS of
// their mono mixdown, run through a log2 meter curve and stretched to
// the full [0,1] display range when no bucket saturates it.
//
// Example:
//
//	result, err := waveform.Extract("track.mp3", 256)
//	// result.Peaks holds 256 values in [0,1]
package waveform
