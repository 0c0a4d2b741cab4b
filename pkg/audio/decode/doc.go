// ABOUTME: Decode package documentation
// ABOUTME: Describes supported containers and the Source abstraction
// Package decode opens audio files and exposes them as interleaved
// int16 PCM sources.
//
// Supported formats: WAV (16/24-bit PCM), MP3, FLAC, Ogg Vorbis and
// Ogg Opus. Format selection is by file extension with a content-sniff
// fallback for unknown extensions.
//
// Example:
//
//	src, err := decode.Open("track.flac")
//	defer src.Close()
//	pcm, err := decode.ReadAll(src)
package decode
