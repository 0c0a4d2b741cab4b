// ABOUTME: Error taxonomy for the playback engine
// ABOUTME: Sentinel errors matched by callers via errors.Is
package audio

import "errors"

var (
	// ErrIO indicates the file path could not be opened or read
	ErrIO = errors.New("audio file unreadable")

	// ErrDecode indicates an unsupported or corrupt container/codec
	ErrDecode = errors.New("unsupported or corrupt audio format")

	// ErrDevice indicates the output device is unavailable or sink creation failed
	ErrDevice = errors.New("audio output device unavailable")

	// ErrNotLoaded indicates an operation that requires a loaded file found none
	ErrNotLoaded = errors.New("no audio file loaded")
)
