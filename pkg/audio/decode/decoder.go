// ABOUTME: Decoder entry point and Source interface
// ABOUTME: Sniffs the container format and dispatches to per-codec decoders
package decode

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// Source is a decoded PCM stream read incrementally from an audio file.
type Source interface {
	// SampleRate of the stream in Hz
	SampleRate() int

	// Channels count (1=mono, 2=stereo)
	Channels() int

	// Duration reported by the container, or 0 when unavailable
	Duration() time.Duration

	// ReadSamples fills dst with interleaved int16 samples and returns the
	// number of samples written. Returns io.EOF when the stream is finished.
	ReadSamples(dst []int16) (int, error)

	// Close releases the underlying file handle
	Close() error
}

// openFunc constructs a Source from an open file handle.
type openFunc func(f *os.File) (Source, error)

// byExtension maps lowercased file extensions to decoder constructors.
var byExtension = map[string]openFunc{
	".wav":  newWAVSource,
	".wave": newWAVSource,
	".mp3":  newMP3Source,
	".flac": newFLACSource,
	".ogg":  newOggSource,
	".oga":  newOggSource,
	".opus": newOpusSource,
}

// Open opens an audio file and returns a decoded PCM source.
// The format is chosen by file extension, falling back to content sniffing
// for unknown extensions.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", audio.ErrIO, path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	construct, ok := byExtension[ext]
	if !ok {
		construct, err = sniff(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
		}
	}

	src, err := construct(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
	}
	return src, nil
}

// sniff inspects the leading bytes of f to pick a decoder, rewinding f after.
func sniff(f *os.File) (openFunc, error) {
	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return nil, fmt.Errorf("file too short to identify: %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind failed: %v", err)
	}

	switch {
	case bytes.Equal(magic[:], []byte("RIFF")):
		return newWAVSource, nil
	case bytes.Equal(magic[:], []byte("fLaC")):
		return newFLACSource, nil
	case bytes.Equal(magic[:], []byte("OggS")):
		// Ogg container: could hold Vorbis or Opus. Try Vorbis first;
		// its constructor fails fast on an Opus identification header.
		return newOggSource, nil
	case magic[0] == 0xFF && magic[1]&0xE0 == 0xE0,
		bytes.Equal(magic[:3], []byte("ID3")):
		return newMP3Source, nil
	}
	return nil, fmt.Errorf("unrecognized container signature %q", magic[:])
}

// newOggSource dispatches an Ogg container to Vorbis or Opus.
func newOggSource(f *os.File) (Source, error) {
	src, err := newVorbisSource(f)
	if err == nil {
		return src, nil
	}
	if _, serr := f.Seek(0, io.SeekStart); serr != nil {
		return nil, serr
	}
	return newOpusSource(f)
}

// ReadAll drains src and returns the full interleaved sample stream.
func ReadAll(src Source) ([]int16, error) {
	var samples []int16
	buf := make([]int16, 8192)
	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return samples, nil
		}
	}
}
