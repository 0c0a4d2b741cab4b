// ABOUTME: Tests for waveform envelope extraction
// ABOUTME: Uses generated WAV fixtures and in-memory sources
package waveform

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/trackdeck/nativeaudio/pkg/audio"
)

// memSource is an in-memory decode.Source for direct algorithm tests.
type memSource struct {
	rate     int
	channels int
	duration time.Duration
	samples  []int16
	pos      int
}

func (s *memSource) SampleRate() int         { return s.rate }
func (s *memSource) Channels() int           { return s.channels }
func (s *memSource) Duration() time.Duration { return s.duration }
func (s *memSource) Close() error            { return nil }

func (s *memSource) ReadSamples(dst []int16) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

// writeWAV writes a 16-bit PCM WAV fixture and returns its path.
func writeWAV(t *testing.T, name string, sampleRate, channels int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

func TestExtractSilence(t *testing.T) {
	const (
		sampleRate = 8000
		seconds    = 2
	)
	path := writeWAV(t, "silence.wav", sampleRate, 1, make([]int, sampleRate*seconds))

	result, err := Extract(path, 16)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Peaks) != 16 {
		t.Fatalf("expected 16 peaks, got %d", len(result.Peaks))
	}
	for i, p := range result.Peaks {
		if p != 0 {
			t.Errorf("peak %d: expected 0 for silence, got %v", i, p)
		}
	}

	wantMS := float64(seconds * 1000)
	if math.Abs(result.DurationMS-wantMS) > 1 {
		t.Errorf("expected duration %vms, got %vms", wantMS, result.DurationMS)
	}
}

func TestExtractTone(t *testing.T) {
	const sampleRate = 8000
	samples := make([]int, sampleRate)
	for i := range samples {
		samples[i] = int(0.8 * math.MaxInt16 * math.Sin(2*math.Pi*440*float64(i)/sampleRate))
	}
	path := writeWAV(t, "tone.wav", sampleRate, 1, samples)

	result, err := Extract(path, 32)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Peaks) != 32 {
		t.Fatalf("expected 32 peaks, got %d", len(result.Peaks))
	}
	for i, p := range result.Peaks {
		if p <= 0 || p > 1 {
			t.Errorf("peak %d: expected value in (0,1], got %v", i, p)
		}
	}

	// A steady tone normalizes to a flat envelope topping out at 1
	maxPeak := 0.0
	for _, p := range result.Peaks {
		if p > maxPeak {
			maxPeak = p
		}
	}
	if maxPeak != 1.0 {
		t.Errorf("expected normalized max peak 1.0, got %v", maxPeak)
	}
}

func TestExtractBucketClamping(t *testing.T) {
	path := writeWAV(t, "short.wav", 8000, 1, make([]int, 800))

	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"below minimum", 2, MinBuckets},
		{"at minimum", 8, 8},
		{"in range", 100, 100},
		{"above maximum", 10000, MaxBuckets},
		{"zero", 0, MinBuckets},
		{"negative", -5, MinBuckets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Extract(path, tt.requested)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if len(result.Peaks) != tt.expected {
				t.Errorf("expected %d peaks, got %d", tt.expected, len(result.Peaks))
			}
		})
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.wav"), 64)
	if !errors.Is(err, audio.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestExtractGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.bin")
	if err := os.WriteFile(path, []byte("definitely not audio"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Extract(path, 64)
	if !errors.Is(err, audio.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestFromSourceStereoMixdown(t *testing.T) {
	// Opposite full-scale channels cancel to silence in the mono mixdown
	const frames = 1000
	samples := make([]int16, 0, frames*2)
	for i := 0; i < frames; i++ {
		samples = append(samples, math.MaxInt16, -math.MaxInt16)
	}
	src := &memSource{
		rate:     1000,
		channels: 2,
		duration: time.Second,
		samples:  samples,
	}

	result, err := fromSource(src, 8)
	if err != nil {
		t.Fatalf("fromSource failed: %v", err)
	}
	for i, p := range result.Peaks {
		if p != 0 {
			t.Errorf("peak %d: expected 0 after cancellation, got %v", i, p)
		}
	}
}

func TestFromSourceUnknownDuration(t *testing.T) {
	// With no reported duration all frames past the first collapse into
	// the final bucket; the envelope still has the requested size.
	src := &memSource{
		rate:     1000,
		channels: 1,
		duration: 0,
		samples:  make([]int16, 5000),
	}

	result, err := fromSource(src, 16)
	if err != nil {
		t.Fatalf("fromSource failed: %v", err)
	}
	if len(result.Peaks) != 16 {
		t.Fatalf("expected 16 peaks, got %d", len(result.Peaks))
	}
	if result.DurationMS != 0 {
		t.Errorf("expected 0 duration, got %v", result.DurationMS)
	}
}

func TestFromSourceEmptyStream(t *testing.T) {
	src := &memSource{rate: 44100, channels: 2, duration: 0}

	result, err := fromSource(src, 64)
	if err != nil {
		t.Fatalf("fromSource failed: %v", err)
	}
	if len(result.Peaks) != 64 {
		t.Fatalf("expected 64 peaks, got %d", len(result.Peaks))
	}
	for i, p := range result.Peaks {
		if p != 0 {
			t.Errorf("peak %d: expected 0 for empty stream, got %v", i, p)
		}
	}
}

func TestFromSourcePeaksWithinRange(t *testing.T) {
	// Alternating loud and quiet halves; every peak stays in [0,1] and
	// the loud half dominates after normalization
	const rate = 1000
	samples := make([]int16, rate*2)
	for i := 0; i < rate; i++ {
		samples[i] = int16(20000 * math.Sin(2*math.Pi*50*float64(i)/rate))
	}
	for i := rate; i < rate*2; i++ {
		samples[i] = int16(500 * math.Sin(2*math.Pi*50*float64(i)/rate))
	}
	src := &memSource{
		rate:     rate,
		channels: 1,
		duration: 2 * time.Second,
		samples:  samples,
	}

	result, err := fromSource(src, 8)
	if err != nil {
		t.Fatalf("fromSource failed: %v", err)
	}

	for i, p := range result.Peaks {
		if p < 0 || p > 1 {
			t.Errorf("peak %d: expected value in [0,1], got %v", i, p)
		}
	}
	if result.Peaks[0] <= result.Peaks[7] {
		t.Errorf("expected loud half to dominate: first=%v last=%v",
			result.Peaks[0], result.Peaks[7])
	}
}
