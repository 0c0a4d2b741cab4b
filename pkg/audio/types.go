// ABOUTME: Audio type definitions
// ABOUTME: Defines the PCM stream format and sample range conversions
package audio

import "math"

// Format describes a decoded PCM stream.
type Format struct {
	SampleRate int // Hz
	Channels   int // 1=mono, 2=stereo
}

// SampleFromInt24 converts a 24-bit sample to int16 (drops the low byte)
func SampleFromInt24(sample int32) int16 {
	return int16(sample >> 8)
}

// SampleFromFloat32 converts a [-1,1] float sample to int16 with clipping
func SampleFromFloat32(sample float32) int16 {
	scaled := sample * 32767
	if scaled > math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled < math.MinInt16 {
		return math.MinInt16
	}
	return int16(scaled)
}

// SampleToFloat converts an int16 sample to [-1,1] float64
func SampleToFloat(sample int16) float64 {
	return float64(sample) / math.MaxInt16
}
