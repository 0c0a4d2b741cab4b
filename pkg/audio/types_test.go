// ABOUTME: Tests for audio types
// ABOUTME: Tests sample conversion functions
package audio

import (
	"math"
	"testing"
)

func TestSampleFromInt24(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int16
	}{
		{"zero", 0, 0},
		{"positive", 100 << 8, 100},
		{"negative", -100 << 8, -100},
		{"max", 8388607, 32767},
		{"min", -8388608, -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt24(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleFromFloat32(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected int16
	}{
		{"zero", 0, 0},
		{"full scale", 1.0, 32767},
		{"negative full scale", -1.0, -32767},
		{"clip above", 1.5, 32767},
		{"clip below", -1.5, -32768},
		{"half", 0.5, 16383},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromFloat32(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleToFloat(t *testing.T) {
	if got := SampleToFloat(math.MaxInt16); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
	if got := SampleToFloat(0); got != 0.0 {
		t.Errorf("expected 0.0, got %v", got)
	}
	if got := SampleToFloat(-math.MaxInt16); got != -1.0 {
		t.Errorf("expected -1.0, got %v", got)
	}
}
