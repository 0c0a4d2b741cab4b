// ABOUTME: PCM format conversion for device playback
// ABOUTME: Remixes channel counts and resamples to the device format
package output

import (
	"encoding/binary"

	"github.com/trackdeck/nativeaudio/pkg/audio"
	"github.com/trackdeck/nativeaudio/pkg/audio/resample"
)

// toDeviceFormat converts an interleaved stream from src format to dst
// format, remixing channels first and resampling second.
func toDeviceFormat(pcm []int16, src, dst audio.Format) []int16 {
	pcm = remixChannels(pcm, src.Channels, dst.Channels)

	if src.SampleRate == dst.SampleRate {
		return pcm
	}

	r := resample.New(src.SampleRate, dst.SampleRate, dst.Channels)
	out := make([]int16, r.OutputSamplesNeeded(len(pcm))+dst.Channels)
	n := r.Resample(pcm, out)
	return out[:n]
}

// remixChannels converts the channel count of an interleaved stream.
// Mono fans out by duplication; everything else averages down to mono
// first. Equal counts pass through untouched.
func remixChannels(pcm []int16, from, to int) []int16 {
	if from == to || from < 1 || to < 1 {
		return pcm
	}

	frames := len(pcm) / from
	out := make([]int16, frames*to)
	for i := 0; i < frames; i++ {
		var mono int32
		if from == 1 {
			mono = int32(pcm[i])
		} else {
			var sum int32
			for ch := 0; ch < from; ch++ {
				sum += int32(pcm[i*from+ch])
			}
			mono = sum / int32(from)
		}
		for ch := 0; ch < to; ch++ {
			out[i*to+ch] = int16(mono)
		}
	}
	return out
}

// pcmBytes converts interleaved int16 samples to little-endian bytes for oto.
func pcmBytes(pcm []int16) []byte {
	out := make([]byte, len(pcm)*2)
	for i, sample := range pcm {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(sample))
	}
	return out
}
