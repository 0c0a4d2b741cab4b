// ABOUTME: Waveform envelope extraction
// ABOUTME: Reduces a decoded file to bucketed, log-scaled RMS amplitudes
package waveform

import (
	"fmt"
	"io"
	"math"

	"github.com/trackdeck/nativeaudio/pkg/audio"
	"github.com/trackdeck/nativeaudio/pkg/audio/decode"
)

// Bucket count bounds; requests outside are clamped silently.
const (
	MinBuckets = 8
	MaxBuckets = 4096
)

// Result is a compact amplitude envelope of one audio file.
type Result struct {
	DurationMS float64   // duration in milliseconds, 0 when unknown
	Peaks      []float64 // one amplitude per bucket, each in [0,1]
}

// Extract decodes the file at path end-to-end and reduces it to a
// fixed-size amplitude envelope of clamp(buckets, 8, 4096) values.
func Extract(path string, buckets int) (Result, error) {
	src, err := decode.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	result, err := fromSource(src, buckets)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", audio.ErrDecode, path, err)
	}
	return result, nil
}

// bucketAccum accumulates the mono RMS terms of one bucket.
type bucketAccum struct {
	sumSquares float64
	count      int
}

func (b *bucketAccum) add(mono float64) {
	b.sumSquares += mono * mono
	b.count++
}

func fromSource(src decode.Source, buckets int) (Result, error) {
	if buckets < MinBuckets {
		buckets = MinBuckets
	}
	if buckets > MaxBuckets {
		buckets = MaxBuckets
	}

	rate := src.SampleRate()
	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}
	durationSecs := src.Duration().Seconds()

	// With no reported duration the whole stream collapses into a single
	// estimated frame; this only guards the divisions below.
	totalFrames := int64(math.Round(math.Max(0, durationSecs) * float64(rate)))
	if totalFrames < 1 {
		totalFrames = 1
	}

	accums := make([]bucketAccum, buckets)

	// Samples are consumed frame by frame: each frame is collapsed to
	// mono by unweighted channel average and assigned to a bucket by
	// direct proportion of its frame index. If the container undercounts
	// totalFrames, the surplus tail piles into the last bucket.
	buf := make([]int16, 8192-8192%channels)
	var frameIndex int64
	var frameSum float64
	frameFill := 0

	for {
		n, err := src.ReadSamples(buf)
		for _, sample := range buf[:n] {
			frameSum += float64(sample) / math.MaxInt16
			frameFill++
			if frameFill == channels {
				bucket := frameIndex * int64(buckets) / totalFrames
				if bucket > int64(buckets)-1 {
					bucket = int64(buckets) - 1
				}
				accums[bucket].add(frameSum / float64(channels))
				frameSum = 0
				frameFill = 0
				frameIndex++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, err
		}
		if n == 0 {
			break
		}
	}

	// A trailing partial frame still averages over the full channel count,
	// matching the chunked collapse of the interleaved stream.
	if frameFill > 0 {
		bucket := frameIndex * int64(buckets) / totalFrames
		if bucket > int64(buckets)-1 {
			bucket = int64(buckets) - 1
		}
		accums[bucket].add(frameSum / float64(channels))
	}

	peaks := make([]float64, buckets)
	for i, acc := range accums {
		if acc.count == 0 {
			continue
		}
		rms := math.Sqrt(acc.sumSquares / float64(acc.count))

		// Meter-style curve: flattens loud passages, lifts quiet ones
		peaks[i] = math.Min(1, math.Log2(rms+1)/10)
	}

	// Stretch to the full display range unless some bucket already hit
	// the log curve's natural ceiling.
	maxPeak := 0.0
	for _, p := range peaks {
		if p > maxPeak {
			maxPeak = p
		}
	}
	if maxPeak > 0 && maxPeak < 1 {
		for i := range peaks {
			peaks[i] /= maxPeak
		}
	}

	return Result{
		DurationMS: durationSecs * 1000,
		Peaks:      peaks,
	}, nil
}
