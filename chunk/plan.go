// Package chunk plans and produces bounded-duration slices of a source
// recording so each slice fits under the transcription service's per-request
// size limit, and rediscovers existing slices for resumed runs.
package chunk

import (
	"math"

	"github.com/kbukum/scribe/errors"
)

const (
	// DefaultSafetyMargin discounts the theoretical max chunk duration to
	// absorb bytes-per-second estimation error.
	DefaultSafetyMargin = 0.9

	// minuteSeconds is the alignment unit for chunk boundaries.
	minuteSeconds = 60.0
)

// Spec describes one planned chunk.
type Spec struct {
	// Index is the zero-based chunk position.
	Index int
	// StartOffset is the chunk start in seconds from the source beginning.
	StartOffset float64
	// Duration is the chunk length in seconds.
	Duration float64
}

// Plan is an ordered set of chunk specs covering the whole source.
// Offsets are strictly increasing and non-overlapping; every non-final
// duration is a whole-minute multiple.
type Plan struct {
	Specs []Spec
	// ChunkDuration is the per-chunk duration the plan was built from.
	ChunkDuration float64
	// FlooredToMinimum is set when minute rounding produced zero and the
	// duration was forced to one minute. The size margin is sacrificed and
	// the caller must surface a warning.
	FlooredToMinimum bool
}

// SingleChunk reports whether the plan covers the source in one piece.
func (p Plan) SingleChunk() bool {
	return len(p.Specs) == 1
}

// TotalDuration returns the summed duration of all specs.
func (p Plan) TotalDuration() float64 {
	var total float64
	for _, s := range p.Specs {
		total += s.Duration
	}
	return total
}

// PlanChunks computes chunk count and duration from the source size, source
// duration and the service's per-request size limit. Pure and deterministic;
// no I/O.
//
// A source under the limit plans as one chunk. Otherwise the raw duration
// (sizeLimit/totalSize)*totalDuration*safetyMargin is rounded down to a whole
// minute: conservative rounding compensates for bytes-per-second being only
// an average, and minute alignment keeps boundaries human-readable.
func PlanChunks(totalSize int64, totalDuration float64, sizeLimit int64, safetyMargin float64) (Plan, error) {
	if totalDuration <= 0 {
		return Plan{}, errors.Planning("total duration must be positive")
	}
	if totalSize <= 0 {
		return Plan{}, errors.Planning("total size must be positive")
	}
	if sizeLimit <= 0 {
		return Plan{}, errors.Planning("size limit must be positive")
	}
	if safetyMargin <= 0 || safetyMargin > 1 {
		safetyMargin = DefaultSafetyMargin
	}

	if totalSize <= sizeLimit {
		return Plan{
			Specs:         []Spec{{Index: 0, StartOffset: 0, Duration: totalDuration}},
			ChunkDuration: totalDuration,
		}, nil
	}

	raw := float64(sizeLimit) / float64(totalSize) * totalDuration * safetyMargin
	chunkDuration := math.Floor(raw/minuteSeconds) * minuteSeconds

	floored := false
	if chunkDuration == 0 {
		// Pathological bitrate: guarantee progress at the cost of the margin.
		chunkDuration = minuteSeconds
		floored = true
	}

	count := int(math.Ceil(totalDuration / chunkDuration))
	specs := make([]Spec, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * chunkDuration
		duration := chunkDuration
		if remaining := totalDuration - start; remaining < duration {
			duration = remaining
		}
		specs = append(specs, Spec{Index: i, StartOffset: start, Duration: duration})
	}

	return Plan{
		Specs:            specs,
		ChunkDuration:    chunkDuration,
		FlooredToMinimum: floored,
	}, nil
}
