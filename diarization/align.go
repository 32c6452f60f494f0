package diarization

import (
	"context"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/transcript"
)

// MinAudioSeconds is the floor below which diarization is skipped entirely.
// Very short audio produces unreliable single-speaker noise; an unlabeled
// transcript is the better outcome.
const MinAudioSeconds = 10.0

// Align assigns a speaker label to every transcript segment from the given
// speaker intervals, mutating segments in place. Each segment takes the
// speaker of the interval it overlaps most; ties break toward the
// earliest-starting interval. A segment overlapping nothing stays unlabeled,
// never a guessed default.
func Align(segments []transcript.Segment, intervals []SpeakerInterval) {
	for i := range segments {
		best := -1
		bestOverlap := 0.0
		for j, iv := range intervals {
			o := overlap(segments[i].Start, segments[i].End, iv.Start, iv.End)
			if o <= 0 {
				continue
			}
			if best == -1 || o > bestOverlap ||
				(o == bestOverlap && iv.Start < intervals[best].Start) {
				best = j
				bestOverlap = o
			}
		}
		if best >= 0 {
			segments[i].Speaker = intervals[best].Speaker
		}
	}
}

func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// Annotator runs a diarization provider over a source file and aligns the
// result onto an assembled transcript.
type Annotator struct {
	Provider Provider
	Request  DiarizationRequest
	Log      *logger.Logger
}

// Annotate diarizes the audio at path and labels segments in place. The
// returned error is always recoverable: callers log it and keep the unlabeled
// transcript.
func (a *Annotator) Annotate(ctx context.Context, path string, totalDuration float64, segments []transcript.Segment) error {
	log := a.Log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("diarization").WithFields(map[string]interface{}{
		logger.FieldProvider: a.Provider.Name(),
	})

	if totalDuration < MinAudioSeconds {
		log.Warn("audio too short for diarization, leaving transcript unlabeled", logger.Fields(
			logger.FieldDuration, totalDuration,
		))
		return nil
	}

	req := a.Request
	req.AudioPath = path
	resp, err := a.Provider.Diarize(ctx, req)
	if err != nil {
		return errors.Diarization(err)
	}

	Align(segments, resp.Segments)
	log.Info("transcript speaker-labeled", logger.Fields(
		"speakers", resp.NumSpeakers,
		"intervals", len(resp.Segments),
	))
	return nil
}
