package transcription

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/kbukum/scribe/chunk"
	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/logger"
)

// errNoSegments marks a response that decoded fine but carried no segments.
var errNoSegments = stderrors.New("response contained no segments")

// ChunkResult pairs a chunk with its chunk-relative segments or the error
// that failed it. Failed chunks surface as gaps, not aborts.
type ChunkResult struct {
	Chunk    chunk.File
	Segments []Segment
	Err      error
}

// Failed reports whether this chunk produced no usable result.
func (r ChunkResult) Failed() bool { return r.Err != nil }

// Dispatcher feeds chunk files through a transcription provider in ascending
// index order. Sequential order is required: a chunk's absolute offset is
// only valid once every prior chunk's duration is fixed, and the small chunk
// counts per file make out-of-order completion handling not worth having.
type Dispatcher struct {
	Provider Provider
	Language string
	Model    string
	Log      *logger.Logger
}

// Dispatch transcribes every chunk and collects per-chunk results. A failing
// chunk (network error, decode rejection, empty result) is recorded and the
// run continues; only zero successful chunks is an overall failure.
func (d *Dispatcher) Dispatch(ctx context.Context, chunks []chunk.File) ([]ChunkResult, error) {
	if len(chunks) == 0 {
		return nil, errors.InvalidInput("chunks", "nothing to transcribe")
	}

	log := d.Log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("dispatcher").WithFields(map[string]interface{}{
		logger.FieldProvider: d.Provider.Name(),
	})

	results := make([]ChunkResult, 0, len(chunks))
	succeeded := 0

	for _, c := range chunks {
		start := time.Now()
		resp, err := d.Provider.Transcribe(ctx, TranscriptionRequest{
			AudioPath: c.Path,
			Language:  d.Language,
			Model:     d.Model,
		})

		switch {
		case err != nil:
			log.Error("chunk transcription failed",
				logger.ErrorFields("transcribe", err),
				logger.Fields(logger.FieldChunk, c.Index),
			)
			results = append(results, ChunkResult{
				Chunk: c,
				Err:   errors.TranscriptionChunk(c.Index, err),
			})

		case len(resp.Segments) == 0:
			// No segments at all is an API or format problem, logged apart
			// from the empty-text case below which is just silent audio.
			log.Error("provider returned no segments", logger.Fields(
				logger.FieldChunk, c.Index,
			))
			results = append(results, ChunkResult{
				Chunk: c,
				Err:   errors.TranscriptionChunk(c.Index, errNoSegments),
			})

		default:
			if allBlank(resp.Segments) {
				log.Warn("chunk produced only empty-text segments", logger.Fields(
					logger.FieldChunk, c.Index,
				))
			}
			log.Info("chunk transcribed",
				logger.DurationFields("transcribe", time.Since(start)),
				logger.Fields(logger.FieldChunk, c.Index, "segments", len(resp.Segments)),
			)
			results = append(results, ChunkResult{Chunk: c, Segments: resp.Segments})
			succeeded++
		}
	}

	if succeeded == 0 {
		return results, errors.TranscriptionTotal(len(chunks))
	}
	return results, nil
}

func allBlank(segments []Segment) bool {
	for _, s := range segments {
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}
