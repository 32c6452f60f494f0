package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/scribe/chunk"
	"github.com/kbukum/scribe/diarization"
	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/media"
	"github.com/kbukum/scribe/timeline"
	"github.com/kbukum/scribe/transcript"
	"github.com/kbukum/scribe/transcription"
)

// Options configures a single run. The struct is copied at the start of Run
// and never mutated afterwards.
type Options struct {
	// Source is the path to the audio or video file to transcribe.
	Source string
	// SizeLimit is the per-request byte limit of the transcription service.
	SizeLimit int64
	// SafetyMargin shrinks planned chunks below the limit. Zero means the
	// planner default.
	SafetyMargin float64
	// ChunkDir is where chunk files go. Empty means next to the source.
	ChunkDir string
	// Resume reuses chunk files left by an earlier interrupted run instead
	// of re-extracting.
	Resume bool
	// Force re-extracts chunks even when target files exist.
	Force bool
	// KeepChunks leaves chunk files on disk after the run.
	KeepChunks bool
	// Language and Model are passed through to the transcription provider.
	Language string
	Model    string
	// Diarize enables the speaker-labeling pass.
	Diarize bool
	// DiarizationRequest carries speaker-count hints to the diarizer.
	DiarizationRequest diarization.DiarizationRequest
}

// Runner wires the collaborators a run needs. Diarizer may be nil when
// speaker labeling is disabled.
type Runner struct {
	Media       media.Toolkit
	Transcriber transcription.Provider
	Diarizer    diarization.Provider
	Log         *logger.Logger
}

// Summary is the outcome of a run: the assembled transcript plus enough
// bookkeeping to report what happened.
type Summary struct {
	RunID        string
	Source       string
	Plan         chunk.Plan
	Chunks       []chunk.File
	Segments     []transcript.Segment
	FailedChunks []int
	// DiarizationErr is set when speaker labeling failed and the transcript
	// was left unlabeled. The run itself still succeeded.
	DiarizationErr error
	Elapsed        time.Duration
}

// FailureSummary describes failed chunks for humans, e.g.
// "chunks 2 and 5 of 7 failed". Empty when every chunk succeeded.
func (s *Summary) FailureSummary() string {
	if len(s.FailedChunks) == 0 {
		return ""
	}
	total := len(s.Chunks)
	if len(s.FailedChunks) == 1 {
		return fmt.Sprintf("chunk %d of %d failed", s.FailedChunks[0], total)
	}
	parts := make([]string, len(s.FailedChunks))
	for i, idx := range s.FailedChunks {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	list := strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	return fmt.Sprintf("chunks %s of %d failed", list, total)
}

// Run executes the pipeline for opts.Source. A non-nil Summary is returned
// even on failure so callers can report partial progress.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	runID := uuid.NewString()
	log := r.Log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("pipeline").WithRun(runID)

	started := time.Now()
	summary := &Summary{RunID: runID, Source: opts.Source}
	defer func() { summary.Elapsed = time.Since(started) }()

	log.Info("run started", logger.Fields(logger.FieldPath, opts.Source))

	src, err := r.Media.Probe(ctx, opts.Source)
	if err != nil {
		return summary, err
	}

	plan, err := chunk.PlanChunks(src.Size, src.Duration, opts.SizeLimit, opts.SafetyMargin)
	if err != nil {
		return summary, err
	}
	summary.Plan = plan
	if plan.FlooredToMinimum {
		log.Warn("chunk duration floored to one minute, chunks may exceed the size limit")
	}
	log.Info("chunk plan ready", logger.Fields(
		"chunks", len(plan.Specs),
		"chunk_duration", plan.ChunkDuration,
	))

	files, err := r.chunkFiles(ctx, src, plan, opts, log)
	if err != nil {
		return summary, err
	}
	summary.Chunks = files

	dispatcher := &transcription.Dispatcher{
		Provider: r.Transcriber,
		Language: opts.Language,
		Model:    opts.Model,
		Log:      log,
	}
	results, err := dispatcher.Dispatch(ctx, files)
	if err != nil {
		summary.FailedChunks = timeline.FailedChunks(results)
		return summary, err
	}

	summary.Segments = timeline.Assemble(results)
	summary.FailedChunks = timeline.FailedChunks(results)
	if msg := summary.FailureSummary(); msg != "" {
		log.Warn(msg)
	}

	if opts.Diarize {
		r.diarize(ctx, src, summary, opts, log)
	}

	if !opts.KeepChunks {
		chunk.Cleanup(src, files)
	}

	log.Info("run finished",
		logger.DurationFields("run", time.Since(started)),
		logger.Fields("segments", len(summary.Segments)),
	)
	return summary, nil
}

// chunkFiles resolves the chunk file list, either by resuming an existing
// family on disk or by extracting a fresh one.
func (r *Runner) chunkFiles(ctx context.Context, src media.SourceInfo, plan chunk.Plan, opts Options, log *logger.Logger) ([]chunk.File, error) {
	if opts.Resume && !plan.SingleChunk() {
		repo := &chunk.FSRepository{Toolkit: r.Media}
		files, err := repo.ListFamily(ctx, chunk.Path(opts.Source, 0, opts.ChunkDir))
		switch {
		case err == nil && len(files) == len(plan.Specs):
			log.Info("resuming from existing chunk family", logger.Fields(
				"chunks", len(files),
			))
			return files, nil
		case err == nil && len(files) > 0:
			// Partial family: extraction below skips the chunks that exist
			// and cuts only the missing tail.
			log.Info("partial chunk family found, extracting the rest", logger.Fields(
				"found", len(files),
				"planned", len(plan.Specs),
			))
		case err != nil:
			log.WithError(err).Warn("chunk family unusable, re-extracting")
		}
	}

	extractor := &chunk.Extractor{
		Toolkit: r.Media,
		Dir:     opts.ChunkDir,
		Force:   opts.Force,
		Log:     log,
	}
	return extractor.Extract(ctx, src, plan)
}

// diarize runs the speaker-labeling pass. Failure degrades to an unlabeled
// transcript; it never fails the run.
func (r *Runner) diarize(ctx context.Context, src media.SourceInfo, summary *Summary, opts Options, log *logger.Logger) {
	if r.Diarizer == nil {
		summary.DiarizationErr = errors.Diarization(fmt.Errorf("no diarization provider configured"))
		log.Warn("diarization requested but no provider configured")
		return
	}
	annotator := &diarization.Annotator{
		Provider: r.Diarizer,
		Request:  opts.DiarizationRequest,
		Log:      log,
	}
	if err := annotator.Annotate(ctx, src.Path, src.Duration, summary.Segments); err != nil {
		summary.DiarizationErr = err
		log.WithError(err).Warn("diarization failed, transcript left unlabeled")
	}
}
