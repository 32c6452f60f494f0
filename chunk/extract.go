package chunk

import (
	"context"
	"os"

	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/media"
)

// Extractor cuts a probed source into the chunk files a plan describes.
type Extractor struct {
	Toolkit media.Toolkit
	// Dir is where chunk files are written. Empty means next to the source.
	Dir string
	// Force re-extracts chunks whose target files already exist.
	Force bool
	Log   *logger.Logger
}

// Extract produces the ordered chunk files for src according to plan.
//
// A single-chunk plan returns the source itself: the whole file already fits
// under the size limit and cutting it would only copy bytes. Existing target
// files are reused unless Force is set, which is what makes interrupted runs
// cheap to restart. The caller owns chunk lifetime and cleanup.
func (e *Extractor) Extract(ctx context.Context, src media.SourceInfo, plan Plan) ([]File, error) {
	log := e.Log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("extractor")

	if plan.SingleChunk() {
		return []File{{
			Index:       0,
			Path:        src.Path,
			StartOffset: 0,
			Duration:    src.Duration,
		}}, nil
	}

	files := make([]File, 0, len(plan.Specs))
	for _, spec := range plan.Specs {
		target := Path(src.Path, spec.Index, e.Dir)

		if !e.Force {
			if _, err := os.Stat(target); err == nil {
				log.Debug("chunk exists, skipping extraction", logger.Fields(
					logger.FieldChunk, spec.Index,
					logger.FieldPath, target,
				))
				files = append(files, File{
					Index:       spec.Index,
					Path:        target,
					StartOffset: spec.StartOffset,
					Duration:    spec.Duration,
				})
				continue
			}
		}

		log.Info("extracting chunk", logger.Fields(
			logger.FieldChunk, spec.Index,
			"start", spec.StartOffset,
			"duration", spec.Duration,
		))
		if err := e.Toolkit.Cut(ctx, src.Path, spec.StartOffset, spec.Duration, target); err != nil {
			return nil, err
		}
		files = append(files, File{
			Index:       spec.Index,
			Path:        target,
			StartOffset: spec.StartOffset,
			Duration:    spec.Duration,
		})
	}

	return files, nil
}

// Cleanup removes extracted chunk files. The source file itself (single-chunk
// runs) is never removed.
func Cleanup(src media.SourceInfo, files []File) {
	for _, f := range files {
		if f.Path == src.Path {
			continue
		}
		_ = os.Remove(f.Path)
	}
}
