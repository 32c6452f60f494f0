package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/process"
)

const (
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"

	// Cutting is local I/O bound; anything past this is a wedged process.
	cutGracePeriod = 10 * time.Second
)

// FFmpeg implements Toolkit using the ffmpeg and ffprobe binaries.
type FFmpeg struct {
	FFmpegBinary  string
	FFprobeBinary string
}

// NewFFmpeg creates a Toolkit backed by ffmpeg/ffprobe resolved via PATH.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		FFmpegBinary:  defaultFFmpegBinary,
		FFprobeBinary: defaultFFprobeBinary,
	}
}

// ffprobe -print_format json -show_format output, format section only.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
		Size     string `json:"size"`
	} `json:"format"`
}

// Probe returns duration and size for the media at path.
func (f *FFmpeg) Probe(ctx context.Context, path string) (SourceInfo, error) {
	result, err := process.Run(ctx, process.Command{
		Binary: f.FFprobeBinary,
		Args: []string{
			"-v", "error",
			"-print_format", "json",
			"-show_format",
			path,
		},
	})
	if err != nil {
		return SourceInfo{}, errors.Extraction(path, fmt.Errorf("ffprobe: %w: %s", err, result.StderrTail(512)))
	}

	var out probeOutput
	if err := json.Unmarshal(result.Stdout, &out); err != nil {
		return SourceInfo{}, errors.Extraction(path, fmt.Errorf("parse ffprobe output: %w", err))
	}

	duration, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil || duration <= 0 {
		return SourceInfo{}, errors.Extraction(path, fmt.Errorf("source has no decodable duration (got %q)", out.Format.Duration))
	}

	size, err := strconv.ParseInt(out.Format.Size, 10, 64)
	if err != nil || size <= 0 {
		// ffprobe omits size for pipes; fall back to a stat.
		fi, statErr := os.Stat(path)
		if statErr != nil {
			return SourceInfo{}, errors.Extraction(path, fmt.Errorf("source size unknown: %v", statErr))
		}
		size = fi.Size()
	}

	return SourceInfo{Path: path, Duration: duration, Size: size}, nil
}

// Cut extracts [start, start+duration) seconds from path into outPath using
// stream copy, so chunk bytes-per-second stays close to the source average
// the planner estimated from.
func (f *FFmpeg) Cut(ctx context.Context, path string, start, duration float64, outPath string) error {
	result, err := process.Run(ctx, process.Command{
		Binary: f.FFmpegBinary,
		Args: []string{
			"-y",
			"-v", "error",
			"-ss", formatSeconds(start),
			"-t", formatSeconds(duration),
			"-i", path,
			"-vn",
			"-c", "copy",
			outPath,
		},
		GracePeriod: cutGracePeriod,
	})
	if err != nil {
		return errors.Extraction(path, fmt.Errorf("ffmpeg cut at %ss: %w: %s", formatSeconds(start), err, result.StderrTail(512)))
	}
	return nil
}

// formatSeconds renders seconds for ffmpeg -ss/-t arguments.
// Millisecond precision is plenty for minute-aligned boundaries.
func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
