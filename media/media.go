// Package media wraps the external media toolkit (ffmpeg/ffprobe) behind a
// small contract: probe a source for duration and size, and cut a bounded
// time range into its own file. Everything else about the pipeline is pure Go;
// this package is the only place a media binary is invoked.
package media

import "context"

// SourceInfo describes a probed media source. Immutable once probed.
type SourceInfo struct {
	// Path is the location of the source file.
	Path string
	// Duration is the total duration in seconds.
	Duration float64
	// Size is the file size in bytes.
	Size int64
}

// Toolkit is the media toolkit contract consumed by the chunk extractor.
type Toolkit interface {
	// Probe returns the duration and size of the media at path.
	// An undecodable source is a fatal error.
	Probe(ctx context.Context, path string) (SourceInfo, error)
	// Cut extracts [start, start+duration) seconds of audio from path into
	// outPath. The output container is inferred from outPath's extension.
	Cut(ctx context.Context, path string, start, duration float64, outPath string) error
}
