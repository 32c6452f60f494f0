// Package timeline reassembles per-chunk transcription results into one
// continuous transcript in the source file's time domain.
package timeline

import (
	"strings"

	"github.com/kbukum/scribe/transcript"
	"github.com/kbukum/scribe/transcription"
)

// GapText is the text carried by the synthetic segment standing in for a
// failed chunk. Downstream formatters render it like any other segment so
// the gap is visible in the output.
const GapText = "[transcription failed]"

// Assemble shifts every chunk-relative segment by its chunk's start offset
// and concatenates the results in chunk order. No re-sort happens afterwards:
// chunks do not overlap, so concatenation order is already time order.
//
// Blank segments (whitespace-only text) are dropped. A failed chunk
// contributes one gap segment spanning the whole chunk, so the transcript
// still covers the source timeline and readers can see what is missing.
func Assemble(results []transcription.ChunkResult) []transcript.Segment {
	var out []transcript.Segment
	for _, r := range results {
		if r.Failed() {
			out = append(out, transcript.Segment{
				Start: r.Chunk.StartOffset,
				End:   r.Chunk.StartOffset + r.Chunk.Duration,
				Text:  GapText,
			})
			continue
		}
		for _, s := range r.Segments {
			text := strings.TrimSpace(s.Text)
			if text == "" {
				continue
			}
			out = append(out, transcript.Segment{
				Start: r.Chunk.StartOffset + s.Start,
				End:   r.Chunk.StartOffset + s.End,
				Text:  text,
			})
		}
	}
	return out
}

// FailedChunks returns the indexes of chunks that produced no transcript.
func FailedChunks(results []transcription.ChunkResult) []int {
	var out []int
	for _, r := range results {
		if r.Failed() {
			out = append(out, r.Chunk.Index)
		}
	}
	return out
}
