// Package transcript holds the assembled transcript data model. The segment
// sequence produced by the timeline assembler is the single source of truth
// for every downstream consumer; it is never re-ordered, only the Speaker
// field is annotated after the fact.
package transcript

import "strings"

// Segment is one transcribed text span with absolute file-level timestamps.
type Segment struct {
	// Start is the segment start in seconds from the beginning of the source.
	Start float64 `json:"start"`
	// End is the segment end in seconds. Always greater than Start.
	End float64 `json:"end"`
	// Text is the transcribed text. Non-empty except for gap markers.
	Text string `json:"text"`
	// Speaker is the speaker label assigned by diarization alignment.
	// Empty when unlabeled.
	Speaker string `json:"speaker,omitempty"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// IsBlank reports whether the segment carries no usable text.
func (s Segment) IsBlank() bool {
	return strings.TrimSpace(s.Text) == ""
}

// Speakers returns the distinct speaker labels present in segments, in order
// of first appearance. Unlabeled segments are skipped.
func Speakers(segments []Segment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range segments {
		if s.Speaker == "" || seen[s.Speaker] {
			continue
		}
		seen[s.Speaker] = true
		out = append(out, s.Speaker)
	}
	return out
}

// TotalDuration returns the end time of the last segment, or 0 for an empty
// transcript.
func TotalDuration(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].End
}
