// Package format renders assembled transcripts to line-oriented and subtitle
// text, and parses the line format back so speaker maps can be re-applied to
// a previously emitted transcript.
package format

import (
	"fmt"
	"strings"

	"github.com/kbukum/scribe/transcript"
)

// Timestamp formats seconds as zero-padded H:MM:SS. Hours are never dropped:
// M:SS would collide with itself past 99 minutes, H:MM:SS stays unambiguous
// for any recording length.
func Timestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Line renders one segment as a transcript line:
//
//	[01:01:01 - 01:02:05] [Alice] hello there
//	[01:02:05 - 01:02:09] unlabeled text
//
// An absent speaker omits the bracket entirely.
func Line(s transcript.Segment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s - %s] ", Timestamp(s.Start), Timestamp(s.End))
	if s.Speaker != "" {
		fmt.Fprintf(&b, "[%s] ", s.Speaker)
	}
	b.WriteString(s.Text)
	return b.String()
}

// Render renders the whole transcript as newline-separated lines with a
// trailing newline.
func Render(segments []transcript.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(Line(s))
		b.WriteByte('\n')
	}
	return b.String()
}
