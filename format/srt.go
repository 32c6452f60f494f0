package format

import (
	"fmt"
	"strings"

	"github.com/kbukum/scribe/transcript"
)

// srtTimestamp formats seconds as the SRT HH:MM:SS,mmm form.
func srtTimestamp(seconds float64) string {
	total := int(seconds)
	millis := int((seconds - float64(total)) * 1000)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, millis)
}

// RenderSRT renders the transcript as a SubRip subtitle file. Cue numbering
// is 1-based. A labeled segment keeps its bracketed speaker prefix in the
// cue text.
func RenderSRT(segments []transcript.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(s.Start), srtTimestamp(s.End))
		if s.Speaker != "" {
			fmt.Fprintf(&b, "[%s] ", s.Speaker)
		}
		b.WriteString(s.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
