package format

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/transcript"
)

// lineRe matches the Render line format. The speaker bracket is optional;
// both labeled and unlabeled lines are valid.
var lineRe = regexp.MustCompile(`^\[(\d+):(\d{2}):(\d{2}) - (\d+):(\d{2}):(\d{2})\] (?:\[([^\]]+)\] )?(.+)$`)

// Parse reads a previously emitted line-format transcript back into
// segments, so speaker maps can be re-applied without recomputing
// transcription or diarization. Sub-second precision is lost in the line
// format; parsed timestamps are whole seconds.
func Parse(r io.Reader) ([]transcript.Segment, error) {
	var out []transcript.Segment
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.InvalidInput("transcript",
				"line "+strconv.Itoa(lineNo)+" is not a transcript line")
		}
		out = append(out, transcript.Segment{
			Start:   parseClock(m[1], m[2], m[3]),
			End:     parseClock(m[4], m[5], m[6]),
			Speaker: m[7],
			Text:    m[8],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseString parses a transcript held in memory.
func ParseString(s string) ([]transcript.Segment, error) {
	return Parse(strings.NewReader(s))
}

func parseClock(h, m, s string) float64 {
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	ss, _ := strconv.Atoi(s)
	return float64(hh*3600 + mm*60 + ss)
}
