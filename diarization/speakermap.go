package diarization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/transcript"
)

// SpeakerMap maps raw diarization labels to reviewed display labels. It is
// applied as a rewrite pass over segment speaker fields; applying it twice
// yields the same transcript as applying it once.
type SpeakerMap map[string]string

// Resolve follows the mapping for label, chasing chains so that renaming a
// label that is itself a rename target lands on the final name. A label with
// no entry maps to itself.
func (m SpeakerMap) Resolve(label string) string {
	seen := map[string]bool{}
	for {
		next, ok := m[label]
		if !ok || next == label || seen[label] {
			return label
		}
		seen[label] = true
		label = next
	}
}

// Apply rewrites every labeled segment's speaker through the map, in place.
// Unlabeled segments stay unlabeled.
func (m SpeakerMap) Apply(segments []transcript.Segment) {
	if len(m) == 0 {
		return
	}
	for i := range segments {
		if segments[i].Speaker == "" {
			continue
		}
		segments[i].Speaker = m.Resolve(segments[i].Speaker)
	}
}

// Labels returns the mapped raw labels in sorted order.
func (m SpeakerMap) Labels() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Command is one speaker-review edit. Supported verbs:
//
//	rename OLD NEW
//	merge A B ... into TARGET
type Command struct {
	Verb   string
	Args   []string
	Target string
}

// ParseCommand parses a review command line into a Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errors.InvalidInput("command", "empty command")
	}
	verb := strings.ToLower(fields[0])
	switch verb {
	case "rename":
		if len(fields) != 3 {
			return Command{}, errors.InvalidInput("command", "rename takes exactly OLD NEW")
		}
		return Command{Verb: "rename", Args: fields[1:2], Target: fields[2]}, nil
	case "merge":
		// merge A B ... into TARGET
		if len(fields) < 4 || strings.ToLower(fields[len(fields)-2]) != "into" {
			return Command{}, errors.InvalidInput("command", "merge takes LABEL... into TARGET")
		}
		return Command{
			Verb:   "merge",
			Args:   fields[1 : len(fields)-2],
			Target: fields[len(fields)-1],
		}, nil
	default:
		return Command{}, errors.InvalidInput("command", fmt.Sprintf("unknown verb %q", fields[0]))
	}
}

// ApplyCommand returns a new SpeakerMap with cmd applied. The input map is
// never mutated, so interactive shells can offer undo by keeping the old
// value.
func ApplyCommand(m SpeakerMap, cmd Command) (SpeakerMap, error) {
	out := make(SpeakerMap, len(m)+len(cmd.Args))
	for k, v := range m {
		out[k] = v
	}

	switch cmd.Verb {
	case "rename", "merge":
		if cmd.Target == "" {
			return nil, errors.InvalidInput("target", "empty target label")
		}
		// The target becomes a final display name, it must resolve to
		// itself or later applications would chase a cycle.
		delete(out, cmd.Target)
		for _, label := range cmd.Args {
			if label == "" {
				return nil, errors.InvalidInput("label", "empty source label")
			}
			out[label] = cmd.Target
		}
		// Flatten chains so an earlier rename's target follows this edit.
		for k, v := range out {
			out[k] = out.Resolve(v)
		}
	default:
		return nil, errors.InvalidInput("command", fmt.Sprintf("unknown verb %q", cmd.Verb))
	}
	return out, nil
}
