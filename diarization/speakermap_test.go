package diarization

import (
	"reflect"
	"testing"

	"github.com/kbukum/scribe/transcript"
)

func TestSpeakerMapApply(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 5, Text: "a", Speaker: "SPEAKER_00"},
		{Start: 5, End: 10, Text: "b", Speaker: "SPEAKER_01"},
		{Start: 10, End: 15, Text: "c"},
	}
	m := SpeakerMap{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob"}
	m.Apply(segments)

	if segments[0].Speaker != "Alice" || segments[1].Speaker != "Bob" {
		t.Fatalf("rename not applied: %+v", segments)
	}
	if segments[2].Speaker != "" {
		t.Fatal("unlabeled segment must stay unlabeled")
	}
}

func TestSpeakerMapApplyIsIdempotent(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 5, Text: "a", Speaker: "SPEAKER_00"},
		{Start: 5, End: 10, Text: "b", Speaker: "SPEAKER_01"},
	}
	m := SpeakerMap{"SPEAKER_00": "Alice", "SPEAKER_01": "Alice"}

	m.Apply(segments)
	once := append([]transcript.Segment(nil), segments...)
	m.Apply(segments)

	if !reflect.DeepEqual(once, segments) {
		t.Fatalf("second application changed the transcript:\n once: %+v\ntwice: %+v", once, segments)
	}
}

func TestParseCommandRename(t *testing.T) {
	cmd, err := ParseCommand("rename SPEAKER_00 Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Verb != "rename" || len(cmd.Args) != 1 || cmd.Args[0] != "SPEAKER_00" || cmd.Target != "Alice" {
		t.Fatalf("parsed %+v", cmd)
	}
}

func TestParseCommandMerge(t *testing.T) {
	cmd, err := ParseCommand("merge SPEAKER_01 SPEAKER_02 into Bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Verb != "merge" || !reflect.DeepEqual(cmd.Args, []string{"SPEAKER_01", "SPEAKER_02"}) || cmd.Target != "Bob" {
		t.Fatalf("parsed %+v", cmd)
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"rename SPEAKER_00",
		"merge SPEAKER_00 into",
		"merge into Bob",
		"drop SPEAKER_00",
	} {
		if _, err := ParseCommand(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestApplyCommandDoesNotMutateInput(t *testing.T) {
	m := SpeakerMap{"SPEAKER_00": "Alice"}
	cmd, _ := ParseCommand("rename SPEAKER_01 Bob")

	out, err := ApplyCommand(m, cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m) != 1 {
		t.Fatal("input map was mutated")
	}
	if out["SPEAKER_01"] != "Bob" || out["SPEAKER_00"] != "Alice" {
		t.Fatalf("result = %v", out)
	}
}

func TestApplyCommandChainedRename(t *testing.T) {
	m := SpeakerMap{}
	for _, line := range []string{
		"rename SPEAKER_00 Alice",
		"rename Alice Alicia",
	} {
		cmd, err := ParseCommand(line)
		if err != nil {
			t.Fatal(err)
		}
		m, err = ApplyCommand(m, cmd)
		if err != nil {
			t.Fatal(err)
		}
	}
	if got := m.Resolve("SPEAKER_00"); got != "Alicia" {
		t.Fatalf("chained rename resolves to %q", got)
	}
}

func TestApplyCommandMergeIsIdempotentOnEmittedTranscript(t *testing.T) {
	// Simulates a merge re-applied to a previously emitted transcript that
	// already carries the merged label.
	m := SpeakerMap{}
	cmd, _ := ParseCommand("merge SPEAKER_00 SPEAKER_01 into Alice")
	m, err := ApplyCommand(m, cmd)
	if err != nil {
		t.Fatal(err)
	}

	segments := []transcript.Segment{
		{Start: 0, End: 5, Text: "a", Speaker: "Alice"},
		{Start: 5, End: 10, Text: "b", Speaker: "SPEAKER_01"},
	}
	m.Apply(segments)
	if segments[0].Speaker != "Alice" || segments[1].Speaker != "Alice" {
		t.Fatalf("merge on emitted transcript: %+v", segments)
	}
}

func TestApplyCommandRenameBack(t *testing.T) {
	m := SpeakerMap{"A": "B"}
	cmd, _ := ParseCommand("rename B A")
	m, err := ApplyCommand(m, cmd)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Resolve("B"); got != "A" {
		t.Fatalf("B resolves to %q", got)
	}
	if got := m.Resolve("A"); got != "A" {
		t.Fatalf("target must resolve to itself, got %q", got)
	}
}
