package transcription

import (
	"context"
	"fmt"
	"testing"

	"github.com/kbukum/scribe/chunk"
	"github.com/kbukum/scribe/errors"
)

// scriptedProvider returns a canned response or error per audio path.
type scriptedProvider struct {
	responses map[string]*TranscriptionResponse
	failures  map[string]error
	requests  []TranscriptionRequest
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) IsAvailable(ctx context.Context) bool { return true }
func (p *scriptedProvider) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	p.requests = append(p.requests, req)
	if err, ok := p.failures[req.AudioPath]; ok {
		return nil, err
	}
	if resp, ok := p.responses[req.AudioPath]; ok {
		return resp, nil
	}
	return nil, fmt.Errorf("no script for %s", req.AudioPath)
}

func files(n int) []chunk.File {
	out := make([]chunk.File, n)
	for i := range out {
		out[i] = chunk.File{Index: i, Path: fmt.Sprintf("/tmp/a_chunk%d.mp3", i), Duration: 240}
	}
	return out
}

func respWith(text string) *TranscriptionResponse {
	return &TranscriptionResponse{
		Text:     text,
		Segments: []Segment{{Start: 0, End: 2, Text: text}},
	}
}

func TestDispatchAllSucceed(t *testing.T) {
	p := &scriptedProvider{responses: map[string]*TranscriptionResponse{
		"/tmp/a_chunk0.mp3": respWith("one"),
		"/tmp/a_chunk1.mp3": respWith("two"),
	}}
	d := &Dispatcher{Provider: p, Language: "en"}

	results, err := d.Dispatch(context.Background(), files(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Failed() {
			t.Errorf("chunk %d failed: %v", i, r.Err)
		}
	}
	if p.requests[0].Language != "en" {
		t.Errorf("language not forwarded: %+v", p.requests[0])
	}
}

func TestDispatchSequentialOrder(t *testing.T) {
	p := &scriptedProvider{responses: map[string]*TranscriptionResponse{
		"/tmp/a_chunk0.mp3": respWith("a"),
		"/tmp/a_chunk1.mp3": respWith("b"),
		"/tmp/a_chunk2.mp3": respWith("c"),
	}}
	d := &Dispatcher{Provider: p}

	if _, err := d.Dispatch(context.Background(), files(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, req := range p.requests {
		want := fmt.Sprintf("/tmp/a_chunk%d.mp3", i)
		if req.AudioPath != want {
			t.Fatalf("request %d went to %s, want %s", i, req.AudioPath, want)
		}
	}
}

func TestDispatchPartialFailureContinues(t *testing.T) {
	p := &scriptedProvider{
		responses: map[string]*TranscriptionResponse{
			"/tmp/a_chunk0.mp3": respWith("first"),
			"/tmp/a_chunk2.mp3": respWith("third"),
		},
		failures: map[string]error{
			"/tmp/a_chunk1.mp3": fmt.Errorf("connection reset"),
		},
	}
	d := &Dispatcher{Provider: p}

	results, err := d.Dispatch(context.Background(), files(3))
	if err != nil {
		t.Fatalf("partial failure should not abort: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Failed() || results[2].Failed() {
		t.Fatal("surviving chunks marked failed")
	}
	if !results[1].Failed() {
		t.Fatal("failed chunk not marked")
	}
	if !errors.HasCode(results[1].Err, errors.ErrCodeTranscriptionChunk) {
		t.Fatalf("wrong error code: %v", results[1].Err)
	}
	if errors.IsFatal(results[1].Err) {
		t.Fatal("single-chunk failure must stay recoverable")
	}
	if len(p.requests) != 3 {
		t.Fatalf("failure stopped dispatch after %d requests", len(p.requests))
	}
}

func TestDispatchAllFailedIsTotalFailure(t *testing.T) {
	p := &scriptedProvider{failures: map[string]error{
		"/tmp/a_chunk0.mp3": fmt.Errorf("down"),
		"/tmp/a_chunk1.mp3": fmt.Errorf("down"),
	}}
	d := &Dispatcher{Provider: p}

	results, err := d.Dispatch(context.Background(), files(2))
	if err == nil {
		t.Fatal("expected total failure error")
	}
	if !errors.HasCode(err, errors.ErrCodeTranscriptionTotal) {
		t.Fatalf("wrong error code: %v", err)
	}
	if !errors.IsFatal(err) {
		t.Fatal("total failure must be fatal")
	}
	if len(results) != 2 {
		t.Fatalf("per-chunk results should still be returned, got %d", len(results))
	}
}

func TestDispatchNoSegmentsIsChunkFailure(t *testing.T) {
	p := &scriptedProvider{responses: map[string]*TranscriptionResponse{
		"/tmp/a_chunk0.mp3": {Text: "whole text but no timing"},
		"/tmp/a_chunk1.mp3": respWith("fine"),
	}}
	d := &Dispatcher{Provider: p}

	results, err := d.Dispatch(context.Background(), files(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Failed() {
		t.Fatal("segment-less response should fail the chunk")
	}
	if !errors.HasCode(results[0].Err, errors.ErrCodeTranscriptionChunk) {
		t.Fatalf("wrong error code: %v", results[0].Err)
	}
}

func TestDispatchEmptyTextSegmentsSucceed(t *testing.T) {
	p := &scriptedProvider{responses: map[string]*TranscriptionResponse{
		"/tmp/a_chunk0.mp3": {Segments: []Segment{{Start: 0, End: 240, Text: "  "}}},
	}}
	d := &Dispatcher{Provider: p}

	results, err := d.Dispatch(context.Background(), files(1))
	if err != nil {
		t.Fatalf("silent audio is not a failure: %v", err)
	}
	if results[0].Failed() {
		t.Fatal("empty-text segments must not fail the chunk")
	}
}

func TestDispatchNoChunks(t *testing.T) {
	d := &Dispatcher{Provider: &scriptedProvider{}}
	if _, err := d.Dispatch(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty chunk list")
	}
}
