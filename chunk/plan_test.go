package chunk

import (
	"math"
	"testing"
)

func TestPlanSingleChunkUnderLimit(t *testing.T) {
	plan, err := PlanChunks(10<<20, 600, 25<<20, DefaultSafetyMargin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.SingleChunk() {
		t.Fatalf("expected single chunk, got %d", len(plan.Specs))
	}
	s := plan.Specs[0]
	if s.StartOffset != 0 || s.Duration != 600 {
		t.Fatalf("expected [0,600), got start=%v dur=%v", s.StartOffset, s.Duration)
	}
}

func TestPlanConcreteScenario(t *testing.T) {
	// 25MB limit against a 50MB, 600s source:
	// raw = (25/50)*600*0.9 = 270s, floored to 240s, three chunks.
	plan, err := PlanChunks(50<<20, 600, 25<<20, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ChunkDuration != 240 {
		t.Fatalf("expected chunk duration 240, got %v", plan.ChunkDuration)
	}
	want := []float64{240, 240, 120}
	if len(plan.Specs) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(plan.Specs))
	}
	for i, s := range plan.Specs {
		if s.Duration != want[i] {
			t.Errorf("chunk %d: duration %v, want %v", i, s.Duration, want[i])
		}
		if s.Index != i {
			t.Errorf("chunk %d: index %d", i, s.Index)
		}
	}
	if plan.Specs[2].StartOffset != 480 {
		t.Errorf("final chunk offset %v, want 480", plan.Specs[2].StartOffset)
	}
}

func TestPlanDurationsAreMinuteMultiples(t *testing.T) {
	cases := []struct {
		size     int64
		duration float64
		limit    int64
	}{
		{100 << 20, 3600, 25 << 20},
		{80 << 20, 1234.5, 25 << 20},
		{26 << 20, 610, 25 << 20},
		{500 << 20, 7200, 25 << 20},
	}
	for _, tc := range cases {
		plan, err := PlanChunks(tc.size, tc.duration, tc.limit, DefaultSafetyMargin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, s := range plan.Specs[:len(plan.Specs)-1] {
			if math.Mod(s.Duration, 60) != 0 {
				t.Errorf("size=%d dur=%v: non-final chunk %d duration %v not a minute multiple",
					tc.size, tc.duration, i, s.Duration)
			}
		}
		if got := plan.TotalDuration(); math.Abs(got-tc.duration) > 1e-6 {
			t.Errorf("size=%d: durations sum to %v, want %v", tc.size, got, tc.duration)
		}
		var prev float64 = -1
		for _, s := range plan.Specs {
			if s.StartOffset <= prev {
				t.Errorf("offsets not strictly increasing: %v after %v", s.StartOffset, prev)
			}
			prev = s.StartOffset
		}
	}
}

func TestPlanFloorsToMinimum(t *testing.T) {
	// Very high bitrate over a short file: raw duration under a minute.
	plan, err := PlanChunks(1000<<20, 120, 1<<20, DefaultSafetyMargin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.FlooredToMinimum {
		t.Fatal("expected the minimum-duration floor to be flagged")
	}
	if plan.ChunkDuration != 60 {
		t.Fatalf("expected 60s floor, got %v", plan.ChunkDuration)
	}
}

func TestPlanFinalChunkShorterThanMinute(t *testing.T) {
	// 610s at 240s chunks: 240, 240, 130. Then 615s: 240, 240, 135.
	plan, err := PlanChunks(50<<20, 610, 25<<20, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := plan.Specs[len(plan.Specs)-1]
	if last.Duration >= plan.ChunkDuration {
		t.Fatalf("final chunk should be the remainder, got %v", last.Duration)
	}
}

func TestPlanDegenerateInputs(t *testing.T) {
	cases := []struct {
		name     string
		size     int64
		duration float64
		limit    int64
	}{
		{"zero duration", 10 << 20, 0, 25 << 20},
		{"zero size", 0, 600, 25 << 20},
		{"zero limit", 10 << 20, 600, 0},
		{"negative duration", 10 << 20, -5, 25 << 20},
	}
	for _, tc := range cases {
		if _, err := PlanChunks(tc.size, tc.duration, tc.limit, DefaultSafetyMargin); err == nil {
			t.Errorf("%s: expected planning error", tc.name)
		}
	}
}

func TestPlanBadMarginFallsBackToDefault(t *testing.T) {
	a, err := PlanChunks(50<<20, 600, 25<<20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := PlanChunks(50<<20, 600, 25<<20, DefaultSafetyMargin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ChunkDuration != b.ChunkDuration {
		t.Fatalf("margin 0 should fall back to default: %v vs %v", a.ChunkDuration, b.ChunkDuration)
	}
}
