package chunk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/scribe/media"
)

// fakeToolkit probes durations from a map and records cuts.
type fakeToolkit struct {
	durations map[string]float64
	cuts      []string
}

func (f *fakeToolkit) Probe(_ context.Context, path string) (media.SourceInfo, error) {
	d, ok := f.durations[filepath.Base(path)]
	if !ok {
		d = 60
	}
	return media.SourceInfo{Path: path, Duration: d, Size: 1 << 20}, nil
}

func (f *fakeToolkit) Cut(_ context.Context, _ string, _, _ float64, outPath string) error {
	f.cuts = append(f.cuts, outPath)
	return os.WriteFile(outPath, []byte("audio"), 0o644)
}

func writeFamily(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("audio"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListFamilyNumericOrder(t *testing.T) {
	dir := t.TempDir()
	// Deliberately includes chunk10: a string sort would put it before chunk2.
	writeFamily(t, dir,
		"rec_chunk0.mp3", "rec_chunk1.mp3", "rec_chunk2.mp3", "rec_chunk3.mp3",
		"rec_chunk4.mp3", "rec_chunk5.mp3", "rec_chunk6.mp3", "rec_chunk7.mp3",
		"rec_chunk8.mp3", "rec_chunk9.mp3", "rec_chunk10.mp3",
	)

	repo := &FSRepository{Toolkit: &fakeToolkit{durations: map[string]float64{}}}
	files, err := repo.ListFamily(context.Background(), filepath.Join(dir, "rec_chunk0.mp3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 11 {
		t.Fatalf("expected 11 chunks, got %d", len(files))
	}
	for i, f := range files {
		if f.Index != i {
			t.Errorf("position %d has index %d", i, f.Index)
		}
	}
	if filepath.Base(files[2].Path) != "rec_chunk2.mp3" {
		t.Errorf("chunk2 misplaced: %s", files[2].Path)
	}
	if filepath.Base(files[10].Path) != "rec_chunk10.mp3" {
		t.Errorf("chunk10 misplaced: %s", files[10].Path)
	}
}

func TestListFamilyRebuildsOffsets(t *testing.T) {
	dir := t.TempDir()
	writeFamily(t, dir, "rec_chunk0.mp3", "rec_chunk1.mp3", "rec_chunk2.mp3")

	tk := &fakeToolkit{durations: map[string]float64{
		"rec_chunk0.mp3": 600,
		"rec_chunk1.mp3": 600,
		"rec_chunk2.mp3": 300,
	}}
	repo := &FSRepository{Toolkit: tk}
	files, err := repo.ListFamily(context.Background(), filepath.Join(dir, "rec_chunk1.mp3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOffsets := []float64{0, 600, 1200}
	for i, f := range files {
		if f.StartOffset != wantOffsets[i] {
			t.Errorf("chunk %d offset %v, want %v", i, f.StartOffset, wantOffsets[i])
		}
	}
	if files[2].Duration != 300 {
		t.Errorf("chunk 2 duration %v, want 300", files[2].Duration)
	}
}

func TestListFamilyRejectsGaps(t *testing.T) {
	dir := t.TempDir()
	writeFamily(t, dir, "rec_chunk0.mp3", "rec_chunk2.mp3")

	repo := &FSRepository{Toolkit: &fakeToolkit{}}
	if _, err := repo.ListFamily(context.Background(), filepath.Join(dir, "rec_chunk0.mp3")); err == nil {
		t.Fatal("expected error for a family with a missing index")
	}
}

func TestListFamilyIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeFamily(t, dir,
		"rec_chunk0.mp3", "rec_chunk1.mp3",
		"other_chunk0.mp3", // different stem
		"rec_chunk0.wav",   // different extension
	)

	repo := &FSRepository{Toolkit: &fakeToolkit{}}
	files, err := repo.ListFamily(context.Background(), filepath.Join(dir, "rec_chunk0.mp3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(files))
	}
}

func TestListFamilyUnconventionalPath(t *testing.T) {
	repo := &FSRepository{Toolkit: &fakeToolkit{}}
	if _, err := repo.ListFamily(context.Background(), "/rec/standup.mp3"); err == nil {
		t.Fatal("expected error for a non-chunk path")
	}
}
