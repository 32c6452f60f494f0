package chunk

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/media"
)

// File is one chunk on disk, owned by the run. Never mutated after creation;
// deletion is caller-controlled.
type File struct {
	// Index is the zero-based chunk position.
	Index int
	// Path is the chunk file location.
	Path string
	// StartOffset is the chunk start in seconds from the source beginning.
	StartOffset float64
	// Duration is the chunk length in seconds.
	Duration float64
}

// Repository discovers existing chunk families for resumed runs. A
// non-filesystem backing store is a drop-in replacement.
type Repository interface {
	// ListFamily returns all siblings of memberPath in ascending index
	// order, with offsets recomputed from the chunks' actual durations.
	ListFamily(ctx context.Context, memberPath string) ([]File, error)
}

// FSRepository discovers chunk families on the local filesystem by the
// {stem}_chunk{index}{ext} naming convention.
type FSRepository struct {
	// Toolkit probes each discovered chunk for its duration so start
	// offsets can be rebuilt without the original plan.
	Toolkit media.Toolkit
}

// ListFamily globs for siblings of memberPath and orders them numerically by
// embedded index. A plain string sort would place chunk10 before chunk2;
// ordering is rebuilt from the parsed integer.
func (r *FSRepository) ListFamily(ctx context.Context, memberPath string) ([]File, error) {
	stem, _, ext, ok := ParseName(memberPath)
	if !ok {
		return nil, errors.InvalidInput("path", fmt.Sprintf("%s does not follow the {stem}_chunk{index} convention", memberPath))
	}

	pattern, _ := FamilyGlob(memberPath)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.InvalidInput("path", fmt.Sprintf("bad chunk family pattern %q", pattern))
	}

	var files []File
	for _, m := range matches {
		s, idx, e, ok := ParseName(m)
		if !ok || s != stem || e != ext {
			continue
		}
		files = append(files, File{Index: idx, Path: m})
	}
	if len(files) == 0 {
		return nil, errors.NotFound(errors.StageExtraction, pattern)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Index < files[j].Index })

	for i, f := range files {
		if f.Index != i {
			return nil, errors.InvalidInput("path", fmt.Sprintf("chunk family has a gap: missing index %d (found %d)", i, f.Index))
		}
	}

	// A discovered chunk's absolute offset is only known once every earlier
	// chunk's duration is fixed, so probe in index order.
	var offset float64
	for i := range files {
		info, err := r.Toolkit.Probe(ctx, files[i].Path)
		if err != nil {
			return nil, err
		}
		files[i].StartOffset = offset
		files[i].Duration = info.Duration
		offset += info.Duration
	}

	return files, nil
}
