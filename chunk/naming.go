package chunk

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Chunk files follow {stem}_chunk{index}{ext} with zero-based contiguous
// indices. This is the one bit-stable contract resumption depends on.
var chunkNameRe = regexp.MustCompile(`^(.+)_chunk(\d+)(\.[^.]+)?$`)

// Path returns the chunk file path for the given source path and index,
// placed in dir (or next to the source when dir is empty).
func Path(sourcePath string, index int, dir string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return filepath.Join(dir, fmt.Sprintf("%s_chunk%d%s", stem, index, ext))
}

// ParseName extracts the stem, index and extension from a chunk file name.
// Returns ok=false for paths that do not follow the naming convention.
func ParseName(path string) (stem string, index int, ext string, ok bool) {
	m := chunkNameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", 0, "", false
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", false
	}
	return m[1], idx, m[3], true
}

// FamilyGlob returns the glob pattern matching all siblings of the given
// chunk file.
func FamilyGlob(memberPath string) (string, bool) {
	stem, _, ext, ok := ParseName(memberPath)
	if !ok {
		return "", false
	}
	dir := filepath.Dir(memberPath)
	return filepath.Join(dir, stem+"_chunk*"+ext), true
}
