package texture

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]indexed
}

type indexed struct {
	path string
	rank int // position in Extensions, lower wins
}

// stem lowercases a texture name and strips its directory and extension.
// Backslash separators are accepted.
func stem(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// BuildIndex walks dir recursively. When two files share a stem the one
// whose extension comes first in Extensions is kept. An empty or missing
// dir gives an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: map[string]indexed{}}
	if dir == "" {
		return idx
	}

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rank := slices.Index(Extensions, strings.ToLower(filepath.Ext(path)))
		if rank < 0 {
			return nil
		}
		key := stem(path)
		if cur, ok := idx.entries[key]; !ok || rank < cur.rank {
			idx.entries[key] = indexed{path: path, rank: rank}
		}
		return nil
	})
	return idx
}

// ResolvePath returns the file for texName, ignoring its directory and
// extension.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	e, ok := idx.entries[stem(texName)]
	return e.path, ok
}

func (idx *Index) Len() int { return len(idx.entries) }
