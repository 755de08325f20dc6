package repo

import (
	"os"
	"path/filepath"
)

// index is the mutable staged tree, persisted as a single file whose shape
// matches a tree object body (see codec.go's encodeTree/decodeTree).
type index struct {
	path string
}

func newIndex(metaDir string) *index {
	return &index{path: filepath.Join(metaDir, "index")}
}

// Read loads the persisted mapping, returning an empty Tree if the file is
// missing or unreadable rather than failing the caller.
func (x *index) Read() Tree {
	data, err := os.ReadFile(x.path) //nolint:gosec // path is repo-controlled
	if err != nil {
		return Tree{}
	}
	t, err := decodeTree(data)
	if err != nil {
		return Tree{}
	}
	return t
}

// Write persists the mapping with a single atomic write.
func (x *index) Write(t Tree) error {
	body, err := encodeTree(t)
	if err != nil {
		return newErr(KindIOFault, "index.Write", x.path, err)
	}
	return writeFileAtomic(x.path, body)
}
