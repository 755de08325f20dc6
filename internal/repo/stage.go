package repo

import (
	"os"
	"path/filepath"
)

// Add reads path's current content, writes it as a blob, and records
// index[path] = blob_id. It does not touch the working tree. path must be
// slash-separated and relative to the repository root.
func (r *Repository) Add(path string) error {
	full := filepath.Join(r.root, filepath.FromSlash(path))
	content, err := os.ReadFile(full) //nolint:gosec // path is relative to repo root, supplied by the command surface
	if err != nil {
		if os.IsNotExist(err) {
			return newErr(KindNotFound, "Add", path, err)
		}
		return newErr(KindIOFault, "Add", path, err)
	}
	blobID, err := r.WriteBlob(content)
	if err != nil {
		return err
	}
	idx := r.index.Read()
	idx[path] = blobID
	return r.index.Write(idx)
}

// Rm removes path from the index and deletes the working-tree file if
// present. Fails with KindNotFound if path is not in the index.
func (r *Repository) Rm(path string) error {
	idx := r.index.Read()
	if _, ok := idx[path]; !ok {
		return newErr(KindNotFound, "Rm", path, nil)
	}
	delete(idx, path)
	if err := r.index.Write(idx); err != nil {
		return err
	}
	full := filepath.Join(r.root, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return newErr(KindIOFault, "Rm", path, err)
	}
	return nil
}
