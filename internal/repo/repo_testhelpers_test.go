package repo

import (
	"os"
	"path/filepath"
	"testing"
)

// newTestRepo initializes a fresh repository rooted at a temp directory.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()
	r, err := Init(dir, nil)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return r
}

// writeWorkdirFile writes content to path relative to the repo root, creating
// parent directories as needed.
func writeWorkdirFile(t *testing.T, r *Repository, path, content string) {
	t.Helper()
	full := filepath.Join(r.Root(), filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// commitFile stages and commits path=content against r's current HEAD,
// returning the new commit id.
func commitFile(t *testing.T, r *Repository, path, content, message string) Hash {
	t.Helper()
	writeWorkdirFile(t, r, path, content)
	if err := r.Add(path); err != nil {
		t.Fatalf("Add(%q) error: %v", path, err)
	}
	var parents []Hash
	if id, ok, err := r.HeadCommit(); err != nil {
		t.Fatal(err)
	} else if ok {
		parents = []Hash{id}
	}
	id, err := r.Commit(message, parents)
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	return id
}
