package repo

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WorkdirEntry is one path found by a working-tree scan, alongside the blob
// id its current on-disk content would hash to.
type WorkdirEntry struct {
	Path string
	Hash Hash
}

// Scan walks the repository root, skipping the meta directory and any path
// matched by the root .gitignore, and returns every remaining file path,
// tracked or untracked, with its content-hashed blob id. The scan does not write to the object
// store or touch refs; hashing the whole tree is O(total bytes), as spec.md
// §4.13 notes, and no caching layer is specified.
func (r *Repository) Scan() ([]WorkdirEntry, error) {
	ignore := loadIgnoreMatcher(r.root)
	var out []WorkdirEntry

	err := filepath.Walk(r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == r.root {
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if info.Name() == MetaDirName {
				return filepath.SkipDir
			}
			if ignore.isIgnored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.isIgnored(rel, false) {
			return nil
		}

		content, err := os.ReadFile(path) //nolint:gosec // path comes from filepath.Walk under the repo root
		if err != nil {
			r.log.Warn("scan: failed to read file", "path", rel, "error", err)
			return nil
		}
		id, _ := frame(KindBlob, content)
		out = append(out, WorkdirEntry{Path: rel, Hash: id})
		return nil
	})
	if err != nil {
		return nil, newErr(KindIOFault, "Scan", r.root, err)
	}
	return out, nil
}

// WorkdirTree is Scan reshaped into the Tree (path -> blob id) form used by
// status and stash to compare against the index and HEAD trees.
func (r *Repository) WorkdirTree() (Tree, error) {
	entries, err := r.Scan()
	if err != nil {
		return nil, err
	}
	t := make(Tree, len(entries))
	for _, e := range entries {
		t[e.Path] = e.Hash
	}
	return t, nil
}

// Watch invokes onChange each time fsnotify observes a create/write/remove/
// rename event anywhere under the repository root (excluding the meta
// directory). It blocks until stop is closed. The callback receives no event
// details; a caller re-scans to see what changed. No command in cmd/pygit
// calls it.
func (r *Repository) Watch(stop <-chan struct{}, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return newErr(KindIOFault, "Watch", r.root, err)
	}
	defer w.Close()

	err = filepath.Walk(r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == MetaDirName {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return newErr(KindIOFault, "Watch", r.root, err)
	}

	for {
		select {
		case <-stop:
			return nil
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			onChange()
		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watch: fsnotify error", "error", watchErr)
		}
	}
}
