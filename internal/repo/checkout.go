package repo

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Checkout resolves name to a commit, materializes its tree into the working
// directory, overwrites the index, and updates HEAD — attached if name names
// an existing branch, detached otherwise. Per spec.md §4.9, uncommitted
// working-tree changes are NOT preserved; this is a documented hazard, not a
// safety-checked operation, and there is no --force gate to add because
// nothing here ever refuses.
func (r *Repository) Checkout(name string) error {
	targetCommit, err := r.ResolveToCommit(name)
	if err != nil {
		return newErr(KindBadRevision, "Checkout", name, err)
	}

	targetTreeID, err := r.TreeOf(targetCommit)
	if err != nil {
		return err
	}
	targetTree, err := r.ReadTree(targetTreeID)
	if err != nil {
		return err
	}

	headTree := Tree{}
	if headCommit, ok, err := r.HeadCommit(); err != nil {
		return err
	} else if ok {
		headTreeID, err := r.TreeOf(headCommit)
		if err != nil {
			return err
		}
		headTree, err = r.ReadTree(headTreeID)
		if err != nil {
			return err
		}
	}

	if err := r.materialize(headTree, targetTree); err != nil {
		return err
	}

	if err := r.index.Write(targetTree); err != nil {
		return err
	}

	if _, ok, _ := r.BranchCommit(name); ok {
		return r.refs.UpdateHead("refs/heads/"+name, false)
	}
	return r.refs.UpdateHead(string(targetCommit), true)
}

// materialize deletes files present in oldTree but absent from newTree
// (pruning directories that become empty, best-effort), then writes every
// file in newTree, creating parent directories as needed.
func (r *Repository) materialize(oldTree, newTree Tree) error {
	for path := range oldTree {
		if _, ok := newTree[path]; ok {
			continue
		}
		full := filepath.Join(r.root, filepath.FromSlash(path))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			return newErr(KindIOFault, "Checkout", path, err)
		}
		pruneEmptyParents(r.root, filepath.Dir(full), r.log)
	}

	for path, blobID := range newTree {
		content, err := r.ReadBlob(blobID)
		if err != nil {
			return err
		}
		full := filepath.Join(r.root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return newErr(KindIOFault, "Checkout", path, err)
		}
		if err := os.WriteFile(full, content, 0o644); err != nil {
			return newErr(KindIOFault, "Checkout", path, err)
		}
	}
	return nil
}

// pruneEmptyParents removes dir and any now-empty ancestors up to (but not
// including) root. Failure to remove is non-fatal, per spec.md §4.9 step 3,
// and is logged at Warn.
func pruneEmptyParents(root, dir string, log *slog.Logger) {
	for {
		if dir == root || dir == "." || dir == string(filepath.Separator) {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			log.Warn("checkout: failed to prune empty directory", "dir", dir, "error", err)
			return
		}
		dir = filepath.Dir(dir)
	}
}
