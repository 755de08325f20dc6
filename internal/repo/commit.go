package repo

import "time"

// Commit constructs and writes a commit object from the current index,
// against the given parent list, using the configured author/committer
// identity (spec.md §4.8). The HEAD-moving policy is the caller's: when HEAD
// is attached the branch ref is rewritten to the new commit id, when
// detached HEAD itself is rewritten.
//
// An empty message is permitted by this layer; the command surface enforces
// -m's presence. Per spec.md invariant 7, committing with an index unchanged
// from HEAD's tree is a no-op: no object or ref is written and the existing
// HEAD commit id is returned.
func (r *Repository) Commit(message string, parents []Hash) (Hash, error) {
	treeID, err := r.WriteTree(r.index.Read())
	if err != nil {
		return "", err
	}

	if len(parents) == 1 {
		parentTree, err := r.TreeOf(parents[0])
		if err == nil && parentTree == treeID {
			return parents[0], nil
		}
	}

	name, email := r.config.Identity()
	now := time.Now()
	sig := Signature{Name: name, Email: email, When: now}

	c := &Commit{
		Tree:      treeID,
		Parents:   parents,
		Author:    sig,
		Committer: sig,
		Message:   message,
	}
	id, err := r.WriteCommit(c)
	if err != nil {
		return "", err
	}

	if err := r.moveHeadTo(id); err != nil {
		return "", err
	}
	return id, nil
}

// moveHeadTo advances HEAD to id: rewrites the attached branch ref, or HEAD
// itself when detached.
func (r *Repository) moveHeadTo(id Hash) error {
	branch, attached, err := r.currentBranch()
	if err != nil {
		return err
	}
	if attached {
		return r.refs.UpdateBranch(branch, id)
	}
	return r.refs.UpdateHead(string(id), true)
}
