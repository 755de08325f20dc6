package repo

import (
	"bytes"
	"fmt"
)

// MergeResult reports the outcome of Merge.
type MergeResult struct {
	AlreadyUpToDate bool
	FastForward     bool
	Conflicted      bool
	ConflictPaths   []string
	CommitID        Hash // set on fast-forward (target tip) or a clean three-way merge (new merge commit)
}

// Merge merges branch into the current HEAD per spec.md §4.10. Conflicts are
// whole-file only: the engine never attempts a line-level merge of
// non-conflicted files' content, so any path where both sides changed is
// resolved by writing a marker file, never by interleaving lines.
func (r *Repository) Merge(branch string) (*MergeResult, error) {
	headID, headOK, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	otherID, otherOK, err := r.BranchCommit(branch)
	if err != nil {
		return nil, err
	}
	if !otherOK {
		return nil, newErr(KindBadRevision, "Merge", branch, nil)
	}
	if !headOK || headID == otherID {
		return &MergeResult{AlreadyUpToDate: true}, nil
	}

	headAncestors, err := r.AncestorSet(headID)
	if err != nil {
		return nil, err
	}
	if headAncestors[otherID] {
		return &MergeResult{AlreadyUpToDate: true}, nil
	}

	otherAncestors, err := r.AncestorSet(otherID)
	if err != nil {
		return nil, err
	}
	if otherAncestors[headID] {
		// Fast-forward: move HEAD's branch to otherID and materialize.
		branchName, attached, err := r.currentBranch()
		if err != nil {
			return nil, err
		}
		if !attached {
			return nil, newErr(KindDetachedHead, "Merge", branch, nil)
		}
		if err := r.refs.UpdateBranch(branchName, otherID); err != nil {
			return nil, err
		}
		if err := r.Checkout(branchName); err != nil {
			return nil, err
		}
		return &MergeResult{FastForward: true, CommitID: otherID}, nil
	}

	base, ok, err := r.LowestCommonAncestor(headID, otherID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newErr(KindNoCommonAncestor, "Merge", branch, nil)
	}

	baseTreeID, err := r.TreeOf(base)
	if err != nil {
		return nil, err
	}
	headTreeID, err := r.TreeOf(headID)
	if err != nil {
		return nil, err
	}
	otherTreeID, err := r.TreeOf(otherID)
	if err != nil {
		return nil, err
	}
	baseTree, err := r.ReadTree(baseTreeID)
	if err != nil {
		return nil, err
	}
	headTree, err := r.ReadTree(headTreeID)
	if err != nil {
		return nil, err
	}
	otherTree, err := r.ReadTree(otherTreeID)
	if err != nil {
		return nil, err
	}

	paths := map[string]bool{}
	for p := range baseTree {
		paths[p] = true
	}
	for p := range headTree {
		paths[p] = true
	}
	for p := range otherTree {
		paths[p] = true
	}

	merged := Tree{}
	var conflicts []string
	for p := range paths {
		b := baseTree[p]
		h := headTree[p]
		o := otherTree[p]

		switch {
		case b == h || h == o:
			// HEAD didn't change since base, or HEAD already matches target: take theirs.
			if o != "" {
				merged[p] = o
			}
		case b == o:
			// Only HEAD changed: keep HEAD.
			if h != "" {
				merged[p] = h
			}
		default:
			conflicts = append(conflicts, p)
			markerID, err := r.writeConflictMarker(h, o, branch, h != "", o != "")
			if err != nil {
				return nil, err
			}
			merged[p] = markerID
		}
	}

	if len(conflicts) == 0 {
		treeID, err := r.WriteTree(merged)
		if err != nil {
			return nil, err
		}
		name, email := r.config.Identity()
		sig := Signature{Name: name, Email: email}
		c := &Commit{Tree: treeID, Parents: []Hash{headID, otherID}, Author: sig, Committer: sig, Message: fmt.Sprintf("Merge branch '%s'", branch)}
		id, err := r.WriteCommit(c)
		if err != nil {
			return nil, err
		}
		branchName, attached, err := r.currentBranch()
		if err != nil {
			return nil, err
		}
		if attached {
			if err := r.refs.UpdateBranch(branchName, id); err != nil {
				return nil, err
			}
			if err := r.Checkout(branchName); err != nil {
				return nil, err
			}
		}
		return &MergeResult{CommitID: id}, nil
	}

	if err := r.materialize(headTree, merged); err != nil {
		return nil, err
	}
	if err := r.index.Write(merged); err != nil {
		return nil, err
	}
	return &MergeResult{Conflicted: true, ConflictPaths: conflicts}, nil
}

// writeConflictMarker builds and stores the whole-file marker blob for a
// conflicted path, per spec.md §4.10's exact format.
func (r *Repository) writeConflictMarker(headBlob, otherBlob Hash, branch string, headHas, otherHas bool) (Hash, error) {
	var headContent, otherContent []byte
	var err error
	if headHas {
		headContent, err = r.ReadBlob(headBlob)
		if err != nil {
			return "", err
		}
	}
	if otherHas {
		otherContent, err = r.ReadBlob(otherBlob)
		if err != nil {
			return "", err
		}
	}

	var b bytes.Buffer
	b.WriteString("<<<<<<< HEAD\n")
	b.Write(headContent)
	if len(headContent) > 0 && headContent[len(headContent)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString("=======\n")
	b.Write(otherContent)
	if len(otherContent) > 0 && otherContent[len(otherContent)-1] != '\n' {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, ">>>>>>> %s\n", branch)

	return r.WriteBlob(b.Bytes())
}
